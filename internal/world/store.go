package world

// ChunkStore owns the chunks of the static world. It is built once at
// startup; afterwards the only mutation is per-frame reordering of Chunks
// by the visibility scheduler.
type ChunkStore struct {
	Chunks []*Chunk

	// Edge length of every chunk in cells (and world units).
	Size int
}

// Build meshes one chunk for every lattice coordinate (i,j,k) in
// [-chunkRange, chunkRange)^3, so the store ends up with (2*chunkRange)^3
// chunks regardless of how many contain geometry.
func Build(chunkRange, size int, threshold float32, field DensityFunc) *ChunkStore {
	n := 2 * chunkRange
	store := &ChunkStore{
		Chunks: make([]*Chunk, 0, n*n*n),
		Size:   size,
	}
	for i := -chunkRange; i < chunkRange; i++ {
		for j := -chunkRange; j < chunkRange; j++ {
			for k := -chunkRange; k < chunkRange; k++ {
				store.Chunks = append(store.Chunks, NewChunk(ChunkCoord{i, j, k}, size, threshold, field))
			}
		}
	}
	return store
}

// QuadCount sums the exposed faces across all chunks.
func (s *ChunkStore) QuadCount() int {
	total := 0
	for _, c := range s.Chunks {
		total += c.QuadCount
	}
	return total
}
