package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ChunkCoord is an integer lattice coordinate of a chunk.
type ChunkCoord struct {
	X, Y, Z int
}

// Chunk is a fixed-size cube of procedurally meshed voxel geometry plus its
// axis-aligned bounding box. Everything is set at construction and never
// changes; only the store's ordering mutates between frames.
type Chunk struct {
	Coord ChunkCoord

	// World-space centroid, used for distance sorting and frustum tests.
	Center mgl32.Vec3

	// Interleaved position+normal vertex data, four vertices per exposed
	// voxel face, and the matching triangle indices. Both may be empty for
	// a chunk with no exposed faces.
	Vertices  []float32
	Indices   []uint32
	QuadCount int

	// Bounding cube used for occlusion queries: 24 vertices (position
	// only), 36 indices.
	BoundsVertices []float32
	BoundsIndices  []uint32
}

// NewChunk meshes the density field inside the chunk at the given lattice
// coordinate. size is the chunk edge length in cells; a cell is solid when
// field(pos) < threshold. Neighbor cells are sampled through the field
// directly, so faces between chunks cull the same way as interior faces.
func NewChunk(coord ChunkCoord, size int, threshold float32, field DensityFunc) *Chunk {
	s := float32(size)
	offset := mgl32.Vec3{
		s * float32(coord.X),
		s * float32(coord.Y),
		s * float32(coord.Z),
	}

	c := &Chunk{
		Coord:  coord,
		Center: offset.Add(mgl32.Vec3{s / 2, s / 2, s / 2}),
	}
	c.Vertices, c.Indices, c.QuadCount = buildChunkMesh(offset, size, threshold, field)
	c.BoundsVertices, c.BoundsIndices = buildBoundsMesh(offset, s)
	return c
}
