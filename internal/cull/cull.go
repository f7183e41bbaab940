// Package cull holds the CPU side of the visibility scheduler: distance
// sorting, distance-banded slicing and the coarse frustum rejection test.
// It is deliberately free of GL calls so every decision is testable.
package cull

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcull/internal/world"
)

// SortByDistance orders chunks in place by ascending distance from the eye.
// Squared distances compare the same way and skip the square roots.
func SortByDistance(chunks []*world.Chunk, eye mgl32.Vec3) {
	sort.Slice(chunks, func(i, j int) bool {
		di := chunks[i].Center.Sub(eye).LenSqr()
		dj := chunks[j].Center.Sub(eye).LenSqr()
		return di < dj
	})
}

// Slices partitions distance-sorted chunks into distance bands. The first
// band covers everything closer than one chunk size; each following band
// extends the limit by two chunk sizes. A band is the maximal run of
// consecutive chunks (in sorted order) inside the current limit, so the
// returned subslices concatenate back to exactly the input. Bands with no
// chunks are returned as empty slices; the walk stops once the input is
// exhausted, not after a fixed band count.
//
// Rendering band by band lets each band's occlusion queries resolve against
// the already-rasterized nearer bands, which approximates front-to-back
// occlusion culling without a depth pre-pass or any CPU-side visibility
// structure.
func Slices(sorted []*world.Chunk, eye mgl32.Vec3, chunkSize float32) [][]*world.Chunk {
	var out [][]*world.Chunk
	maxDist := chunkSize
	i := 0
	for i < len(sorted) {
		j := i
		for j < len(sorted) && sorted[j].Center.Sub(eye).Len() < maxDist {
			j++
		}
		out = append(out, sorted[i:j])
		i = j
		maxDist += 2 * chunkSize
	}
	return out
}

// Rejected reports whether a chunk can be skipped for both the occlusion
// and the draw pass. Chunks within one chunk size of the eye are always
// kept; beyond that a chunk is rejected when its projected center lands
// outside the view volume by more than a chunk-size margin in clip space.
// This is a point test with a loose margin, not an exact box/frustum
// intersection; the looseness is intentional and kept as-is.
func Rejected(center, eye mgl32.Vec3, viewProj mgl32.Mat4, chunkSize float32) bool {
	if center.Sub(eye).Len() <= chunkSize {
		return false
	}
	clip := viewProj.Mul4x1(center.Vec4(1))
	m := abs32(clip.X())
	if ay := abs32(clip.Y()); ay > m {
		m = ay
	}
	return m > clip.W()+chunkSize
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
