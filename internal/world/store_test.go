package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func airField(mgl32.Vec3) float32 { return 1 }

// boundedSolid is solid at every cell inside [lo, hi] on each axis and air
// outside, so the meshed surface is exactly the faces of that box.
func boundedSolid(lo, hi float32) DensityFunc {
	return func(p mgl32.Vec3) float32 {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < lo || p[axis] > hi {
				return 1
			}
		}
		return -1
	}
}

func TestBuildChunkCount(t *testing.T) {
	for _, chunkRange := range []int{1, 2, 3} {
		store := Build(chunkRange, 2, 0, airField)
		n := 2 * chunkRange
		if got, want := len(store.Chunks), n*n*n; got != want {
			t.Errorf("range %d: got %d chunks, want %d", chunkRange, got, want)
		}
	}
}

func TestBuildChunkCenters(t *testing.T) {
	const size = 4
	store := Build(2, size, 0, airField)

	seen := make(map[ChunkCoord]bool)
	for _, c := range store.Chunks {
		if seen[c.Coord] {
			t.Fatalf("duplicate chunk coord %v", c.Coord)
		}
		seen[c.Coord] = true

		want := mgl32.Vec3{
			size*float32(c.Coord.X) + size/2,
			size*float32(c.Coord.Y) + size/2,
			size*float32(c.Coord.Z) + size/2,
		}
		if c.Center != want {
			t.Errorf("chunk %v center = %v, want %v", c.Coord, c.Center, want)
		}
	}
}

func TestBuildAllAir(t *testing.T) {
	store := Build(1, 2, 0, airField)
	if store.QuadCount() != 0 {
		t.Errorf("all-air world has %d quads, want 0", store.QuadCount())
	}
	for _, c := range store.Chunks {
		if len(c.Vertices) != 0 || len(c.Indices) != 0 {
			t.Errorf("chunk %v has geometry in an all-air world", c.Coord)
		}
		// Bounds exist regardless of geometry.
		if len(c.BoundsVertices) != 24*3 || len(c.BoundsIndices) != 36 {
			t.Errorf("chunk %v bounds incomplete", c.Coord)
		}
	}
}

func TestBuildSolidBlock(t *testing.T) {
	// range 1, size 2: cells occupy -2..1 per axis, a 4x4x4 solid block.
	// Interior faces cancel pairwise, leaving the 6 box faces of 4x4 cells
	// each: 96 exposed quads.
	store := Build(1, 2, 0, boundedSolid(-2, 1))
	if got := store.QuadCount(); got != 96 {
		t.Errorf("solid 4x4x4 block has %d quads, want 96", got)
	}
}
