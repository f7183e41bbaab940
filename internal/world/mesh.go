package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Naive voxel meshing: every solid cell emits one quad per face whose
// neighbor cell is not solid. No greedy merging; the point is legibility,
// not minimal vertex counts.

// faceDirs holds, per face, the outward normal (also the neighbor offset)
// and the four quad corners relative to the cell center (scaled by 0.5).
// Corner order matches the quad index pattern below so the triangles wind
// outward consistently.
var faceDirs = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, 1, 1}, {1, -1, 1}, {1, 1, -1}, {1, -1, -1}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{1, 1, 1}, {1, 1, -1}, {-1, 1, 1}, {-1, 1, -1}}},
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{1, 1, 1}, {-1, 1, 1}, {1, -1, 1}, {-1, -1, 1}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{1, -1, 1}, {-1, -1, 1}, {1, -1, -1}, {-1, -1, -1}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{1, 1, -1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, -1}}},
}

// buildChunkMesh walks the size^3 cells starting at offset and emits one
// quad (4 interleaved position+normal vertices) per exposed face. Returns
// the vertex data, triangle indices and the number of quads. A fully
// buried or fully empty region legally yields empty slices.
func buildChunkMesh(offset mgl32.Vec3, size int, threshold float32, field DensityFunc) ([]float32, []uint32, int) {
	var verts []float32
	quads := 0

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				pos := offset.Add(mgl32.Vec3{float32(x), float32(y), float32(z)})
				if field(pos) >= threshold {
					continue
				}
				for _, f := range faceDirs {
					if field(pos.Add(f.normal)) < threshold {
						// buried face, neighbor is solid too
						continue
					}
					for _, corner := range f.corners {
						p := pos.Add(corner.Mul(0.5))
						verts = append(verts,
							p.X(), p.Y(), p.Z(),
							f.normal.X(), f.normal.Y(), f.normal.Z())
					}
					quads++
				}
			}
		}
	}

	return verts, quadIndices(quads), quads
}

// quadIndices triangulates n quads with the fixed pattern
// {4q, 4q+1, 4q+2, 4q+2, 4q+1, 4q+3}.
func quadIndices(n int) []uint32 {
	if n == 0 {
		return nil
	}
	idx := make([]uint32, 0, 6*n)
	for q := 0; q < n; q++ {
		base := uint32(4 * q)
		idx = append(idx, base, base+1, base+2, base+2, base+1, base+3)
	}
	return idx
}

// boundsFaces selects, per face and corner, whether to take the box minimum
// or maximum on each axis (false = min, true = max). Order mirrors
// faceDirs: +Z is face 2 there but the box face order is independent since
// bounds carry no normals.
var boundsFaces = [6][4][3]bool{
	{{true, true, true}, {false, true, true}, {true, false, true}, {false, false, true}},    // +Z
	{{true, true, true}, {true, false, true}, {true, true, false}, {true, false, false}},    // +X
	{{true, true, true}, {true, true, false}, {false, true, true}, {false, true, false}},    // +Y
	{{true, true, false}, {true, false, false}, {false, true, false}, {false, false, false}}, // -Z
	{{false, true, true}, {false, true, false}, {false, false, true}, {false, false, false}}, // -X
	{{true, false, true}, {false, false, true}, {true, false, false}, {false, false, false}}, // -Y
}

// buildBoundsMesh emits the 12-triangle cube that encloses every cell of a
// chunk starting at offset: cells occupy offset-0.5 .. offset+size-0.5 on
// each axis. Position-only vertices; the occlusion pass needs nothing else.
func buildBoundsMesh(offset mgl32.Vec3, size float32) ([]float32, []uint32) {
	min := offset.Sub(mgl32.Vec3{0.5, 0.5, 0.5})
	max := offset.Add(mgl32.Vec3{size - 0.5, size - 0.5, size - 0.5})

	verts := make([]float32, 0, 6*4*3)
	for _, face := range boundsFaces {
		for _, corner := range face {
			p := min
			if corner[0] {
				p[0] = max[0]
			}
			if corner[1] {
				p[1] = max[1]
			}
			if corner[2] {
				p[2] = max[2]
			}
			verts = append(verts, p.X(), p.Y(), p.Z())
		}
	}
	return verts, quadIndices(6)
}
