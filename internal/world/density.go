package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DensityFunc is a scalar field over world space. A cell is solid when the
// field value at its position is strictly below the solid threshold.
type DensityFunc func(p mgl32.Vec3) float32

// CaveField returns the default density field: octave value noise sampled at
// a tenth of the world scale with a fixed offset away from the lattice
// origin, remapped to [-1,1] so a threshold of zero carves out roughly half
// the volume.
func CaveField(seed int64) DensityFunc {
	return func(p mgl32.Vec3) float32 {
		x := float64(p.X()+100) * 0.1
		y := float64(p.Y()+100) * 0.1
		z := float64(p.Z()+100) * 0.1
		n := octaveNoise3D(x, y, z, seed, 3, 0.5, 2.0) // [0,1]
		return float32(2*n - 1)
	}
}
