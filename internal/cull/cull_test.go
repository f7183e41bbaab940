package cull

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcull/internal/world"
)

func chunkAt(x, y, z float32) *world.Chunk {
	return &world.Chunk{Center: mgl32.Vec3{x, y, z}}
}

func TestSortByDistance(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 3}
	chunks := []*world.Chunk{
		chunkAt(100, 0, 0),
		chunkAt(1, 2, 4),
		chunkAt(-50, 20, 3),
		chunkAt(1, 2, 3),
		chunkAt(0, 0, 0),
	}

	SortByDistance(chunks, eye)

	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1].Center.Sub(eye).Len()
		cur := chunks[i].Center.Sub(eye).Len()
		if cur < prev {
			t.Fatalf("order violated at %d: %v after %v", i, cur, prev)
		}
	}
	if chunks[0].Center != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("nearest chunk should sort first, got %v", chunks[0].Center)
	}
}

func TestSlicesPartition(t *testing.T) {
	eye := mgl32.Vec3{}
	const chunkSize = 10

	// Distances 5, 8, 25, 29, 45; band limits are 10, 30, 50, ...
	chunks := []*world.Chunk{
		chunkAt(5, 0, 0),
		chunkAt(8, 0, 0),
		chunkAt(25, 0, 0),
		chunkAt(0, 29, 0),
		chunkAt(0, 0, 45),
	}
	SortByDistance(chunks, eye)

	bands := Slices(chunks, eye, chunkSize)
	if len(bands) != 3 {
		t.Fatalf("got %d bands, want 3", len(bands))
	}
	if len(bands[0]) != 2 || len(bands[1]) != 2 || len(bands[2]) != 1 {
		t.Fatalf("band sizes %d/%d/%d, want 2/2/1", len(bands[0]), len(bands[1]), len(bands[2]))
	}

	// Concatenating the bands must reproduce the input exactly.
	i := 0
	for _, band := range bands {
		for _, c := range band {
			if c != chunks[i] {
				t.Fatalf("band concatenation diverges at %d", i)
			}
			i++
		}
	}
	if i != len(chunks) {
		t.Fatalf("bands cover %d chunks, want %d", i, len(chunks))
	}

	// Every chunk must respect its band's distance window.
	maxDist := float32(chunkSize)
	minDist := float32(0)
	for b, band := range bands {
		for _, c := range band {
			d := c.Center.Sub(eye).Len()
			if d < minDist || d >= maxDist {
				t.Errorf("band %d chunk at distance %v outside [%v, %v)", b, d, minDist, maxDist)
			}
		}
		minDist = maxDist
		maxDist += 2 * chunkSize
	}
}

func TestSlicesEmptyLeadingBands(t *testing.T) {
	eye := mgl32.Vec3{}
	chunks := []*world.Chunk{chunkAt(35, 0, 0)}

	// Limits 10, 30, 50: the only chunk lands in the third band.
	bands := Slices(chunks, eye, 10)
	if len(bands) != 3 {
		t.Fatalf("got %d bands, want 3", len(bands))
	}
	if len(bands[0]) != 0 || len(bands[1]) != 0 {
		t.Errorf("leading bands not empty: %d/%d", len(bands[0]), len(bands[1]))
	}
	if len(bands[2]) != 1 {
		t.Errorf("third band has %d chunks, want 1", len(bands[2]))
	}
}

func TestSlicesEmptyInput(t *testing.T) {
	if bands := Slices(nil, mgl32.Vec3{}, 10); len(bands) != 0 {
		t.Errorf("empty input produced %d bands", len(bands))
	}
}

func TestRejected(t *testing.T) {
	eye := mgl32.Vec3{}
	// Looking down -Z from the origin.
	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1.5, 0.1, 200)
	viewProj := proj.Mul4(view)
	const chunkSize = 10

	tests := []struct {
		name   string
		center mgl32.Vec3
		want   bool
	}{
		{"chunk near the eye always kept", mgl32.Vec3{5, 5, 5}, false},
		{"chunk straight ahead kept", mgl32.Vec3{0, 0, -100}, false},
		{"chunk behind the camera rejected", mgl32.Vec3{0, 0, 100}, true},
		{"chunk far off to the side rejected", mgl32.Vec3{500, 0, -20}, true},
		{"near chunk kept even behind the camera", mgl32.Vec3{0, 0, 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rejected(tt.center, eye, viewProj, chunkSize); got != tt.want {
				t.Errorf("Rejected(%v) = %v, want %v", tt.center, got, tt.want)
			}
		})
	}
}
