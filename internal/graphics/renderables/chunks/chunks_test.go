package chunks

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	renderer "voxelcull/internal/graphics/renderer"
	"voxelcull/internal/world"
)

type passEvent struct {
	kind        string
	coord       world.ChunkCoord
	conditional bool
}

// fakeRenderPass records the frame's event stream in place of GL calls.
type fakeRenderPass struct {
	events []passEvent
}

func (f *fakeRenderPass) frameBegin(mgl32.Mat4) {
	f.events = append(f.events, passEvent{kind: "frameBegin"})
}

func (f *fakeRenderPass) queryPassBegin() {
	f.events = append(f.events, passEvent{kind: "queryPass"})
}

func (f *fakeRenderPass) queryChunk(coord world.ChunkCoord) {
	f.events = append(f.events, passEvent{kind: "query", coord: coord})
}

func (f *fakeRenderPass) drawPassBegin() {
	f.events = append(f.events, passEvent{kind: "drawPass"})
}

func (f *fakeRenderPass) drawChunk(coord world.ChunkCoord, conditional bool) {
	f.events = append(f.events, passEvent{kind: "draw", coord: coord, conditional: conditional})
}

func (f *fakeRenderPass) frameEnd() (time.Duration, bool) {
	f.events = append(f.events, passEvent{kind: "frameEnd"})
	return 2 * time.Millisecond, true
}

func (f *fakeRenderPass) dispose() {}

func (f *fakeRenderPass) count(kind string) int {
	n := 0
	for _, e := range f.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

// testStore returns two chunks close to the origin, one with geometry and
// one without exposed faces. Size 8, so both stay inside the always-keep
// distance of the frustum test.
func testStore() *world.ChunkStore {
	solid := &world.Chunk{
		Coord:     world.ChunkCoord{X: 0, Y: 0, Z: 0},
		Center:    mgl32.Vec3{1, 0, 0},
		QuadCount: 6,
	}
	empty := &world.Chunk{
		Coord:  world.ChunkCoord{X: 1, Y: 0, Z: 0},
		Center: mgl32.Vec3{3, 0, 0},
	}
	return &world.ChunkStore{Chunks: []*world.Chunk{solid, empty}, Size: 8}
}

func testCtx(occlusion bool) renderer.RenderContext {
	return renderer.RenderContext{
		ViewProj:      mgl32.Ident4(),
		OcclusionCull: occlusion,
	}
}

func TestRenderUnconditionalWhenOcclusionOff(t *testing.T) {
	fake := &fakeRenderPass{}
	c := &Chunks{store: testStore(), pass: fake}

	c.Render(testCtx(false))

	if n := fake.count("query"); n != 0 {
		t.Errorf("occlusion off issued %d bounding-box queries, want 0", n)
	}
	if n := fake.count("queryPass"); n != 0 {
		t.Errorf("occlusion off entered the query pass %d times, want 0", n)
	}
	draws := 0
	for _, e := range fake.events {
		if e.kind != "draw" {
			continue
		}
		draws++
		if e.conditional {
			t.Errorf("chunk %v drawn inside a conditional scope with occlusion off", e.coord)
		}
	}
	if draws != 2 {
		t.Errorf("got %d draws, want 2", draws)
	}
}

func TestRenderQueriesWhenOcclusionOn(t *testing.T) {
	fake := &fakeRenderPass{}
	c := &Chunks{store: testStore(), pass: fake}

	c.Render(testCtx(true))

	if n := fake.count("query"); n != 2 {
		t.Errorf("got %d bounding-box queries, want 2", n)
	}
	for _, e := range fake.events {
		if e.kind == "draw" && !e.conditional {
			t.Errorf("chunk %v drawn unconditionally with occlusion on", e.coord)
		}
	}

	// Within each band the query pass must fully precede the draw pass.
	sawDraw := false
	for _, e := range fake.events {
		switch e.kind {
		case "queryPass":
			if sawDraw {
				t.Fatal("query pass opened after a draw in the same frame")
			}
		case "draw":
			sawDraw = true
		}
	}
}

func TestRenderFrameBracketing(t *testing.T) {
	fake := &fakeRenderPass{}
	c := &Chunks{store: testStore(), pass: fake}

	c.Render(testCtx(true))

	if len(fake.events) < 2 {
		t.Fatal("no events recorded")
	}
	if fake.events[0].kind != "frameBegin" {
		t.Errorf("first event %q, want frameBegin", fake.events[0].kind)
	}
	if last := fake.events[len(fake.events)-1]; last.kind != "frameEnd" {
		t.Errorf("last event %q, want frameEnd", last.kind)
	}

	if gpu, ok := c.GPUFrameTime(); !ok || gpu != 2*time.Millisecond {
		t.Errorf("GPUFrameTime = (%v, %v), want (2ms, true)", gpu, ok)
	}
}

func TestRenderSkipsRejectedChunks(t *testing.T) {
	store := testStore()
	far := &world.Chunk{
		Coord:     world.ChunkCoord{X: 12, Y: 0, Z: 0},
		Center:    mgl32.Vec3{100, 0, 0},
		QuadCount: 6,
	}
	store.Chunks = append(store.Chunks, far)

	fake := &fakeRenderPass{}
	c := &Chunks{store: store, pass: fake}

	// Identity view-projection: clip.x = 100 > w + size, so the far chunk
	// fails the frustum test in both passes.
	c.Render(testCtx(true))

	for _, e := range fake.events {
		if (e.kind == "draw" || e.kind == "query") && e.coord == far.Coord {
			t.Errorf("rejected chunk reached the %s pass", e.kind)
		}
	}
	if c.DrawnCount() != 1 {
		t.Errorf("DrawnCount = %d, want 1 (far chunk rejected, empty chunk skipped)", c.DrawnCount())
	}
}

func TestDrawnCountExcludesEmptyChunks(t *testing.T) {
	fake := &fakeRenderPass{}
	c := &Chunks{store: testStore(), pass: fake}

	c.Render(testCtx(false))

	// Both chunks pass the frustum test, but only one carries geometry.
	if c.DrawnCount() != 1 {
		t.Errorf("DrawnCount = %d, want 1", c.DrawnCount())
	}
	if c.TotalCount() != 2 {
		t.Errorf("TotalCount = %d, want 2", c.TotalCount())
	}
}
