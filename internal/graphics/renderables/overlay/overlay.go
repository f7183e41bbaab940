// Package overlay draws the frame-stats readout: GPU time from the timer
// query ring, FPS, chunk submission counts and the occlusion toggle state.
package overlay

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcull/internal/graphics"
	renderer "voxelcull/internal/graphics/renderer"
)

// Overlay implements the stats overlay feature
type Overlay struct {
	text    *graphics.TextRenderer
	width   int
	height  int
	visible bool

	// Fed by the game loop after each frame
	gpuTime   time.Duration
	gpuTimeOK bool
	fps       int
	drawn     int
	total     int
	occlusion bool
	cpu       string
}

// NewOverlay creates the overlay renderable for the given viewport size.
func NewOverlay(width, height int) *Overlay {
	return &Overlay{width: width, height: height, visible: true}
}

// Init bakes the font atlas and compiles the text shader.
func (o *Overlay) Init() error {
	var err error
	o.text, err = graphics.NewTextRenderer(16, o.width, o.height)
	return err
}

// Render draws the stats block in the top-left corner.
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !o.visible {
		return
	}
	o.text.RenderLines(o.statsLines(), 8, 20, 18, mgl32.Vec3{1, 1, 1})
}

// statsLines formats the current stats; the CPU breakdown line only appears
// once the loop has fed a profile.
func (o *Overlay) statsLines() []string {
	gpuLine := "gpu: warming up"
	if o.gpuTimeOK {
		gpuLine = fmt.Sprintf("gpu: %.2f ms/frame", float64(o.gpuTime.Nanoseconds())/1e6)
	}
	occLine := "occlusion culling: off (space)"
	if o.occlusion {
		occLine = "occlusion culling: on (space)"
	}

	lines := []string{
		gpuLine,
		fmt.Sprintf("fps: %d", o.fps),
		fmt.Sprintf("chunks: %d/%d submitted", o.drawn, o.total),
		occLine,
	}
	if o.cpu != "" {
		lines = append(lines, "cpu: "+o.cpu)
	}
	return lines
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

// SetGPUFrameTime feeds the latest timer ring result.
func (o *Overlay) SetGPUFrameTime(d time.Duration) {
	o.gpuTime = d
	o.gpuTimeOK = true
}

// SetFPS feeds the frames-per-second counter.
func (o *Overlay) SetFPS(fps int) {
	o.fps = fps
}

// SetChunkCounts feeds the submitted/total chunk counts.
func (o *Overlay) SetChunkCounts(drawn, total int) {
	o.drawn = drawn
	o.total = total
}

// SetOcclusion feeds the occlusion toggle state.
func (o *Overlay) SetOcclusion(on bool) {
	o.occlusion = on
}

// SetCPUProfile feeds the formatted per-frame CPU breakdown.
func (o *Overlay) SetCPUProfile(summary string) {
	o.cpu = summary
}

// SetViewport updates the pixel projection after a resize.
func (o *Overlay) SetViewport(width, height int) {
	o.width, o.height = width, height
	if o.text != nil {
		o.text.SetViewport(width, height)
	}
}

// Dispose releases the text renderer.
func (o *Overlay) Dispose() {
	if o.text != nil {
		o.text.Dispose()
	}
}
