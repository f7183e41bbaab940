package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelcull/internal/graphics"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	occlusionCull bool
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// We draw 3d geometry, so depth testing stays on for the whole frame.
	// Face culling toggles per pass: the occlusion pass needs both sides
	// of the bounding boxes.
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	renderer := &Renderer{
		renderables:   rs,
		camera:        graphics.NewCamera(width, height),
		occlusionCull: true,
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render executes one frame over all renderables
func (r *Renderer) Render(dt float64) {
	// Sky blue clear
	gl.ClearColor(0.5, 0.8, 1.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := r.camera.View()
	proj := r.camera.Projection()

	ctx := RenderContext{
		View:          view,
		Proj:          proj,
		ViewProj:      proj.Mul4(view),
		Eye:           r.camera.Position,
		DT:            dt,
		OcclusionCull: r.occlusionCull,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Camera returns the camera instance
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// OcclusionEnabled reports whether occlusion culling is active.
func (r *Renderer) OcclusionEnabled() bool {
	return r.occlusionCull
}

// ToggleOcclusion flips occlusion culling on or off.
func (r *Renderer) ToggleOcclusion() {
	r.occlusionCull = !r.occlusionCull
}

// UpdateViewport updates the camera and all renderables after a resize
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
