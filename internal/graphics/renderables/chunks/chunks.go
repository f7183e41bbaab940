// Package chunks renders the chunked voxel world with front-to-back
// occlusion culling: chunks are sorted by camera distance, partitioned into
// distance bands, and each band first issues bounding-box occlusion queries
// and then draws its geometry behind conditional-render scopes keyed to
// those same queries. Nearer bands are fully rasterized before a band's
// queries resolve, so they act as occluders for everything behind them.
package chunks

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelcull/internal/config"
	"voxelcull/internal/cull"
	"voxelcull/internal/graphics"
	renderer "voxelcull/internal/graphics/renderer"
	"voxelcull/internal/world"
)

// chunkGPU pairs a chunk's GPU resources: the voxel mesh, the bounding-box
// mesh and the occlusion query rebound every frame the chunk is tested.
type chunkGPU struct {
	mesh   *graphics.Mesh
	bounds *graphics.Mesh
	query  graphics.OcclusionQuery
}

// renderPass abstracts the GL work of one chunk frame, mirroring the timer
// ring's backend split so the band walk, frustum rejection and conditional
// gating are testable without a context.
type renderPass interface {
	frameBegin(viewProj mgl32.Mat4)
	queryPassBegin()
	queryChunk(coord world.ChunkCoord)
	drawPassBegin()
	drawChunk(coord world.ChunkCoord, conditional bool)
	frameEnd() (elapsed time.Duration, ok bool)
	dispose()
}

// glRenderPass is the live-context renderPass: shaders, per-chunk GPU
// resources and the frame timer ring.
type glRenderPass struct {
	drawShader  *graphics.Shader
	queryShader *graphics.Shader
	meshes      map[world.ChunkCoord]*chunkGPU
	timer       *graphics.TimerRing
}

func (p *glRenderPass) frameBegin(viewProj mgl32.Mat4) {
	p.drawShader.Use()
	p.drawShader.SetMatrix4("ViewProjection", &viewProj[0])
	p.queryShader.Use()
	p.queryShader.SetMatrix4("ViewProjection", &viewProj[0])
	p.timer.Begin()
}

// queryPassBegin sets up the bounding-box pass: both box sides must
// rasterize and nothing may land in the visible framebuffer or the depth
// buffer.
func (p *glRenderPass) queryPassBegin() {
	gl.Disable(gl.CULL_FACE)
	gl.DepthMask(false)
	gl.ColorMask(false, false, false, false)
	p.queryShader.Use()
}

func (p *glRenderPass) queryChunk(coord world.ChunkCoord) {
	g := p.meshes[coord]
	g.query.Begin()
	g.bounds.Draw()
	g.query.End()
}

func (p *glRenderPass) drawPassBegin() {
	gl.Enable(gl.CULL_FACE)
	gl.DepthMask(true)
	gl.ColorMask(true, true, true, true)
	p.drawShader.Use()
}

func (p *glRenderPass) drawChunk(coord world.ChunkCoord, conditional bool) {
	g := p.meshes[coord]
	if conditional {
		g.query.BeginConditional()
	}
	g.mesh.Draw()
	if conditional {
		g.query.EndConditional()
	}
}

func (p *glRenderPass) frameEnd() (time.Duration, bool) {
	return p.timer.End()
}

func (p *glRenderPass) dispose() {
	for _, g := range p.meshes {
		g.mesh.Delete()
		g.bounds.Delete()
		g.query.Delete()
	}
	p.meshes = nil

	if p.timer != nil {
		p.timer.Delete()
	}
	if p.drawShader != nil {
		p.drawShader.Delete()
	}
	if p.queryShader != nil {
		p.queryShader.Delete()
	}
}

// Chunks implements the occlusion-culled chunk rendering feature
type Chunks struct {
	store *world.ChunkStore
	pass  renderPass

	// Stats from the most recent frame, read by the overlay.
	lastGPUTime time.Duration
	gpuTimeOK   bool
	drawn       int
}

// NewChunks creates the renderable for a built chunk store.
func NewChunks(store *world.ChunkStore) *Chunks {
	return &Chunks{store: store}
}

// Init compiles the shaders, uploads every chunk's geometry and bounding
// box, and allocates the per-chunk occlusion queries plus the frame timer
// ring.
func (c *Chunks) Init() error {
	drawShader, err := graphics.NewShader(drawVertexShader, drawFragmentShader)
	if err != nil {
		return err
	}
	queryShader, err := graphics.NewShader(queryVertexShader, queryFragmentShader)
	if err != nil {
		return err
	}

	meshes := make(map[world.ChunkCoord]*chunkGPU, len(c.store.Chunks))
	for _, ch := range c.store.Chunks {
		meshes[ch.Coord] = &chunkGPU{
			mesh:   graphics.NewMesh(ch.Vertices, ch.Indices, 3, 3),
			bounds: graphics.NewMesh(ch.BoundsVertices, ch.BoundsIndices, 3),
			query:  graphics.NewOcclusionQuery(),
		}
	}

	c.pass = &glRenderPass{
		drawShader:  drawShader,
		queryShader: queryShader,
		meshes:      meshes,
		timer:       graphics.NewTimerRing(config.GetQueryRingDepth()),
	}
	return nil
}

// Render runs one scheduling pass over all chunks: sort, band, reject, then
// per band the occlusion query pass followed by the (optionally conditional)
// draw pass.
func (c *Chunks) Render(ctx renderer.RenderContext) {
	chunkList := c.store.Chunks
	size := float32(c.store.Size)

	cull.SortByDistance(chunkList, ctx.Eye)

	c.drawn = 0
	c.pass.frameBegin(ctx.ViewProj)

	for _, slice := range cull.Slices(chunkList, ctx.Eye, size) {
		if len(slice) == 0 {
			continue
		}

		if ctx.OcclusionCull {
			c.pass.queryPassBegin()
			for _, ch := range slice {
				if cull.Rejected(ch.Center, ctx.Eye, ctx.ViewProj, size) {
					continue
				}
				c.pass.queryChunk(ch.Coord)
			}
		}

		c.pass.drawPassBegin()
		for _, ch := range slice {
			if cull.Rejected(ch.Center, ctx.Eye, ctx.ViewProj, size) {
				continue
			}
			c.pass.drawChunk(ch.Coord, ctx.OcclusionCull)
			// Chunks without exposed faces issue no draw call and do not
			// count as submitted.
			if ch.QuadCount > 0 {
				c.drawn++
			}
		}
	}

	c.lastGPUTime, c.gpuTimeOK = c.pass.frameEnd()
}

// GPUFrameTime returns the elapsed GPU time of the chunk pass measured a
// few frames ago; ok is false until the timer ring has warmed up.
func (c *Chunks) GPUFrameTime() (time.Duration, bool) {
	return c.lastGPUTime, c.gpuTimeOK
}

// DrawnCount returns how many chunks submitted geometry in the last frame
// (after frustum rejection and empty-chunk skipping, before GPU-side
// occlusion).
func (c *Chunks) DrawnCount() int {
	return c.drawn
}

// TotalCount returns the number of chunks in the store.
func (c *Chunks) TotalCount() int {
	return len(c.store.Chunks)
}

// SetViewport is a no-op; projection comes in through the render context.
func (c *Chunks) SetViewport(width, height int) {}

// Dispose releases every chunk's GPU resources, the queries, the timer
// ring and both shaders.
func (c *Chunks) Dispose() {
	if c.pass != nil {
		c.pass.dispose()
	}
}
