package main

import (
	"log"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelcull/internal/game"
	"voxelcull/internal/graphics/renderables/chunks"
	"voxelcull/internal/graphics/renderables/overlay"
	renderer "voxelcull/internal/graphics/renderer"
	"voxelcull/internal/input"
	"voxelcull/internal/profiling"
)

// GameLoop manages the main game loop state
type GameLoop struct {
	window          *glfw.Window
	renderer        *renderer.Renderer
	chunksRenderer  *chunks.Chunks
	overlayRenderer *overlay.Overlay
	inputManager    *input.InputManager

	fpsLimiter *game.FPSLimiter

	// Timing
	frames           int
	fps              int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewGameLoop creates a new game loop with all components
func NewGameLoop(window *glfw.Window, r *renderer.Renderer, c *chunks.Chunks, o *overlay.Overlay, im *input.InputManager) *GameLoop {
	return &GameLoop{
		window:           window,
		renderer:         r,
		chunksRenderer:   c,
		overlayRenderer:  o,
		inputManager:     im,
		fpsLimiter:       game.NewFPSLimiter(),
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// Run drives frames until the window closes or a GL error aborts the loop.
func (gl *GameLoop) Run() {
	for !gl.window.ShouldClose() {
		if !gl.tick() {
			return
		}
	}
}

func (gl *GameLoop) tick() bool {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	gl.handleInputActions()

	func() {
		defer profiling.Track("camera.Update")()
		gl.renderer.Camera().Update(dt, gl.inputManager)
	}()

	func() { defer profiling.Track("renderer.Render")(); gl.renderer.Render(dt) }()
	gl.updateStats()

	func() { defer profiling.Track("glfw.SwapBuffers")(); gl.window.SwapBuffers() }()

	if !checkGLError() {
		return false
	}

	// Clear edge flags at end of frame
	gl.inputManager.PostUpdate()

	gl.fpsLimiter.Wait()

	return true
}

func (gl *GameLoop) handleInputActions() {
	if gl.inputManager.JustPressed(input.ActionQuit) {
		gl.window.SetShouldClose(true)
	}
	if gl.inputManager.JustPressed(input.ActionToggleOcclusion) {
		gl.renderer.ToggleOcclusion()
	}
	if gl.inputManager.JustPressed(input.ActionToggleOverlay) {
		gl.overlayRenderer.Toggle()
	}
}

// updateStats pushes the frame's numbers to the overlay for the next draw.
func (gl *GameLoop) updateStats() {
	gl.frames++
	if time.Since(gl.lastFPSCheckTime) >= time.Second {
		gl.fps = gl.frames
		gl.frames = 0
		gl.lastFPSCheckTime = time.Now()
	}

	if gpuTime, ok := gl.chunksRenderer.GPUFrameTime(); ok {
		gl.overlayRenderer.SetGPUFrameTime(gpuTime)
	}
	gl.overlayRenderer.SetFPS(gl.fps)
	gl.overlayRenderer.SetChunkCounts(gl.chunksRenderer.DrawnCount(), gl.chunksRenderer.TotalCount())
	gl.overlayRenderer.SetOcclusion(gl.renderer.OcclusionEnabled())
	gl.overlayRenderer.SetCPUProfile(profiling.TopN(3))
}

// checkGLError drains the GL error queue once per frame and stops the loop
// on the first error so it is not silently repeated every frame after.
func checkGLError() bool {
	ok := true
	for {
		errCode := gl.GetError()
		if errCode == gl.NO_ERROR {
			return ok
		}
		log.Printf("gl error: 0x%04x", errCode)
		ok = false
	}
}
