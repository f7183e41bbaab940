package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	renderer "voxelcull/internal/graphics/renderer"
	"voxelcull/internal/input"
)

func setupInputHandlers(window *glfw.Window, r *renderer.Renderer, im *input.InputManager) {
	// Mouse position callback
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})

	// Keyboard callback
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		r.UpdateViewport(winW, winH)
	})

	// Window size callback
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
	})

	// Re-establish the cursor reference when focus returns, otherwise the
	// first sample after refocus registers as a huge camera jump.
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			im.ResetCursor()
		}
	})
}
