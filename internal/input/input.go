package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRollLeft
	ActionRollRight
	ActionToggleOcclusion
	ActionToggleOverlay
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and accumulates
// keyboard and mouse state between frames. Callbacks write into it; the
// game loop and camera read from it once per frame, so nothing else needs
// ambient input globals.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed flags for edge detection (reset each frame)
	justPressed [ActionCount]bool

	// Cursor tracking for mouse-look deltas
	firstCursor      bool
	cursorX, cursorY float64
	deltaX, deltaY   float64
}

// NewInputManager creates an InputManager with the default key bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
		firstCursor:  true,
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyR, ActionMoveUp)
	im.BindKey(glfw.KeyF, ActionMoveDown)
	im.BindKey(glfw.KeyQ, ActionRollLeft)
	im.BindKey(glfw.KeyE, ActionRollRight)
	im.BindKey(glfw.KeySpace, ActionToggleOcclusion)
	im.BindKey(glfw.KeyTab, ActionToggleOverlay)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action. Multiple keys can be
// bound to the same action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent updates action state from a glfw key callback.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, a := range im.keyToActions[key] {
		switch action {
		case glfw.Press:
			if !im.currentState[a] {
				im.justPressed[a] = true
			}
			im.currentState[a] = true
		case glfw.Release:
			im.currentState[a] = false
		}
	}
}

// HandleCursorPos accumulates the mouse travel since the previous frame.
// The very first sample only establishes the reference position, so a
// window gaining cursor focus does not produce a huge spurious delta.
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.firstCursor {
		im.cursorX, im.cursorY = x, y
		im.firstCursor = false
		return
	}
	im.deltaX += x - im.cursorX
	im.deltaY += y - im.cursorY
	im.cursorX, im.cursorY = x, y
}

// ResetCursor discards the cursor reference so the next sample does not
// register as travel (used when the cursor is re-captured).
func (im *InputManager) ResetCursor() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.firstCursor = true
	im.deltaX, im.deltaY = 0, 0
}

// IsActive reports whether the action's key is currently held.
func (im *InputManager) IsActive(a Action) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if a < 0 || a >= ActionCount {
		return false
	}
	return im.currentState[a]
}

// JustPressed reports whether the action was pressed since the last
// PostUpdate.
func (im *InputManager) JustPressed(a Action) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if a < 0 || a >= ActionCount {
		return false
	}
	return im.justPressed[a]
}

// Axis collapses an opposing action pair into -1, 0 or +1.
func (im *InputManager) Axis(negative, positive Action) float32 {
	im.mu.RLock()
	defer im.mu.RUnlock()
	v := float32(0)
	if im.currentState[positive] {
		v++
	}
	if im.currentState[negative] {
		v--
	}
	return v
}

// MouseDelta returns the cursor travel accumulated since the last
// PostUpdate, in pixels.
func (im *InputManager) MouseDelta() (dx, dy float32) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return float32(im.deltaX), float32(im.deltaY)
}

// PostUpdate clears edge flags and the accumulated mouse delta. Call once
// at the end of every frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range im.justPressed {
		im.justPressed[i] = false
	}
	im.deltaX, im.deltaY = 0, 0
}
