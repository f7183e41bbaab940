package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestDefaultBindings(t *testing.T) {
	im := NewInputManager()

	tests := []struct {
		key    glfw.Key
		action Action
	}{
		{glfw.KeyW, ActionMoveForward},
		{glfw.KeyS, ActionMoveBackward},
		{glfw.KeyA, ActionMoveLeft},
		{glfw.KeyD, ActionMoveRight},
		{glfw.KeyR, ActionMoveUp},
		{glfw.KeyF, ActionMoveDown},
		{glfw.KeyQ, ActionRollLeft},
		{glfw.KeyE, ActionRollRight},
		{glfw.KeySpace, ActionToggleOcclusion},
		{glfw.KeyTab, ActionToggleOverlay},
		{glfw.KeyEscape, ActionQuit},
	}

	for _, tt := range tests {
		im.HandleKeyEvent(tt.key, glfw.Press)
		if !im.IsActive(tt.action) {
			t.Errorf("key %v did not activate action %v", tt.key, tt.action)
		}
		im.HandleKeyEvent(tt.key, glfw.Release)
		if im.IsActive(tt.action) {
			t.Errorf("releasing key %v did not clear action %v", tt.key, tt.action)
		}
	}
}

func TestJustPressedEdge(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(ActionToggleOcclusion) {
		t.Fatal("press did not set the edge flag")
	}

	// A held key must not re-trigger after the frame boundary.
	im.PostUpdate()
	if im.JustPressed(ActionToggleOcclusion) {
		t.Error("edge flag survived PostUpdate")
	}
	if !im.IsActive(ActionToggleOcclusion) {
		t.Error("held key lost its active state")
	}

	// Repeat events while held must not set the edge flag again.
	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if im.JustPressed(ActionToggleOcclusion) {
		t.Error("repeated press while held set the edge flag")
	}

	// Release then press is a fresh edge.
	im.HandleKeyEvent(glfw.KeySpace, glfw.Release)
	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	if !im.JustPressed(ActionToggleOcclusion) {
		t.Error("release/press cycle did not set the edge flag")
	}
}

func TestAxis(t *testing.T) {
	im := NewInputManager()

	if v := im.Axis(ActionMoveBackward, ActionMoveForward); v != 0 {
		t.Errorf("idle axis = %v, want 0", v)
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if v := im.Axis(ActionMoveBackward, ActionMoveForward); v != 1 {
		t.Errorf("forward axis = %v, want 1", v)
	}

	im.HandleKeyEvent(glfw.KeyS, glfw.Press)
	if v := im.Axis(ActionMoveBackward, ActionMoveForward); v != 0 {
		t.Errorf("opposed axis = %v, want 0", v)
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if v := im.Axis(ActionMoveBackward, ActionMoveForward); v != -1 {
		t.Errorf("backward axis = %v, want -1", v)
	}
}

func TestCursorDelta(t *testing.T) {
	im := NewInputManager()

	// The very first sample is only a reference point.
	im.HandleCursorPos(100, 200)
	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Fatalf("first sample produced delta (%v, %v)", dx, dy)
	}

	im.HandleCursorPos(110, 195)
	if dx, dy := im.MouseDelta(); dx != 10 || dy != -5 {
		t.Errorf("delta = (%v, %v), want (10, -5)", dx, dy)
	}

	// Deltas accumulate across samples within a frame.
	im.HandleCursorPos(115, 195)
	if dx, _ := im.MouseDelta(); dx != 15 {
		t.Errorf("accumulated dx = %v, want 15", dx)
	}

	im.PostUpdate()
	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("delta after PostUpdate = (%v, %v), want (0, 0)", dx, dy)
	}

	// After a reset the next sample is a reference point again.
	im.ResetCursor()
	im.HandleCursorPos(500, 500)
	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("delta after reset = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestBindKeyMultipleActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyW, ActionMoveUp)

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) || !im.IsActive(ActionMoveUp) {
		t.Error("key bound to two actions did not activate both")
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	if im.IsActive(ActionCount) || im.JustPressed(Action(-1)) {
		t.Error("out-of-range action reported as active")
	}
}
