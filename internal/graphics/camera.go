package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelcull/internal/input"
)

// Camera is a free-fly camera: a world position plus an orientation matrix
// integrated once per frame from the accumulated input sample. Mouse travel
// yaws/pitches around the camera's own up/right axes and Q/E rolls around
// its forward axis, so there is no fixed world-up.
type Camera struct {
	Position mgl32.Vec3
	Rotation mgl32.Mat4

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	MoveSpeed   float32 // world units per second
	RollSpeed   float32 // degrees per second
	Sensitivity float32 // degrees per pixel of mouse travel
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Rotation:    mgl32.Ident4(),
		AspectRatio: float32(width) / float32(height),
		FOV:         90.0,
		NearPlane:   0.1,
		FarPlane:    200.0,
		MoveSpeed:   10.0,
		RollSpeed:   180.0,
		Sensitivity: 0.2,
	}
}

// Update integrates one frame of movement and rotation from the input
// manager's accumulated state.
func (c *Camera) Update(dt float64, im *input.InputManager) {
	// Local axes come from the transposed orientation
	r3 := c.Rotation.Mat3().Transpose()
	up := r3.Mul3x1(mgl32.Vec3{0, 1, 0})
	right := r3.Mul3x1(mgl32.Vec3{1, 0, 0})
	forward := r3.Mul3x1(mgl32.Vec3{0, 0, -1})

	dx, dy := im.MouseDelta()
	c.Rotation = c.Rotation.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(c.Sensitivity*dx), up))
	c.Rotation = c.Rotation.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(c.Sensitivity*dy), right))

	roll := im.Axis(input.ActionRollRight, input.ActionRollLeft)
	if roll != 0 {
		angle := mgl32.DegToRad(c.RollSpeed * float32(dt) * roll)
		c.Rotation = c.Rotation.Mul4(mgl32.HomogRotate3D(angle, forward))
	}

	step := c.MoveSpeed * float32(dt)
	c.Position = c.Position.Add(forward.Mul(step * im.Axis(input.ActionMoveBackward, input.ActionMoveForward)))
	c.Position = c.Position.Add(right.Mul(step * im.Axis(input.ActionMoveLeft, input.ActionMoveRight)))
	c.Position = c.Position.Add(up.Mul(step * im.Axis(input.ActionMoveDown, input.ActionMoveUp)))
}

// View returns the view matrix: orientation times the inverse translation.
func (c *Camera) View() mgl32.Mat4 {
	return c.Rotation.Mul4(mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection returns projection times view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// SetViewport updates the aspect ratio after a resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}
