package renderer

import (
	"math"

	"github.com/achilleasa/raybench/session"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Coefficients for converting delta cursor movements to yaw/pitch
	// camera angles.
	mouseSensitivityX float32 = 0.005
	mouseSensitivityY float32 = 0.005

	// Speed multiplier while shift is held.
	boostFactor float32 = 2.0
)

// ModelViewController is a fly camera implementing the session CameraView
// collaborator. It turns key and cursor events into a view transform and
// reports every view change so the accumulation buffer can be invalidated.
type ModelViewController struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	speed float32

	movingForward  bool
	movingBackward bool
	movingLeft     bool
	movingRight    bool
	boost          bool

	lastCursorX   float64
	lastCursorY   float64
	dragging      bool
	anchorPending bool
}

func NewModelViewController() *ModelViewController {
	return &ModelViewController{speed: 1}
}

// Reset adopts a scene's initial view transform and movement speed.
func (c *ModelViewController) Reset(view mgl32.Mat4, speed float32) {
	rot := view.Mat3()

	// view = R * T(-position), so the translation column is R*(-position).
	t := view.Col(3).Vec3()
	c.position = rot.Transpose().Mul3x1(t).Mul(-1)

	// Decompose R = RotX(pitch)*RotY(yaw) via the world-space forward axis.
	forward := rot.Transpose().Mul3x1(mgl32.Vec3{0, 0, -1})
	c.pitch = -float32(math.Asin(float64(clamp(forward.Y(), -1, 1))))
	c.yaw = float32(math.Atan2(float64(forward.X()), float64(-forward.Z())))

	c.speed = speed
	c.movingForward = false
	c.movingBackward = false
	c.movingLeft = false
	c.movingRight = false
	c.dragging = false
}

// The current view transform.
func (c *ModelViewController) View() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(c.pitch).Mul4(mgl32.HomogRotate3DY(c.yaw))
	return rot.Mul4(mgl32.Translate3D(-c.position.X(), -c.position.Y(), -c.position.Z()))
}

// UpdateCamera applies held-key movement for the elapsed frame time and
// reports whether the view changed.
func (c *ModelViewController) UpdateCamera(delta float64) bool {
	var dx, dz float32
	if c.movingForward {
		dz--
	}
	if c.movingBackward {
		dz++
	}
	if c.movingLeft {
		dx--
	}
	if c.movingRight {
		dx++
	}
	if dx == 0 && dz == 0 {
		return false
	}

	step := c.speed * float32(delta)
	if c.boost {
		step *= boostFactor
	}

	// Move along the camera-space axes projected back into world space.
	rot := c.View().Mat3().Transpose()
	move := rot.Mul3x1(mgl32.Vec3{dx, 0, dz})
	c.position = c.position.Add(move.Mul(step))
	return true
}

func (c *ModelViewController) OnKey(key session.Key, action session.KeyAction) bool {
	pressed := action == session.KeyPress || action == session.KeyRepeat

	switch key {
	case session.KeyW, session.KeyUp:
		c.movingForward = pressed
	case session.KeyS, session.KeyDown:
		c.movingBackward = pressed
	case session.KeyA, session.KeyLeft:
		c.movingLeft = pressed
	case session.KeyD, session.KeyRight:
		c.movingRight = pressed
	case session.KeyLeftShift:
		c.boost = pressed
	default:
		return false
	}

	// Movement is applied on the next UpdateCamera call; the view has not
	// changed yet.
	return false
}

// OnCursorPosition rotates the view while the left button is held.
func (c *ModelViewController) OnCursorPosition(x, y float64) bool {
	if !c.dragging {
		return false
	}
	if c.anchorPending {
		c.lastCursorX = x
		c.lastCursorY = y
		c.anchorPending = false
		return false
	}

	deltaX := float32(x-c.lastCursorX) * mouseSensitivityX
	deltaY := float32(y-c.lastCursorY) * mouseSensitivityY
	c.lastCursorX = x
	c.lastCursorY = y

	if deltaX == 0 && deltaY == 0 {
		return false
	}

	c.yaw += deltaX
	c.pitch = clamp(c.pitch+deltaY, -math.Pi/2, math.Pi/2)
	return true
}

func (c *ModelViewController) OnMouseButton(button session.MouseButton, action session.KeyAction) bool {
	if button != session.MouseButtonLeft {
		return false
	}

	c.dragging = action == session.KeyPress
	c.anchorPending = c.dragging
	return false
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
