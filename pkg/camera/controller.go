package camera

import "math"

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// maxPitch keeps the camera short of looking straight up or down, where the
// right vector degenerates.
const maxPitch = 89 * math.Pi / 180

// Controller moves a Camera from keyboard and mouse input.
type Controller struct {
	Camera *Camera
	// Speed is in world units per second.
	Speed float32
	// Sensitivity is in radians per pixel of cursor travel.
	Sensitivity float32
}

func NewController(c *Camera) *Controller {
	return &Controller{Camera: c, Speed: 5, Sensitivity: 0.005}
}

func (ctl *Controller) Move(d Direction, dt float32) {
	c := ctl.Camera
	step := ctl.Speed * dt
	switch d {
	case Forward:
		c.Eye = c.Eye.Add(c.Front.Mul(step))
	case Backward:
		c.Eye = c.Eye.Sub(c.Front.Mul(step))
	case Left:
		c.Eye = c.Eye.Sub(c.Right.Mul(step))
	case Right:
		c.Eye = c.Eye.Add(c.Right.Mul(step))
	case Up:
		c.Eye = c.Eye.Add(c.WorldUp.Mul(step))
	case Down:
		c.Eye = c.Eye.Sub(c.WorldUp.Mul(step))
	}
}

// Look turns the camera by a cursor offset from the window centre; dy is
// positive when the cursor moved up.
func (ctl *Controller) Look(dx, dy float64) {
	c := ctl.Camera
	c.Yaw += ctl.Sensitivity * float32(dx)
	c.Pitch += ctl.Sensitivity * float32(dy)
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.CalculateCameraVectors()
}
