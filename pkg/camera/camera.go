// Package camera implements a free-fly camera driven by yaw and pitch angles.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Eye     mgl32.Vec3
	Target  mgl32.Vec3
	WorldUp mgl32.Vec3
	Front   mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3

	// Yaw and Pitch are in radians. Yaw -π/2 with Pitch 0 looks down -Z.
	Yaw   float32
	Pitch float32

	FOV    float32 // vertical, radians
	Aspect float32
	Near   float32
	Far    float32

	// Smoothing is the SLERP factor applied when moving the orientation
	// towards the one given by Yaw and Pitch; 1 applies it immediately.
	Smoothing   float32
	Orientation mgl32.Quat

	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// New returns a camera at eye looking at target.
func New(eye, target mgl32.Vec3) *Camera {
	c := &Camera{
		Eye:         eye,
		Target:      target,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		FOV:         mgl32.DegToRad(45),
		Aspect:      1024.0 / 768.0,
		Near:        0.2,
		Far:         100,
		Smoothing:   0.2,
		Orientation: mgl32.QuatIdent(),
	}
	front := target.Sub(eye)
	if front.Len() > 0 {
		front = front.Normalize()
		c.Yaw = float32(math.Atan2(float64(front.Z()), float64(front.X())))
		c.Pitch = float32(math.Asin(float64(front.Y())))
	} else {
		c.Yaw = -math.Pi / 2
	}
	c.CalculateCameraVectors()
	c.Orientation = orientation(c.Yaw, c.Pitch)
	c.View = c.Orientation.Mat4().Mul4(mgl32.Translate3D(-eye.X(), -eye.Y(), -eye.Z()))
	c.Projection = mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	return c
}

// CalculateCameraVectors derives Front, Right and Up from Yaw and Pitch.
func (c *Camera) CalculateCameraVectors() {
	yaw, pitch := float64(c.Yaw), float64(c.Pitch)
	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// LookAtCamera computes View from Eye, Target and WorldUp, and Projection.
func (c *Camera) LookAtCamera() {
	c.View = mgl32.LookAtV(c.Eye, c.Target, c.WorldUp)
	c.Projection = mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// QuaternionCamera computes View from the orientation quaternion given by
// Yaw and Pitch, smoothed by Smoothing, and refreshes the camera vectors and
// Projection from it.
func (c *Camera) QuaternionCamera() {
	target := orientation(c.Yaw, c.Pitch)
	t := c.Smoothing
	if t <= 0 || t > 1 {
		t = 1
	}
	c.Orientation = mgl32.QuatSlerp(c.Orientation, target, t).Normalize()

	c.View = c.Orientation.Mat4().Mul4(mgl32.Translate3D(-c.Eye.X(), -c.Eye.Y(), -c.Eye.Z()))

	c.Right = mgl32.Vec3{c.View.At(0, 0), c.View.At(0, 1), c.View.At(0, 2)}
	c.Up = mgl32.Vec3{c.View.At(1, 0), c.View.At(1, 1), c.View.At(1, 2)}
	c.Front = mgl32.Vec3{-c.View.At(2, 0), -c.View.At(2, 1), -c.View.At(2, 2)}

	c.Projection = mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// orientation is the view rotation for a camera with the given angles: pitch
// about X applied after yaw about Y, offset so that yaw -π/2 is identity.
func orientation(yaw, pitch float32) mgl32.Quat {
	qPitch := mgl32.QuatRotate(-pitch, mgl32.Vec3{1, 0, 0})
	qYaw := mgl32.QuatRotate(yaw+math.Pi/2, mgl32.Vec3{0, 1, 0})
	return qPitch.Mul(qYaw)
}
