package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the up axis used by cameras and billboard look rotations.
var WorldUp = mgl32.Vec3{0, 1, 0}

type Camera struct {
	Name     string
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Fov      float32 // degrees
	Near     float32
	Far      float32
}

func NewCamera(name string) *Camera {
	return &Camera{
		Name:     name,
		Position: mgl32.Vec3{0, 2, 10},
		Fov:      60,
		Near:     0.1,
		Far:      1000,
	}
}

func (c *Camera) GetForward() mgl32.Vec3 {
	// Y-up, yaw 0 looks down -Z
	return mgl32.Vec3{
		float32(math.Cos(float64(c.Pitch)) * math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		float32(-math.Cos(float64(c.Pitch)) * math.Cos(float64(c.Yaw))),
	}
}

func (c *Camera) GetRight() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Cos(float64(c.Yaw))),
		0,
		float32(math.Sin(float64(c.Yaw))),
	}
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	eye := c.Position
	target := eye.Add(c.GetForward())
	return mgl32.LookAtV(eye, target, WorldUp)
}

func (c *Camera) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1.0
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// LookAt points the camera at target by setting yaw and pitch.
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < 1e-6 {
		return
	}
	dir = dir.Normalize()
	c.Pitch = float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1))))
	c.Yaw = float32(math.Atan2(float64(dir.X()), float64(-dir.Z())))
}
