package points

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Config is the per-object point cloud configuration.
type Config struct {
	Draw bool `yaml:"draw"`

	FaceCamera     bool       `yaml:"face_camera"`
	NormalOffset   float32    `yaml:"normal_offset"`
	GlobalScale    float32    `yaml:"global_scale"`
	Scale          mgl32.Vec3 `yaml:"scale,flow"`
	RotationOffset mgl32.Vec3 `yaml:"rotation_offset,flow"` // Euler angles, degrees

	Instance bool `yaml:"instance"`
}

func DefaultConfig() Config {
	return Config{
		Draw:        true,
		FaceCamera:  true,
		GlobalScale: 0.1,
		Scale:       mgl32.Vec3{1, 1, 1},
		Instance:    true,
	}
}

// ScaleVector is the scale applied to every point.
func (c Config) ScaleVector() mgl32.Vec3 {
	return c.Scale.Mul(c.GlobalScale)
}

// OffsetRotation converts RotationOffset to a quaternion.
func (c Config) OffsetRotation() mgl32.Quat {
	return EulerToQuat(c.RotationOffset)
}
