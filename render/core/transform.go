package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TRS composes translation, rotation and scale into a single matrix.
func TRS(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotate := rotation.Mat4()
	scaleMat := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translate.Mul4(rotate).Mul4(scaleMat)
}
