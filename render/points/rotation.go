package points

import (
	"github.com/go-gl/mathgl/mgl32"
)

const degenerateLength = 1e-6

// EulerToQuat converts Euler angles in degrees to a rotation that applies
// Z first, then X, then Y.
func EulerToQuat(euler mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(euler.X()), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(euler.Y()), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(euler.Z()), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// LookRotation returns the rotation whose +Z axis points along forward and
// whose +Y axis is as close to up as possible.
// A zero-length forward yields the identity rotation.
func LookRotation(forward, up mgl32.Vec3) mgl32.Quat {
	if forward.Len() < degenerateLength {
		return mgl32.QuatIdent()
	}
	f := forward.Normalize()

	right := up.Cross(f)
	if right.Len() < degenerateLength {
		// forward is parallel to up
		return mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, 1}, f)
	}
	right = right.Normalize()
	u := f.Cross(right)

	basis := mgl32.Mat3FromCols(right, u, f)
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
}

// safeNormalize returns the unit vector of v, or the zero vector when v has
// no usable direction.
func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() < degenerateLength {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}
