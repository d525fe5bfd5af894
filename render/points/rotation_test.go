package points

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-4

func identity() mgl32.Mat4 {
	return mgl32.Ident4()
}

func assertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], eps, msgAndArgs...)
	}
}

func assertNoNaN(t *testing.T, m mgl32.Mat4) {
	t.Helper()
	for i, v := range m {
		assert.False(t, v != v, "element %d is NaN in %v", i, m)
	}
}

func TestLookRotation_Axes(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	forward := mgl32.Vec3{0, 0, 1}

	tests := []struct {
		name string
		dir  mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0, 1}},
		{"right", mgl32.Vec3{1, 0, 0}},
		{"back", mgl32.Vec3{0, 0, -1}},
		{"diagonal", mgl32.Vec3{1, 1, 1}},
		{"unnormalized", mgl32.Vec3{0, 0, 5}},
		{"straight up", mgl32.Vec3{0, 3, 0}},
		{"straight down", mgl32.Vec3{0, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := LookRotation(tt.dir, up)
			assertVec3InDelta(t, tt.dir.Normalize(), q.Rotate(forward))
		})
	}
}

func TestLookRotation_KeepsUpright(t *testing.T) {
	q := LookRotation(mgl32.Vec3{1, 0, 1}, mgl32.Vec3{0, 1, 0})
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, q.Rotate(mgl32.Vec3{0, 1, 0}))
}

func TestLookRotation_ZeroForwardIsIdentity(t *testing.T) {
	q := LookRotation(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, mgl32.QuatIdent(), q)
}

func TestEulerToQuat(t *testing.T) {
	forward := mgl32.Vec3{0, 0, 1}

	assert.True(t, EulerToQuat(mgl32.Vec3{}).ApproxEqual(mgl32.QuatIdent()))
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, EulerToQuat(mgl32.Vec3{0, 90, 0}).Rotate(forward))
	assertVec3InDelta(t, mgl32.Vec3{0, -1, 0}, EulerToQuat(mgl32.Vec3{90, 0, 0}).Rotate(forward))

	// X is applied before Y
	assertVec3InDelta(t, mgl32.Vec3{0, -1, 0}, EulerToQuat(mgl32.Vec3{90, 90, 0}).Rotate(forward))
	// Z is applied before X
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, EulerToQuat(mgl32.Vec3{90, 0, 90}).Rotate(mgl32.Vec3{1, 0, 0}))
}
