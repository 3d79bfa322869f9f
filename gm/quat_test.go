package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVec3InDelta(t *testing.T, expected, actual Vec3) {
	t.Helper()

	require.InDelta(t, expected.X, actual.X, 1e-9)
	require.InDelta(t, expected.Y, actual.Y, 1e-9)
	require.InDelta(t, expected.Z, actual.Z, 1e-9)
}

func TestQuat_Identity(t *testing.T) {
	v := Vec3Of(1, 2, 3)
	require.Equal(t, v, QuatIdentity().Rotate(v))
}

func TestQuat_FromAxisAngle(t *testing.T) {
	t.Run("rotate 90° around z", func(t *testing.T) {
		q := QuatFromAxisAngle(Vec3Z, math.Pi/2)
		requireVec3InDelta(t, Vec3Y, q.Rotate(Vec3X))
		requireVec3InDelta(t, Vec3X.Mul(-1), q.Rotate(Vec3Y))
	})

	t.Run("axis is normalized", func(t *testing.T) {
		q := QuatFromAxisAngle(Vec3Of(0, 0, 10), math.Pi/2)
		require.InDelta(t, 1.0, q.Length(), 1e-12)
	})

	t.Run("rotate 180° around x", func(t *testing.T) {
		q := QuatFromAxisAngle(Vec3X, math.Pi)
		requireVec3InDelta(t, Vec3Y.Mul(-1), q.Rotate(Vec3Y))
	})
}

func TestQuat_Mul(t *testing.T) {
	a := QuatFromAxisAngle(Vec3Z, math.Pi/2)
	b := QuatFromAxisAngle(Vec3Z, math.Pi)

	c := a.Mul(b)
	expected := QuatFromAxisAngle(Vec3Z, math.Pi*1.5)

	require.InDelta(t, 1.0, math.Abs(c.Dot(expected)), 1e-9)
}

func TestQuat_Conjugate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3Of(1, 1, 0), 1.2)
	v := Vec3Of(0.3, -2, 5)

	requireVec3InDelta(t, v, q.Conjugate().Rotate(q.Rotate(v)))
}

func TestQuat_AxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3Of(0, 3, 4), 2)

	axis, angle := q.AxisAngle()
	requireVec3InDelta(t, Vec3Of(0, 0.6, 0.8), axis)
	require.InDelta(t, 2.0, float64(angle), 1e-9)

	axis, angle = QuatIdentity().AxisAngle()
	require.Equal(t, Vec3X, axis)
	require.Equal(t, Rad(0), angle)
}
