package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual Vec) {
	t.Helper()

	require.InDelta(t, expected.X, actual.X, 1e-9)
	require.InDelta(t, expected.Y, actual.Y, 1e-9)
}

func TestMat_Transform(t *testing.T) {
	t.Run("quarter turn", func(t *testing.T) {
		m := RotationMat(math.Pi / 2)
		requireVecInDelta(t, Vec{Y: 1}, m.Transform(Vec{X: 1}))
		requireVecInDelta(t, Vec{X: -1}, m.Transform(Vec{Y: 1}))
	})

	t.Run("scale", func(t *testing.T) {
		m := ScaleMat(Vec{X: 2, Y: -3})
		require.Equal(t, Vec{X: 2, Y: -3}, m.Transform(VecOne))
	})

	t.Run("identity", func(t *testing.T) {
		require.Equal(t, Vec{X: 4, Y: 5}, IdentityMat().Transform(Vec{X: 4, Y: 5}))
	})
}

func TestMat_Mul(t *testing.T) {
	// rotations add up
	m := RotationMat(0.3).Mul(RotationMat(1.1))
	expected := RotationMat(1.4)

	requireVecInDelta(t, expected.XAxis, m.XAxis)
	requireVecInDelta(t, expected.YAxis, m.YAxis)

	// n is applied first: scale x, then rotate the result
	m = RotationMat(math.Pi / 2).Mul(ScaleMat(Vec{X: 2, Y: 1}))
	requireVecInDelta(t, Vec{Y: 2}, m.Transform(Vec{X: 1}))
}

func TestMat_RotationKeepsLength(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		v := Vec{X: 3, Y: 4}
		require.InDelta(t, 5.0, RotationMat(DegToRad(deg)).Transform(v).Length(), 1e-9)
	}
}
