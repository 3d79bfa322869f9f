package gm

import "math"

// Mat is a 2x2 matrix stored as two rows.
type Mat struct {
	XAxis, YAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1},
		YAxis: Vec{Y: 1},
	}
}

// ScaleMat scales each axis by the matching component of scale.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{X: scale.X},
		YAxis: Vec{Y: scale.Y},
	}
}

// RotationMat rotates by angle, counter clockwise when y points up
// and clockwise in screen space where y points down.
func RotationMat(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{X: cos, Y: -sin},
		YAxis: Vec{X: sin, Y: cos},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
	}
}

// Mul returns the matrix that first applies n and then m.
func (m Mat) Mul(n Mat) Mat {
	col0 := Vec{X: n.XAxis.X, Y: n.YAxis.X}
	col1 := Vec{X: n.XAxis.Y, Y: n.YAxis.Y}

	return Mat{
		XAxis: Vec{X: m.XAxis.Dot(col0), Y: m.XAxis.Dot(col1)},
		YAxis: Vec{X: m.YAxis.Dot(col0), Y: m.YAxis.Dot(col1)},
	}
}
