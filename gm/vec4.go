package gm

import (
	"fmt"
	"math"
)

// Vec4 is a four dimensional vector of float64 values.
type Vec4 struct {
	X, Y, Z, W float64
}

func Vec4Of(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func (v Vec4) XYZW() (float64, float64, float64, float64) {
	return v.X, v.Y, v.Z, v.W
}

func (v Vec4) XYZ() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

func (v Vec4) Sub(other Vec4) Vec4 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

func (v Vec4) Mul(scalar float64) Vec4 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	v.W *= scalar
	return v
}

func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) LengthSqr() float64 {
	return v.Dot(v)
}

func (v Vec4) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

func (v Vec4) Normalized() Vec4 {
	return v.Mul(1 / v.Length())
}

func (v Vec4) String() string {
	return fmt.Sprintf("vec4(x=%v, y=%v, z=%v, w=%v)", v.X, v.Y, v.Z, v.W)
}
