package gm

import (
	"fmt"
	"math"
)

var Vec3Zero = Vec3{}
var Vec3One = Vec3{X: 1, Y: 1, Z: 1}

var Vec3X = Vec3{X: 1}
var Vec3Y = Vec3{Y: 1}
var Vec3Z = Vec3{Z: 1}

// Vec3 is a three dimensional vector of float64 values.
type Vec3 struct {
	X, Y, Z float64
}

func Vec3Of(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func Vec3Splat(value float64) Vec3 {
	return Vec3{X: value, Y: value, Z: value}
}

// Extend turns a 2d vector into a Vec3 using the given z value.
func Extend(v Vec, z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

func (v Vec3) XYZ() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

// Truncate drops the z component.
func (v Vec3) Truncate() Vec {
	return Vec{X: v.X, Y: v.Y}
}

func (v Vec3) Add(other Vec3) Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vec3) Sub(other Vec3) Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vec3) Mul(scalar float64) Vec3 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vec3) MulEach(other Vec3) Vec3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) LengthSqr() float64 {
	return v.Dot(v)
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// Normalized returns a vector of length one pointing in the same direction.
// A zero vector yields NaN components.
func (v Vec3) Normalized() Vec3 {
	return v.Mul(1 / v.Length())
}

func (v Vec3) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
