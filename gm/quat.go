package gm

import (
	"fmt"
	"math"
)

// Quat is a rotation in three dimensional space, stored as a unit quaternion
// with the vector part in X, Y, Z and the scalar part in W.
type Quat struct {
	X, Y, Z, W float64
}

func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns a rotation by angle around the given axis.
// The axis is normalized before use, a zero axis yields NaN components.
func QuatFromAxisAngle(axis Vec3, angle Rad) Quat {
	axis = axis.Normalized()

	sin, cos := math.Sincos(float64(angle) / 2)

	return Quat{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: cos,
	}
}

// AxisAngle decomposes the rotation into an axis and an angle in [0, 2π].
// The identity rotation returns the x axis.
func (q Quat) AxisAngle() (Vec3, Rad) {
	q = q.Normalized()

	angle := 2 * math.Acos(clampFloat(q.W, -1, 1))

	s := math.Sqrt(1 - q.W*q.W)
	if s < 1e-9 {
		return Vec3X, Rad(angle)
	}

	axis := Vec3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}
	return axis, Rad(angle)
}

// Mul returns the rotation that first applies other and then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q Quat) Dot(other Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quat) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

func (q Quat) Normalized() Quat {
	f := 1 / q.Length()
	return Quat{X: q.X * f, Y: q.Y * f, Z: q.Z * f, W: q.W * f}
}

// Rotate applies the rotation to the given vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}

	// v' = v + 2w(u × v) + 2u × (u × v)
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

func (q Quat) Vec4() Vec4 {
	return Vec4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

func (q Quat) String() string {
	return fmt.Sprintf("quat(x=%v, y=%v, z=%v, w=%v)", q.X, q.Y, q.Z, q.W)
}

func clampFloat(value, lo, hi float64) float64 {
	return min(max(value, lo), hi)
}
