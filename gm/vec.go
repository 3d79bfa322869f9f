package gm

import (
	"fmt"
	"math"
)

// Scalar lists the types usable as vector components and as arguments to
// the generic sampling helpers.
type Scalar interface {
	~int32 | ~int64 | ~float32 | ~float64
}

type Vec32 = VecType[float32]
type Vec64 = VecType[float64]

type Vec = Vec64

type IVec = VecType[int32]

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf[S Scalar](x, y S) VecType[S] {
	return VecType[S]{X: x, Y: y}
}

func VecSplat[S Scalar](value S) VecType[S] {
	return VecType[S]{X: value, Y: value}
}

// VecType is a two dimensional vector.
type VecType[S Scalar] struct {
	X, Y S
}

func (v VecType[S]) XY() (S, S) {
	return v.X, v.Y
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v VecType[S]) MulEach(other VecType[S]) VecType[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v VecType[S]) DivEach(other VecType[S]) VecType[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

// Normalized returns a vector of length one pointing in the same direction.
// A zero vector yields NaN components.
func (v VecType[S]) Normalized() VecType[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
