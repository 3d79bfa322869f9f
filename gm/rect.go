package gm

import (
	"fmt"
)

// Rect is an axis aligned rectangle between Min and Max.
type Rect struct {
	Min, Max Vec
}

// RectWithPoints returns the smallest rectangle containing both points.
func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: Vec{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Vec{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

func RectWithOriginAndSize(origin, size Vec) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) Area() float64 {
	size := r.Size()
	return size.X * size.Y
}

// Contains reports whether p lies within r, edges included.
func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// UnitAffine returns the transform mapping the unit square [0, 1] x [0, 1]
// onto r. Min is the image of the origin.
func (r Rect) UnitAffine() Affine {
	return IdentityAffine().Translate(r.Min).Scale(r.Size())
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
