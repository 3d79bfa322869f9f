package gmrand

import (
	"sync"

	"github.com/oliverbestmann/gmrand/color"
	"github.com/oliverbestmann/gmrand/gm"
)

var shared = sync.OnceValue(func() *Sampler {
	return New(globalSource{})
})

// Shared returns the process wide Sampler. It is seeded from system entropy,
// created on first use and safe for concurrent use.
func Shared() *Sampler {
	return shared()
}

// UniformUnit returns a value uniformly sampled from [0, 1) using the Shared sampler.
func UniformUnit() float64 {
	return Shared().UniformUnit()
}

// RandomSign returns either -1 or 1 with equal probability using the Shared sampler.
func RandomSign() float64 {
	return Shared().RandomSign()
}

// Range returns a value uniformly sampled from [min, max) using the Shared sampler.
func Range(min, max float64) float64 {
	return Shared().Range(min, max)
}

// RangeInt returns an integer uniformly sampled from [min, max) using the Shared sampler.
func RangeInt(min, max int) int {
	return Shared().RangeInt(min, max)
}

// PointOnUnitCircle returns a random unit length vector using the Shared sampler.
func PointOnUnitCircle() gm.Vec {
	return Shared().PointOnUnitCircle()
}

// PointInUnitCircle returns a point inside the unit circle, denser towards the
// center, using the Shared sampler.
func PointInUnitCircle() gm.Vec {
	return Shared().PointInUnitCircle()
}

// PointInUnitSquare returns a point in [0, 1) x [0, 1) using the Shared sampler.
func PointInUnitSquare() gm.Vec {
	return Shared().PointInUnitSquare()
}

// PointInRect returns a point uniformly sampled from rect using the Shared sampler.
func PointInRect(rect gm.Rect) gm.Vec {
	return Shared().PointInRect(rect)
}

// PointOnUnitSphere returns a point on the unit sphere, clustered near the poles,
// using the Shared sampler.
func PointOnUnitSphere() gm.Vec3 {
	return Shared().PointOnUnitSphere()
}

// PointInUnitSphere returns a point inside the unit sphere with a linearly scaled
// radius using the Shared sampler.
func PointInUnitSphere() gm.Vec3 {
	return Shared().PointInUnitSphere()
}

// PointInUnitCube returns a point in [0, 1) on each axis using the Shared sampler.
func PointInUnitCube() gm.Vec3 {
	return Shared().PointInUnitCube()
}

// RandomAngle returns an angle uniformly sampled from [0, 2π) using the Shared sampler.
func RandomAngle() gm.Rad {
	return Shared().RandomAngle()
}

// RandomRotation returns a rotation around a PointOnUnitSphere axis using the Shared sampler.
func RandomRotation() gm.Quat {
	return Shared().RandomRotation()
}

// RandomBoolean returns true or false with equal probability using the Shared sampler.
func RandomBoolean() bool {
	return Shared().RandomBoolean()
}

// RandomColor returns a color with random channels and alpha using the Shared sampler.
func RandomColor() color.Color {
	return Shared().RandomColor()
}

// RandomColorFullAlpha returns an opaque color with random channels using the Shared sampler.
func RandomColorFullAlpha() color.Color {
	return Shared().RandomColorFullAlpha()
}

// UniformPointInUnitCircle returns a point uniformly distributed over the unit
// circle using the Shared sampler.
func UniformPointInUnitCircle() gm.Vec {
	return Shared().UniformPointInUnitCircle()
}

// UniformPointOnUnitSphere returns a point uniformly distributed over the surface
// of the unit sphere using the Shared sampler.
func UniformPointOnUnitSphere() gm.Vec3 {
	return Shared().UniformPointOnUnitSphere()
}

// UniformPointInUnitSphere returns a point uniformly distributed over the volume
// of the unit sphere using the Shared sampler.
func UniformPointInUnitSphere() gm.Vec3 {
	return Shared().UniformPointInUnitSphere()
}

// UniformRotation returns a rotation uniformly sampled from all rotations using
// the Shared sampler.
func UniformRotation() gm.Quat {
	return Shared().UniformRotation()
}
