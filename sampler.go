package gmrand

import (
	"math"

	"github.com/oliverbestmann/gmrand/color"
	"github.com/oliverbestmann/gmrand/gm"
)

// Sampler provides uniform and shape constrained random values. Every
// method advances the state of the underlying Source.
//
// A Sampler is only safe for concurrent use if its Source is. Use NewLocked
// to share a seeded Sampler between goroutines, or give each goroutine
// its own Sampler.
type Sampler struct {
	source Source
}

// New creates a new Sampler drawing from the given source.
func New(source Source) *Sampler {
	return &Sampler{source: source}
}

// NewSeeded creates a Sampler with a deterministic PCG source.
func NewSeeded(seed uint64) *Sampler {
	return New(NewPCG(seed))
}

// NewLocked creates a Sampler that serializes all draws from source,
// making it safe for concurrent use.
func NewLocked(source Source) *Sampler {
	return New(&lockedSource{source: source})
}

// UniformUnit returns a value uniformly sampled from [0, 1).
func (s *Sampler) UniformUnit() float64 {
	return s.source.Float64()
}

// RandomSign returns either -1 or 1 with equal probability.
func (s *Sampler) RandomSign() float64 {
	if s.UniformUnit() < 0.5 {
		return -1
	}

	return 1
}

// Range returns a value uniformly sampled from [min, max). The maximum
// is exclusive, as the underlying uniform draw never returns 1.
// No validation is performed, min > max yields values in (max, min].
func (s *Sampler) Range(min, max float64) float64 {
	return min + s.UniformUnit()*(max-min)
}

// RangeInt returns an integer uniformly sampled from [min, max).
// If the range is empty, min is returned.
func (s *Sampler) RangeInt(min, max int) int {
	if max <= min {
		return min
	}

	// the span of the full int range does not fit into an int
	span := uint64(max) - uint64(min)
	return min + int(s.source.Uint64N(span))
}

// PointOnUnitCircle returns a vector of length one pointing in a
// uniformly sampled direction.
func (s *Sampler) PointOnUnitCircle() gm.Vec {
	sin, cos := math.Sincos(s.UniformUnit() * gm.Tau)
	return gm.Vec{X: cos, Y: sin}.Normalized()
}

// PointInUnitCircle returns a point inside the unit circle. The radius is
// scaled linearly, so points are denser near the center than near the edge.
// Use UniformPointInUnitCircle for a uniform distribution over the area.
func (s *Sampler) PointInUnitCircle() gm.Vec {
	return s.PointOnUnitCircle().Mul(s.UniformUnit())
}

// PointInUnitSquare returns a point in [0, 1) x [0, 1).
func (s *Sampler) PointInUnitSquare() gm.Vec {
	x := s.UniformUnit()
	y := s.UniformUnit()
	return gm.Vec{X: x, Y: y}
}

// PointInRect returns a point uniformly sampled from within the given rectangle.
func (s *Sampler) PointInRect(rect gm.Rect) gm.Vec {
	return rect.UnitAffine().Transform(s.PointInUnitSquare())
}

// PointOnUnitSphere returns a point on the surface of the unit sphere.
// Both spherical angles are sampled uniformly, which clusters points
// near the poles. Use UniformPointOnUnitSphere for a uniform distribution.
func (s *Sampler) PointOnUnitSphere() gm.Vec3 {
	a := s.UniformUnit() * gm.Tau
	b := s.UniformUnit() * math.Pi

	sinA, cosA := math.Sincos(a)
	sinB, cosB := math.Sincos(b)

	return gm.Vec3{
		X: sinB * cosA,
		Y: sinB * sinA,
		Z: cosB,
	}.Normalized()
}

// PointInUnitSphere returns a point inside the unit sphere with a linearly
// scaled radius. See PointOnUnitSphere and PointInUnitCircle for the bias.
func (s *Sampler) PointInUnitSphere() gm.Vec3 {
	return s.PointOnUnitSphere().Mul(s.UniformUnit())
}

// PointInUnitCube returns a point in [0, 1) on each axis.
func (s *Sampler) PointInUnitCube() gm.Vec3 {
	x := s.UniformUnit()
	y := s.UniformUnit()
	z := s.UniformUnit()
	return gm.Vec3{X: x, Y: y, Z: z}
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func (s *Sampler) RandomAngle() gm.Rad {
	return gm.Rad(s.UniformUnit() * gm.Tau)
}

// RandomRotation returns a rotation around an axis from PointOnUnitSphere
// by an angle uniformly sampled from [0, 2π). The result is not uniform over
// all rotations, use UniformRotation for that.
func (s *Sampler) RandomRotation() gm.Quat {
	axis := s.PointOnUnitSphere()
	angle := gm.Rad(s.UniformUnit() * gm.Tau)
	return gm.QuatFromAxisAngle(axis, angle)
}

// RandomBoolean returns true or false with equal probability.
func (s *Sampler) RandomBoolean() bool {
	return s.UniformUnit() > 0.5
}

// RandomColor returns a color with random channels. Red, green and blue are
// taken from the lowest three bytes of one draw, alpha from the lowest byte of
// a second draw.
func (s *Sampler) RandomColor() color.Color {
	r, g, b := s.rgb()
	a := uint8(s.source.Int32())
	return color.RGBA8(r, g, b, a)
}

// RandomColorFullAlpha works like RandomColor but is always fully opaque.
func (s *Sampler) RandomColorFullAlpha() color.Color {
	r, g, b := s.rgb()
	return color.RGBA8(r, g, b, 255)
}

func (s *Sampler) rgb() (r, g, b uint8) {
	value := uint32(s.source.Int32())
	return uint8(value), uint8(value >> 8), uint8(value >> 16)
}
