package gmrand

import (
	"math"

	"github.com/oliverbestmann/gmrand/gm"
)

// UniformPointInUnitCircle returns a vector uniformly sampled from within the unit circle.
func (s *Sampler) UniformPointInUnitCircle() gm.Vec {
	for {
		v := gm.Vec{
			X: s.Range(-1, 1),
			Y: s.Range(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// UniformPointOnUnitSphere returns a point uniformly distributed over
// the surface of the unit sphere.
func (s *Sampler) UniformPointOnUnitSphere() gm.Vec3 {
	a := s.UniformUnit() * gm.Tau
	z := 2*s.UniformUnit() - 1

	// sin(arccos(z))
	r := math.Sqrt(1 - z*z)

	sin, cos := math.Sincos(a)
	return gm.Vec3{X: r * cos, Y: r * sin, Z: z}
}

// UniformPointInUnitSphere returns a point uniformly distributed over
// the volume of the unit sphere.
func (s *Sampler) UniformPointInUnitSphere() gm.Vec3 {
	return s.UniformPointOnUnitSphere().Mul(math.Cbrt(s.UniformUnit()))
}

// UniformRotation returns a rotation uniformly sampled from all rotations,
// using Shoemake's subgroup algorithm.
func (s *Sampler) UniformRotation() gm.Quat {
	u1 := s.UniformUnit()
	u2 := s.UniformUnit() * gm.Tau
	u3 := s.UniformUnit() * gm.Tau

	a := math.Sqrt(1 - u1)
	b := math.Sqrt(u1)

	sin2, cos2 := math.Sincos(u2)
	sin3, cos3 := math.Sincos(u3)

	return gm.Quat{
		X: a * sin2,
		Y: a * cos2,
		Z: b * sin3,
		W: b * cos3,
	}
}
