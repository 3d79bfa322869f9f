package gmrand

import (
	"github.com/oliverbestmann/gmrand/gm"
)

// In returns a value uniformly sampled from the given range, excluding max.
func In[S gm.Scalar](s *Sampler, min, max S) S {
	return S(s.UniformUnit()*(float64(max)-float64(min))) + min
}

// RandomIn returns a value uniformly sampled from the given range using the Shared sampler.
func RandomIn[S gm.Scalar](min, max S) S {
	return In(Shared(), min, max)
}

// Jitter returns base moved by a value uniformly sampled from [-jitter, jitter).
func Jitter[S gm.Scalar](s *Sampler, base, jitter S) S {
	return base + In(s, -jitter, jitter)
}

// JitterVec offsets base by a point of the uniform unit circle, scaled
// by jitter on each axis.
func JitterVec(s *Sampler, base, jitter gm.Vec) gm.Vec {
	return base.Add(s.UniformPointInUnitCircle().MulEach(jitter))
}

// Choose returns one of the given values. It panics if values is empty.
func Choose[T any](s *Sampler, values ...T) T {
	idx := s.source.IntN(len(values))
	return values[idx]
}

// Shuffled returns a shuffled copy of values.
func Shuffled[T any](s *Sampler, values []T) []T {
	values = append([]T(nil), values...)

	// Fisher-Yates
	for i := len(values) - 1; i > 0; i-- {
		j := s.source.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}

	return values
}
