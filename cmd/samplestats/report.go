package main

import (
	"math"

	"github.com/oliverbestmann/gmrand"
	"github.com/oliverbestmann/gmrand/internal/stats"
)

// Report describes the distribution of one sampled quantity.
type Report struct {
	Name      string
	Summary   stats.Summary
	ChiSquare float64

	// Expected range of the sampled quantity, used for the histogram.
	Lo, Hi float64
}

type measurement struct {
	name   string
	lo, hi float64
	draw   func(s *gmrand.Sampler) float64
}

var measurements = []measurement{
	{"UniformUnit", 0, 1, (*gmrand.Sampler).UniformUnit},
	{"RandomSign", -1, 1.0001, (*gmrand.Sampler).RandomSign},
	{"Range(5,10)", 5, 10, func(s *gmrand.Sampler) float64 { return s.Range(5, 10) }},
	{"RangeInt(0,5)", 0, 5, func(s *gmrand.Sampler) float64 { return float64(s.RangeInt(0, 5)) }},
	{"RandomAngle", 0, 2 * math.Pi, func(s *gmrand.Sampler) float64 { return float64(s.RandomAngle()) }},
	{"RandomBoolean", 0, 1.0001, func(s *gmrand.Sampler) float64 { return boolToFloat(s.RandomBoolean()) }},
	{"PointOnUnitCircle.Length", 0.999, 1.001, func(s *gmrand.Sampler) float64 { return s.PointOnUnitCircle().Length() }},
	{"PointInUnitCircle.AreaFraction", 0, 1, func(s *gmrand.Sampler) float64 { return s.PointInUnitCircle().LengthSqr() }},
	{"UniformPointInUnitCircle.AreaFraction", 0, 1.0001, func(s *gmrand.Sampler) float64 { return s.UniformPointInUnitCircle().LengthSqr() }},
	{"PointInUnitSquare.X", 0, 1, func(s *gmrand.Sampler) float64 { return s.PointInUnitSquare().X }},
	{"PointOnUnitSphere.Z", -1, 1.0001, func(s *gmrand.Sampler) float64 { return s.PointOnUnitSphere().Z }},
	{"UniformPointOnUnitSphere.Z", -1, 1.0001, func(s *gmrand.Sampler) float64 { return s.UniformPointOnUnitSphere().Z }},
	{"PointInUnitSphere.VolumeFraction", 0, 1.0001, func(s *gmrand.Sampler) float64 { return math.Pow(s.PointInUnitSphere().Length(), 3) }},
	{"UniformPointInUnitSphere.VolumeFraction", 0, 1.0001, func(s *gmrand.Sampler) float64 { return math.Pow(s.UniformPointInUnitSphere().Length(), 3) }},
	{"PointInUnitCube.Z", 0, 1, func(s *gmrand.Sampler) float64 { return s.PointInUnitCube().Z }},
	{"RandomRotation.W", -1, 1.0001, func(s *gmrand.Sampler) float64 { return s.RandomRotation().W }},
	{"UniformRotation.W", -1, 1.0001, func(s *gmrand.Sampler) float64 { return s.UniformRotation().W }},
	{"RandomColor.R", 0, 1.0001, func(s *gmrand.Sampler) float64 { return float64(s.RandomColor().R) }},
	{"RandomColorFullAlpha.A", 0, 1.0001, func(s *gmrand.Sampler) float64 { return float64(s.RandomColorFullAlpha().A) }},
}

// Measure draws samples from every sampler operation and summarizes them.
// A quantity that is uniform over [Lo, Hi) has a ChiSquare close to the number of bins.
func Measure(sampler *gmrand.Sampler, samples, bins int) []Report {
	reports := make([]Report, 0, len(measurements))

	values := make([]float64, samples)

	for _, m := range measurements {
		for idx := range values {
			values[idx] = m.draw(sampler)
		}

		histogram := stats.Histogram(values, bins, m.lo, m.hi)

		reports = append(reports, Report{
			Name:      m.name,
			Summary:   stats.Summarize(values),
			ChiSquare: stats.ChiSquare(histogram),
			Lo:        m.lo,
			Hi:        m.hi,
		})
	}

	return reports
}

func boolToFloat(value bool) float64 {
	if value {
		return 1
	}

	return 0
}
