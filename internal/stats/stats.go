// Package stats computes the summary statistics used to check sampled
// distributions.
package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("Summary(count=%d, mean=%.4f, stddev=%.4f, min=%.4f, max=%.4f)",
		s.Count, s.Mean, s.StdDev, s.Min, s.Max)
}

// Summarize computes count, mean, sample standard deviation and the bounds
// of values. An empty slice returns the zero Summary, a single value has
// a NaN standard deviation.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(values, nil)

	return Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}

// Histogram counts values into bins of equal width covering [lo, hi).
// Values outside of the range are ignored.
func Histogram(values []float64, bins int, lo, hi float64) []float64 {
	if bins <= 0 {
		return nil
	}

	counts := make([]float64, bins)
	if !(lo < hi) {
		return counts
	}

	// stat.Histogram requires sorted values within the dividers
	inRange := make([]float64, 0, len(values))
	for _, value := range values {
		if value >= lo && value < hi {
			inRange = append(inRange, value)
		}
	}

	if len(inRange) == 0 {
		return counts
	}

	slices.Sort(inRange)

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	return stat.Histogram(counts, dividers, inRange, nil)
}

// ChiSquare returns Pearson's chi-square statistic of the counts
// against a uniform expectation over all bins.
func ChiSquare(counts []float64) float64 {
	total := floats.Sum(counts)
	if total == 0 {
		return 0
	}

	expected := make([]float64, len(counts))
	for idx := range expected {
		expected[idx] = total / float64(len(counts))
	}

	return stat.ChiSquare(counts, expected)
}

// Frequencies returns the fraction of total each count represents.
func Frequencies(counts []float64) []float64 {
	result := make([]float64, len(counts))

	total := floats.Sum(counts)
	if total == 0 || math.IsNaN(total) {
		return result
	}

	floats.ScaleTo(result, 1/total, counts)
	return result
}
