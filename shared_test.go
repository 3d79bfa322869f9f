package gmrand

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShared(t *testing.T) {
	require.Same(t, Shared(), Shared())

	value := UniformUnit()
	require.GreaterOrEqual(t, value, 0.0)
	require.Less(t, value, 1.0)

	require.InDelta(t, 1.0, PointOnUnitCircle().Length(), 1e-6)
	require.InDelta(t, 1.0, PointOnUnitSphere().Length(), 1e-6)
	require.Equal(t, float32(1), RandomColorFullAlpha().A)
	require.Equal(t, 3, RangeInt(3, 4))
}

func TestShared_Concurrent(t *testing.T) {
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 1000 {
				_ = PointInUnitSphere()
				_ = RandomRotation()
				_ = RandomColor()
			}
		}()
	}

	wg.Wait()
}

func TestNewLocked(t *testing.T) {
	s := NewLocked(NewPCG(32))

	var wg sync.WaitGroup
	results := make([][]float64, 4)

	for idx := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 1000 {
				results[idx] = append(results[idx], s.UniformUnit())
			}
		}()
	}

	wg.Wait()

	var all []float64
	for _, values := range results {
		require.Len(t, values, 1000)
		all = append(all, values...)
	}

	// every draw comes from the same sequence, no value is lost or repeated
	expected := collect(4000, NewSeeded(32).UniformUnit)
	slices.Sort(all)
	slices.Sort(expected)
	require.Equal(t, expected, all)
}
