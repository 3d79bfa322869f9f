package gmrand

import (
	"math/rand/v2"
	"sync"
)

// Source is the generator a Sampler draws its values from.
// A *rand.Rand from math/rand/v2 implements this interface.
type Source interface {
	// Float64 returns a value in the half-open interval [0, 1).
	Float64() float64

	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Uint64N returns a value in [0, n). It panics if n == 0.
	Uint64N(n uint64) uint64

	// Int32 returns a non-negative 32 bit integer.
	Int32() int32
}

// NewPCG returns a Source using the PCG generator seeded with the given seed.
// Two sources created with the same seed produce the same sequence of values.
func NewPCG(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// globalSource draws from the top-level functions in math/rand/v2.
// Those are seeded from system entropy and are safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

func (globalSource) Uint64N(n uint64) uint64 {
	return rand.Uint64N(n)
}

func (globalSource) Int32() int32 {
	return rand.Int32()
}

// lockedSource guards another Source with a mutex.
type lockedSource struct {
	mu     sync.Mutex
	source Source
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.Float64()
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.IntN(n)
}

func (l *lockedSource) Uint64N(n uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.Uint64N(n)
}

func (l *lockedSource) Int32() int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.Int32()
}
