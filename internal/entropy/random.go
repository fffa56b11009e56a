// Package entropy provides the random source used by agent decisions.
// The source is injected and seeded per simulation run so that outcomes
// are reproducible in tests.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source yields random values for stochastic agent decisions.
type Source interface {
	// Float returns a random float64 in [0, 1).
	Float() float64
	// Intn returns a random int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// seeded is a deterministic source backed by math/rand.
type seeded struct {
	rng *mrand.Rand
}

// NewSeeded creates a deterministic source from a seed.
func NewSeeded(seed int64) Source {
	return &seeded{rng: mrand.New(mrand.NewSource(seed))}
}

func (s *seeded) Float() float64 { return s.rng.Float64() }
func (s *seeded) Intn(n int) int { return s.rng.Intn(n) }

// system is a non-deterministic source backed by crypto/rand.
// Used when no seed is supplied.
type system struct{}

// NewSystem creates a source backed by the OS entropy pool.
func NewSystem() Source {
	return system{}
}

func (system) Float() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0.5
	}
	// Keep 53 bits so the value fits a float64 mantissa.
	v := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(v) / float64(1<<53)
}

func (s system) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	return int(s.Float() * float64(n))
}
