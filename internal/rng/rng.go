// Package rng provides the random sources shared by the content synthesizers.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform floats in [0, 1).
// *rand.Rand satisfies it, as do Locked and Sequence.
type Source interface {
	Float64() float64
}

// Pick returns a uniform index in [0, n) using floor(roll * n).
func Pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Locked is a seeded source safe for concurrent use.
type Locked struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewLocked creates a locked source. A zero seed picks one from the clock.
func NewLocked(seed int64) *Locked {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Locked{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Float64 returns the next roll.
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rand.Float64()
}

// Seed returns the seed the source was created with.
func (l *Locked) Seed() int64 {
	return l.seed
}

// Sequence replays a fixed list of rolls, wrapping around at the end.
// It is not safe for concurrent use.
type Sequence struct {
	rolls []float64
	next  int
}

// NewSequence creates a scripted source. An empty list always rolls 0.
func NewSequence(rolls ...float64) *Sequence {
	return &Sequence{rolls: rolls}
}

// Float64 returns the next scripted roll.
func (s *Sequence) Float64() float64 {
	if len(s.rolls) == 0 {
		return 0
	}
	r := s.rolls[s.next%len(s.rolls)]
	s.next++
	return r
}

// Consumed reports how many rolls have been drawn so far.
func (s *Sequence) Consumed() int {
	return s.next
}
