package transfer

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the uniform random capability used by the Generator.
// *rand.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a uniform number in [0,1)
	Float64() float64
	// Intn returns a uniform number in [0,n)
	Intn(n int) int
}

// Clock reads the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// lockedSource serializes access to a *rand.Rand, which is not safe for concurrent use
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource creates a RandomSource safe for concurrent use.
// A zero seed seeds from the wall clock, so outcomes are not reproducible.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
