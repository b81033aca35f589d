package object

import (
	"math/rand/v2"
	"time"
)

// SpawnInterval is the minimum wall-clock time between two enemy spawns.
const SpawnInterval = 1000 * time.Millisecond

// Spawner receives entities created during an update.
type Spawner interface {
	SpawnEnemy(e *Enemy)
}

// Clock reports the current time. Spawning is gated on wall-clock time so
// the spawn rate does not depend on the frame rate.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real-time Clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Rand is the random source used for spawn decisions.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand delegates to the math/rand/v2 top-level functions.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand is the process-wide random source.
var DefaultRand Rand = globalRand{}

// EnemySpawner creates one enemy each time SpawnInterval has passed since the last spawn.
type EnemySpawner struct {
	screen     Screen
	clock      Clock
	rng        Rand
	archetypes []Archetype
	interval   time.Duration
	last       time.Time
}

// NewEnemySpawner creates a spawner whose interval starts counting now.
// Nil clock or rng fall back to SystemClock and DefaultRand.
func NewEnemySpawner(screen Screen, clock Clock, rng Rand) *EnemySpawner {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = DefaultRand
	}
	s := &EnemySpawner{
		screen:     screen,
		clock:      clock,
		rng:        rng,
		archetypes: Archetypes,
		interval:   SpawnInterval,
	}
	s.Reset()
	return s
}

// Reset restarts the interval from the current time.
func (s *EnemySpawner) Reset() {
	s.last = s.clock.Now()
}

// Update spawns an enemy if more than the spawn interval has elapsed.
// Returns true if an enemy was spawned.
func (s *EnemySpawner) Update(spawner Spawner) bool {
	now := s.clock.Now()
	if now.Sub(s.last) <= s.interval {
		return false
	}
	spawner.SpawnEnemy(s.next())
	s.last = now
	return true
}

// next picks an archetype uniformly and a horizontal position that keeps
// the enemy fully inside the screen.
func (s *EnemySpawner) next() *Enemy {
	a := s.archetypes[s.rng.IntN(len(s.archetypes))]
	x := s.rng.Float64() * (s.screen.Width - a.Width)
	return NewEnemy(a, x)
}
