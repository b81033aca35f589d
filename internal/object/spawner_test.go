package object

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeRand returns scripted values in order.
type fakeRand struct {
	ints   []int
	floats []float64
}

func (r *fakeRand) IntN(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *fakeRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type enemyRecorder struct {
	enemies []*Enemy
}

func (r *enemyRecorder) SpawnEnemy(e *Enemy) {
	r.enemies = append(r.enemies, e)
}

func TestSpawnerWaitsForInterval(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	rng := &fakeRand{ints: []int{1, 0}, floats: []float64{0.5, 0}}
	sp := NewEnemySpawner(testScreen, clock, rng)
	rec := &enemyRecorder{}

	clock.Advance(999 * time.Millisecond)
	if sp.Update(rec) {
		t.Fatalf("spawned after 999ms")
	}
	clock.Advance(time.Millisecond)
	if sp.Update(rec) {
		t.Fatalf("spawned at exactly 1000ms, want strictly after")
	}
	clock.Advance(time.Millisecond)
	if !sp.Update(rec) {
		t.Fatalf("did not spawn after 1001ms")
	}
	if len(rec.enemies) != 1 {
		t.Fatalf("spawned %d enemies, want 1", len(rec.enemies))
	}

	e := rec.enemies[0]
	if e.Width != Tank.Width || e.Health != Tank.Health {
		t.Fatalf("spawned %+v, want a tank", e)
	}
	// x = 0.5 * (800 - 60)
	if e.X != 370 || e.Y != -60 {
		t.Fatalf("enemy at (%v,%v), want (370,-60)", e.X, e.Y)
	}

	// The counter restarts from the spawn time.
	clock.Advance(500 * time.Millisecond)
	if sp.Update(rec) {
		t.Fatalf("spawned 500ms after previous spawn")
	}
	clock.Advance(501 * time.Millisecond)
	if !sp.Update(rec) {
		t.Fatalf("did not spawn 1001ms after previous spawn")
	}
	if got := rec.enemies[1]; got.Width != Grunt.Width || got.X != 0 {
		t.Fatalf("second enemy = %+v, want a grunt at x=0", got)
	}
}

func TestSpawnerOnlyOnePerUpdate(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	rng := &fakeRand{ints: []int{2}, floats: []float64{0.999}}
	sp := NewEnemySpawner(testScreen, clock, rng)
	rec := &enemyRecorder{}

	clock.Advance(10 * time.Second)
	sp.Update(rec)
	if len(rec.enemies) != 1 {
		t.Fatalf("spawned %d enemies after a long pause, want 1", len(rec.enemies))
	}
	if e := rec.enemies[0]; e.X > testScreen.Width-e.Width {
		t.Fatalf("enemy x = %v exceeds %v", e.X, testScreen.Width-e.Width)
	}
}

func TestSpawnerReset(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	sp := NewEnemySpawner(testScreen, clock, &fakeRand{})
	rec := &enemyRecorder{}

	clock.Advance(900 * time.Millisecond)
	sp.Reset()
	clock.Advance(900 * time.Millisecond)
	if sp.Update(rec) {
		t.Fatalf("spawned 900ms after reset")
	}
}
