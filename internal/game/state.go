// Package game implements the simulation core: ship, bullets and enemies,
// collision resolution, scoring, the shield ability and the Playing/GameOver
// state machine. A Game is owned by a single goroutine; see package loop for
// the frame driver.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfall/internal/object"
	"github.com/tomz197/skyfall/internal/physics"
)

// State is the current game phase.
type State int

const (
	StatePlaying  State = iota // Simulation advances every tick
	StateGameOver              // Frozen until Restart
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a Game. Zero values select real-time defaults.
type Options struct {
	Clock  object.Clock  // Drives enemy spawning; defaults to object.SystemClock
	Rand   object.Rand   // Spawn randomness; defaults to object.DefaultRand
	Logger *log.Logger   // Defaults to a logger that discards output
	Screen object.Screen // Defaults to WorldWidth x WorldHeight
}

// Game owns the ship, the bullet and enemy collections and the score.
type Game struct {
	Ship    *object.Ship
	Bullets []*object.Bullet
	Enemies []*object.Enemy

	Score     int
	HighScore int // Survives Restart

	// ShieldAvailable is true until the shield is used; only Restart recharges it.
	ShieldAvailable bool

	state   State
	screen  object.Screen
	spawner *object.EnemySpawner
	grid    *physics.Grid // Broad phase for bullet hits, rebuilt every pass
	logger  *log.Logger
}

// Compile-time check that Game accepts spawned enemies.
var _ object.Spawner = (*Game)(nil)

// New creates a game in the Playing state.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := opts.Screen
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = object.Screen{Width: WorldWidth, Height: WorldHeight}
	}

	g := &Game{
		screen:  screen,
		spawner: object.NewEnemySpawner(screen, opts.Clock, opts.Rand),
		grid:    physics.NewGrid(screen.Width, screen.Height, gridCellSize),
		logger:  logger,
	}
	g.reset()
	return g
}

// State returns the current game phase.
func (g *Game) State() State {
	return g.state
}

// Screen returns the world dimensions.
func (g *Game) Screen() object.Screen {
	return g.screen
}

// Restart starts a new run. The high score is kept.
func (g *Game) Restart() {
	g.reset()
	g.logger.Info("game restarted", "high_score", g.HighScore)
}

// reset puts everything except the high score back to its initial value.
func (g *Game) reset() {
	g.Ship = object.NewShip(g.screen)
	clear(g.Bullets)
	g.Bullets = g.Bullets[:0]
	clear(g.Enemies)
	g.Enemies = g.Enemies[:0]
	g.Score = 0
	g.ShieldAvailable = true
	g.state = StatePlaying
	g.spawner.Reset()
}

// SpawnEnemy adds an enemy to the game. Implements object.Spawner.
func (g *Game) SpawnEnemy(e *object.Enemy) {
	g.Enemies = append(g.Enemies, e)
}

// addScore awards points and keeps the high score up to date.
func (g *Game) addScore(points int) {
	g.Score += points
	g.HighScore = max(g.HighScore, g.Score)
}

// endGame switches to GameOver. Repeated calls within a tick are no-ops.
func (g *Game) endGame(reason string) {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.logger.Info("game over", "reason", reason, "score", g.Score, "high_score", g.HighScore)
}
