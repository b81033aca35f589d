package game

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// World
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// Timing
const (
	// TickDuration is the nominal simulation step. The shield timer counts down
	// by this amount every tick, independent of the real frame time.
	TickDuration = 16 * time.Millisecond
)

// Collision
const (
	gridCellSize = 100 // Broad-phase cell size, larger than any entity
)

// Scoring
const (
	ScorePerEnemy = 10
)

// HUD layout, in world coordinates.
const (
	hudX            = 10
	hudScoreY       = 30
	hudHighScoreY   = 60
	hudShieldY      = 90
	hudTextSize     = 20
	hudShieldSize   = 16
	gameOverX       = WorldWidth/2 - 100
	gameOverY       = WorldHeight / 2
	gameOverSize    = 40
	restartHintY    = gameOverY + 40
	restartHintSize = 20
)
