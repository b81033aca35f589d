// Package object defines the game entities: the player's ship, bullets,
// enemies and their archetypes, and the enemy spawner.
package object

import (
	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/physics"
)

// Screen holds the logical world dimensions.
type Screen struct {
	Width  float64
	Height float64
}

// Drawable is implemented by entities that render themselves onto a surface.
type Drawable interface {
	Draw(s draw.Surface)
}

// Collider is implemented by entities that take part in collision checks.
type Collider interface {
	Bounds() physics.Rect
}

// Health bar geometry, relative to the owner's top-left corner.
const (
	healthBarOffsetX = -5
	healthBarOffsetY = -10
	healthBarWidth   = 60
	healthBarHeight  = 5
	healthBarMax     = 3 // health that fills the whole bar
)

// drawHealthBar draws a white track with a green fill proportional to health.
func drawHealthBar(s draw.Surface, x, y float64, health int) {
	bx := x + healthBarOffsetX
	by := y + healthBarOffsetY
	s.FillRect(physics.Rect{X: bx, Y: by, W: healthBarWidth, H: healthBarHeight}, draw.ColorWhite)
	if health <= 0 {
		return
	}
	fill := healthBarWidth * float64(health) / healthBarMax
	s.FillRect(physics.Rect{X: bx, Y: by, W: fill, H: healthBarHeight}, draw.ColorGreen)
}
