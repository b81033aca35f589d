package object

import (
	"time"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/physics"
)

// Ship defaults.
const (
	ShipWidth     = 50.0
	ShipHeight    = 50.0
	ShipSpeed     = 4.0  // Horizontal units per tick while a move key is held
	ShipMaxHealth = 3    // Hits the ship can take
	shipBottomGap = 60.0 // Distance from the bottom of the world to the ship's top edge
)

// ShieldDuration is how long an activated shield lasts.
const ShieldDuration = 5000 * time.Millisecond

// Ship is the player-controlled ship. It only moves horizontally.
type Ship struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	DX            float64 // Horizontal velocity per tick
	Speed         float64 // Magnitude applied to DX by move input

	Health      int
	Shield      bool
	ShieldTimer time.Duration // Remaining shield time, never negative
}

// NewShip creates a ship centred horizontally near the bottom of the screen.
func NewShip(screen Screen) *Ship {
	return &Ship{
		X:      screen.Width/2 - ShipWidth/2,
		Y:      screen.Height - shipBottomGap,
		Width:  ShipWidth,
		Height: ShipHeight,
		Speed:  ShipSpeed,
		Health: ShipMaxHealth,
	}
}

// Bounds returns the ship's bounding box.
func (s *Ship) Bounds() physics.Rect {
	return physics.Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}
}

// Move applies the horizontal velocity and keeps the ship inside the screen.
func (s *Ship) Move(screen Screen) {
	s.X = physics.Clamp(s.X+s.DX, 0, screen.Width-s.Width)
}

// ActivateShield raises the shield for ShieldDuration.
func (s *Ship) ActivateShield() {
	s.Shield = true
	s.ShieldTimer = ShieldDuration
}

// DecayShield counts the shield down by one tick and drops it when time runs out.
func (s *Ship) DecayShield(tick time.Duration) {
	if s.ShieldTimer > 0 {
		s.ShieldTimer -= tick
	}
	if s.ShieldTimer <= 0 {
		s.ShieldTimer = 0
		s.Shield = false
	}
}

// AbsorbHit drops the shield immediately, regardless of remaining time.
func (s *Ship) AbsorbHit() {
	s.Shield = false
	s.ShieldTimer = 0
}

// TakeHit removes one point of health. Returns true if the ship is destroyed.
func (s *Ship) TakeHit() bool {
	if s.Health > 0 {
		s.Health--
	}
	return s.Health <= 0
}

// Fire creates a bullet leaving the centre of the ship's nose.
func (s *Ship) Fire() *Bullet {
	return NewBullet(s.X+s.Width/2-BulletWidth/2, s.Y)
}

// Draw renders the ship, cyan while shielded, with its health bar.
func (s *Ship) Draw(surface draw.Surface) {
	color := draw.ColorBlue
	if s.Shield {
		color = draw.ColorCyan
	}
	surface.FillRect(s.Bounds(), color)
	drawHealthBar(surface, s.X, s.Y, s.Health)
}
