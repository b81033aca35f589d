package object

import (
	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/physics"
)

// Bullet defaults.
const (
	BulletWidth  = 10.0
	BulletHeight = 20.0
	BulletSpeed  = 5.0 // Upward units per tick
)

// Bullet is a projectile fired by the ship. It travels straight up.
type Bullet struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// NewBullet creates a bullet with its top-left corner at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Width:  BulletWidth,
		Height: BulletHeight,
		Speed:  BulletSpeed,
	}
}

// Update moves the bullet up. Returns true once it has left the top of the screen.
func (b *Bullet) Update() (remove bool) {
	b.Y -= b.Speed
	return b.Y < 0
}

// Bounds returns the bullet's bounding box.
func (b *Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Draw renders the bullet.
func (b *Bullet) Draw(s draw.Surface) {
	s.FillRect(b.Bounds(), draw.ColorRed)
}
