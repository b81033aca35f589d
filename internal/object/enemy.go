package object

import (
	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/physics"
)

// Archetype is the template an enemy is spawned from.
type Archetype struct {
	Name          string
	Width, Height float64
	Speed         float64 // Downward units per tick
	Health        int
	Color         draw.Color
}

// Enemy archetypes, in spawn table order.
var (
	Grunt  = Archetype{Name: "grunt", Width: 40, Height: 40, Speed: 2, Health: 1, Color: draw.ColorGreen}
	Tank   = Archetype{Name: "tank", Width: 60, Height: 60, Speed: 1, Health: 3, Color: draw.ColorRed}
	Darter = Archetype{Name: "darter", Width: 30, Height: 30, Speed: 3, Health: 2, Color: draw.ColorYellow}
)

// Archetypes is the spawn table. Each entry is equally likely.
var Archetypes = []Archetype{Grunt, Tank, Darter}

// Enemy is a descending target.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Health        int
	Color         draw.Color
}

// NewEnemy creates an enemy from an archetype at horizontal position x,
// placed just above the visible top edge.
func NewEnemy(a Archetype, x float64) *Enemy {
	return &Enemy{
		X:      x,
		Y:      -a.Height,
		Width:  a.Width,
		Height: a.Height,
		Speed:  a.Speed,
		Health: a.Health,
		Color:  a.Color,
	}
}

// Update moves the enemy down. Returns true once it has passed the bottom of the screen.
func (e *Enemy) Update(screen Screen) (escaped bool) {
	e.Y += e.Speed
	return e.Y > screen.Height
}

// Hit applies one point of damage. Returns true if the enemy is destroyed.
func (e *Enemy) Hit() (destroyed bool) {
	e.Health--
	return e.Health <= 0
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Draw renders the enemy in its archetype color with a health bar.
func (e *Enemy) Draw(s draw.Surface) {
	s.FillRect(e.Bounds(), e.Color)
	drawHealthBar(s, e.X, e.Y, e.Health)
}
