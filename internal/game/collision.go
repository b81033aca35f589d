package game

import (
	"github.com/tomz197/skyfall/internal/object"
	"github.com/tomz197/skyfall/internal/physics"
)

// ResolveCollisions applies bullet hits on enemies, then enemy contact with the ship.
func (g *Game) ResolveCollisions() {
	g.resolveBulletHits()
	g.resolveShipHits()
}

// resolveBulletHits lets each bullet damage the first live enemy it overlaps,
// in enumeration order. Hit bullets and destroyed enemies are removed after the pass.
func (g *Game) resolveBulletHits() {
	if len(g.Bullets) == 0 || len(g.Enemies) == 0 {
		return
	}

	g.grid.Reset()
	for i, e := range g.Enemies {
		g.grid.Insert(e.Bounds(), i)
	}

	kept := g.Bullets[:0]
	for _, b := range g.Bullets {
		if target := g.firstEnemyHit(b); target != nil {
			if target.Hit() {
				g.addScore(ScorePerEnemy)
			}
			continue
		}
		kept = append(kept, b)
	}
	clear(g.Bullets[len(kept):])
	g.Bullets = kept

	alive := g.Enemies[:0]
	for _, e := range g.Enemies {
		if e.Health > 0 {
			alive = append(alive, e)
		}
	}
	clear(g.Enemies[len(alive):])
	g.Enemies = alive
}

// firstEnemyHit returns the first enemy still alive that overlaps b, or nil.
// The grid only narrows the candidates; the lowest index wins.
func (g *Game) firstEnemyHit(b *object.Bullet) *object.Enemy {
	bounds := b.Bounds()
	first := -1
	g.grid.Query(bounds, func(i int) {
		if first >= 0 && i >= first {
			return
		}
		if e := g.Enemies[i]; e.Health > 0 && physics.Overlaps(bounds, e.Bounds()) {
			first = i
		}
	})
	if first < 0 {
		return nil
	}
	return g.Enemies[first]
}

// resolveShipHits removes every enemy touching the ship. The shield absorbs
// exactly one of them; each other contact costs one point of health.
func (g *Game) resolveShipHits() {
	ship := g.Ship
	kept := g.Enemies[:0]
	for _, e := range g.Enemies {
		if !touching(ship, e) {
			kept = append(kept, e)
			continue
		}
		if ship.Shield {
			ship.AbsorbHit()
			g.logger.Debug("shield absorbed hit")
			continue
		}
		if ship.TakeHit() {
			g.endGame("ship destroyed")
		}
	}
	clear(g.Enemies[len(kept):])
	g.Enemies = kept
}

func touching(a, b object.Collider) bool {
	return physics.Overlaps(a.Bounds(), b.Bounds())
}
