package game

// Tick advances the game by one frame: simulation step, collision
// resolution, then the spawn check. It does nothing once the game is over.
func (g *Game) Tick() {
	if g.state != StatePlaying {
		return
	}
	g.Step()
	g.ResolveCollisions()
	g.spawner.Update(g)
}

// Step moves every entity by one tick, in order: shield decay, ship,
// bullets, enemies. An enemy passing the bottom edge ends the game.
func (g *Game) Step() {
	g.Ship.DecayShield(TickDuration)
	g.Ship.Move(g.screen)
	g.moveBullets()
	g.moveEnemies()
}

// moveBullets advances bullets and drops those that left the top.
func (g *Game) moveBullets() {
	kept := g.Bullets[:0] // reuse backing array
	for _, b := range g.Bullets {
		if !b.Update() {
			kept = append(kept, b)
		}
	}
	clear(g.Bullets[len(kept):])
	g.Bullets = kept
}

// moveEnemies advances enemies and drops those that left the bottom.
func (g *Game) moveEnemies() {
	kept := g.Enemies[:0]
	for _, e := range g.Enemies {
		if e.Update(g.screen) {
			g.endGame("enemy escaped")
			continue
		}
		kept = append(kept, e)
	}
	clear(g.Enemies[len(kept):])
	g.Enemies = kept
}
