package game

// Input mutators. They are called by the frame driver between ticks, and
// their effect is visible to the very next Step. All of them except Restart
// are ignored once the game is over.

// SetVelocity sets the ship's horizontal velocity per tick.
func (g *Game) SetVelocity(dx float64) {
	if g.state != StatePlaying {
		return
	}
	g.Ship.DX = dx
}

// MoveLeft starts moving the ship left at its speed.
func (g *Game) MoveLeft() {
	g.SetVelocity(-g.Ship.Speed)
}

// MoveRight starts moving the ship right at its speed.
func (g *Game) MoveRight() {
	g.SetVelocity(g.Ship.Speed)
}

// StopLeft stops the ship if it is moving left.
// Releasing one direction does not cancel a move the other way.
func (g *Game) StopLeft() {
	if g.Ship.DX < 0 {
		g.SetVelocity(0)
	}
}

// StopRight stops the ship if it is moving right.
func (g *Game) StopRight() {
	if g.Ship.DX > 0 {
		g.SetVelocity(0)
	}
}

// StopMoving stops the ship regardless of direction.
func (g *Game) StopMoving() {
	g.SetVelocity(0)
}

// Fire launches a bullet from the ship's current position.
func (g *Game) Fire() {
	if g.state != StatePlaying {
		g.logger.Debug("fire ignored", "state", g.state)
		return
	}
	g.Bullets = append(g.Bullets, g.Ship.Fire())
}
