package game

// RequestShield raises the ship's shield if the one-shot ability is still
// available and no shield is running. Otherwise the request is ignored.
func (g *Game) RequestShield() {
	switch {
	case g.state != StatePlaying:
		g.logger.Debug("shield request ignored", "reason", "game over")
	case !g.ShieldAvailable:
		g.logger.Debug("shield request ignored", "reason", "already used")
	case g.Ship.ShieldTimer > 0:
		g.logger.Debug("shield request ignored", "reason", "shield active")
	default:
		g.Ship.ActivateShield()
		g.ShieldAvailable = false
		g.logger.Debug("shield activated", "duration", g.Ship.ShieldTimer)
	}
}

// ShieldStatus describes the ability for the HUD.
func (g *Game) ShieldStatus() string {
	switch {
	case g.Ship.Shield:
		return "ACTIVE"
	case g.ShieldAvailable:
		return "READY"
	default:
		return "USED"
	}
}
