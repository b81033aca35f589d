package game

import (
	"fmt"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/object"
)

// Draw emits the current frame onto the surface: ship, bullets, enemies and the HUD.
// The caller clears the surface before and presents it after.
func (g *Game) Draw(s draw.Surface) {
	g.Ship.Draw(s)
	drawAll(s, g.Bullets)
	drawAll(s, g.Enemies)
	g.drawHUD(s)
}

func drawAll[T object.Drawable](s draw.Surface, items []T) {
	for _, item := range items {
		item.Draw(s)
	}
}

// drawHUD draws score, high score, shield status and the game over banner.
func (g *Game) drawHUD(s draw.Surface) {
	texts := []object.Text{
		{X: hudX, Y: hudScoreY, Size: hudTextSize, Value: fmt.Sprintf("Score: %d", g.Score), Color: draw.ColorWhite},
		{X: hudX, Y: hudHighScoreY, Size: hudTextSize, Value: fmt.Sprintf("High Score: %d", g.HighScore), Color: draw.ColorWhite},
		{X: hudX, Y: hudShieldY, Size: hudShieldSize, Value: "Shield: " + g.ShieldStatus(), Color: draw.ColorCyan},
	}
	if g.state == StateGameOver {
		texts = append(texts,
			object.Text{X: gameOverX, Y: gameOverY, Size: gameOverSize, Value: "Game Over", Color: draw.ColorRed},
			object.Text{X: gameOverX, Y: restartHintY, Size: restartHintSize, Value: "Press R to Restart", Color: draw.ColorWhite},
		)
	}
	for _, t := range texts {
		t.Draw(s)
	}
}
