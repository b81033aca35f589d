package game

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/draw/mocks"
	"github.com/tomz197/skyfall/internal/object"
)

func TestDrawHUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	g, _ := newTestGame(t)
	g.Score = 30
	g.HighScore = 50

	surface.EXPECT().FillRect(gomock.Any(), gomock.Any()).AnyTimes()
	gomock.InOrder(
		surface.EXPECT().Text(10.0, 30.0, 20, "Score: 30", draw.ColorWhite),
		surface.EXPECT().Text(10.0, 60.0, 20, "High Score: 50", draw.ColorWhite),
		surface.EXPECT().Text(10.0, 90.0, 16, "Shield: READY", draw.ColorCyan),
	)

	g.Draw(surface)
}

func TestDrawGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	g, _ := newTestGame(t)
	g.SpawnEnemy(enemyAt(object.Grunt, 0, 599))
	g.Tick()

	surface.EXPECT().FillRect(gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().Text(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
	surface.EXPECT().Text(300.0, 300.0, 40, "Game Over", draw.ColorRed)
	surface.EXPECT().Text(300.0, 340.0, 20, "Press R to Restart", draw.ColorWhite)

	g.Draw(surface)
}

func TestDrawEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	g, _ := newTestGame(t)
	g.Fire()
	g.SpawnEnemy(enemyAt(object.Darter, 200, 100))

	surface.EXPECT().Text(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	surface.EXPECT().FillRect(gomock.Any(), draw.ColorWhite).Times(2)
	surface.EXPECT().FillRect(gomock.Any(), draw.ColorGreen).Times(2)
	gomock.InOrder(
		surface.EXPECT().FillRect(g.Ship.Bounds(), draw.ColorBlue),
		surface.EXPECT().FillRect(g.Bullets[0].Bounds(), draw.ColorRed),
		surface.EXPECT().FillRect(g.Enemies[0].Bounds(), draw.ColorYellow),
	)

	g.Draw(surface)
}
