package object

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/draw/mocks"
	"github.com/tomz197/skyfall/internal/physics"
)

var testScreen = Screen{Width: 800, Height: 600}

func TestNewShipPosition(t *testing.T) {
	s := NewShip(testScreen)
	if s.X != 375 || s.Y != 540 {
		t.Fatalf("ship at (%v,%v), want (375,540)", s.X, s.Y)
	}
	if s.Health != 3 || s.Shield || s.ShieldTimer != 0 {
		t.Fatalf("unexpected initial ship state: %+v", s)
	}
}

func TestShipMoveStaysOnScreen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewShip(testScreen)
		s.X = rapid.Float64Range(0, testScreen.Width-s.Width).Draw(t, "x")
		s.DX = rapid.Float64Range(-1000, 1000).Draw(t, "dx")

		s.Move(testScreen)

		if s.X < 0 || s.X > testScreen.Width-s.Width {
			t.Fatalf("ship x = %v after move, outside [0,%v]", s.X, testScreen.Width-s.Width)
		}
	})
}

func TestShipMoveClampsAtEdges(t *testing.T) {
	s := NewShip(testScreen)
	s.X = 748
	s.DX = 4
	s.Move(testScreen)
	if s.X != 750 {
		t.Fatalf("x = %v, want 750", s.X)
	}

	s.X = 2
	s.DX = -4
	s.Move(testScreen)
	if s.X != 0 {
		t.Fatalf("x = %v, want 0", s.X)
	}
}

func TestShipShieldDecay(t *testing.T) {
	s := NewShip(testScreen)
	s.ActivateShield()

	tick := 16 * time.Millisecond
	ticks := 0
	for s.Shield {
		s.DecayShield(tick)
		ticks++
		if ticks > 1000 {
			t.Fatalf("shield never decayed")
		}
	}
	// 5000ms / 16ms rounds up to 313 ticks.
	if ticks != 313 {
		t.Fatalf("shield lasted %d ticks, want 313", ticks)
	}
	if s.ShieldTimer != 0 {
		t.Fatalf("shield timer = %v, want 0", s.ShieldTimer)
	}
}

func TestShipAbsorbHit(t *testing.T) {
	s := NewShip(testScreen)
	s.ActivateShield()
	s.AbsorbHit()
	if s.Shield || s.ShieldTimer != 0 {
		t.Fatalf("shield = %v timer = %v, want off and 0", s.Shield, s.ShieldTimer)
	}
}

func TestShipTakeHitFloorsAtZero(t *testing.T) {
	s := NewShip(testScreen)
	s.Health = 1
	if !s.TakeHit() {
		t.Fatalf("TakeHit at health 1 should destroy the ship")
	}
	if s.TakeHit(); s.Health != 0 {
		t.Fatalf("health = %d, want 0", s.Health)
	}
}

func TestShipFire(t *testing.T) {
	s := NewShip(testScreen)
	b := s.Fire()
	if b.X != 395 || b.Y != 540 {
		t.Fatalf("bullet at (%v,%v), want (395,540)", b.X, b.Y)
	}
	if b.Width != 10 || b.Height != 20 || b.Speed != 5 {
		t.Fatalf("unexpected bullet geometry: %+v", b)
	}
}

func TestShipDrawShielded(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)

	s := NewShip(testScreen)
	s.ActivateShield()

	bar := physics.Rect{X: 370, Y: 530, W: 60, H: 5}
	gomock.InOrder(
		surface.EXPECT().FillRect(s.Bounds(), draw.ColorCyan),
		surface.EXPECT().FillRect(bar, draw.ColorWhite),
		surface.EXPECT().FillRect(bar, draw.ColorGreen),
	)
	s.Draw(surface)
}
