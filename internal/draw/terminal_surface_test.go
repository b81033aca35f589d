package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/skyfall/internal/physics"
)

func fixedSize(w, h int) TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestTerminalSurfaceFrame(t *testing.T) {
	var out bytes.Buffer
	s := NewTerminalSurface(&out, fixedSize(80, 30), 800, 600)

	s.Clear()
	s.FillRect(physics.Rect{X: 0, Y: 0, W: 10, H: 20}, ColorBlue)
	s.Text(10, 30, 20, "Score: 10", ColorWhite)
	if err := s.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "\033[H\033[2J") {
		t.Fatalf("frame should start with a screen clear, got %q", got[:min(len(got), 20)])
	}
	if !strings.Contains(got, "\033[37mScore: 10\033[0m") {
		t.Fatalf("frame missing score text: %q", got)
	}
	if !strings.Contains(got, "█") {
		t.Fatalf("frame missing ship pixels: %q", got)
	}
}

func TestTerminalSurfaceFollowsResize(t *testing.T) {
	width, height := 80, 30
	var out bytes.Buffer
	s := NewTerminalSurface(&out, func() (int, int, error) { return width, height, nil }, 800, 600)

	width, height = 200, 70
	s.Clear()
	if s.Canvas().TerminalWidth() != MaxTermWidth {
		t.Fatalf("canvas width = %d, want %d", s.Canvas().TerminalWidth(), MaxTermWidth)
	}
	if s.Canvas().OffsetCol() != 20 || s.Canvas().OffsetRow() != 5 {
		t.Fatalf("offset = (%d,%d), want (20,5)", s.Canvas().OffsetCol(), s.Canvas().OffsetRow())
	}
}
