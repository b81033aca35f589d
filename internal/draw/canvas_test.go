package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/skyfall/internal/physics"
)

func TestCanvasFillRectScales(t *testing.T) {
	// 80x30 terminal cells -> 80x60 pixels for an 800x600 world: 10 units per pixel.
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillRect(physics.Rect{X: 100, Y: 200, W: 50, H: 50}, ColorRed)

	if got := c.Pixel(10, 20); got != ColorRed {
		t.Fatalf("Pixel(10,20) = %v, want red", got)
	}
	if got := c.Pixel(14, 24); got != ColorRed {
		t.Fatalf("Pixel(14,24) = %v, want red", got)
	}
	if got := c.Pixel(15, 20); got != ColorNone {
		t.Fatalf("Pixel(15,20) = %v, want none", got)
	}
	if got := c.Pixel(9, 20); got != ColorNone {
		t.Fatalf("Pixel(9,20) = %v, want none", got)
	}
}

func TestCanvasFillRectClipsOffscreen(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	// Enemies spawn above the top edge.
	c.FillRect(physics.Rect{X: -20, Y: -40, W: 60, H: 60}, ColorGreen)

	if got := c.Pixel(0, 0); got != ColorGreen {
		t.Fatalf("Pixel(0,0) = %v, want green", got)
	}
	if got := c.Pixel(4, 2); got != ColorNone {
		t.Fatalf("Pixel(4,2) = %v, want none", got)
	}
}

func TestCanvasFillRectKeepsSmallObjectsVisible(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	c.FillRect(physics.Rect{X: 101, Y: 101, W: 2, H: 2}, ColorRed)

	if got := c.Pixel(10, 10); got != ColorRed {
		t.Fatalf("Pixel(10,10) = %v, want red", got)
	}
}

func TestCanvasRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(physics.Rect{X: 0, Y: 0, W: 1, H: 2}, ColorBlue) // full cell (1,1)
	c.FillRect(physics.Rect{X: 1, Y: 0, W: 1, H: 1}, ColorRed)  // upper half (2,1)
	c.FillRect(physics.Rect{X: 2, Y: 1, W: 1, H: 1}, ColorGreen)
	c.FillRect(physics.Rect{X: 3, Y: 0, W: 1, H: 1}, ColorWhite)
	c.FillRect(physics.Rect{X: 3, Y: 1, W: 1, H: 1}, ColorCyan)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{
		"\033[1;1H\033[34m█",
		"\033[1;2H\033[31m▀",
		"\033[1;3H\033[32m▄",
		"\033[1;4H\033[37;46m▀",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%q", want, out)
		}
	}
	if strings.Contains(out, "\033[2;") {
		t.Fatalf("empty second row should not be rendered: %q", out)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewScaledCanvas(10, 10, 10, 20)
	c.FillRect(physics.Rect{X: 0, Y: 0, W: 10, H: 20}, ColorYellow)
	c.Clear()

	var buf bytes.Buffer
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("render after Clear wrote %d bytes, want 0", buf.Len())
	}
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := ClampTermSize(200, 70)
	if w != MaxTermWidth || h != MaxTermHeight {
		t.Fatalf("render size = %dx%d, want %dx%d", w, h, MaxTermWidth, MaxTermHeight)
	}
	if col != 20 || row != 5 {
		t.Fatalf("offset = (%d,%d), want (20,5)", col, row)
	}

	w, h, col, row = ClampTermSize(80, 24)
	if w != 80 || h != 24 || col != 0 || row != 0 {
		t.Fatalf("small terminal = %d,%d,%d,%d, want 80,24,0,0", w, h, col, row)
	}
}
