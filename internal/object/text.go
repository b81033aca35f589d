package object

import "github.com/tomz197/skyfall/internal/draw"

// Text is a simple drawable text object in logical coordinates.
// (X, Y) is the start of the baseline.
type Text struct {
	X     float64
	Y     float64
	Size  int
	Value string
	Color draw.Color
}

// Draw writes the text onto the surface. Empty text is skipped.
func (t Text) Draw(s draw.Surface) {
	if t.Value == "" {
		return
	}
	s.Text(t.X, t.Y, t.Size, t.Value, t.Color)
}
