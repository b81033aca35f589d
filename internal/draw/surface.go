// Package draw provides drawing surfaces for the game: a terminal canvas
// rendered with half-block characters and the Surface contract the game draws on.
package draw

import (
	"fmt"

	"github.com/tomz197/skyfall/internal/physics"
)

//go:generate go tool mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks

// Color identifies a palette entry. The zero value is transparent.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
)

var colorNames = [...]string{
	ColorNone:   "none",
	ColorWhite:  "white",
	ColorRed:    "red",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorBlue:   "blue",
	ColorCyan:   "cyan",
}

// ansiCodes are the SGR foreground codes; background is +10.
var ansiCodes = [...]int{
	ColorWhite:  37,
	ColorRed:    31,
	ColorGreen:  32,
	ColorYellow: 33,
	ColorBlue:   34,
	ColorCyan:   36,
}

// String returns the CSS-compatible color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "none"
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(text []byte) error {
	for i, name := range colorNames {
		if name == string(text) {
			*c = Color(i)
			return nil
		}
	}
	return fmt.Errorf("draw: unknown color %q", text)
}

// ansiFG returns the SGR foreground code, or 0 for ColorNone.
func (c Color) ansiFG() int {
	if c == ColorNone || int(c) >= len(ansiCodes) {
		return 0
	}
	return ansiCodes[c]
}

// Surface receives one frame of drawing primitives in logical world coordinates.
// Clear is called before each frame's draws and Present after them.
type Surface interface {
	Clear()
	FillRect(r physics.Rect, c Color)
	// Text draws s with its baseline starting at (x, y). size is the nominal
	// font height in logical units.
	Text(x, y float64, size int, s string, c Color)
	Present() error
}
