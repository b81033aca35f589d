package draw

import (
	"io"

	"github.com/tomz197/skyfall/internal/physics"
)

// textOverlay is a string drawn on top of the canvas after it is rendered.
type textOverlay struct {
	col, row int
	value    string
	color    Color
}

// TerminalSurface renders frames to an ANSI terminal.
// Rectangles go to a scaled half-block Canvas; text is written as an overlay.
type TerminalSurface struct {
	canvas   *Canvas
	writer   *ChunkWriter
	sizeFunc TermSizeFunc
	texts    []textOverlay

	termWidth  int
	termHeight int
}

// Ensure TerminalSurface satisfies Surface.
var _ Surface = (*TerminalSurface)(nil)

// NewTerminalSurface creates a surface mapping a logicalWidth x logicalHeight world
// onto the terminal behind w. sizeFunc is polled every frame to follow resizes.
func NewTerminalSurface(w io.Writer, sizeFunc TermSizeFunc, logicalWidth, logicalHeight float64) *TerminalSurface {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	s := &TerminalSurface{
		writer:   NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
	}
	termWidth, termHeight, _ := sizeFunc()
	renderWidth, renderHeight, _, _ := ClampTermSize(termWidth, termHeight)
	s.canvas = NewScaledCanvas(renderWidth, renderHeight, logicalWidth, logicalHeight)
	s.resize(termWidth, termHeight)
	return s
}

// Canvas exposes the underlying pixel buffer.
func (s *TerminalSurface) Canvas() *Canvas {
	return s.canvas
}

// resize re-centres the canvas when the terminal dimensions change.
func (s *TerminalSurface) resize(termWidth, termHeight int) {
	s.termWidth = termWidth
	s.termHeight = termHeight
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(termWidth, termHeight)
	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.writer.SetOffset(offsetCol, offsetRow)
}

// Clear starts a new frame, following any terminal resize.
func (s *TerminalSurface) Clear() {
	if w, h, err := s.sizeFunc(); err == nil && (w != s.termWidth || h != s.termHeight) {
		s.resize(w, h)
	}
	s.canvas.Clear()
	s.texts = s.texts[:0]
	s.writer.WriteString("\033[H\033[2J")
}

// FillRect draws a filled rectangle in logical coordinates.
func (s *TerminalSurface) FillRect(r physics.Rect, c Color) {
	s.canvas.FillRect(r, c)
}

// Text queues a text overlay. Terminal cells have a fixed font, so size only
// shifts the baseline up to the text's vertical centre.
func (s *TerminalSurface) Text(x, y float64, size int, value string, c Color) {
	col, row := s.canvas.LogicalToTerminal(x, y-float64(size)/2)
	s.texts = append(s.texts, textOverlay{col: col, row: row, value: value, color: c})
}

// Present renders the canvas, the border and text overlays, then flushes.
func (s *TerminalSurface) Present() error {
	s.canvas.Render(s.writer)
	s.canvas.RenderBorder(s.writer)
	for _, t := range s.texts {
		s.writer.WriteAt(max(t.col, 1), max(t.row, 1), t.value, t.color)
	}
	return s.writer.Flush()
}
