// Package web serves the game to browsers over a websocket. The server runs
// the simulation and sends draw operations; the page only paints and sends input.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/physics"
)

// writeTimeout bounds how long a single frame may take to reach the client.
const writeTimeout = 5 * time.Second

// Transport sends one text message to the client.
type Transport interface {
	Write(ctx context.Context, data []byte) error
}

// Op is a single draw operation in a frame message.
type Op struct {
	Op    string     `json:"op"` // clear, rect or text
	X     float64    `json:"x,omitempty"`
	Y     float64    `json:"y,omitempty"`
	W     float64    `json:"w,omitempty"`
	H     float64    `json:"h,omitempty"`
	Size  int        `json:"size,omitempty"`
	Text  string     `json:"text,omitempty"`
	Color draw.Color `json:"color,omitempty"`
}

// frameMessage is what Present sends.
type frameMessage struct {
	Type string `json:"type"`
	Ops  []Op   `json:"ops"`
}

// FrameSurface collects draw calls and sends them as one JSON message per frame.
type FrameSurface struct {
	ctx       context.Context
	transport Transport
	ops       []Op
}

var _ draw.Surface = (*FrameSurface)(nil)

// NewFrameSurface creates a surface that writes frames to t until ctx is done.
func NewFrameSurface(ctx context.Context, t Transport) *FrameSurface {
	return &FrameSurface{ctx: ctx, transport: t}
}

func (s *FrameSurface) Clear() {
	s.ops = append(s.ops[:0], Op{Op: "clear"})
}

func (s *FrameSurface) FillRect(r physics.Rect, c draw.Color) {
	s.ops = append(s.ops, Op{Op: "rect", X: r.X, Y: r.Y, W: r.W, H: r.H, Color: c})
}

func (s *FrameSurface) Text(x, y float64, size int, value string, c draw.Color) {
	s.ops = append(s.ops, Op{Op: "text", X: x, Y: y, Size: size, Text: value, Color: c})
}

// Present sends the collected operations.
func (s *FrameSurface) Present() error {
	data, err := json.Marshal(frameMessage{Type: "frame", Ops: s.ops})
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	ctx, cancel := context.WithTimeout(s.ctx, writeTimeout)
	defer cancel()
	if err := s.transport.Write(ctx, data); err != nil {
		return fmt.Errorf("send frame: %w", err)
	}
	return nil
}
