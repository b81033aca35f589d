package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/game"
	"github.com/tomz197/skyfall/internal/input"
)

// TerminalOptions configures a terminal session.
type TerminalOptions struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the local terminal size
	Logger       *log.Logger
	FPS          int

	// Idle limits, zero for local play.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// RunTerminal plays one game on an ANSI terminal: keys are read from r and
// frames written to w. It blocks until the player quits, input ends or ctx is done.
func RunTerminal(ctx context.Context, r *bufio.Reader, w io.Writer, opts TerminalOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := game.New(game.Options{Logger: logger})
	surface := draw.NewTerminalSurface(w, opts.TermSizeFunc, game.WorldWidth, game.WorldHeight)
	driver := NewDriver(g, surface, Options{
		Logger:         logger,
		IdleWarn:       opts.IdleWarn,
		IdleDisconnect: opts.IdleDisconnect,
	})

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	ticker := time.NewTicker(FrameInterval(opts.FPS))
	defer ticker.Stop()

	logger.Info("game started")
	err := driver.Run(ctx, input.StartStream(r), ticker.C)
	logger.Info("game ended", "score", g.Score, "high_score", g.HighScore)
	return err
}
