// Package loop drives a game: it polls input, advances the simulation and
// presents a frame on every tick of an external clock.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/game"
	"github.com/tomz197/skyfall/internal/input"
)

// ErrIdle is returned by Run when no input arrived within the disconnect window.
var ErrIdle = errors.New("loop: session idle")

// Options configures a Driver.
type Options struct {
	Logger *log.Logger // Defaults to a logger that discards output

	// IdleWarn and IdleDisconnect enable the inactivity check when positive.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// Driver owns a game for the duration of a session. All game mutation
// happens on the goroutine calling Run.
type Driver struct {
	game    *game.Game
	surface draw.Surface
	logger  *log.Logger

	idleWarn       time.Duration
	idleDisconnect time.Duration
	lastInput      time.Time
	idleFor        time.Duration
}

// NewDriver creates a driver presenting g on surface.
func NewDriver(g *game.Game, surface draw.Surface, opts Options) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:           g,
		surface:        surface,
		logger:         logger,
		idleWarn:       opts.IdleWarn,
		idleDisconnect: opts.IdleDisconnect,
	}
}

// Run processes one frame per value received on ticks: Input → Update → Draw.
// It returns nil when ctx is done, ticks is closed, the source reports io.EOF
// or a Quit event arrives. Presentation errors are returned wrapped.
func (d *Driver) Run(ctx context.Context, src input.Source, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			done, err := d.frame(src, now)
			if err != nil || done {
				return err
			}
		}
	}
}

// frame runs a single Input → Update → Draw cycle.
func (d *Driver) frame(src input.Source, now time.Time) (done bool, err error) {
	// ===== INPUT PHASE =====
	events, err := src.Poll(now)
	if errors.Is(err, io.EOF) {
		d.logger.Debug("input closed")
		return true, nil
	}
	if err != nil {
		return true, fmt.Errorf("poll input: %w", err)
	}
	if d.lastInput.IsZero() || len(events) > 0 {
		d.lastInput = now
	}
	for _, ev := range events {
		if ev == input.Quit {
			d.logger.Debug("quit requested")
			return true, nil
		}
		d.apply(ev)
	}

	d.idleFor = now.Sub(d.lastInput)
	if d.idleDisconnect > 0 && d.idleFor >= d.idleDisconnect {
		d.logger.Info("disconnecting idle session", "idle", d.idleFor.Round(time.Second))
		return true, ErrIdle
	}

	// ===== UPDATE PHASE =====
	d.game.Tick()

	// ===== DRAW PHASE =====
	d.surface.Clear()
	d.game.Draw(d.surface)
	d.drawIdleWarning()
	if err := d.surface.Present(); err != nil {
		return true, fmt.Errorf("present frame: %w", err)
	}
	return false, nil
}

// apply maps an input event to the matching game mutator.
func (d *Driver) apply(ev input.Event) {
	switch ev {
	case input.MoveLeftStart:
		d.game.MoveLeft()
	case input.MoveLeftStop:
		d.game.StopLeft()
	case input.MoveRightStart:
		d.game.MoveRight()
	case input.MoveRightStop:
		d.game.StopRight()
	case input.Fire:
		d.game.Fire()
	case input.ActivateShield:
		d.game.RequestShield()
	case input.Restart:
		d.game.Restart()
	default:
		d.logger.Debug("unhandled input event", "event", ev)
	}
}

// drawIdleWarning shows a countdown once the session has been idle for IdleWarn.
func (d *Driver) drawIdleWarning() {
	if d.idleWarn <= 0 || d.idleDisconnect <= 0 || d.idleFor < d.idleWarn {
		return
	}
	remaining := (d.idleDisconnect - d.idleFor).Round(time.Second)
	msg := fmt.Sprintf("Idle - disconnecting in %ds, press any key", int(remaining.Seconds()))
	d.surface.Text(idleWarnX, idleWarnY, idleWarnSize, msg, draw.ColorYellow)
}
