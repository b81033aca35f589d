package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/skyfall/internal/game"
	"github.com/tomz197/skyfall/internal/input"
	"github.com/tomz197/skyfall/internal/loop"
)

// inputQueueSize is how many client events may wait for the next tick.
const inputQueueSize = 64

// helloMessage is sent once, before the first frame.
type helloMessage struct {
	Type    string `json:"type"`
	Session string `json:"session"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// clientMessage is what the page sends: {"type":"input","event":"fire"}.
type clientMessage struct {
	Type  string      `json:"type"`
	Event input.Event `json:"event"`
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Logger *log.Logger
	FPS    int

	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// Handler upgrades requests to websockets and runs one game per connection.
type Handler struct {
	logger         *log.Logger
	fps            int
	idleWarn       time.Duration
	idleDisconnect time.Duration
}

// NewHandler creates a websocket game handler.
func NewHandler(opts HandlerOptions) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		logger:         logger,
		fps:            opts.FPS,
		idleWarn:       opts.IdleWarn,
		idleDisconnect: opts.IdleDisconnect,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // The page may be served from another origin in development
	})
	if err != nil {
		h.logger.Error("failed to accept websocket", "err", err)
		return
	}

	id := uuid.NewString()
	logger := h.logger.With("session", id)
	logger.Info("session started", "remote", r.RemoteAddr)

	if err := h.serve(r.Context(), id, newTransport(conn), logger); err != nil {
		logger.Warn("session ended with error", "err", err)
		return
	}
	logger.Info("session ended")
}

// serve runs the input reader and the frame driver until either finishes.
func (h *Handler) serve(ctx context.Context, id string, t *wsTransport, logger *log.Logger) error {
	hello, err := json.Marshal(helloMessage{
		Type:    "hello",
		Session: id,
		Width:   game.WorldWidth,
		Height:  game.WorldHeight,
	})
	if err != nil {
		return err
	}
	if err := t.Write(ctx, hello); err != nil {
		return err
	}

	queue := input.NewQueue(inputQueueSize)
	g := game.New(game.Options{Logger: logger})

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer queue.Close()
		readInput(ctx, t, queue, logger)
		return nil
	})
	eg.Go(func() error {
		ticker := time.NewTicker(loop.FrameInterval(h.fps))
		defer ticker.Stop()

		driver := loop.NewDriver(g, NewFrameSurface(ctx, t), loop.Options{
			Logger:         logger,
			IdleWarn:       h.idleWarn,
			IdleDisconnect: h.idleDisconnect,
		})
		err := driver.Run(ctx, queue, ticker.C)
		logger.Info("game ended", "score", g.Score, "high_score", g.HighScore)

		// Closing the connection also stops the reader.
		switch {
		case errors.Is(err, loop.ErrIdle):
			_ = t.Close(websocket.StatusPolicyViolation, "idle")
			return nil
		case err != nil:
			_ = t.Close(websocket.StatusInternalError, "frame error")
			return err
		default:
			_ = t.Close(websocket.StatusNormalClosure, "bye")
			return nil
		}
	})
	return eg.Wait()
}

// readInput pushes client events onto queue until the connection closes.
// Malformed messages are skipped.
func readInput(ctx context.Context, t *wsTransport, queue *input.Queue, logger *log.Logger) {
	for {
		data, err := t.Read(ctx)
		if err != nil {
			if status := websocket.CloseStatus(err); status != -1 {
				logger.Debug("client closed connection", "status", status)
			} else {
				logger.Debug("read failed", "err", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug("dropping malformed message", "err", err)
			continue
		}
		if msg.Type != "input" {
			logger.Debug("dropping message", "type", msg.Type)
			continue
		}
		if !queue.Push(msg.Event) {
			logger.Debug("input queue full, dropping event", "event", msg.Event)
		}
	}
}
