package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/skyfall/internal/config"
	"github.com/tomz197/skyfall/internal/loop"
	"golang.org/x/term"
)

func main() {
	// stdout is the screen, so logs go to LOG_FILE or nowhere.
	logOut, logCloser, err := config.OpenLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	logger := config.NewLogger(logOut, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.RunTerminal(ctx, reader, os.Stdout, loop.TerminalOptions{
		Logger: logger,
		FPS:    config.GetEnvInt("GAME_FPS", loop.DefaultFPS),
	})
	if err != nil {
		logger.Error("game error", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
