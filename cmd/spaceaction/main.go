package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"

	"spaceaction/internal/config"
	"spaceaction/internal/desktop"
	"spaceaction/internal/terminal"
)

var (
	configFlag   = flag.String("config", config.DefaultPath(), "settings file")
	frontendFlag = flag.String("frontend", "", "desktop or terminal (overrides settings)")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 = settings/env/clock")
	levelFlag    = flag.String("log-level", "", "zerolog level (overrides settings)")
	writeFlag    = flag.Bool("write-config", false, "write the effective settings to -config and exit")
)

// glfw must run on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	defer func() {
		if r := recover(); r != nil {
			// Restore the terminal in case the crash skipped tcell's Fini.
			fmt.Fprint(os.Stdout, "\x1b[0m\x1b[?25h\x1b[?1049l")
			fmt.Fprintf(os.Stderr, "\nspaceaction crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "spaceaction: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	s, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *frontendFlag != "" {
		s.Frontend = *frontendFlag
	}
	if *seedFlag != 0 {
		s.Seed = *seedFlag
	}
	if *levelFlag != "" {
		s.LogLevel = *levelFlag
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if *writeFlag {
		return config.Save(*configFlag, s)
	}

	log, closer, err := config.NewLogger(s)
	if err != nil {
		return err
	}
	defer closer.Close()
	// The terminal frontend owns the tty; stderr logging would tear the screen.
	if s.Frontend == config.FrontendTerminal && s.LogFile == "" {
		log = zerolog.Nop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("frontend", s.Frontend).Msg("starting")
	switch s.Frontend {
	case config.FrontendTerminal:
		err = terminal.Run(ctx, s, log)
	default:
		err = desktop.Run(ctx, s, log)
	}
	if err != nil {
		log.Error().Err(err).Msg("frontend exited")
	}
	return err
}
