package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
	"github.com/vovakirdan/swallow/internal/platform/tui"
	"github.com/vovakirdan/swallow/internal/storage"
)

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger writes to --log-file, or nowhere. The terminal belongs to
// the game while it runs, so nothing is logged to stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(expandHome(flagLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "swallow",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openDeps opens the rankings store and logger shared by play and menu.
// A store that fails to open is reported and play continues without it.
func openDeps() (tui.Deps, func(), error) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return tui.Deps{}, nil, err
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		return tui.Deps{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rankings database: %v\n", err)
		store = nil
	}

	deps := tui.Deps{
		Store:      store,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}
	if flagReplayDir != "" {
		deps.ReplayDir = expandHome(flagReplayDir)
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		logCloser.Close()
	}
	return deps, cleanup, nil
}
