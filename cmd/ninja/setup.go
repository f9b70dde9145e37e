package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-jump/internal/config"
	"github.com/vovakirdan/ninja-jump/internal/highscore"
	"github.com/vovakirdan/ninja-jump/internal/leaderboard"
	"github.com/vovakirdan/ninja-jump/internal/storage"
)

const appName = "ninja-jump"

// newLogger creates the logger every command uses.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// openLogFile opens ~/.ninja/ninja.log so the terminal UI keeps the
// screen to itself.
func openLogFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".ninja")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "ninja.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadConfig loads the game config or exits.
func loadConfig() config.NinjaConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagAPI != "" {
		cfg.Leaderboard.URL = flagAPI
	}
	return cfg
}

// openHighScores picks the local high score store: the SQLite database
// when --db is set, per-user app data otherwise. Failures fall back to
// memory with a warning. The returned func releases the store.
func openHighScores(logger *log.Logger) (highscore.Store, func()) {
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("Could not open high score database, scores will not persist", "error", err)
			return &highscore.Memory{}, func() {}
		}
		return store.HighScoreFor("local"), func() { store.Close() }
	}

	store, err := highscore.OpenGData(appName)
	if err != nil {
		logger.Warn("Could not open app data, scores will not persist", "error", err)
		return &highscore.Memory{}, func() {}
	}
	return store, func() {}
}

// leaderboardClient returns the leaderboard client, or nil when offline.
func leaderboardClient(cfg config.NinjaConfig) leaderboard.Client {
	if flagOffline || cfg.Leaderboard.URL == "" {
		return nil
	}
	return leaderboard.NewHTTPClient(cfg.Leaderboard.URL, cfg.LeaderboardTimeout())
}
