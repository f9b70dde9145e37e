package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-jump/internal/leaderboard"
	"github.com/vovakirdan/ninja-jump/internal/storage"
)

var (
	flagListen  string
	flagBoardDB string
	flagLimit   int
	flagReset   bool
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Run the leaderboard HTTP service",
	Long: `Serve the leaderboard API the game talks to:

  POST /api/scores  {"score":int,"playerName":string}
  GET  /api/scores  [{"playerName":string,"score":int}, ...]
  GET  /api/scores/{name}  {"playerName":string,"score":int}

Scores are kept in a SQLite database. GET returns the best scores first.

Examples:
  ninja leaderboard
  ninja leaderboard --listen :9000 --limit 20
  ninja leaderboard --reset`,
	Args: cobra.NoArgs,
	Run:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&flagListen, "listen", ":8080", "HTTP listen address")
	leaderboardCmd.Flags().StringVar(&flagBoardDB, "scores-db", "~/.ninja/leaderboard.db", "Path to the leaderboard database")
	leaderboardCmd.Flags().IntVar(&flagLimit, "limit", 0, "Rows returned by GET (0 = from config)")
	leaderboardCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete every stored score before serving")
}

func runLeaderboard(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, "leaderboard")

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.Leaderboard.Limit
	}

	store, err := storage.Open(flagBoardDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error resetting leaderboard: %v\n", err)
			os.Exit(1)
		}
		logger.Warn("Leaderboard reset", "db", flagBoardDB)
	}

	if stats, err := store.GetStats(); err != nil {
		logger.Warn("Could not read leaderboard stats", "error", err)
	} else {
		logger.Info("Leaderboard loaded",
			"games", stats.GamesCount,
			"players", stats.Players,
			"best", stats.HighScore,
			"avg", fmt.Sprintf("%.1f", stats.AvgScore),
			"last", stats.LastPlayed.Format(time.DateTime),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := leaderboard.NewServer(store, limit, logger)
	if err := srv.ListenAndServe(ctx, flagListen); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
