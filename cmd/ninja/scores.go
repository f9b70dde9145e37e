package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-jump/internal/leaderboard"
)

var flagPlayer string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and your high score",
	Long: `Fetch the leaderboard from the service and print it together with the
local high score.

Examples:
  ninja scores
  ninja scores --api http://localhost:9000
  ninja scores --player kai
  ninja scores --db ./ninja.db --offline`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Also show the best leaderboard score of this player")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, "ninja")

	scores, closeScores := openHighScores(logger)
	high, err := scores.Load()
	closeScores()
	if err != nil {
		logger.Warn("Could not read high score", "error", err)
	}
	fmt.Printf("Your high score: %d\n\n", high)

	client := leaderboardClient(cfg)
	if client == nil {
		fmt.Println("Leaderboard: offline")
		return
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LeaderboardTimeout())
	defer cancel()

	entries, err := client.FetchAll(ctx)
	if err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Error fetching leaderboard: %v\n", err)
		os.Exit(1)
	}

	if hc, ok := client.(*leaderboard.HTTPClient); ok && flagPlayer != "" {
		best, err := hc.PlayerBest(ctx, flagPlayer)
		if err != nil {
			logger.Warn("Could not fetch player best", "player", flagPlayer, "error", err)
		} else {
			fmt.Printf("Best of %s: %d\n\n", best.PlayerName, best.Score)
		}
	}

	fmt.Println("Leaderboard")
	fmt.Println("-----------")
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}
	for i, e := range entries {
		fmt.Printf("%3d. %-20s %8d\n", i+1, e.PlayerName, e.Score)
	}
}
