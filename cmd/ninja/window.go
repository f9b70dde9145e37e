package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-jump/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Ninja Jump in a 400x600 desktop window.

Controls:
  Type + Enter  - Start a run with that name
  Left/Right    - Steer (releasing either arrow stops the ninja)
  Ctrl+R        - Restart with the same name
  Esc           - Back to the menu (quits from the menu)

Examples:
  ninja window
  ninja window --api http://localhost:8080`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagName, "name", "", "Prefill the player name")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, "ninja")

	scores, closeScores := openHighScores(logger)
	defer closeScores()

	err := gui.Run(gui.Options{
		Config:      cfg,
		HighScores:  scores,
		Leaderboard: leaderboardClient(cfg),
		Logger:      logger,
		Seed:        flagSeed,
		TickRate:    flagFPS,
		PlayerName:  flagName,
	})
	if err != nil {
		closeScores()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
