package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ninja-jump/internal/core"
	"github.com/vovakirdan/ninja-jump/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Ninja Jump in the terminal.

Controls:
  Enter       - Start a run with the entered name
  Left/A      - Steer left
  Right/D     - Steer right
  Ctrl+R      - Restart with the same name
  Esc         - Back to the menu (quits from the menu)
  Ctrl+S      - Save a screenshot to ~/.ninja/screenshots
  Ctrl+C      - Quit

Terminals do not report key releases, so the ninja stops once the key
stops repeating (terminal.key_release_ticks in the config).

Logs are written to ~/.ninja/ninja.log.

Examples:
  ninja play
  ninja play --name kai
  ninja play --seed 42 --offline
  ninja play --config ./my-ninja.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Prefill the player name")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger := newLogger(logOut, "ninja")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	scores, closeScores := openHighScores(logger)
	defer closeScores()

	err := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		HighScores:  scores,
		Leaderboard: leaderboardClient(cfg),
		Logger:      logger,
		PlayerName:  flagName,
	})
	if err != nil {
		closeScores()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
