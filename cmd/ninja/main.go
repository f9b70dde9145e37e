// ninja is a Doodle-Jump-style arcade game: a ninja bounces up an endless
// column of platforms.
//
// Usage:
//
//	ninja play           - Play in the terminal
//	ninja window         - Play in a desktop window
//	ninja serve          - Start SSH server for remote play
//	ninja leaderboard    - Run the leaderboard HTTP service
//	ninja scores         - Show the leaderboard and the local high score
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible layouts
//	--config <path>  - Use a custom game config YAML
//	--db <path>      - Keep the local high score in a SQLite database
//	--api <url>      - Leaderboard service URL (default: from config)
//	--offline        - Do not talk to the leaderboard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDBPath  string
	flagAPI     string
	flagOffline bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ninja",
	Short: "Ninja Jump - bounce a ninja up an endless column of platforms",
	Long: `Ninja Jump is an arcade game: steer a ninja left and right while it
bounces from platform to platform. Every landing is worth 10 points and every
platform that scrolls away below is worth 20. Fall off the bottom and the run
is over; your score goes to the leaderboard.

Available commands:
  play         - Play in the terminal
  window       - Play in a desktop window
  serve        - Start SSH server for remote play
  leaderboard  - Run the leaderboard HTTP service
  scores       - Show the leaderboard and your high score

Examples:
  ninja leaderboard --listen :8080
  ninja play
  ninja window --api http://scores.example.com
  ninja serve --ssh :2222
  ninja scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to a SQLite database for the local high score (default: per-user app data)")
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "Leaderboard service URL (default: from config)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Play without the leaderboard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(scoresCmd)
}
