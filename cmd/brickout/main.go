// brickout is a terminal brick-breaker game.
//
// Usage:
//
//	brickout                 - Play (same as 'brickout play')
//	brickout play            - Play the game
//	brickout scores          - Show high scores
//	brickout version         - Print the version
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.brickout/scores.db)
//	--no-sound      - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagNoSound bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "brickout",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickout",
	Short: "Brickout - a brick breaker for your terminal",
	Long: `Brickout is a terminal brick-breaker: bounce the ball off your paddle,
clear the block grid, and chase the high score.

Available commands:
  play     - Play the game (default when no command is given)
  scores   - View high scores
  version  - Print the version

Examples:
  brickout
  brickout play --difficulty hard
  brickout play --seed 42 --no-sound
  brickout scores
  brickout scores --interactive`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(versionCmd)
}
