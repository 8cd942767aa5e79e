// terminate is a terminal action game: walk the strip, fight enemies,
// open boxes, reach the exit.
//
// Usage:
//
//	terminate play           - Start a run directly
//	terminate menu           - Interactive menu (new game, continue, scores, help)
//	terminate serve          - Start SSH server for remote play
//	terminate scores         - Show the high score table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.terminate/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "terminate",
	Short: "Terminate - a terminal action game",
	Long: `Terminate is a terminal action game. You walk a strip of terrain
toward the stage exit while enemies chase you. Attack them, open loot
boxes, and see how far you get.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with continue, scores and help
  serve    - Start SSH server for remote play
  scores   - View the high score table

Examples:
  terminate play
  terminate play --difficulty hard
  terminate menu
  terminate serve --ssh :2222
  terminate scores`,
}

// playerName resolves the local player identity used for scores and saves.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.terminate/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
