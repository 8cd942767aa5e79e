package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bdadmehr0/terminate/internal/core"
	"github.com/bdadmehr0/terminate/internal/game"
	"github.com/bdadmehr0/terminate/internal/platform/tui"
	"github.com/bdadmehr0/terminate/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start playing directly, skipping the menu.

Controls:
  A/D        - Move left/right
  Shift+A/D  - Sprint (2 cells per step)
  E          - Attack an adjacent enemy or open a box
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit (saves a resumable checkpoint)

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  terminate play
  terminate play --difficulty hard
  terminate play --resume
  terminate play --config ./my-terminate.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved run if one exists")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size determines the strip width
	cfg := core.DefaultRuntimeConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	player := playerName()

	var resume *game.SaveState
	if flagResume && store != nil {
		resume, err = store.LoadCheckpoint(player)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load checkpoint: %v\n", err)
		}
		if resume == nil {
			fmt.Fprintln(os.Stderr, "No saved run found, starting fresh.")
		}
	}

	runErr := tui.Run(game.New(), store, player, cfg, resume)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
