package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bdadmehr0/terminate/internal/core"
	"github.com/bdadmehr0/terminate/internal/game"
	"github.com/bdadmehr0/terminate/internal/platform/tui"
	"github.com/bdadmehr0/terminate/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. A Continue entry
appears when you have a saved run. After a game ends, you return to
the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  terminate menu
  terminate menu --fps 30
  terminate menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := core.DefaultRuntimeConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	player := playerName()

	// Menu loop
menuLoop:
	for {
		menuResult, err := tui.RunMenu(store, player, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Carry size changes over
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		switch menuResult.Choice {
		case tui.MenuChoiceNewGame, tui.MenuChoiceContinue:
			var resume *game.SaveState
			if menuResult.Choice == tui.MenuChoiceContinue && store != nil {
				resume, _ = store.LoadCheckpoint(player)
			}

			// Fresh seed for each run
			cfg.Seed = time.Now().UnixNano()

			if err := tui.Run(game.New(), store, player, cfg, resume); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, player, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				break menuLoop
			}

		case tui.MenuChoiceHelp:
			goBack, helpErr := tui.RunHelp(cfg.ScreenW, cfg.ScreenH)
			if helpErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", helpErr)
			}
			if !goBack {
				break menuLoop
			}
		}
	}

	if store != nil {
		store.Close()
	}
}
