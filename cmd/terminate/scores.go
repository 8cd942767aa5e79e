package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bdadmehr0/terminate/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 recorded runs.

Examples:
  terminate scores
  terminate scores --player alice
  terminate scores --reset`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show scores for one player only")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer, 10)
	} else {
		scores, err = store.TopScores(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if flagScoresPlayer != "" {
		fmt.Printf("High Scores - %s\n", flagScoresPlayer)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'terminate play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %-6s  %s\n", "Rank", "Player", "Score", "Stage", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10d  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.Stage, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Deepest stage: %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.BestStage)
	}
}
