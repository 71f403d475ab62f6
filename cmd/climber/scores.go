package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagPlain bool
	flagRuns  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse the scoreboard: high scores and best climbs.

Opens an interactive table (tab switches between scores and runs).
Use --plain for plain text output suitable for scripts.

Examples:
  climber scores
  climber scores --plain
  climber scores --plain --runs`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "With --plain, show best climbs instead of scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		if flagRuns {
			printRuns(store)
			return
		}
		printScores(store)
		return
	}

	// Probe terminal size for the interactive table
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, gameID, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Frog Climber")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'climber play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.BestRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Climbs - Frog Climber")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No climbs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-9s  %-7s  %s\n", "Rank", "Height", "Score", "Landings", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-9s  %-7s  %s\n", "----", "------", "-----", "--------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %-9d  %dm%02ds  %s\n",
			i+1, r.Height, r.Score, r.PlatformsLanded,
			r.Duration/60, r.Duration%60,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
