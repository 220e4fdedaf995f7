package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished rounds",
	Long: `Display the top finished rounds from the scores database.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse rounds in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to print")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		def := core.DefaultConfig()
		width, height := def.ScreenW, def.ScreenH
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	rounds, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Length", "End", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "------", "---", "------", "----")

	for i, r := range rounds {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.Length, r.Reason, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.Rounds, stats.AvgScore)
	}
	return nil
}
