package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astrobots/internal/platform/tui"
	"github.com/vovakirdan/astrobots/internal/storage"
)

var (
	flagHistoryBest  bool
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded play results",
	Long: `Display recorded play results in an interactive table. Use --plain
for script-friendly text output, and --best to sort by how close each
won game came to the optimal move count.

Examples:
  astrobots history
  astrobots history --plain --limit 20
  astrobots history --best --plain
  astrobots history --clear`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryBest, "best", false, "Sort won games by distance from the optimal move count")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of results to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print plain text instead of the interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded results")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open results database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All recorded results deleted.")
		return nil
	}

	if !flagHistoryPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, width, height, flagHistoryBest)
	}

	var results []storage.Result
	if flagHistoryBest {
		results, err = store.BestResults(flagHistoryLimit)
	} else {
		results, err = store.RecentResults(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'astrobots play' to record your first result!")
		return nil
	}

	// Print header
	fmt.Printf("  %-7s  %-6s  %-6s  %-8s  %-9s  %s\n", "Board", "Robots", "Moves", "Optimal", "Result", "Date")
	fmt.Printf("  %-7s  %-6s  %-6s  %-8s  %-9s  %s\n", "-----", "------", "-----", "-------", "------", "----")

	for _, r := range results {
		outcome := "abandoned"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-7s  %-6d  %-6d  %-8d  %-9s  %s\n",
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Robots, r.MovesTaken, r.OptimalMoves, outcome,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetStats()
	if err == nil && stats.GamesWon > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d  Best: %d moves  Avg: %.1f moves\n",
			stats.GamesPlayed, stats.GamesWon, stats.BestMoves, stats.AvgMoves)
	}

	return nil
}
