// astrobots is a terminal sliding-block puzzle: guide the astronaut to
// the goal by sliding it and the robots that block the way. Actors slide
// until they hit the board edge or another actor.
//
// Usage:
//
//	astrobots play            - Play a randomly generated puzzle
//	astrobots solve <file>    - Print the solution walkthrough for a board
//	astrobots boards          - List available board files
//	astrobots history         - Show recorded play results
//	astrobots serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible puzzle generation
//	--db <path>     - Results database path (default: ~/.astrobots/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "astrobots",
	Short: "Astro and Robots - a sliding puzzle in your terminal",
	Long: `Astro and Robots is a terminal puzzle game. The astronaut must reach
the goal cell, but actors slide until something stops them: the board
edge or another actor. Robots are obstacles, and repositioning them is
the only way to stop a slide where you need it.

Available commands:
  play     - Play a puzzle (generated, built-in, or from a board file)
  solve    - Print the full solution walkthrough for a board file
  boards   - List available board files
  history  - View recorded play results
  serve    - Start SSH server for remote play

Examples:
  astrobots play
  astrobots play --rows 7 --cols 7 --difficulty hard
  astrobots play --default
  astrobots solve ./boards/classic.yaml
  astrobots serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.astrobots/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
