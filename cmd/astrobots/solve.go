package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astrobots/internal/boards"
	"github.com/vovakirdan/astrobots/internal/game"
	"github.com/vovakirdan/astrobots/internal/puzzle"
)

var flagSolveShowBoards bool

var solveCmd = &cobra.Command{
	Use:   "solve [board]",
	Short: "Print the solution walkthrough for a board",
	Long: `Solve a board and print the shortest solution as a sequence of
position changes. The board is a file path or a board ID; with no
argument the built-in board is solved.

Examples:
  astrobots solve
  astrobots solve ./boards/my-board.yaml
  astrobots solve my-board
  astrobots solve --show-boards ./boards/my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveShowBoards, "show-boards", false, "Print the board after every step")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var board boards.Board
	if len(args) == 0 {
		board = boards.Classic()
	} else {
		var err error
		board, err = loadBoardArg(".", args[0])
		if err != nil {
			return err
		}
	}

	initial, err := board.ToState()
	if err != nil {
		return err
	}

	session, err := game.New(initial)
	if err != nil {
		return fmt.Errorf("board %q: %w", board.ID, err)
	}

	w := session.Walkthrough()
	changes, err := w.Changes()
	if err != nil {
		return err
	}

	name := board.Name
	if name == "" {
		name = board.ID
	}
	fmt.Printf("Solution for %s: %d moves\n\n", name, len(changes))

	fmt.Println("  0. starting position")
	if flagSolveShowBoards {
		printBoard(initial)
	}

	for i, c := range changes {
		fmt.Printf("  %d. %s\n", i+1, c)
		if flagSolveShowBoards {
			w.Next()
			printBoard(w.State())
		}
	}

	return nil
}

func printBoard(s puzzle.State) {
	fmt.Println()
	for _, line := range strings.Split(s.String(), "\n") {
		fmt.Printf("     %s\n", line)
	}
	fmt.Println()
}
