package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astrobots/internal/boards"
)

var flagBoardsDir string

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List available board files",
	Long: `Shows the built-in board and every board file found under the given
directory (recursively). Invalid board files are skipped.

Examples:
  astrobots boards
  astrobots boards --dir ./boards`,
	RunE: runBoards,
}

func init() {
	boardsCmd.Flags().StringVar(&flagBoardsDir, "dir", ".", "Directory to scan for board files")
}

func runBoards(cmd *cobra.Command, args []string) error {
	loader := boards.NewLoader(flagBoardsDir)
	found, err := loader.LoadAll()
	if err != nil {
		return err
	}

	all := append([]boards.Board{boards.Classic()}, found...)

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range all {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "----")

	for _, b := range all {
		size := "?"
		if state, stateErr := b.ToState(); stateErr == nil {
			rows, cols := state.Dims()
			size = fmt.Sprintf("%dx%d", rows, cols)
		}
		name := b.Name
		if b.FilePath == "" {
			name += " (built-in)"
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, b.ID, size, name)
	}

	fmt.Println()
	fmt.Println("Run 'astrobots play --board <file>' to play a board file.")
	return nil
}
