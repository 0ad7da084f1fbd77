package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astrobots/internal/boards"
	"github.com/vovakirdan/astrobots/internal/config"
	"github.com/vovakirdan/astrobots/internal/game"
	"github.com/vovakirdan/astrobots/internal/platform/tui"
	"github.com/vovakirdan/astrobots/internal/puzzle"
	"github.com/vovakirdan/astrobots/internal/storage"
)

const (
	minBoardSide = 4
	maxBoardSide = 10
)

var (
	flagRows       int
	flagCols       int
	flagBoard      string
	flagDefault    bool
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle",
	Long: `Start a play session. By default a solvable, non-trivial puzzle is
generated for the requested board size. A fixed board can be played
instead with --board or --default.

Controls:
  Arrows     - Slide the selected actor
  Z / X      - Select previous / next actor
  U          - Undo last move
  R          - Restart
  W          - Toggle solution walkthrough
  Q/Esc      - Quit

Difficulty options:
  easy   - Accept puzzles solvable in 3+ moves
  normal - Accept puzzles solvable in 4+ moves
  hard   - Accept puzzles solvable in 6+ moves

Examples:
  astrobots play
  astrobots play --rows 7 --cols 6
  astrobots play --difficulty hard --seed 42
  astrobots play --board ./boards/my-board.yaml
  astrobots play --board my-board
  astrobots play --default`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 5, "Number of rows in the grid (4-10)")
	playCmd.Flags().IntVar(&flagCols, "cols", 5, "Number of columns in the grid (4-10)")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Board file path or board ID to play instead of generating")
	playCmd.Flags().BoolVar(&flagDefault, "default", false, "Play the built-in board instead of generating")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	initial, err := initialState()
	if err != nil {
		return err
	}

	session, err := game.New(initial)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	// Get terminal size for the TUI
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(session, store, width, height)

	if store != nil {
		store.Close()
	}

	return runErr
}

// initialState resolves the puzzle to play: a board file, the built-in
// board, or a freshly generated puzzle.
func initialState() (puzzle.State, error) {
	if flagDefault {
		board := boards.Classic()
		return board.ToState()
	}

	if flagBoard != "" {
		board, err := loadBoardArg(".", flagBoard)
		if err != nil {
			return puzzle.State{}, err
		}
		return board.ToState()
	}

	if err := validateDimension("rows", flagRows); err != nil {
		return puzzle.State{}, err
	}
	if err := validateDimension("cols", flagCols); err != nil {
		return puzzle.State{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return puzzle.State{}, err
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "astrobots"})
	logger.Debug("generating puzzle",
		"rows", flagRows, "cols", flagCols,
		"min_states", cfg.Generator.MinSolutionStates, "seed", seed,
	)

	params := puzzle.GenParams{
		Rows:              flagRows,
		Cols:              flagCols,
		MinSolutionStates: cfg.Generator.MinSolutionStates,
		MaxAttempts:       cfg.Generator.MaxAttempts,
	}
	return puzzle.Generate(params, rng)
}

// loadBoardArg resolves a board argument: an existing file path wins,
// anything else is treated as a board ID looked up under dir.
func loadBoardArg(dir, arg string) (boards.Board, error) {
	loader := boards.NewLoader(dir)
	if _, err := os.Stat(arg); err == nil {
		return loader.LoadFile(arg)
	}
	return loader.LoadByID(arg)
}

// validateDimension enforces the supported board size range.
func validateDimension(name string, value int) error {
	if value < minBoardSide || value > maxBoardSide {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, minBoardSide, maxBoardSide, value)
	}
	return nil
}
