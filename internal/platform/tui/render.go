package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astrobots/internal/puzzle"
)

// Tile and accent styles for the board.
var (
	styleEmpty    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleAstro    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleRobot    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleGoal     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleWon      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleMarked   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleFrame  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	styleStepCurrent = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	styleStepOther   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// BoardView bundles a state with its display accents.
type BoardView struct {
	State    puzzle.State
	Selected *puzzle.Pos // Highlighted actor (play mode)
	Marked   *puzzle.Pos // Highlighted landing cell (walkthrough mode)
	Won      bool        // Render the astronaut in the win style
}

// Render draws the board as a framed block of styled tile runes.
func (v BoardView) Render() string {
	rows, cols := v.State.Dims()

	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteRune('\n')
		}
		for x := 0; x < cols; x++ {
			if x > 0 {
				b.WriteRune(' ')
			}
			p := puzzle.P(x, y)
			tile := v.State.TileAt(p)
			b.WriteString(v.styleFor(p, tile).Render(string(tile.Rune())))
		}
	}

	return styleFrame.Render(b.String())
}

// styleFor picks the style for one cell. Accents win over base tile
// styles; the win style wins over the selection.
func (v BoardView) styleFor(p puzzle.Pos, tile puzzle.Tile) lipgloss.Style {
	if v.Won && tile == puzzle.TileAstro {
		return styleWon
	}
	if v.Selected != nil && *v.Selected == p {
		return styleSelected
	}
	if v.Marked != nil && *v.Marked == p {
		return styleMarked
	}

	switch tile {
	case puzzle.TileAstro:
		return styleAstro
	case puzzle.TileRobot:
		return styleRobot
	case puzzle.TileGoal:
		return styleGoal
	default:
		return styleEmpty
	}
}
