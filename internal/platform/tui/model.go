// Package tui provides the Bubble Tea integration for astrobots. It
// handles the terminal UI loop, input mapping, and result persistence.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astrobots/internal/game"
	"github.com/vovakirdan/astrobots/internal/storage"
)

// Model is the Bubble Tea model for a play session. The game is
// turn-based, so the model is purely key-event driven; there is no tick
// loop.
type Model struct {
	game        *game.Game
	store       *storage.Store
	keys        KeyMap
	help        help.Model
	width       int
	height      int
	quitting    bool
	resultSaved bool
}

// NewModel creates a model for the given session.
func NewModel(g *game.Game, store *storage.Store, width, height int) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		game:   g,
		store:  store,
		keys:   DefaultKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input according to the session mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.game.Mode() {
	case game.ModePlayable:
		m.handlePlayableKey(msg)
	case game.ModeWalkthrough:
		m.handleWalkthroughKey(msg)
	case game.ModeGameOver:
		m.handleGameOverKey(msg)
	}

	return m, nil
}

func (m *Model) handlePlayableKey(msg tea.KeyMsg) {
	if dir, ok := DirectionFor(m.keys, msg.String()); ok {
		if m.game.Slide(dir) && m.game.Mode() == game.ModeGameOver {
			m.saveResult()
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.PrevActor):
		m.game.SelectPrev()
	case key.Matches(msg, m.keys.NextActor):
		m.game.SelectNext()
	case key.Matches(msg, m.keys.Undo):
		m.game.Undo()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Walkthrough):
		m.game.ToggleWalkthrough()
	}
}

func (m *Model) handleWalkthroughKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PrevActor):
		m.game.Walkthrough().Prev()
	case key.Matches(msg, m.keys.NextActor):
		m.game.Walkthrough().Next()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Walkthrough):
		m.game.ToggleWalkthrough()
	}
}

func (m *Model) handleGameOverKey(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Restart) {
		m.restart()
	}
}

// restart resets the session and arms result saving for the fresh run.
func (m *Model) restart() {
	m.game.Restart()
	m.resultSaved = false
}

// saveResult records the session outcome once. Best effort; the game
// continues regardless of storage errors.
func (m *Model) saveResult() {
	if m.resultSaved || m.store == nil {
		return
	}
	if m.game.MovesTaken() == 0 && m.game.Mode() != game.ModeGameOver {
		return
	}

	st := m.game.State()
	rows, cols := st.Dims()
	//nolint:errcheck // Best-effort save
	m.store.SaveResult(storage.Result{
		Rows:         rows,
		Cols:         cols,
		Robots:       st.NumRobots(),
		MovesTaken:   m.game.MovesTaken(),
		OptimalMoves: m.game.OptimalMoves(),
		Won:          m.game.Mode() == game.ModeGameOver,
	})
	m.resultSaved = true
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	if m.game.Mode() == game.ModeWalkthrough {
		content = m.viewWalkthrough()
	} else {
		content = m.viewBoard()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// viewBoard renders the playable/game-over screen.
func (m Model) viewBoard() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("ASTRO AND ROBOTS"))
	b.WriteString("\n")

	selected := m.game.SelectedPos()
	view := BoardView{
		State:    m.game.State(),
		Selected: &selected,
		Won:      m.game.Mode() == game.ModeGameOver,
	}
	b.WriteString(view.Render())
	b.WriteString("\n")

	if m.game.Mode() == game.ModeGameOver {
		b.WriteString(styleWon.Render(fmt.Sprintf("You won in %d moves (optimal: %d)", m.game.MovesTaken(), m.game.OptimalMoves())))
		b.WriteString("\n")
		b.WriteString(styleStatus.Render("r restart · q quit"))
	} else {
		b.WriteString(styleStatus.Render(fmt.Sprintf("selected: %s · moves: %d", m.game.Selected(), m.game.MovesTaken())))
		b.WriteString("\n")
		b.WriteString(styleHelp.Render(m.help.View(m.keys)))
	}

	return b.String()
}

// viewWalkthrough renders the solution walkthrough screen: the list of
// per-step position changes with the current step highlighted, and the
// board at the cursor state with the previous step's landing cell marked.
func (m Model) viewWalkthrough() string {
	w := m.game.Walkthrough()

	changes, err := w.Changes()
	if err != nil {
		// A solver-produced path can't fail to diff; this is a defect.
		return styleStatus.Render("walkthrough unavailable: " + err.Error())
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("WALKTHROUGH"))
	b.WriteString("\n")

	labels := make([]string, 0, len(changes)+1)
	labels = append(labels, "STARTING POSITION")
	for _, c := range changes {
		labels = append(labels, c.String())
	}

	for i, label := range labels {
		if i == w.Step() {
			b.WriteString(styleStepCurrent.Render("> " + label))
		} else {
			b.WriteString(styleStepOther.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	view := BoardView{State: w.State()}
	if step := w.Step(); step > 0 {
		landed := changes[step-1].To
		view.Marked = &landed
	}
	b.WriteString(view.Render())
	b.WriteString("\n")
	b.WriteString(styleStatus.Render("z prev · x next · w back to game · q quit"))

	return b.String()
}

// Run starts the Bubble Tea program for a play session.
func Run(g *game.Game, store *storage.Store, width, height int) error {
	model := NewModel(g, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
