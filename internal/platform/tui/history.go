package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/astrobots/internal/storage"
)

const maxHistoryRows = 100

// HistoryModel is the Bubble Tea model for the results history screen.
type HistoryModel struct {
	store    *storage.Store
	results  []storage.Result
	table    table.Model
	best     bool
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model and loads results: newest first,
// or won games closest to optimal when best is set.
func NewHistoryModel(store *storage.Store, width, height int, best bool) HistoryModel {
	m := HistoryModel{
		store:  store,
		best:   best,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadResults()
	return m
}

// createTable creates the results table.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 8},
		{Title: "Robots", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Optimal", Width: 8},
		{Title: "Result", Width: 9},
		{Title: "Date", Width: 16},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadResults loads results into the table per the sort choice.
func (m *HistoryModel) loadResults() {
	if m.store == nil {
		m.results = nil
		m.updateRows()
		return
	}

	var results []storage.Result
	var err error
	if m.best {
		results, err = m.store.BestResults(maxHistoryRows)
	} else {
		results, err = m.store.RecentResults(maxHistoryRows)
	}
	if err != nil {
		m.results = nil
	} else {
		m.results = results
	}
	m.updateRows()
}

// updateRows rebuilds the table rows from the loaded results.
func (m *HistoryModel) updateRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		outcome := "abandoned"
		if r.Won {
			outcome = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			fmt.Sprintf("%d", r.Robots),
			fmt.Sprintf("%d", r.MovesTaken),
			fmt.Sprintf("%d", r.OptimalMoves),
			outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	heading := "PLAY HISTORY"
	if m.best {
		heading = "BEST RESULTS"
	}
	title := styleTitle.Render(heading)

	var body string
	if len(m.results) == 0 {
		body = styleStatus.Render("No games recorded yet.\nPlay 'astrobots play' to record your first result!")
	} else {
		body = m.table.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		styleFrame.Render(body),
		styleHelp.Render("up/down scroll · q quit"),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunHistory runs the history screen.
func RunHistory(store *storage.Store, width, height int, best bool) error {
	model := NewHistoryModel(store, width, height, best)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
