package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 20  // Width of level list sidebar
	maxScores          = 100 // Max rankings to load
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle  = boardHelpStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Mode      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Mode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Mode, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "all/best"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the rankings screen.
type ScoreboardModel struct {
	levels      []string
	cursor      int
	store       *storage.Store
	rankings    []storage.Ranking
	stats       *storage.LevelStats
	bestOnly    bool // One row per player instead of every round
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	infos := config.ListLevels()
	levels := make([]string, 0, len(infos))
	for _, l := range infos {
		levels = append(levels, l.Name)
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		levels:      levels,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns sized for the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if spare := tableWidth - 50; spare > 0 {
		columns[1].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// current returns the selected level name, or empty.
func (m ScoreboardModel) current() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor]
}

// load reads the rankings and stats of the selected level.
func (m *ScoreboardModel) load() {
	m.rankings = nil
	m.stats = nil
	if level := m.current(); m.store != nil && level != "" {
		var (
			rankings []storage.Ranking
			err      error
		)
		if m.bestOnly {
			rankings, err = m.store.BestByUser(level, maxScores)
		} else {
			rankings, err = m.store.TopScores(level, maxScores)
		}
		if err == nil {
			m.rankings = rankings
		}
		if stats, err := m.store.GetLevelStats(level); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rankings.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rankings))
	for i, r := range m.rankings {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Username,
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + len(m.levels) - 1) % len(m.levels)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Mode):
			m.bestOnly = !m.bestOnly
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RANKINGS"
	if level := m.current(); level != "" {
		title = fmt.Sprintf("RANKINGS - %s", level)
		if m.bestOnly {
			title += " (best per player)"
		}
	}
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(boardHelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected level.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds  %d players  avg %.0f", m.stats.Rounds, m.stats.Players, m.stats.AvgScore)
}

// renderWideLayout puts the level list beside the table.
func (m ScoreboardModel) renderWideLayout() string {
	lines := []string{"Levels", strings.Repeat("-", sidebarWidth-4)}
	for i, name := range m.levels {
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		if i == m.cursor {
			lines = append(lines, boardActiveStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	sidebar := boardPanelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", boardPanelStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout names the level above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder
	if level := m.current(); level != "" {
		b.WriteString(centerText(fmt.Sprintf("< %s >", level), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(boardPanelStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rankings) == 0 {
		return boardEmptyStyle.Render("No rankings yet.\nWin a round to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
