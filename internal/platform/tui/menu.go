package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
	"github.com/vovakirdan/swallow/internal/storage"
)

// maxUsernameLen bounds the name stored with a ranking.
const maxUsernameLen = 16

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Level     string
	Number    int
	Source    string
	HighScore int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	name           textinput.Model
	editing        bool
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, username string) MenuModel {
	levels := config.ListLevels()
	items := make([]MenuItem, 0, len(levels))
	for _, l := range levels {
		item := MenuItem{Level: l.Name, Number: l.Number, Source: l.Source}
		if store != nil {
			if hs, err := store.HighScore(l.Name); err == nil {
				item.HighScore = hs
			}
		}
		items = append(items, item)
	}

	name := textinput.New()
	name.Placeholder = storage.DefaultUsername
	name.CharLimit = maxUsernameLen
	name.Prompt = "Name: "
	name.SetValue(username)

	return MenuModel{
		items:      items,
		difficulty: 1,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		name:       name,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionRename:
		m.editing = true
		cmd := m.name.Focus()
		return m, cmd

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// handleNameKey feeds keys to the name prompt until enter or esc.
func (m MenuModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter", "esc":
		m.editing = false
		m.name.Blur()
		m.name.SetValue(cleanUsername(m.name.Value()))
		return m, nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// cleanUsername trims a name and drops control characters.
func cleanUsername(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < ' ' || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  S W A L L O W  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(menuDimStyle.Render("No levels found"), m.width))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12s lvl %d  best %6d", cursor, item.Level, item.Number, item.HighScore)
		if item.Source != "embedded" {
			line += " (" + item.Source + ")"
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("< Difficulty: %s >", m.Difficulty()), m.width))
	b.WriteString("\n")
	if m.editing {
		b.WriteString(centerText(m.name.View(), m.width))
	} else {
		b.WriteString(centerText("Name: "+m.Username(), m.width))
	}
	b.WriteString("\n\n")

	controls := "Up/Down: Level  |  Left/Right: Difficulty  |  N: Name  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// Username returns the entered name, or the default name when blank.
func (m MenuModel) Username() string {
	if name := cleanUsername(m.name.Value()); name != "" {
		return name
	}
	return storage.DefaultUsername
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           string
	Username        string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, username string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, username)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Username:   m.Username(),
		Difficulty: m.Difficulty(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.Level = m.Selected().Level
	} else {
		result.Quit = true
	}

	return result, nil
}
