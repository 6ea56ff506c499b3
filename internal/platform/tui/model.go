package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
	"github.com/vovakirdan/swallow/internal/registry"
	"github.com/vovakirdan/swallow/internal/replay"
	"github.com/vovakirdan/swallow/internal/storage"
)

// Deps are the services shared by every round of a session.
// Each may be left empty; persistence is then skipped.
type Deps struct {
	Store      *storage.Store
	ReplayDir  string
	Difficulty string
	Logger     *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// NewGame creates a registered game and hands it the session logger.
func NewGame(id string, opts registry.Options, logger *log.Logger) (registry.Game, error) {
	game, err := registry.Create(id, opts)
	if err != nil {
		return nil, err
	}
	if l, ok := game.(interface{ SetLogger(*log.Logger) }); ok && logger != nil {
		l.SetLogger(logger)
	}
	return game, nil
}

// recordable is implemented by games whose rounds can be replayed.
type recordable interface {
	Level() config.Level
	Seed() int64
}

// GameModel runs one game inside Bubble Tea and persists finished rounds.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	recorder   *replay.Recorder
	standalone bool // Back exits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	saved      bool
}

// NewGameModel creates a game model and starts the first round.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	m.startRound()
	return m
}

// startRound resets the game and opens a fresh recording.
func (m *GameModel) startRound() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.saved = false
	m.recorder = nil
	m.inputFrame.Clear()

	if e, ok := m.game.(interface{ Err() error }); ok && e.Err() != nil {
		m.deps.logger().Error("round failed to start", "game", m.game.ID(), "error", e.Err())
		return
	}
	if r, ok := m.game.(recordable); ok {
		username := ""
		if rep, ok := m.game.(registry.Reporter); ok {
			username = rep.Outcome().Username
		}
		m.recorder = replay.NewRecorder(r.Level(), m.deps.Difficulty, username, r.Seed())
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(tickInterval(m.game, m.config))
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The board has a fixed size, so a resize only moves the viewport.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isExit := m.keyMapper.MapKey(msg)
	if isExit {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.gameState.GameOver {
		if action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil
	}

	switch action {
	case core.ActionRestart:
		m.config.Seed = time.Now().UnixNano()
		m.startRound()
	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the round by one step.
// The tick loop keeps running after game over so restart stays responsive.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver {
		if m.recorder != nil {
			m.recorder.Record(m.inputFrame.Action)
		}
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		if m.gameState.GameOver {
			m.finishRound()
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(tickInterval(m.game, m.config))
}

// finishRound stores the ranking and the replay, once per round.
// Both are best effort: a failed write is logged and play goes on.
func (m *GameModel) finishRound() {
	if m.saved {
		return
	}
	m.saved = true
	logger := m.deps.logger()

	out := core.Outcome{Level: m.game.ID(), Score: m.gameState.Score, Won: m.gameState.Won}
	if r, ok := m.game.(registry.Reporter); ok {
		out = r.Outcome()
	}
	if out.Aborted {
		logger.Info("round abandoned", "level", out.Level, "user", out.Username)
		return
	}

	roundID := ""
	if m.recorder != nil {
		roundID = m.recorder.ID()
		rec := m.recorder.Finish(out.Score, out.Won)
		if m.deps.ReplayDir != "" {
			path, err := replay.Save(m.deps.ReplayDir, rec)
			if err != nil {
				logger.Warn("could not save replay", "round", roundID, "error", err)
			} else {
				logger.Debug("replay saved", "path", path)
			}
		}
	}

	if m.deps.Store == nil || out.Score <= 0 {
		return
	}
	if _, err := m.deps.Store.SaveScore(out.Level, out.Username, out.Score, roundID); err != nil {
		logger.Warn("could not save score", "level", out.Level, "error", err)
		return
	}
	logger.Info("score saved", "level", out.Level, "user", out.Username, "score", out.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".swallow", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.logger().Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player exits.
// It reports whether the player asked to go back to a menu.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) (back bool, err error) {
	model := NewGameModel(game, deps, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
