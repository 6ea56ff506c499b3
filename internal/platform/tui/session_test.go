package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swallow/internal/config"
	"github.com/vovakirdan/swallow/internal/core"
	"github.com/vovakirdan/swallow/internal/registry"
)

func registryOptions(level string) registry.Options {
	return registry.Options{Level: level, Username: "ann"}
}

func menuPress(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuDefaults(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "")
	if m.Username() != "Player" {
		t.Errorf("Username() = %q, want Player", m.Username())
	}
	if m.Difficulty() != config.DifficultyNormal {
		t.Errorf("Difficulty() = %q, want normal", m.Difficulty())
	}
	if len(m.items) == 0 || m.items[0].Level != "meadow" {
		t.Errorf("first level = %+v, want meadow", m.items)
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "")
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("after right: %q, want hard", m.Difficulty())
	}
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("after wrap: %q, want easy", m.Difficulty())
	}
	m = menuPress(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("after left: %q, want fixed", m.Difficulty())
	}
}

func TestMenuRename(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "ann")
	m = menuPress(m, runeKey('n'))
	if !m.editing {
		t.Fatal("n should open the name prompt")
	}
	m = menuPress(m,
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		runeKey('b'), runeKey('o'), runeKey('b'),
		// q is typed into the prompt, not taken as quit
		runeKey('q'),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if m.editing || m.IsQuitting() {
		t.Fatalf("editing=%v quitting=%v after enter", m.editing, m.IsQuitting())
	}
	if m.Username() != "bobq" {
		t.Errorf("Username() = %q, want bobq", m.Username())
	}
}

func TestCleanUsername(t *testing.T) {
	tests := map[string]string{
		"  ann  ":  "ann",
		"a\x1bnn":  "ann",
		"\t":       "",
		"Bob Ross": "Bob Ross",
	}
	for in, want := range tests {
		if got := cleanUsername(in); got != want {
			t.Errorf("cleanUsername(%q) = %q, want %q", in, got, want)
		}
	}
}

func sessionPress(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel("swallow", Deps{}, core.DefaultConfig(), "ann")

	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab: screen = %v, want scores", m.screen)
	}
	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("esc: screen = %v quitting = %v, want menu", m.screen, m.quitting)
	}

	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatalf("enter: screen = %v, want game", m.screen)
	}
	if got := m.gameModel.game.ID(); got != "swallow" {
		t.Errorf("game = %q, want swallow", got)
	}

	// q abandons the round, the next tick ends it, esc goes back.
	m = sessionPress(m, runeKey('q'))
	m = sessionPress(m, TickMsg{})
	m = sessionPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatalf("back: screen = %v, want menu", m.screen)
	}

	m = sessionPress(m, runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
}
