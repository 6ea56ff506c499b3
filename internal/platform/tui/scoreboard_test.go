package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardModes(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []struct {
		user  string
		score int
	}{{"ann", 100}, {"ann", 300}, {"bob", 50}} {
		if _, err := store.SaveScore("meadow", s.user, s.score, ""); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 40)
	if m.current() != "meadow" {
		t.Fatalf("first level = %q, want meadow", m.current())
	}
	if len(m.rankings) != 3 || m.rankings[0].Score != 300 {
		t.Fatalf("rankings = %+v, want 3 rows led by 300", m.rankings)
	}
	if m.stats == nil || m.stats.Players != 2 {
		t.Errorf("stats = %+v, want 2 players", m.stats)
	}

	next, _ := m.Update(runeKey('m'))
	m = next.(ScoreboardModel)
	if !m.bestOnly || len(m.rankings) != 2 {
		t.Errorf("best mode: bestOnly=%v rows=%d, want 2 rows", m.bestOnly, len(m.rankings))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current() == "meadow" || len(m.rankings) != 0 {
		t.Errorf("after tab: level %q with %d rows", m.current(), len(m.rankings))
	}
	if !strings.Contains(m.View(), "RANKINGS - "+m.current()) {
		t.Error("view does not name the selected level")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.rankings) != 0 {
		t.Fatalf("rankings without a store: %d", len(m.rankings))
	}
	if !strings.Contains(m.View(), "No rankings yet") {
		t.Error("empty scoreboard should say so")
	}

	next, cmd := m.Update(runeKey('b'))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("b should go back and end the program")
	}
}
