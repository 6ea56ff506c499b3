// Package tui provides the Bubble Tea front end for swallow.
// It handles the terminal loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swallow/internal/core"
	"github.com/vovakirdan/swallow/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval asks a paced game for its period; other games use the
// runtime tick rate. The swallow period shrinks as the player speeds up.
func tickInterval(game registry.Game, cfg core.RuntimeConfig) time.Duration {
	if p, ok := game.(registry.Paced); ok {
		if d := p.TickInterval(); d > 0 {
			return d
		}
	}
	return cfg.Interval()
}
