package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swallow/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		exit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"p", runeKey('p'), core.ActionSpeedUp, false},
		{"plus", runeKey('+'), core.ActionSpeedUp, false},
		{"o", runeKey('o'), core.ActionSpeedDown, false},
		{"minus", runeKey('-'), core.ActionSpeedDown, false},
		{"e", runeKey('e'), core.ActionSpecial, false},
		{"space", runeKey(' '), core.ActionSpecial, false},
		{"q abandons", runeKey('q'), core.ActionQuit, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"ctrl+c exits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, exit := km.MapKey(tt.msg)
			if action != tt.action || exit != tt.exit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, exit, tt.action, tt.exit)
			}
		})
	}
}

func TestMapKeyToFrameLastWins(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(runeKey('d'), &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)

	if frame.Action != core.ActionRight {
		t.Errorf("frame action = %v, want Right", frame.Action)
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should request exit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('n'), MenuActionRename},
		{runeKey('q'), MenuActionQuit},
		{runeKey('b'), MenuActionBack},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
