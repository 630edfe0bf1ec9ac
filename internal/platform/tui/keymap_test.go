package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkazanov/tui-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func typedKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: t})
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	cases := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space jumps", typedKey(tea.KeySpace), core.ActionJump},
		{"w is up", runeKey('w'), core.ActionUp},
		{"up arrow is up", typedKey(tea.KeyUp), core.ActionUp},
		{"k is up", runeKey('k'), core.ActionUp},
		{"s is down", runeKey('s'), core.ActionDown},
		{"down arrow is down", typedKey(tea.KeyDown), core.ActionDown},
		{"j is down", runeKey('j'), core.ActionDown},
		{"enter confirms", typedKey(tea.KeyEnter), core.ActionConfirm},
		{"esc is back", typedKey(tea.KeyEsc), core.ActionBack},
		{"b is back", runeKey('b'), core.ActionBack},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", typedKey(tea.KeyCtrlC), core.ActionQuit},
		{"unbound key is none", runeKey('x'), core.ActionNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.mapKey(tc.msg); got != tc.want {
				t.Errorf("mapKey(%q) = %v, want %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHelpBindingsNonEmpty(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("short help has no bindings")
	}
	for i, row := range keys.FullHelp() {
		if len(row) == 0 {
			t.Errorf("full help row %d is empty", i)
		}
	}
}
