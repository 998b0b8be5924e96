package ask

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeysFromTea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []Key
	}{
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, expected: []Key{RuneKey('j')}},
		{name: "paste", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ok")}, expected: []Key{RuneKey('o'), RuneKey('k')}},
		{name: "alt rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, expected: []Key{AltKey('f')}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, expected: []Key{RuneKey(' ')}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: []Key{Cancel}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: []Key{Submit}},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, expected: []Key{Interrupt}},
		{name: "ctrl+w", msg: tea.KeyMsg{Type: tea.KeyCtrlW}, expected: []Key{CtrlKey('w')}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, expected: []Key{Tab}},
		{name: "shift+tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, expected: []Key{BackTab}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, expected: []Key{Backspace}},
		{name: "alt+backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, expected: []Key{NamedKey(KeyBackspace, ModAlt)}},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, expected: []Key{Down}},
		{name: "ctrl+right", msg: tea.KeyMsg{Type: tea.KeyCtrlRight}, expected: []Key{NamedKey(KeyRight, ModCtrl)}},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, expected: []Key{End}},
		{name: "page up", msg: tea.KeyMsg{Type: tea.KeyPgUp}, expected: []Key{PageUp}},
		{name: "function key", msg: tea.KeyMsg{Type: tea.KeyF1}, expected: []Key{{Code: KeyUnknown}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, KeysFromTea(tt.msg))
		})
	}
}

func TestKeysFromTeaDispatch(t *testing.T) {
	t.Parallel()

	state := newState("?", NewPrefixSuggester([]string{"one", "two", "three"}))
	d := NewDispatcher[State]()
	d.AddEvent(NewGuard[State](Down, nil), func(s *State) { s.MoveHighlighted(1) })

	for _, key := range KeysFromTea(tea.KeyMsg{Type: tea.KeyDown}) {
		d.OnChange(key, &state)
	}
	got, ok := state.HighlightedSuggestion()
	assert.True(t, ok)
	assert.Equal(t, "two", got)
}
