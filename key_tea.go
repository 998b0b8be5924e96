package ask

import tea "github.com/charmbracelet/bubbletea"

// KeysFromTea converts a bubbletea key message into canonical keys.
// A message normally yields one key; pasted text yields one key per rune.
func KeysFromTea(msg tea.KeyMsg) []Key {
	var mod KeyModifiers
	if msg.Alt {
		mod = ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, Key{Code: KeyRune, Rune: r, Mod: mod})
		}
		return keys
	case tea.KeySpace:
		return []Key{{Code: KeyRune, Rune: ' ', Mod: mod}}
	case tea.KeyEsc:
		return []Key{Cancel}
	case tea.KeyEnter:
		return []Key{Submit}
	case tea.KeyCtrlC:
		return []Key{Interrupt}
	case tea.KeyTab:
		return []Key{Tab}
	case tea.KeyShiftTab:
		return []Key{BackTab}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []Key{NamedKey(KeyBackspace, mod)}
	case tea.KeyDelete:
		return []Key{NamedKey(KeyDelete, mod)}
	case tea.KeyUp:
		return []Key{NamedKey(KeyUp, mod)}
	case tea.KeyDown:
		return []Key{NamedKey(KeyDown, mod)}
	case tea.KeyLeft:
		return []Key{NamedKey(KeyLeft, mod)}
	case tea.KeyRight:
		return []Key{NamedKey(KeyRight, mod)}
	case tea.KeyShiftUp:
		return []Key{NamedKey(KeyUp, ModShift)}
	case tea.KeyShiftDown:
		return []Key{NamedKey(KeyDown, ModShift)}
	case tea.KeyCtrlUp:
		return []Key{NamedKey(KeyUp, ModCtrl)}
	case tea.KeyCtrlDown:
		return []Key{NamedKey(KeyDown, ModCtrl)}
	case tea.KeyCtrlLeft:
		return []Key{NamedKey(KeyLeft, ModCtrl)}
	case tea.KeyCtrlRight:
		return []Key{NamedKey(KeyRight, ModCtrl)}
	case tea.KeyHome:
		return []Key{NamedKey(KeyHome, mod)}
	case tea.KeyEnd:
		return []Key{NamedKey(KeyEnd, mod)}
	case tea.KeyPgUp:
		return []Key{NamedKey(KeyPageUp, mod)}
	case tea.KeyPgDown:
		return []Key{NamedKey(KeyPageDown, mod)}
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []Key{CtrlKey(rune('a' + int(msg.Type-tea.KeyCtrlA)))}
	}
	return []Key{{Code: KeyUnknown}}
}
