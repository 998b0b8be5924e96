package ask

import "github.com/gdamore/tcell/v2"

// KeyFromTcell converts a tcell key event into a canonical key so that
// dispatchers and input buffers can be driven by a tcell screen.
func KeyFromTcell(ev *tcell.EventKey) Key {
	mod := tcellModifiers(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		if mod&ModCtrl != 0 {
			key := CtrlKey(r)
			if key.Code == KeyRune {
				key.Mod |= mod &^ ModShift
			}
			return key
		}
		return Key{Code: KeyRune, Rune: r, Mod: mod &^ ModShift}
	case tcell.KeyEscape:
		return Cancel
	case tcell.KeyEnter:
		return Submit
	case tcell.KeyCtrlC:
		return Interrupt
	case tcell.KeyTab:
		return NamedKey(KeyTab, mod&^ModCtrl)
	case tcell.KeyBacktab:
		return BackTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NamedKey(KeyBackspace, mod&^ModCtrl)
	case tcell.KeyDelete:
		return NamedKey(KeyDelete, mod)
	case tcell.KeyUp:
		return NamedKey(KeyUp, mod)
	case tcell.KeyDown:
		return NamedKey(KeyDown, mod)
	case tcell.KeyLeft:
		return NamedKey(KeyLeft, mod)
	case tcell.KeyRight:
		return NamedKey(KeyRight, mod)
	case tcell.KeyHome:
		return NamedKey(KeyHome, mod)
	case tcell.KeyEnd:
		return NamedKey(KeyEnd, mod)
	case tcell.KeyPgUp:
		return NamedKey(KeyPageUp, mod)
	case tcell.KeyPgDn:
		return NamedKey(KeyPageDown, mod)
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return CtrlKey(rune('a' + (k - tcell.KeyCtrlA)))
		}
	}
	return Key{Code: KeyUnknown}
}

func tcellModifiers(m tcell.ModMask) KeyModifiers {
	var mod KeyModifiers
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= ModAlt
	}
	return mod
}
