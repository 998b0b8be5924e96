package ask

import (
	"strings"
	"unicode"
)

// KeyCode identifies a key independently of the terminal backend.
type KeyCode int

// Key codes. KeyCancel, KeySubmit and KeyInterrupt are semantic keys derived
// from Esc, Enter and Ctrl+C respectively.
const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyBackspace
	KeyDelete
	KeyTab
	KeyBackTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCancel
	KeySubmit
	KeyInterrupt
)

var keyCodeNames = map[KeyCode]string{
	KeyUnknown:   "unknown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyBackTab:   "backtab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyCancel:    "cancel",
	KeySubmit:    "submit",
	KeyInterrupt: "interrupt",
}

// KeyModifiers is a set of modifier keys held during a key press.
type KeyModifiers uint8

// Modifier flags
const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Key is the canonical representation of a key press.
//
// Keys are comparable: two keys are equal when code, rune and modifiers all
// match, which is what Guard matching relies on.
type Key struct {
	Code KeyCode
	Rune rune // set only when Code is KeyRune
	Mod  KeyModifiers
}

// Predefined keys
var (
	Cancel    = Key{Code: KeyCancel}
	Submit    = Key{Code: KeySubmit}
	Interrupt = Key{Code: KeyInterrupt}
	Tab       = Key{Code: KeyTab}
	BackTab   = Key{Code: KeyBackTab}
	Backspace = Key{Code: KeyBackspace}
	Delete    = Key{Code: KeyDelete}
	Up        = Key{Code: KeyUp}
	Down      = Key{Code: KeyDown}
	Left      = Key{Code: KeyLeft}
	Right     = Key{Code: KeyRight}
	Home      = Key{Code: KeyHome}
	End       = Key{Code: KeyEnd}
	PageUp    = Key{Code: KeyPageUp}
	PageDown  = Key{Code: KeyPageDown}
)

// RuneKey returns the key for a printable character without modifiers.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// CtrlKey returns the key for Ctrl held together with r.
// CtrlKey('c') is Interrupt, matching what every backend produces.
func CtrlKey(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r == 'c' {
		return Interrupt
	}
	return Key{Code: KeyRune, Rune: r, Mod: ModCtrl}
}

// AltKey returns the key for Alt held together with r.
func AltKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Mod: ModAlt}
}

// NamedKey returns a non-character key with the given modifiers.
func NamedKey(code KeyCode, mod KeyModifiers) Key {
	return Key{Code: code, Mod: mod}
}

// Has reports whether all modifiers in m are held.
func (k Key) Has(m KeyModifiers) bool {
	return k.Mod&m == m
}

// IsPrintable reports whether k inserts text when typed. C0 and C1 control
// characters never do.
func (k Key) IsPrintable() bool {
	return k.Code == KeyRune && k.Mod&(ModCtrl|ModAlt) == 0 && !unicode.IsControl(k.Rune)
}

// String returns a human readable form such as "ctrl+w" or "up".
func (k Key) String() string {
	var b strings.Builder
	if k.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Has(ModShift) {
		b.WriteString("shift+")
	}
	if k.Code == KeyRune {
		if k.Rune == ' ' {
			b.WriteString("space")
		} else {
			b.WriteRune(k.Rune)
		}
		return b.String()
	}
	b.WriteString(keyCodeNames[k.Code])
	return b.String()
}
