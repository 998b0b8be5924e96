package ask

// runeSource is the part of the terminal the key decoder needs.
type runeSource interface {
	ReadRune() (rune, int, error)
	Buffered() bool
}

// maxSequenceLength bounds escape sequence reads so that garbage input
// cannot keep the decoder busy.
const maxSequenceLength = 16

// KeyMap translates the raw rune stream of a terminal into canonical keys.
//
// Single runes (mostly control characters) and escape sequences are looked
// up separately. Escape sequences are stored without the leading ESC, so the
// up arrow is "[A". Anything not bound falls back to the built-in rules:
// control characters become Ctrl+letter, other runes are printable keys.
type KeyMap struct {
	bindings  map[rune]Key
	sequences map[string]Key
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default bindings:
//   - Enter (CR or LF): Submit
//   - Ctrl+C: Interrupt
//   - Esc alone: Cancel
//   - Tab / Shift+Tab: Tab / BackTab
//   - Backspace (DEL or BS): Backspace
//   - Arrow keys, Home, End, Delete, PageUp, PageDown (xterm and vt sequences)
//   - Ctrl+Left/Right and Alt+Left/Right: word-wise movement
//
// Example:
//
//	keyMap := ask.NewDefaultKeyMap()
//	// Treat F1 as Tab
//	keyMap.BindSequence("OP", ask.Tab)
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]Key),
		sequences: make(map[string]Key),
	}

	km.bindings['\r'] = Submit
	km.bindings['\n'] = Submit
	km.bindings['\x03'] = Interrupt // Ctrl+C
	km.bindings['\t'] = Tab
	km.bindings['\x7f'] = Backspace
	km.bindings['\b'] = Backspace

	for seq, key := range map[string]Key{
		"[A":    Up,
		"[B":    Down,
		"[C":    Right,
		"[D":    Left,
		"OA":    Up,
		"OB":    Down,
		"OC":    Right,
		"OD":    Left,
		"[H":    Home,
		"[F":    End,
		"OH":    Home,
		"OF":    End,
		"[1~":   Home,
		"[7~":   Home,
		"[4~":   End,
		"[8~":   End,
		"[3~":   Delete,
		"[5~":   PageUp,
		"[6~":   PageDown,
		"[Z":    BackTab,
		"[1;2A": NamedKey(KeyUp, ModShift),
		"[1;2B": NamedKey(KeyDown, ModShift),
		"[1;5A": NamedKey(KeyUp, ModCtrl),
		"[1;5B": NamedKey(KeyDown, ModCtrl),
		"[1;5C": NamedKey(KeyRight, ModCtrl),
		"[1;5D": NamedKey(KeyLeft, ModCtrl),
		"[1;3C": NamedKey(KeyRight, ModAlt),
		"[1;3D": NamedKey(KeyLeft, ModAlt),
	} {
		km.sequences[seq] = key
	}

	return km
}

// Bind adds or updates the key produced by a single rune.
func (km *KeyMap) Bind(r rune, key Key) {
	km.bindings[r] = key
}

// BindSequence adds or updates the key produced by an escape sequence.
// The sequence must not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, key Key) {
	km.sequences[seq] = key
}

// Lookup returns the key bound to r, falling back to the built-in rules.
func (km *KeyMap) Lookup(r rune) Key {
	if km != nil {
		if key, ok := km.bindings[r]; ok {
			return key
		}
	}
	switch {
	case r == '\x1b':
		return Cancel
	case r > 0 && r < 0x20:
		return CtrlKey('a' + r - 1)
	case r == 0:
		return Key{Code: KeyRune, Rune: ' ', Mod: ModCtrl}
	}
	return RuneKey(r)
}

// LookupSequence returns the key bound to seq, or an unknown key.
func (km *KeyMap) LookupSequence(seq string) Key {
	if km != nil {
		if key, ok := km.sequences[seq]; ok {
			return key
		}
	}
	return Key{Code: KeyUnknown}
}

// ReadKey blocks until one complete key has been read from src.
//
// A lone ESC, meaning nothing else is already buffered behind it, is Cancel
// unless ESC has been rebound with Bind. A doubled ESC is treated the same.
// ESC followed by '[' or 'O' starts an escape sequence. ESC followed by any
// other rune is that rune with Alt held.
func (km *KeyMap) ReadKey(src runeSource) (Key, error) {
	r, _, err := src.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if r != '\x1b' {
		return km.Lookup(r), nil
	}
	if !src.Buffered() {
		return km.Lookup('\x1b'), nil
	}

	next, _, err := src.ReadRune()
	if err != nil {
		return Key{}, err
	}
	switch next {
	case '[':
		seq, err := readCSI(src)
		if err != nil {
			return Key{}, err
		}
		return km.LookupSequence("[" + seq), nil
	case 'O':
		final, _, err := src.ReadRune()
		if err != nil {
			return Key{}, err
		}
		return km.LookupSequence("O" + string(final)), nil
	case '\x1b':
		return km.Lookup('\x1b'), nil
	case '\x7f', '\b':
		return NamedKey(KeyBackspace, ModAlt), nil
	}
	if next < 0x20 {
		return km.Lookup(next), nil
	}
	return AltKey(next), nil
}

// readCSI reads the parameter and final bytes of a control sequence.
func readCSI(src runeSource) (string, error) {
	seq := make([]rune, 0, maxSequenceLength)
	for range maxSequenceLength {
		r, _, err := src.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)
		if r >= 0x40 && r <= 0x7e {
			break
		}
	}
	return string(seq), nil
}
