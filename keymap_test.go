package ask

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeReader is a runeSource over a fixed string.
type runeReader struct {
	runes []rune
	pos   int
}

func newRuneReader(s string) *runeReader {
	return &runeReader{runes: []rune(s)}
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if r.pos >= len(r.runes) {
		return 0, 0, io.EOF
	}
	c := r.runes[r.pos]
	r.pos++
	return c, 1, nil
}

func (r *runeReader) Buffered() bool {
	return r.pos < len(r.runes)
}

func TestKeyMapReadKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Key
	}{
		{name: "carriage return", input: "\r", expected: Submit},
		{name: "line feed", input: "\n", expected: Submit},
		{name: "ctrl+c", input: "\x03", expected: Interrupt},
		{name: "tab", input: "\t", expected: Tab},
		{name: "delete char", input: "\x7f", expected: Backspace},
		{name: "ctrl+h", input: "\b", expected: Backspace},
		{name: "lone esc", input: "\x1b", expected: Cancel},
		{name: "double esc", input: "\x1b\x1b", expected: Cancel},
		{name: "letter", input: "a", expected: RuneKey('a')},
		{name: "space", input: " ", expected: RuneKey(' ')},
		{name: "wide rune", input: "日", expected: RuneKey('日')},
		{name: "ctrl+w", input: "\x17", expected: CtrlKey('w')},
		{name: "ctrl+a", input: "\x01", expected: CtrlKey('a')},
		{name: "ctrl+space", input: "\x00", expected: Key{Code: KeyRune, Rune: ' ', Mod: ModCtrl}},
		{name: "up", input: "\x1b[A", expected: Up},
		{name: "down", input: "\x1b[B", expected: Down},
		{name: "right", input: "\x1b[C", expected: Right},
		{name: "left", input: "\x1b[D", expected: Left},
		{name: "up application mode", input: "\x1bOA", expected: Up},
		{name: "home", input: "\x1b[H", expected: Home},
		{name: "end", input: "\x1b[F", expected: End},
		{name: "home vt", input: "\x1b[1~", expected: Home},
		{name: "end vt", input: "\x1b[4~", expected: End},
		{name: "home application mode", input: "\x1bOH", expected: Home},
		{name: "delete", input: "\x1b[3~", expected: Delete},
		{name: "page up", input: "\x1b[5~", expected: PageUp},
		{name: "page down", input: "\x1b[6~", expected: PageDown},
		{name: "shift+tab", input: "\x1b[Z", expected: BackTab},
		{name: "shift+up", input: "\x1b[1;2A", expected: NamedKey(KeyUp, ModShift)},
		{name: "ctrl+left", input: "\x1b[1;5D", expected: NamedKey(KeyLeft, ModCtrl)},
		{name: "alt+right", input: "\x1b[1;3C", expected: NamedKey(KeyRight, ModAlt)},
		{name: "alt+b", input: "\x1bb", expected: AltKey('b')},
		{name: "alt+backspace", input: "\x1b\x7f", expected: NamedKey(KeyBackspace, ModAlt)},
		{name: "unknown sequence", input: "\x1b[15~", expected: Key{Code: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newRuneReader(tt.input)
			key, err := NewDefaultKeyMap().ReadKey(src)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
			assert.False(t, src.Buffered(), "the whole sequence should be consumed")
		})
	}
}

func TestKeyMapReadKeySequence(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()
	src := newRuneReader("a\x1b[Db\x1b")

	var keys []Key
	for {
		key, err := km.ReadKey(src)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, key)
	}

	assert.Equal(t, []Key{RuneKey('a'), Left, RuneKey('b'), Cancel}, keys)
}

func TestKeyMapReadKeyTruncatedSequence(t *testing.T) {
	t.Parallel()

	_, err := NewDefaultKeyMap().ReadKey(newRuneReader("\x1b[1;"))
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeyMapCustomBindings(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()
	km.Bind('\x0f', Submit)
	km.BindSequence("[15~", CtrlKey('r'))

	key, err := km.ReadKey(newRuneReader("\x0f"))
	require.NoError(t, err)
	assert.Equal(t, Submit, key)

	key, err = km.ReadKey(newRuneReader("\x1b[15~"))
	require.NoError(t, err)
	assert.Equal(t, CtrlKey('r'), key)

	assert.Equal(t, Left, km.LookupSequence("[D"))
	assert.Equal(t, Key{Code: KeyUnknown}, km.LookupSequence("[99~"))
}

func TestKeyMapRebindEsc(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()
	km.Bind('\x1b', CtrlKey('g'))

	key, err := km.ReadKey(newRuneReader("\x1b"))
	require.NoError(t, err)
	assert.Equal(t, CtrlKey('g'), key)

	key, err = km.ReadKey(newRuneReader("\x1b\x1b"))
	require.NoError(t, err)
	assert.Equal(t, CtrlKey('g'), key)

	key, err = km.ReadKey(newRuneReader("\x1b[A"))
	require.NoError(t, err)
	assert.Equal(t, Up, key, "escape sequences still decode")
}

func TestKeyMapNil(t *testing.T) {
	t.Parallel()

	var km *KeyMap
	assert.Equal(t, RuneKey('x'), km.Lookup('x'))
	assert.Equal(t, Cancel, km.Lookup('\x1b'))
	assert.Equal(t, Key{Code: KeyUnknown}, km.LookupSequence("[A"))
}
