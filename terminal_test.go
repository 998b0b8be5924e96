package ask

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []rune
	}{
		{name: "simple text", input: "hello", expected: []rune("hello")},
		{name: "special keys", input: "\r\x1b\x7f", expected: []rune{'\r', '\x1b', '\x7f'}},
		{name: "unicode", input: "日本🍞", expected: []rune{'日', '本', '🍞'}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMockTerminal(tt.input)
			var got []rune
			for m.Buffered() {
				r, _, err := m.ReadRune()
				require.NoError(t, err)
				got = append(got, r)
			}
			assert.Equal(t, tt.expected, got)

			_, _, err := m.ReadRune()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestMockTerminalRawModeToggle(t *testing.T) {
	t.Parallel()

	m := newMockTerminal("")
	assert.False(t, m.rawMode)
	require.NoError(t, m.SetRaw())
	assert.True(t, m.rawMode)
	require.NoError(t, m.Restore())
	assert.False(t, m.rawMode)

	m.notTTY = true
	assert.ErrorIs(t, m.SetRaw(), ErrNotTTY)
}

func TestMockTerminalFailures(t *testing.T) {
	t.Parallel()

	readErr := errors.New("read failed")
	writeErr := errors.New("write failed")

	m := newMockTerminal("")
	m.readErr = readErr
	m.writeErr = writeErr

	_, _, err := m.ReadRune()
	assert.ErrorIs(t, err, readErr)

	_, err = m.Output().Write([]byte("frame"))
	assert.ErrorIs(t, err, writeErr)
	assert.Zero(t, m.output.Len())
}

func TestMockTerminalDefaultSize(t *testing.T) {
	t.Parallel()

	width, height, err := newMockTerminal("").Size()
	require.NoError(t, err)
	assert.Equal(t, 80, width)
	assert.Equal(t, 24, height)
}

func TestMockTerminalClose(t *testing.T) {
	t.Parallel()

	m := newMockTerminal("")
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	assert.True(t, m.closed)
}

func TestRealTerminalCreation(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping real terminal test in local development")
	}

	t.Parallel()

	// May fail in CI environments without /dev/tty
	terminal, err := newRealTerminal()
	if err != nil {
		assert.ErrorIs(t, err, ErrNotTTY)
		return
	}

	assert.NotNil(t, terminal.tty)
	assert.NotNil(t, terminal.Output())

	width, height, _ := terminal.Size()
	assert.Positive(t, width)
	assert.Positive(t, height)

	require.NoError(t, terminal.Close())
	require.NoError(t, terminal.Close(), "double close is safe")
}

func TestRealTerminalRestoreWithoutRaw(t *testing.T) {
	t.Parallel()

	terminal := &realTerminal{}
	assert.NoError(t, terminal.Restore())
	assert.NoError(t, terminal.Close())
}

func TestTerminalInterfaceCompliance(_ *testing.T) {
	var _ terminalInterface = (*realTerminal)(nil)
	var _ terminalInterface = (*mockTerminal)(nil)
}
