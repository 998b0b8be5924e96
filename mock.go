package ask

import (
	"bytes"
	"io"
)

// mockTerminal implements terminalInterface for testing.
//
// Input is a pre-configured rune sequence; reading past its end returns
// io.EOF. Everything painted is kept in output so tests can inspect frames.
// readErr, writeErr and notTTY inject the failures the real terminal can
// produce.
type mockTerminal struct {
	input        []rune       // Pre-configured input sequence for testing
	inputPos     int          // Current position in the input sequence
	rawMode      bool         // Track raw mode state for test verification
	terminalSize [2]int       // Fixed terminal dimensions [width, height]
	output       bytes.Buffer // Everything written by the renderer
	readErr      error        // Returned instead of io.EOF at end of input
	writeErr     error        // Returned by every write when set
	notTTY       bool         // SetRaw fails with ErrNotTTY
	closed       bool
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	if m.notTTY {
		return ErrNotTTY
	}
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		if m.readErr != nil {
			return 0, 0, m.readErr
		}
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) Output() io.Writer {
	return mockWriter{m}
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}

type mockWriter struct {
	m *mockTerminal
}

func (w mockWriter) Write(p []byte) (int, error) {
	if w.m.writeErr != nil {
		return 0, w.m.writeErr
	}
	return w.m.output.Write(p)
}
