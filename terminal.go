package ask

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts terminal operations for testability and cross-platform compatibility.
//
// The prompt engine only ever reads runes and writes frames through this
// interface. Implementations:
//   - realTerminal: Uses go-tty and golang.org/x/term for actual terminal interaction
//   - mockTerminal: Provides deterministic behavior for testing
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode; fails with ErrNotTTY when not interactive
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Block until one rune is available
	Buffered() bool                       // Report whether more input is already waiting
	Output() io.Writer                    // Writer frames are painted to
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements terminalInterface on the controlling terminal.
//
// Input and output both go through the tty device rather than stdin/stdout,
// so a program can print the answer on stdout while the prompt is drawn on
// the terminal. On Windows the output is wrapped by go-colorable so ANSI
// sequences work on legacy consoles.
type realTerminal struct {
	tty           *tty.TTY    // TTY handle from go-tty for cross-platform terminal operations
	output        io.Writer   // Color-capable output writer
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	fd            int         // Input file descriptor for raw mode management
	originalState *term.State // Original terminal state to restore on exit
}

// newRealTerminal opens the controlling terminal.
func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotTTY, err)
	}

	return &realTerminal{
		tty:    t,
		output: colorable.NewColorable(t.Output()),
		fd:     int(t.Input().Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	if !term.IsTerminal(t.fd) {
		return ErrNotTTY
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotTTY, err)
	}
	t.originalState = state
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.originalState)
	// Reset the state so that SetRaw can capture a fresh baseline next time
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Output() io.Writer {
	return t.output
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}
