package ask

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotTTY is returned when the input device is not a terminal, so raw
	// mode cannot be enabled.
	ErrNotTTY = errors.New("the input device is not a TTY")
	// ErrInvalidConfiguration is returned by New when an option is invalid.
	ErrInvalidConfiguration = errors.New("the prompt configuration is invalid")
	// ErrIO wraps read and write failures on the terminal.
	ErrIO = errors.New("IO error")
	// ErrOperationCanceled is returned when the user presses Esc.
	ErrOperationCanceled = errors.New("operation was canceled by the user")
	// ErrOperationInterrupted is returned when the user presses Ctrl+C.
	ErrOperationInterrupted = errors.New("operation was interrupted by the user")
)

// ioError wraps err so that it matches both ErrIO and err with errors.Is.
func ioError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrIO, op, err)
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
