// Command ask asks one question on the terminal and prints the answer.
//
// The prompt is drawn on the controlling terminal, so the answer can be
// captured by the shell:
//
//	name=$(ask --default anonymous "What's your name?")
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/nao1215/ask"
)

const (
	exitOK          = 0
	exitError       = 1
	exitCanceled    = 2
	exitInterrupted = 130
)

var version = "dev"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "ask",
		Level:  log.WarnLevel,
	})

	err := newRootCmd(logger, ask.Ask).Execute()
	code := exitCode(err)
	if code == exitError {
		logger.Error("failed to ask", "err", err)
	}
	os.Exit(code)
}

// exitCode maps the result of a prompt to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ask.ErrOperationInterrupted):
		return exitInterrupted
	case errors.Is(err, ask.ErrOperationCanceled):
		return exitCanceled
	default:
		return exitError
	}
}
