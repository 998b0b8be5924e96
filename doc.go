// Package ask provides interactive text prompts for terminal programs.
//
// A prompt shows a question, lets the user edit one line of text with
// suggestions underneath, checks the answer with validators and finally
// replaces itself with a single "answered" line.
//
// Key Features:
//
//   - Unicode-aware editing: the cursor moves by user-perceived characters,
//     so emoji and combining marks are never split
//   - Incremental repaint: only the rows of the prompt are redrawn
//   - Validators with inline error messages and retry
//   - Paged suggestions with Tab completion
//   - Answer history with file persistence
//   - Custom shortcuts through predicate-gated key bindings
//   - Distinct errors for Esc (ErrOperationCanceled) and Ctrl+C
//     (ErrOperationInterrupted)
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/ask"
//	)
//
//	func main() {
//		name, err := ask.Ask("What's your name?")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s\n", name)
//	}
//
// Validation and Suggestions:
//
//	p, err := ask.New("Which fruit?",
//		ask.WithSuggester(ask.NewFuzzySuggester([]string{
//			"apple", "banana", "cherry", "grape",
//		})),
//		ask.WithValidators(
//			ask.Required(""),
//			ask.OneOf([]string{"apple", "banana", "cherry", "grape"}, "Pick a listed fruit"),
//		),
//		ask.WithPageSize(3),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	fruit, err := p.Run()
//
// Key Bindings:
//
//   - Enter: Submit
//   - Esc: Cancel (ErrOperationCanceled)
//   - Ctrl+C: Interrupt (ErrOperationInterrupted)
//   - Tab: Replace the input with the highlighted suggestion
//   - Up/Down: Move the highlighted suggestion, wrapping around
//   - Left/Right, Ctrl+B/Ctrl+F: Move the cursor
//   - Home/End, Ctrl+A/Ctrl+E: Move to the beginning or end
//   - Ctrl+Left/Right, Alt+B/Alt+F: Move by word
//   - Backspace/Delete, Ctrl+D: Delete one character
//   - Ctrl+W, Alt+Backspace: Delete word backwards
//   - Ctrl+K: Delete to end of line
//   - Ctrl+U: Clear the input
//
// Extra shortcuts are added with WithKeyBinding; the raw decoding of keys
// can be changed with a custom KeyMap.
//
// Error Handling:
//
//   - ErrNotTTY: the input is not an interactive terminal
//   - ErrInvalidConfiguration: an option is invalid
//   - ErrIO: reading a key or painting failed (the cause is wrapped too)
//   - ErrOperationCanceled: the user pressed Esc
//   - ErrOperationInterrupted: the user pressed Ctrl+C
//
// Validation failures are never returned; they are shown above the prompt
// and the user keeps editing.
//
// Thread Safety:
//
// A prompt owns the terminal while Run is executing. Prompts are not safe
// for concurrent use and only one prompt should run at a time.
//
// Resource Management:
//
// Always call Close when done with a prompt. It saves the history and
// releases the terminal, and it is safe to call more than once.
package ask
