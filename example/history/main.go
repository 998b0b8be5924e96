// Package main demonstrates answer history with file persistence.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/ask"
)

func main() {
	fmt.Println("History Example with File Persistence")
	fmt.Println("Previous answers are suggested; Tab picks the highlighted one")
	fmt.Println("Type 'history' to see answer history")
	fmt.Println("Type 'clear' to clear history")
	fmt.Println("Press Esc or type 'exit' to quit")
	fmt.Printf("History is automatically saved to %s\n", ask.DefaultHistoryFile())
	fmt.Println()

	// You can specify history file paths in various formats:
	// - XDG compliant (recommended): ask.DefaultHistoryFile()
	// - Absolute path: "/home/user/.my_app_history"
	// - Home directory: "~/.my_app_history"
	// - Relative path: "./app_history" (converted to absolute)
	p, err := ask.New("Server?",
		ask.WithFileHistory(ask.DefaultHistoryFile(), 1000),
		ask.WithValidator(ask.Required("")),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	for {
		result, err := p.Run()
		if err != nil {
			if errors.Is(err, ask.ErrOperationCanceled) || errors.Is(err, ask.ErrOperationInterrupted) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		switch strings.TrimSpace(result) {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "history":
			fmt.Println("Answer History:")
			for i, entry := range p.History().GetHistory() {
				fmt.Printf("  %3d: %s\n", i+1, entry)
			}
		case "clear":
			p.History().ClearHistory()
			fmt.Println("History cleared")
		default:
			fmt.Printf("Connecting to %s\n", result)
		}
	}
}
