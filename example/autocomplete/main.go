// Package main demonstrates suggestions, validation and custom key bindings.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/ask"
)

var commands = []string{
	"help",
	"list",
	"create project",
	"create file",
	"create folder",
	"delete item",
	"update item",
	"status",
	"exit",
}

func main() {
	fmt.Println("Simple Autocomplete Example")
	fmt.Println("==========================")
	fmt.Println("Type to filter, Up/Down to move, Tab to complete")
	fmt.Println("Ctrl+L clears the input")
	fmt.Println()

	p, err := ask.New("Command?",
		ask.WithSuggester(ask.NewFuzzySuggester(commands)),
		ask.WithValidator(ask.OneOf(commands, "Unknown command")),
		ask.WithPageSize(5),
		ask.WithColorScheme(ask.ThemeDracula),
		ask.WithKeyBinding(ask.CtrlKey('l'), func(s *ask.State) {
			s.SetContent("")
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	command, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Executed: %s\n", command)
}
