// Package main demonstrates basic usage of the ask library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/ask"
)

func main() {
	// Create a prompt with a default answer and a length limit
	p, err := ask.New("What's your name?",
		ask.WithDefault("Gopher"),
		ask.WithValidator(ask.MaxLength(20, "")),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	name, err := p.Run()
	switch {
	case errors.Is(err, ask.ErrOperationCanceled):
		fmt.Println("Canceled")
		return
	case errors.Is(err, ask.ErrOperationInterrupted):
		fmt.Println("Interrupted")
		return
	case err != nil:
		log.Fatal(err)
	}

	fmt.Printf("Hello, %s!\n", name)
}
