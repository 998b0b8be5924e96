// Package main edits a line inside a tcell screen, converting tcell key
// events with ask.KeyFromTcell and handling them with ask.Input.
package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/nao1215/ask"
)

func draw(s tcell.Screen, label string, in *ask.Input) {
	s.Clear()
	x := 0
	for _, r := range label + in.Content() {
		s.SetContent(x, 0, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
	s.ShowCursor(runewidth.StringWidth(label+in.BeforeCursor()), 0)
	s.Show()
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	const label = "> "
	in := ask.NewInput()
	var answer string
	canceled := false

loop:
	for {
		draw(screen, label, in)
		ev, ok := screen.PollEvent().(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key := ask.KeyFromTcell(ev); key.Code {
		case ask.KeySubmit:
			answer = in.Content()
			break loop
		case ask.KeyCancel, ask.KeyInterrupt:
			canceled = true
			break loop
		default:
			in.HandleKey(key)
		}
	}
	screen.Fini()

	if canceled {
		fmt.Println("Canceled")
		return
	}
	fmt.Printf("You typed: %s\n", answer)
}
