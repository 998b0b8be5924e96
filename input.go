package ask

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Input is a single-line text buffer with a cursor.
//
// Content is stored as extended grapheme clusters and the cursor is a
// cluster index, so editing never splits a user-perceived character. Runes
// arrive one at a time from the terminal, which means a cluster such as a
// ZWJ emoji sequence is assembled over several inserts; every mutation
// re-segments the text and snaps the cursor to a cluster boundary.
type Input struct {
	graphemes []string
	cursor    int
}

// NewInput returns an empty buffer.
func NewInput() *Input {
	return &Input{}
}

// WithContent replaces the whole content and moves the cursor to the end.
func (in *Input) WithContent(s string) *Input {
	in.graphemes = segment(s)
	in.cursor = len(in.graphemes)
	return in
}

// Content returns the text of the buffer.
func (in *Input) Content() string {
	return strings.Join(in.graphemes, "")
}

// BeforeCursor returns the text left of the cursor.
func (in *Input) BeforeCursor() string {
	return strings.Join(in.graphemes[:in.cursor], "")
}

// Cursor returns the cursor position in grapheme clusters.
func (in *Input) Cursor() int {
	return in.cursor
}

// Len returns the number of grapheme clusters.
func (in *Input) Len() int {
	return len(in.graphemes)
}

// Insert inserts s at the cursor and moves the cursor past it.
func (in *Input) Insert(s string) {
	if s == "" {
		return
	}
	left := in.BeforeCursor() + s
	in.resegment(left, strings.Join(in.graphemes[in.cursor:], ""))
}

// DeleteBefore removes the cluster left of the cursor. It reports whether
// anything was removed.
func (in *Input) DeleteBefore() bool {
	if in.cursor == 0 {
		return false
	}
	left := strings.Join(in.graphemes[:in.cursor-1], "")
	in.resegment(left, strings.Join(in.graphemes[in.cursor:], ""))
	return true
}

// DeleteAt removes the cluster under the cursor. It reports whether
// anything was removed.
func (in *Input) DeleteAt() bool {
	if in.cursor >= len(in.graphemes) {
		return false
	}
	in.resegment(in.BeforeCursor(), strings.Join(in.graphemes[in.cursor+1:], ""))
	return true
}

// DeleteWordBefore removes the word left of the cursor, together with any
// whitespace between it and the cursor.
func (in *Input) DeleteWordBefore() bool {
	if in.cursor == 0 {
		return false
	}
	start := in.wordBoundary(-1)
	left := strings.Join(in.graphemes[:start], "")
	in.resegment(left, strings.Join(in.graphemes[in.cursor:], ""))
	return true
}

// DeleteToEnd removes everything right of the cursor.
func (in *Input) DeleteToEnd() bool {
	if in.cursor >= len(in.graphemes) {
		return false
	}
	in.resegment(in.BeforeCursor(), "")
	return true
}

// Clear empties the buffer.
func (in *Input) Clear() bool {
	if len(in.graphemes) == 0 {
		return false
	}
	in.graphemes = nil
	in.cursor = 0
	return true
}

// MoveLeft moves the cursor one cluster left.
func (in *Input) MoveLeft() bool {
	if in.cursor == 0 {
		return false
	}
	in.cursor--
	return true
}

// MoveRight moves the cursor one cluster right.
func (in *Input) MoveRight() bool {
	if in.cursor >= len(in.graphemes) {
		return false
	}
	in.cursor++
	return true
}

// MoveHome moves the cursor to the start.
func (in *Input) MoveHome() bool {
	moved := in.cursor != 0
	in.cursor = 0
	return moved
}

// MoveEnd moves the cursor to the end.
func (in *Input) MoveEnd() bool {
	moved := in.cursor != len(in.graphemes)
	in.cursor = len(in.graphemes)
	return moved
}

// MoveWordLeft moves the cursor to the start of the previous word.
func (in *Input) MoveWordLeft() bool {
	pos := in.wordBoundary(-1)
	moved := pos != in.cursor
	in.cursor = pos
	return moved
}

// MoveWordRight moves the cursor past the end of the next word.
func (in *Input) MoveWordRight() bool {
	pos := in.wordBoundary(1)
	moved := pos != in.cursor
	in.cursor = pos
	return moved
}

// HandleKey applies an editing key and reports whether the content changed.
// Keys that are not editing keys are ignored.
func (in *Input) HandleKey(key Key) (dirty bool) {
	if key.IsPrintable() {
		in.Insert(string(key.Rune))
		return true
	}

	switch key {
	case Backspace:
		return in.DeleteBefore()
	case Delete:
		return in.DeleteAt()
	case Left:
		in.MoveLeft()
	case Right:
		in.MoveRight()
	case Home, CtrlKey('a'):
		in.MoveHome()
	case End, CtrlKey('e'):
		in.MoveEnd()
	case NamedKey(KeyLeft, ModCtrl), NamedKey(KeyLeft, ModAlt), AltKey('b'):
		in.MoveWordLeft()
	case NamedKey(KeyRight, ModCtrl), NamedKey(KeyRight, ModAlt), AltKey('f'):
		in.MoveWordRight()
	case CtrlKey('b'):
		in.MoveLeft()
	case CtrlKey('f'):
		in.MoveRight()
	case CtrlKey('u'):
		return in.Clear()
	case CtrlKey('k'):
		return in.DeleteToEnd()
	case CtrlKey('w'), NamedKey(KeyBackspace, ModAlt):
		return in.DeleteWordBefore()
	case CtrlKey('d'):
		return in.DeleteAt()
	}
	return false
}

// resegment rebuilds the clusters of left+right and places the cursor at the
// end of left, rounding up when left ends inside a cluster of the joined
// text.
func (in *Input) resegment(left, right string) {
	in.graphemes = segment(left + right)
	offset := 0
	in.cursor = len(in.graphemes)
	for i, g := range in.graphemes {
		if offset >= len(left) {
			in.cursor = i
			return
		}
		offset += len(g)
	}
}

// wordBoundary finds the next word boundary in the given direction.
// Word characters are letters, digits and underscore.
func (in *Input) wordBoundary(direction int) int {
	pos := in.cursor
	if direction > 0 {
		for pos < len(in.graphemes) && !isWordGrapheme(in.graphemes[pos]) {
			pos++
		}
		for pos < len(in.graphemes) && isWordGrapheme(in.graphemes[pos]) {
			pos++
		}
		return pos
	}
	for pos > 0 && !isWordGrapheme(in.graphemes[pos-1]) {
		pos--
	}
	for pos > 0 && isWordGrapheme(in.graphemes[pos-1]) {
		pos--
	}
	return pos
}

func isWordGrapheme(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func segment(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}
