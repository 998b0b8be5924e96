package ask

// State is the mutable state of one prompt session. Key bindings registered
// with WithKeyBinding receive it and may change the input or the highlighted
// suggestion; the prompt re-queries the suggester afterwards if the input
// changed.
type State struct {
	message     string
	input       *Input
	suggester   Suggester
	suggestions []string
	highlighted int
	errMsg      string
	changed     bool
}

func newState(message string, suggester Suggester) State {
	s := State{
		message:   message,
		input:     NewInput(),
		suggester: suggester,
	}
	s.refreshSuggestions()
	return s
}

// Message returns the question being asked.
func (s *State) Message() string {
	return s.message
}

// Input returns the edit buffer.
func (s *State) Input() *Input {
	return s.input
}

// Content returns the current input text.
func (s *State) Content() string {
	return s.input.Content()
}

// SetContent replaces the input text and moves the cursor to the end.
// Suggestions are refreshed once the current key has been handled.
func (s *State) SetContent(content string) {
	s.input.WithContent(content)
	s.changed = true
}

// Suggestions returns the current candidates.
func (s *State) Suggestions() []string {
	return s.suggestions
}

// Highlighted returns the index of the highlighted suggestion. It is 0 when
// there are no suggestions.
func (s *State) Highlighted() int {
	return s.highlighted
}

// HighlightedSuggestion returns the highlighted candidate, if any.
func (s *State) HighlightedSuggestion() (string, bool) {
	if s.highlighted < len(s.suggestions) {
		return s.suggestions[s.highlighted], true
	}
	return "", false
}

// SetHighlighted highlights suggestion i, clamped into range.
func (s *State) SetHighlighted(i int) {
	s.highlighted = i
	s.clampHighlighted()
}

// MoveHighlighted moves the highlight by delta, wrapping at both ends.
func (s *State) MoveHighlighted(delta int) {
	n := len(s.suggestions)
	if n == 0 {
		s.highlighted = 0
		return
	}
	s.highlighted = ((s.highlighted+delta)%n + n) % n
}

// ErrorMessage returns the rejection shown for the last submit, if any.
func (s *State) ErrorMessage() string {
	return s.errMsg
}

// useHighlighted replaces the input with the highlighted suggestion.
func (s *State) useHighlighted() {
	if suggestion, ok := s.HighlightedSuggestion(); ok {
		s.SetContent(suggestion)
	}
}

func (s *State) hasHighlighted() bool {
	_, ok := s.HighlightedSuggestion()
	return ok
}

func (s *State) refreshSuggestions() {
	s.changed = false
	if s.suggester == nil {
		return
	}
	s.suggestions = s.suggester(s.input.Content())
	s.clampHighlighted()
}

func (s *State) clampHighlighted() {
	switch {
	case len(s.suggestions) == 0, s.highlighted < 0:
		s.highlighted = 0
	case s.highlighted >= len(s.suggestions):
		s.highlighted = len(s.suggestions) - 1
	}
}
