package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateHighlight(t *testing.T) {
	t.Parallel()

	s := newState("Fruit?", NewPrefixSuggester([]string{"apple", "banana", "cherry"}))
	assert.Equal(t, "Fruit?", s.Message())
	assert.Len(t, s.Suggestions(), 3)
	assert.Equal(t, 0, s.Highlighted())

	s.MoveHighlighted(-1)
	assert.Equal(t, 2, s.Highlighted())
	s.MoveHighlighted(1)
	assert.Equal(t, 0, s.Highlighted())
	s.MoveHighlighted(4)
	assert.Equal(t, 1, s.Highlighted())

	s.SetHighlighted(10)
	assert.Equal(t, 2, s.Highlighted())
	s.SetHighlighted(-1)
	assert.Equal(t, 0, s.Highlighted())

	got, ok := s.HighlightedSuggestion()
	assert.True(t, ok)
	assert.Equal(t, "apple", got)
}

func TestStateWithoutSuggestions(t *testing.T) {
	t.Parallel()

	s := newState("?", nil)
	assert.Empty(t, s.Suggestions())

	s.MoveHighlighted(1)
	assert.Equal(t, 0, s.Highlighted())

	_, ok := s.HighlightedSuggestion()
	assert.False(t, ok)
	assert.False(t, s.hasHighlighted())

	s.useHighlighted()
	assert.Empty(t, s.Content())
}

func TestStateSetContentRefreshes(t *testing.T) {
	t.Parallel()

	s := newState("?", NewPrefixSuggester([]string{"apple", "apricot", "banana"}))
	s.SetHighlighted(2)

	s.SetContent("ap")
	assert.Equal(t, "ap", s.Content())
	assert.Equal(t, 2, s.Input().Cursor())
	assert.True(t, s.changed)

	s.refreshSuggestions()
	assert.False(t, s.changed)
	assert.Equal(t, []string{"apple", "apricot"}, s.Suggestions())
	assert.Equal(t, 1, s.Highlighted(), "highlight is clamped to the new list")
}
