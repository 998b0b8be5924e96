package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{name: "plain", color: Color{R: 1, G: 2, B: 3}, expected: "\x1b[38;2;1;2;3m"},
		{name: "bold", color: Color{R: 255, Bold: true}, expected: "\x1b[1;38;2;255;0;0m"},
		{name: "bold and dim", color: Color{B: 9, Bold: true, Dim: true}, expected: "\x1b[1;2;38;2;0;0;9m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.color.ToANSI())
		})
	}
}

func TestColorPaint(t *testing.T) {
	t.Parallel()

	c := Color{R: 10, G: 20, B: 30}
	assert.Equal(t, c.ToANSI()+"hi"+Reset(), c.Paint("hi"))
	assert.Empty(t, c.Paint(""))
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, theme := range Themes {
		got, ok := ThemeByName(theme.Name)
		assert.True(t, ok, theme.Name)
		assert.Same(t, theme, got)
	}

	got, ok := ThemeByName("DRACULA")
	assert.True(t, ok)
	assert.Same(t, ThemeDracula, got)

	_, ok = ThemeByName("solarized")
	assert.False(t, ok)
}
