package ask

import (
	"fmt"
	"strings"
)

// ColorScheme defines the color configuration for the prompt.
type ColorScheme struct {
	Name     string `json:"name"`
	Prefix   Color  `json:"prefix"`   // "?" mark in front of the message
	Message  Color  `json:"message"`  // question text
	Default  Color  `json:"default"`  // "(default)" hint
	Input    Color  `json:"input"`    // text being edited
	Answer   Color  `json:"answer"`   // formatted answer after submit
	Error    Color  `json:"error"`    // validation error line
	Option   Color  `json:"option"`   // unselected suggestion
	Selected Color  `json:"selected"` // highlighted suggestion
	Help     Color  `json:"help"`     // help line
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
	Dim  bool  `json:"dim"`
}

// ThemeDefault is the default color scheme with a green prefix and cyan answers
var ThemeDefault = &ColorScheme{
	Name:     "default",
	Prefix:   Color{R: 0, G: 255, B: 0, Bold: true},
	Message:  Color{R: 255, G: 255, B: 255, Bold: true},
	Default:  Color{R: 128, G: 128, B: 128},
	Input:    Color{R: 255, G: 255, B: 255},
	Answer:   Color{R: 0, G: 255, B: 255},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
	Option:   Color{R: 200, G: 200, B: 200},
	Selected: Color{R: 0, G: 255, B: 255, Bold: true},
	Help:     Color{R: 0, G: 175, B: 175, Dim: true},
}

// ThemeDark is a dark theme with light blue prefix and off-white text
var ThemeDark = &ColorScheme{
	Name:     "dark",
	Prefix:   Color{R: 102, G: 217, B: 239, Bold: true},
	Message:  Color{R: 248, G: 248, B: 242, Bold: true},
	Default:  Color{R: 98, G: 114, B: 164},
	Input:    Color{R: 248, G: 248, B: 242},
	Answer:   Color{R: 80, G: 250, B: 123},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
	Option:   Color{R: 189, G: 147, B: 249},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	Help:     Color{R: 98, G: 114, B: 164, Dim: true},
}

// ThemeLight is a light theme with blue prefix and dark gray text
var ThemeLight = &ColorScheme{
	Name:     "light",
	Prefix:   Color{R: 0, G: 119, B: 187, Bold: true},
	Message:  Color{R: 36, G: 41, B: 46, Bold: true},
	Default:  Color{R: 149, G: 157, B: 165},
	Input:    Color{R: 36, G: 41, B: 46},
	Answer:   Color{R: 0, G: 119, B: 187},
	Error:    Color{R: 215, G: 58, B: 73, Bold: true},
	Option:   Color{R: 88, G: 96, B: 105},
	Selected: Color{R: 40, G: 167, B: 69, Bold: true},
	Help:     Color{R: 149, G: 157, B: 165, Dim: true},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:     "accessible",
	Prefix:   Color{R: 0, G: 114, B: 178, Bold: true},
	Message:  Color{R: 255, G: 255, B: 255, Bold: true},
	Default:  Color{R: 204, G: 204, B: 204},
	Input:    Color{R: 255, G: 255, B: 255},
	Answer:   Color{R: 86, G: 180, B: 233},
	Error:    Color{R: 213, G: 94, B: 0, Bold: true},
	Option:   Color{R: 255, G: 255, B: 255},
	Selected: Color{R: 230, G: 159, B: 0, Bold: true},
	Help:     Color{R: 204, G: 204, B: 204},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:     "dracula",
	Prefix:   Color{R: 255, G: 121, B: 198, Bold: true},
	Message:  Color{R: 248, G: 248, B: 242, Bold: true},
	Default:  Color{R: 98, G: 114, B: 164},
	Input:    Color{R: 248, G: 248, B: 242},
	Answer:   Color{R: 139, G: 233, B: 253},
	Error:    Color{R: 255, G: 85, B: 85, Bold: true},
	Option:   Color{R: 139, G: 233, B: 253},
	Selected: Color{R: 80, G: 250, B: 123, Bold: true},
	Help:     Color{R: 98, G: 114, B: 164, Dim: true},
}

// ThemeMonokai is the Monokai color scheme
var ThemeMonokai = &ColorScheme{
	Name:     "monokai",
	Prefix:   Color{R: 249, G: 38, B: 114, Bold: true},
	Message:  Color{R: 248, G: 248, B: 242, Bold: true},
	Default:  Color{R: 117, G: 113, B: 94},
	Input:    Color{R: 248, G: 248, B: 242},
	Answer:   Color{R: 166, G: 226, B: 46},
	Error:    Color{R: 249, G: 38, B: 114, Bold: true},
	Option:   Color{R: 166, G: 226, B: 46},
	Selected: Color{R: 102, G: 217, B: 239, Bold: true},
	Help:     Color{R: 117, G: 113, B: 94, Dim: true},
}

// Themes lists the built-in color schemes.
var Themes = []*ColorScheme{
	ThemeDefault,
	ThemeDark,
	ThemeLight,
	ThemeAccessible,
	ThemeDracula,
	ThemeMonokai,
}

// ThemeByName returns the built-in color scheme with the given name,
// ignoring case.
func ThemeByName(name string) (*ColorScheme, bool) {
	for _, theme := range Themes {
		if strings.EqualFold(theme.Name, name) {
			return theme, true
		}
	}
	return nil, false
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}
	if c.Dim {
		codes = append(codes, "2")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Paint wraps s in the color's escape sequence and a reset.
func (c Color) Paint(s string) string {
	if s == "" {
		return ""
	}
	return c.ToANSI() + s + Reset()
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
