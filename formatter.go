package ask

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Formatter turns the accepted answer into the text shown on the final
// prompt line. It does not change the value returned by Run.
type Formatter func(answer string) string

// DefaultFormatter shows the answer as typed.
func DefaultFormatter(answer string) string {
	return answer
}

// TrimFormatter shows the answer without leading and trailing whitespace.
func TrimFormatter(answer string) string {
	return strings.TrimSpace(answer)
}

// MaskFormatter hides the answer behind one mask per user-perceived character.
func MaskFormatter(mask string) Formatter {
	return func(answer string) string {
		return strings.Repeat(mask, uniseg.GraphemeClusterCount(answer))
	}
}
