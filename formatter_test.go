package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		expected  string
	}{
		{name: "default keeps answer", formatter: DefaultFormatter, input: " as typed ", expected: " as typed "},
		{name: "trim", formatter: TrimFormatter, input: "  padded\t", expected: "padded"},
		{name: "mask ascii", formatter: MaskFormatter("*"), input: "secret", expected: "******"},
		{name: "mask per cluster", formatter: MaskFormatter("*"), input: "日本🧘🏻‍♂️", expected: "***"},
		{name: "mask empty", formatter: MaskFormatter("•"), input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.formatter(tt.input))
		})
	}
}
