package ask

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		validator Validator
		input     string
		wantErr   string
	}{
		{name: "required accepts text", validator: Required(""), input: "x"},
		{name: "required rejects empty", validator: Required(""), input: "", wantErr: "A response is required."},
		{name: "required custom message", validator: Required("name please"), input: "", wantErr: "name please"},
		{name: "min length counts clusters", validator: MinLength(2, ""), input: "🧘🏻‍♂️", wantErr: "The length of the response should be at least 2"},
		{name: "min length accepts", validator: MinLength(2, ""), input: "日本", wantErr: ""},
		{name: "max length counts clusters", validator: MaxLength(1, ""), input: "🇯🇵", wantErr: ""},
		{name: "max length rejects", validator: MaxLength(3, "too long"), input: "abcd", wantErr: "too long"},
		{name: "regexp accepts", validator: MatchRegexp(regexp.MustCompile(`^\d+$`), ""), input: "123"},
		{name: "regexp rejects", validator: MatchRegexp(regexp.MustCompile(`^\d+$`), ""), input: "12a", wantErr: `The response should match ^\d+$`},
		{name: "one of accepts", validator: OneOf([]string{"yes", "no"}, ""), input: "no"},
		{name: "one of rejects", validator: OneOf([]string{"yes", "no"}, ""), input: "maybe", wantErr: "The response should be one of: yes, no"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.validator(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	t.Parallel()

	var called []string
	record := func(name string, err error) Validator {
		return func(string) error {
			called = append(called, name)
			return err
		}
	}

	err := validate([]Validator{
		record("first", nil),
		record("second", errors.New("second failed")),
		record("third", errors.New("third failed")),
	}, "input")

	require.EqualError(t, err, "second failed")
	assert.Equal(t, []string{"first", "second"}, called)
	assert.NoError(t, validate(nil, ""))
}

func TestOneOfCopiesValues(t *testing.T) {
	t.Parallel()

	values := []string{"a", "b"}
	v := OneOf(values, "")
	values[0] = "z"

	assert.NoError(t, v("a"))
	assert.Error(t, v("z"))
}
