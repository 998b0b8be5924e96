package ask

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/rivo/uniseg"
)

// Validator checks a submitted answer. A non-nil error rejects the answer and
// its message is shown above the prompt; the user keeps editing.
type Validator func(input string) error

// Required rejects empty answers. An empty msg selects a default message.
func Required(msg string) Validator {
	if msg == "" {
		msg = "A response is required."
	}
	return func(input string) error {
		if input == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// MinLength rejects answers shorter than n user-perceived characters.
func MinLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("The length of the response should be at least %d", n)
	}
	return func(input string) error {
		if uniseg.GraphemeClusterCount(input) < n {
			return errors.New(msg)
		}
		return nil
	}
}

// MaxLength rejects answers longer than n user-perceived characters.
func MaxLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("The length of the response should be at most %d", n)
	}
	return func(input string) error {
		if uniseg.GraphemeClusterCount(input) > n {
			return errors.New(msg)
		}
		return nil
	}
}

// MatchRegexp rejects answers that do not match re.
func MatchRegexp(re *regexp.Regexp, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("The response should match %s", re.String())
	}
	return func(input string) error {
		if !re.MatchString(input) {
			return errors.New(msg)
		}
		return nil
	}
}

// OneOf rejects answers that are not in values.
func OneOf(values []string, msg string) Validator {
	allowed := slices.Clone(values)
	if msg == "" {
		msg = "The response should be one of: " + strings.Join(allowed, ", ")
	}
	return func(input string) error {
		if !slices.Contains(allowed, input) {
			return errors.New(msg)
		}
		return nil
	}
}

// validate runs the chain in order and returns the first rejection.
func validate(validators []Validator, input string) error {
	for _, v := range validators {
		if err := v(input); err != nil {
			return err
		}
	}
	return nil
}
