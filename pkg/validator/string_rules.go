package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "validation.required",
		},
	}
}

// NotEmpty validates that a string has at least one character. Whitespace counts,
// which is what select boxes and password inputs need.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "validation.required",
		},
	}
}

// MinLenString counts characters (runes), not bytes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Code:    "validation.min_length",
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    "validation.max_length",
		},
	}
}

// MinLenTrimmed is MinLenString applied to the value with surrounding whitespace removed.
func MinLenTrimmed(field, value string, min int) Rule {
	return MinLenString(field, strings.TrimSpace(value), min)
}

// Convenience aliases for common string validation cases

func Required(field, value string) Rule {
	return RequiredString(field, value)
}

func MinLen(field, value string, min int) Rule {
	return MinLenString(field, value, min)
}
