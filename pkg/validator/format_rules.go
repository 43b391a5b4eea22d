package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formguard/pkg/sanitizer"
)

// emailShapeRegex only checks the local@domain.tld shape; it deliberately accepts
// addresses RFC 5322 would reject because the check has to agree with the browser.
var emailShapeRegex = regexp.MustCompile(`^[^` + WhitespaceClass + `@]+@[^` + WhitespaceClass + `@]+\.[^` + WhitespaceClass + `@]+$`)

// EmailShape validates that value looks like local@domain.tld with no whitespace
// and exactly one @. The value is not trimmed.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Code:    "validation.email",
		},
	}
}

// DigitCount validates that value holds exactly n ASCII digits once every other
// character (spaces, dashes, parentheses, a leading +) is stripped.
func DigitCount(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len(sanitizer.ExtractPhoneDigits(value)) == n
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain exactly %d digits", n),
			Code:    "validation.digit_count",
		},
	}
}
