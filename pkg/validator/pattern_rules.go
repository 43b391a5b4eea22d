package validator

import (
	"regexp"
)

// WhitespaceClass lists the characters matched by `\s` in browser regular expressions:
// ASCII whitespace plus the Unicode space separators. Go's `\s` only covers ASCII,
// so patterns that must agree with client-side checks embed this inside a bracket expression.
const WhitespaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// Matches validates value against a precompiled pattern.
// Unlike a required rule it does not treat blank input specially: the pattern decides.
func Matches(field, value string, re *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "has an invalid format",
			Code:    "validation.regex_pattern",
		},
	}
}

// MatchesRegex compiles pattern on each call; cache a *regexp.Regexp and use Matches on hot paths.
func MatchesRegex(field, value string, pattern string) Rule {
	return Matches(field, value, regexp.MustCompile(pattern))
}
