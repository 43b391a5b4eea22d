package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of spaces, tabs and newlines into a single space.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// MaxLength truncates to at most max characters without splitting a multi-byte rune.
func MaxLength(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
