package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Phone and numeric extraction
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
