// Package sanitizer provides small helpers for cleaning and masking user input.
//
// The functions fall into two groups:
//
//   - Strings – trimming, whitespace normalisation and rune-safe truncation.
//
//   - Format – phone-number digit extraction and masking of e-mail addresses,
//     phone numbers and secrets before they are written to logs.
//
// The package is stateless and depends only on the Go standard library. The
// higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.MaskEmail,
//	)
//	safe := clean("  john.doe@example.com ") // "j*******@example.com"
package sanitizer
