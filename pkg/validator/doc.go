// Package validator provides a small, composable rule engine for validating
// user input field by field.
//
// A Rule couples a boolean Check with the ValidationError to report when the
// check fails. Validate evaluates every rule in order and returns the failures
// as an ordered ValidationErrors slice; it never stops at the first failing
// field, so callers can show the user every problem at once. Apply does the
// same but returns a plain error, which is convenient when bubbling failures
// up through ordinary error returns.
//
// # Per-field chains
//
// Most fields need a required check followed by one or more format checks,
// where the format checks only make sense once a value is present. Bail
// combines those rules so the first failure wins and the rest are skipped:
//
//	errs := validator.Validate(
//	    validator.Bail(
//	        validator.RequiredString("email", email).WithMessage("Email address is required"),
//	        validator.EmailShape("email", email).WithMessage("Please enter a valid email address"),
//	    ),
//	    validator.NotEmpty("password", password).WithMessage("Password is required"),
//	)
//
// WithMessage replaces the generic message with a user-facing one. Applied to
// a Bail rule it replaces the message of whichever step failed.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`, `format_rules.go`, `numeric_rules.go`,
// `date_rules.go`). Constructors only build Rule values; there is no global
// state, so the package is goroutine-safe.
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed through
// errors.Is. ExtractValidationErrors and IsValidationError help callers that
// receive a wrapped error.
package validator
