package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single failed rule.
// Code is a stable machine-readable identifier (e.g. "validation.required").
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidationErrors represents an ordered collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages returns every message in evaluation order. The result is never nil.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError

	// steps is set by Bail; Check and Error are unused in that case.
	steps   []Rule
	message string
}

// WithMessage returns a copy of the rule that reports msg instead of its own message.
// For rules built with Bail the override applies to whichever step fails.
func (r Rule) WithMessage(msg string) Rule {
	r.message = msg
	return r
}

func (r Rule) eval() (ValidationError, bool) {
	var (
		failure ValidationError
		ok      = true
	)

	if r.steps != nil {
		for _, step := range r.steps {
			if failure, ok = step.eval(); !ok {
				break
			}
		}
	} else if !r.Check() {
		failure, ok = r.Error, false
	}

	if ok {
		return ValidationError{}, true
	}
	if r.message != "" {
		failure.Message = r.message
	}
	return failure, false
}

// Bail combines rules for one field into a single rule that stops at the first failure.
// Later rules never run once an earlier one has failed, so a required check
// short-circuits the format checks behind it.
func Bail(rules ...Rule) Rule {
	steps := make([]Rule, 0, len(rules))
	steps = append(steps, rules...)
	return Rule{steps: steps}
}

// Validate executes every rule and returns the failures in rule order.
// It never stops early; a nil result means all rules passed.
func Validate(rules ...Rule) ValidationErrors {
	var errs ValidationErrors

	for _, rule := range rules {
		if failure, ok := rule.eval(); !ok {
			errs = append(errs, failure)
		}
	}

	return errs
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	errs := Validate(rules...)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
