package validator

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate. Layouts without an offset are
// interpreted in the caller's location.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses the formats produced by HTML date and datetime-local inputs,
// plus RFC 3339. A bare date resolves to midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ValidDate validates that value can be parsed by ParseDate.
func ValidDate(field, value string, loc *time.Location) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseDate(value, loc)
			return ok
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid date",
			Code:    "validation.date",
		},
	}
}

// DateAfter is strict: a value equal to after fails.
func DateAfter(field string, value time.Time, after time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(after)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be after %s", after.Format(time.DateOnly)),
			Code:    "validation.date_after",
		},
	}
}

func DateBefore(field string, value time.Time, before time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(before)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must be before %s", before.Format(time.DateOnly)),
			Code:    "validation.date_before",
		},
	}
}

// DateNotAfter is inclusive: a value equal to limit passes.
func DateNotAfter(field string, value time.Time, limit time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.After(limit)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("date must not be after %s", limit.Format(time.DateOnly)),
			Code:    "validation.date_not_after",
		},
	}
}
