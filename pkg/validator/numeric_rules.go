package validator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalRegex accepts plain decimal notation with an optional exponent.
// Hex, binary, "Inf" and "NaN" spellings that strconv would otherwise parse are rejected.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Code:    "validation.min",
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
			Code:    "validation.max",
		},
	}
}

// NumberBetween validates a textual number: it must parse as a finite decimal
// and lie within [min, max]. Surrounding whitespace is ignored.
func NumberBetween(field, value string, min, max float64) Rule {
	return Rule{
		Check: func() bool {
			n, ok := parseDecimal(value)
			return ok && n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a number between %v and %v", min, max),
			Code:    "validation.number_between",
		},
	}
}

func parseDecimal(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if !decimalRegex.MatchString(value) {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Min is an alias for MinNum for common numeric validation.
func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

// Max is an alias for MaxNum for common numeric validation.
func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
