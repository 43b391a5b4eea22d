package feedback

import (
	"strings"

	"github.com/dmitrymomot/formguard/pkg/fields"
	"github.com/dmitrymomot/formguard/pkg/sanitizer"
)

// State is the visual state of an input while the user types.
type State string

const (
	// Untouched means the input is empty and carries no validity class.
	Untouched State = "untouched"
	Valid     State = "valid"
	Invalid   State = "invalid"
)

// Class returns the CSS class for the state, or "" when untouched.
func (s State) Class() string {
	if s == Untouched {
		return ""
	}
	return string(s)
}

// FieldKind selects the checker used for an input.
type FieldKind string

const (
	KindEmail    FieldKind = "email"
	KindPassword FieldKind = "password"
	KindPhone    FieldKind = "tel"
	KindName     FieldKind = "name"
)

// FieldKinds lists every kind with a live checker.
func FieldKinds() []FieldKind {
	return []FieldKind{KindEmail, KindPassword, KindPhone, KindName}
}

// ParseFieldKind accepts a kind name; "phone" is an alias of "tel".
func ParseFieldKind(s string) (FieldKind, bool) {
	switch k := FieldKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindEmail, KindPassword, KindPhone, KindName:
		return k, true
	case "phone":
		return KindPhone, true
	default:
		return "", false
	}
}

func stateOf(ok bool) State {
	if ok {
		return Valid
	}
	return Invalid
}

// EmailState checks the trimmed value.
func EmailState(value string) State {
	value = strings.TrimSpace(value)
	if value == "" {
		return Untouched
	}
	return stateOf(fields.IsValidEmail(value))
}

// PasswordState checks the raw value; surrounding spaces count.
func PasswordState(value string) State {
	if value == "" {
		return Untouched
	}
	return stateOf(fields.ValidatePassword(value).Valid)
}

// PhoneState checks the trimmed value.
func PhoneState(value string) State {
	value = strings.TrimSpace(value)
	if value == "" {
		return Untouched
	}
	return stateOf(fields.IsValidPhone(value))
}

// NameState checks the trimmed value.
func NameState(value string) State {
	value = strings.TrimSpace(value)
	if value == "" {
		return Untouched
	}
	return stateOf(fields.ValidateName(value).Valid)
}

// StateFor dispatches to the checker for kind. Unknown kinds stay untouched.
func StateFor(kind FieldKind, value string) State {
	switch kind {
	case KindEmail:
		return EmailState(value)
	case KindPassword:
		return PasswordState(value)
	case KindPhone:
		return PhoneState(value)
	case KindName:
		return NameState(value)
	default:
		return Untouched
	}
}

// FieldKindForInput decides which checker an <input> gets from its type
// and id. Text inputs are checked as names only when the id mentions
// "name".
func FieldKindForInput(inputType, id string) (FieldKind, bool) {
	switch strings.ToLower(inputType) {
	case "email":
		return KindEmail, true
	case "password":
		return KindPassword, true
	case "tel":
		return KindPhone, true
	case "text":
		if id != "" && strings.Contains(strings.ToLower(id), "name") {
			return KindName, true
		}
	}
	return "", false
}

// Triggers lists the DOM events that re-run the checker for kind.
func Triggers(kind FieldKind) []string {
	switch kind {
	case KindEmail, KindPhone:
		return []string{"blur", "input"}
	case KindPassword, KindName:
		return []string{"blur"}
	default:
		return nil
	}
}

// maxRedacted caps how much of a masked value reaches the logs.
const maxRedacted = 64

var maskOther = sanitizer.Compose(sanitizer.NormalizeWhitespace, sanitizer.MaskSecret)

// Redact masks an input value before it is logged. Emails keep their
// domain and phones their last four digits; anything else is fully masked.
func Redact(kind FieldKind, value string) string {
	var masked string
	switch kind {
	case KindEmail:
		trimmed := sanitizer.Trim(value)
		if masked = sanitizer.MaskEmail(trimmed); masked == trimmed {
			masked = sanitizer.MaskSecret(trimmed)
		}
	case KindPhone:
		masked = sanitizer.MaskPhone(value)
	default:
		masked = maskOther(value)
	}
	return sanitizer.MaxLength(masked, maxRedacted)
}
