package fields

import (
	"regexp"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Result is the outcome of a single-field check. Message is always set,
// including on success.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Messages reported by the field checks.
const (
	MsgPasswordTooShort = "Password must be at least 6 characters long"
	MsgPasswordValid    = "Password is valid"

	MsgNameTooShort    = "Name must be at least 3 characters long"
	MsgNameInvalidChar = "Name can only contain letters, spaces, hyphens, and apostrophes"
	MsgNameValid       = "Name is valid"

	MsgEmailInvalid = "Please enter a valid email address"
	MsgPhoneInvalid = "Please enter a valid 10-digit phone number"
)

const (
	passwordMinLen = 6
	nameMinLen     = 3
	phoneDigits    = 10
)

var nameCharsRegex = regexp.MustCompile(`^[a-zA-Z` + validator.WhitespaceClass + `.'-]+$`)

// EmailRule checks the local@domain.tld shape on the raw value.
func EmailRule(field, value string) validator.Rule {
	return validator.EmailShape(field, value).WithMessage(MsgEmailInvalid)
}

// PasswordRule requires at least six characters.
func PasswordRule(field, value string) validator.Rule {
	return validator.MinLenString(field, value, passwordMinLen).WithMessage(MsgPasswordTooShort)
}

// PhoneRule requires exactly ten digits once punctuation is stripped.
func PhoneRule(field, value string) validator.Rule {
	return validator.DigitCount(field, value, phoneDigits).WithMessage(MsgPhoneInvalid)
}

// NameRule checks the trimmed length first and the character set second,
// so a short name never reports the charset message.
func NameRule(field, value string) validator.Rule {
	return validator.Bail(
		validator.MinLenTrimmed(field, value, nameMinLen).WithMessage(MsgNameTooShort),
		validator.Matches(field, value, nameCharsRegex).WithMessage(MsgNameInvalidChar),
	)
}

func IsValidEmail(email string) bool {
	return validator.Apply(EmailRule("email", email)) == nil
}

func IsValidPhone(phone string) bool {
	return validator.Apply(PhoneRule("phone", phone)) == nil
}

func ValidatePassword(password string) Result {
	return evaluate(PasswordRule("password", password), MsgPasswordValid)
}

func ValidateName(name string) Result {
	return evaluate(NameRule("name", name), MsgNameValid)
}

func evaluate(rule validator.Rule, okMessage string) Result {
	if errs := validator.Validate(rule); len(errs) > 0 {
		return Result{Valid: false, Message: errs[0].Message}
	}
	return Result{Valid: true, Message: okMessage}
}
