package sanitizer

import "strings"

// MaskEmail preserves full domain for user recognition while hiding personal info.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	if len(local) == 0 {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	masked := string(local[0]) + strings.Repeat("*", len(local)-1)
	return masked + "@" + domain
}

// NormalizePhone drops every character that is not an ASCII digit.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// MaskPhone keeps the last 4 digits for user recognition.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	masked := strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
	return masked
}

func ExtractPhoneDigits(phone string) string {
	return NormalizePhone(phone)
}

// MaskSecret hides the value entirely but keeps its length visible.
func MaskSecret(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}
