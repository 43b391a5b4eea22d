package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/sanitizer"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "dashes", input: "123-456-7890", expected: "1234567890"},
		{name: "us format", input: "(123) 456-7890", expected: "1234567890"},
		{name: "international prefix", input: "+1 123 456 7890", expected: "11234567890"},
		{name: "no digits", input: "phone", expected: ""},
		{name: "non ascii digits are dropped", input: "١٢٣456", expected: "456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.NormalizePhone(tt.input))
			assert.Equal(t, tt.expected, sanitizer.ExtractPhoneDigits(tt.input))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "j*******@example.com", sanitizer.MaskEmail("john.doe@example.com"))
	assert.Equal(t, "*@example.com", sanitizer.MaskEmail("j@example.com"))
	assert.Equal(t, "not-an-email", sanitizer.MaskEmail("not-an-email"))
	assert.Equal(t, "@example.com", sanitizer.MaskEmail("@example.com"))
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "******7890", sanitizer.MaskPhone("123-456-7890"))
	assert.Equal(t, "***", sanitizer.MaskPhone("123"))
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "******", sanitizer.MaskSecret("secret"))
	assert.Equal(t, "", sanitizer.MaskSecret(""))
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Mary Jane", sanitizer.NormalizeWhitespace("  Mary \t\n Jane "))
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	assert.Equal(t, "héllo", sanitizer.MaxLength("héllo", 10))
	assert.Equal(t, "", sanitizer.MaxLength("héllo", 0))
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.MaskEmail)
	assert.Equal(t, "j*******@example.com", clean("  john.doe@example.com "))

	assert.Equal(t, "hello", sanitizer.Apply("  hello  ", sanitizer.Trim))
	assert.Equal(t, "as-is", sanitizer.Apply("as-is"))
}
