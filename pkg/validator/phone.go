package validator

import (
	"strings"
	"unicode"
)

// SanitizePhone removes common separators from a phone number.
// Spaces, dashes, dots and parentheses are dropped; a leading + is kept.
// No format is enforced: customers book from many countries.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	b.Grow(len(phone))
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}
