// Package sanitizer normalizes free-text input and redacts payment
// card numbers before they leave the service.
package sanitizer

import (
	"strings"
	"unicode"
)

// CardMaskPrefix is what replaces everything but the last four digits
// of a card number in API responses.
const CardMaskPrefix = "•••• •••• •••• "

// MaskCardNumber reduces a card number to its last four digits behind
// the fixed mask prefix. Separators (spaces, dashes) are ignored. Input
// with fewer than four digits masks fully.
func MaskCardNumber(card string) string {
	digits := make([]rune, 0, len(card))
	for _, r := range card {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}

	if len(digits) < 4 {
		return strings.TrimSpace(CardMaskPrefix)
	}
	return CardMaskPrefix + string(digits[len(digits)-4:])
}

// SanitizeText trims the input, collapses internal whitespace runs to a
// single space and strips control characters.
func SanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	for _, r := range s {
		switch {
		case unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}
