package normalize

import (
	"strings"
	"unicode"
)

// NumberLength is the number of digits in a searchable mobile number.
const NumberLength = 10

// ExtractNumber returns the first 10-digit number found in input.
//
// A candidate must be a run of exactly ten ASCII digits whose neighbours are
// either the string edge or a rune that is not a letter, a number (in any
// script) or an underscore. "call 9876543210!" yields "9876543210", while
// "98765432101", "x9876543210" and "9876543210_" yield nothing.
// Only the first candidate is returned.
func ExtractNumber(input string) (string, bool) {
	for _, token := range strings.FieldsFunc(input, isBoundary) {
		if IsValidNumber(token) {
			return token, true
		}
	}
	return "", false
}

// IsValidNumber reports whether s is exactly ten ASCII digits.
func IsValidNumber(s string) bool {
	if len(s) != NumberLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isBoundary reports whether r separates word-like tokens.
func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_'
}
