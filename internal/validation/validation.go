package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateField checks that a prompted answer is not blank.
func ValidateField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "value cannot be empty"}
	}
	return nil
}

// ValidateSeparator checks that sep is a single character.
func ValidateSeparator(sep string) error {
	if utf8.RuneCountInString(sep) != 1 {
		return &ValidationError{Field: "separator", Message: fmt.Sprintf("%q must be exactly one character", sep)}
	}
	if strings.ContainsAny(sep, " \t\n\r") {
		return &ValidationError{Field: "separator", Message: "separator cannot be whitespace"}
	}
	return nil
}

// ValidateHashLength checks the number of commit hash characters kept.
func ValidateHashLength(n int) error {
	if n < 4 || n > 40 {
		return &ValidationError{Field: "hash_length", Message: fmt.Sprintf("%d is outside 4..40", n)}
	}
	return nil
}

// SanitizeInput removes control characters and surrounding whitespace.
func SanitizeInput(input string) string {
	input = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, input)

	return strings.TrimSpace(input)
}
