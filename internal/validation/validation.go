// Package validation holds the field rules applied before any repository
// write. All checks are pure and run before any I/O.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// meaningful reports whether the rune counts as content for name fields:
// letters, digits, or ASCII punctuation. Whitespace and control characters
// do not qualify.
func meaningful(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	return r < 128 && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// NameValid reports whether s trims to a non-empty string containing at
// least one alphanumeric or ASCII-punctuation character. Whitespace-only and
// control-character-only strings are rejected.
func NameValid(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return strings.ContainsFunc(s, meaningful)
}

// RecipeNameValid applies the weaker recipe rule: non-empty after trimming.
func RecipeNameValid(s string) bool {
	return strings.TrimSpace(s) != ""
}

// RequireName returns a validation message when s fails the name rule. The
// field argument names the offending field in the message, e.g. "Project name".
func RequireName(field, s string) error {
	if !NameValid(s) {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
