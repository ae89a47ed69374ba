// Package util provides small helpers shared across layers.
package util

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the address so
// the same mailbox always maps to the same identity record.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsBlank reports whether the string is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
