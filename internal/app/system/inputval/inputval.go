// internal/app/system/inputval/inputval.go
//
// Package inputval holds request-input validation helpers shared by the
// feature handlers. These check shape only; business rules (roles,
// ownership, duplicates) live in the policy and service layers.
package inputval

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// IsValidEmail reports whether s is a plausible RFC 5322 address.
// Display-name forms ("User <user@example.com>") are rejected; we want
// the bare address exactly as it will be stored.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// NonEmpty reports whether s has visible content after trimming.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// WithinLen reports whether s is at most max runes long.
func WithinLen(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// ValidYear reports whether y is a plausible programme year.
func ValidYear(y int) bool {
	return y >= 1 && y <= 6
}
