// internal/app/system/normalize/normalize.go
//
// Package normalize holds the canonical string normalizations applied
// before values are stored or compared. Keeping them in one place means
// the stores and the validators can never disagree about what
// "the same email" means.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are compared and
// indexed in this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name. Case is preserved; the *_ci companion field
// handles case-insensitive lookups.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// AuthMethod lowercases and trims an auth method value (internal, google).
func AuthMethod(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RollNo uppercases and trims a student roll number. Roll numbers are
// issued uppercase; normalizing here makes lookups forgiving of how
// leaders type them.
func RollNo(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
