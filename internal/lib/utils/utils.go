// Package utils contains small helper functions used across the project.
package utils

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases an email
// address. Every email is normalized this way before validation, lookups,
// and persistence, so equality is case-insensitive throughout.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
