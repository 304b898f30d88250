// Package normalize holds the canonical forms for user-supplied
// identifier fields. Every store and handler that touches an email goes
// through Email so that lookups and the unique index agree.
package normalize

import "strings"

// Email lowercases and trims an email address. An empty result means
// the input was not usable as a key.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name collapses surrounding whitespace in a display name.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
