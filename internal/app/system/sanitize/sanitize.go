// Package sanitize strips markup from client-submitted text before it is
// persisted. Menu names, descriptions, and cart item names come straight
// from JSON bodies and are later rendered by web clients, so anything
// tag-shaped is removed rather than escaped.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and unescapes the entities bluemonday
// leaves behind, returning plain trimmed text.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
