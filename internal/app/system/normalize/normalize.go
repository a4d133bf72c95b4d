// Package normalize cleans form values before they are validated. Values
// sent to the API are left as the user typed them.
package normalize

import (
	"strings"
)

// Email trims surrounding whitespace. Case is kept; the API decides what an
// address means.
func Email(s string) string {
	return strings.TrimSpace(s)
}

// Name trims surrounding whitespace and preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Username trims surrounding whitespace. Usernames are case-sensitive in
// the API, so case is kept.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a query-string value.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
