// Package filter provides search filtering over page items.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchFunc returns true when an item should be kept.
type MatchFunc func(string) bool

// Match returns a case-insensitive substring predicate for query.
// An empty query matches everything.
func Match(query string) MatchFunc {
	if query == "" {
		return func(string) bool { return true }
	}
	folded := fold(query)
	return func(item string) bool {
		return strings.Contains(fold(item), folded)
	}
}

// Apply returns the items containing query, in their original order.
// The input slice is returned as is when query is empty.
func Apply(items []string, query string) []string {
	if query == "" {
		return items
	}
	match := Match(query)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}
