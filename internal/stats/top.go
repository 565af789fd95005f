// Package stats contains character-frequency calculations and reporting.
package stats

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultTop is the number of characters shown in a report.
const DefaultTop = 3

// CharCount is one character tally. Char is a single grapheme cluster, so
// an accented letter written with a combining mark or a flag counts once.
type CharCount struct {
	Char  string
	Count int
}

// Summarize returns the n most frequent lowercased characters across items.
// Equal counts keep first-occurrence order.
func Summarize(items []string, n int) []CharCount {
	if n <= 0 {
		return nil
	}
	index := map[string]int{}
	var counts []CharCount
	for _, item := range items {
		g := uniseg.NewGraphemes(item)
		for g.Next() {
			c := strings.ToLower(g.Str())
			i, ok := index[c]
			if !ok {
				i = len(counts)
				index[c] = i
				counts = append(counts, CharCount{Char: c})
			}
			counts[i].Count++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n > len(counts) {
		n = len(counts)
	}
	return counts[:n:n]
}

// CharLen returns the number of characters in s, counting grapheme clusters.
func CharLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
