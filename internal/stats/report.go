package stats

import (
	"fmt"
	"strconv"

	"github.com/verte-zerg/carousel/internal/catalog"
)

// Report is the statistics sheet for one page.
type Report struct {
	Page       string
	TotalItems int
	TotalChars int
	Top        []CharCount
}

// BuildReport computes the top n characters over every item of page.
func BuildReport(page catalog.Page, n int) Report {
	total := 0
	for _, item := range page.Items {
		total += CharLen(item)
	}
	return Report{
		Page:       page.Name,
		TotalItems: len(page.Items),
		TotalChars: total,
		Top:        Summarize(page.Items, n),
	}
}

// Lines renders the report body as shown on the sheet.
func (r Report) Lines() []string {
	lines := []string{fmt.Sprintf("Total items: %d", r.TotalItems)}
	if len(r.Top) == 0 {
		return lines
	}
	lines = append(lines, "")
	for _, c := range r.Top {
		lines = append(lines, fmt.Sprintf("%s = %d", CharLabel(c.Char), c.Count))
	}
	return lines
}

// Table renders the ranked characters as an aligned table with share of all characters.
func (r Report) Table() []string {
	rows := make([][]string, 0, len(r.Top))
	for i, c := range r.Top {
		share := 0.0
		if r.TotalChars > 0 {
			share = float64(c.Count) / float64(r.TotalChars) * 100
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			CharLabel(c.Char),
			strconv.Itoa(c.Count),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	return formatTable([]string{"#", "Char", "Count", "Share"}, rows, map[int]bool{0: true, 2: true, 3: true})
}

// CharLabel returns a printable label for a character.
func CharLabel(c string) string {
	switch c {
	case " ":
		return "<space>"
	case "\t":
		return "<tab>"
	}
	return c
}
