// Package plain renders the screen as plain text frames.
package plain

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/verte-zerg/carousel/internal/catalog"
	"github.com/verte-zerg/carousel/internal/pagestate"
	"github.com/verte-zerg/carousel/internal/stats"
)

const defaultWidth = 48

// Renderer writes a frame for every snapshot it observes.
type Renderer struct {
	w          io.Writer
	width      int
	capitalize bool
	err        error
}

// NewRenderer returns a Renderer writing frames of the given width to w.
func NewRenderer(w io.Writer, width int, capitalize bool) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{w: w, width: width, capitalize: capitalize}
}

// StateChanged implements pagestate.Observer.
func (r *Renderer) StateChanged(snap pagestate.Snapshot) {
	r.write(r.Frame(snap))
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error {
	return r.err
}

// Frame renders a snapshot.
func (r *Renderer) Frame(snap pagestate.Snapshot) string {
	var b strings.Builder
	rule := strings.Repeat("─", r.width)
	b.WriteString(rule + "\n")
	b.WriteString(center(fmt.Sprintf("‹ %s ›", snap.PageName), r.width) + "\n")
	b.WriteString(center(Dots(snap.Page, snap.PageCount), r.width) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Search: %s\n", snap.Query))
	if len(snap.Items) == 0 {
		b.WriteString("  (no matches)\n")
	}
	for _, item := range snap.Items {
		if r.capitalize {
			item = catalog.DisplayItem(item)
		}
		b.WriteString("  " + runewidth.Truncate(item, r.width-2, "…") + "\n")
	}
	footer := fmt.Sprintf("%d of %d items", len(snap.Items), snap.Total)
	b.WriteString(footer + strings.Repeat(" ", max(1, r.width-runewidth.StringWidth(footer)-5)) + "[ + ]\n")
	return b.String()
}

// RenderReport writes the statistics sheet for a report.
func (r *Renderer) RenderReport(report stats.Report) {
	var b strings.Builder
	b.WriteString(strings.Repeat("═", r.width) + "\n")
	b.WriteString(center("Statistics", r.width) + "\n")
	b.WriteString(wordwrap.String(fmt.Sprintf("Page %s: %d items, %d characters", report.Page, report.TotalItems, report.TotalChars), r.width) + "\n")
	if len(report.Top) > 0 {
		b.WriteString("\n")
		for _, line := range report.Table() {
			b.WriteString(line + "\n")
		}
	}
	b.WriteString(strings.Repeat("═", r.width) + "\n")
	r.write(b.String())
}

// Dots renders the page indicator.
func Dots(page, count int) string {
	dots := make([]string, count)
	for i := range dots {
		dots[i] = "○"
		if i == page {
			dots[i] = "●"
		}
	}
	return strings.Join(dots, " ")
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := io.WriteString(r.w, s); err != nil {
		r.err = fmt.Errorf("failed to write frame: %w", err)
	}
}

func center(s string, width int) string {
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
