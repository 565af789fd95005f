package stats

import (
	"reflect"
	"testing"

	"github.com/verte-zerg/carousel/internal/catalog"
)

func TestBuildReport(t *testing.T) {
	page, _ := catalog.Default().Page(0)
	report := BuildReport(page, DefaultTop)
	if report.Page != "Orchard" {
		t.Fatalf("unexpected page %q", report.Page)
	}
	if report.TotalItems != 4 {
		t.Fatalf("expected 4 items, got %d", report.TotalItems)
	}
	if report.TotalChars != 21 {
		t.Fatalf("expected 21 characters, got %d", report.TotalChars)
	}
	want := []string{"Total items: 4", "", "a = 5", "e = 3", "p = 2"}
	if got := report.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestBuildReportEmptyPage(t *testing.T) {
	report := BuildReport(catalog.Page{Name: "Empty"}, DefaultTop)
	if report.TotalItems != 0 || len(report.Top) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
	if got := report.Lines(); !reflect.DeepEqual(got, []string{"Total items: 0"}) {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestReportLinesLabelsSpace(t *testing.T) {
	report := BuildReport(catalog.Page{Name: "Phrases", Items: []string{"a b", " "}}, 1)
	want := []string{"Total items: 2", "", "<space> = 2"}
	if got := report.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestBuildReportCountsGraphemes(t *testing.T) {
	report := BuildReport(catalog.Page{Name: "Accents", Items: []string{"é", "🇺🇸"}}, DefaultTop)
	if report.TotalChars != 2 {
		t.Fatalf("expected 2 characters, got %d", report.TotalChars)
	}
	want := []string{"Total items: 2", "", "é = 1", "🇺🇸 = 1"}
	if got := report.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines: %q", got)
	}
}
