package stats

import (
	"reflect"
	"testing"

	"github.com/verte-zerg/carousel/internal/catalog"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Char", "Count"}
	rows := [][]string{
		{"a", "12"},
		{"<space>", "3"},
	}

	lines := formatTable(headers, rows, map[int]bool{1: true})
	want := []string{
		"Char     Count",
		"a           12",
		"<space>      3",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected table:\n%q", lines)
	}
}

func TestReportTable(t *testing.T) {
	page, _ := catalog.Default().Page(2)
	lines := BuildReport(page, DefaultTop).Table()
	want := []string{
		"#  Char  Count  Share",
		"1  r         9  27.3%",
		"2  e         5  15.2%",
		"3  b         4  12.1%",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected table:\n%q", lines)
	}
}

func TestFormatTableTrimsTrailingPadding(t *testing.T) {
	headers := []string{"Char", "Note"}
	rows := [][]string{
		{"a", "vowel"},
		{"<space>", ""},
	}

	lines := formatTable(headers, rows, nil)
	want := []string{
		"Char     Note",
		"a        vowel",
		"<space>",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("unexpected table:\n%q", lines)
	}
}
