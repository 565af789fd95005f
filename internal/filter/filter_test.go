package filter

import (
	"reflect"
	"strings"
	"testing"
)

var orchard = []string{"apple", "banana", "cherry", "date"}

func TestApplyEmptyQueryIsIdentity(t *testing.T) {
	got := Apply(orchard, "")
	if !reflect.DeepEqual(got, orchard) {
		t.Fatalf("expected identity, got %v", got)
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "an", want: []string{"banana"}},
		{query: "AN", want: []string{"banana"}},
		{query: "e", want: []string{"apple", "cherry", "date"}},
		{query: "a", want: []string{"apple", "banana", "date"}},
		{query: "zz", want: []string{}},
		{query: " ", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Apply(orchard, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Apply(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestApplyKeepsExactlyMatchingItemsInOrder(t *testing.T) {
	items := []string{"Strawberry", "blueberry", "RASPBERRY", "grape", "Berry"}
	for _, query := range []string{"berry", "BeRr", "r", "ape", "x"} {
		want := []string{}
		for _, item := range items {
			if strings.Contains(strings.ToLower(item), strings.ToLower(query)) {
				want = append(want, item)
			}
		}
		got := Apply(items, query)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Apply(%q) = %v, want %v", query, got, want)
		}
	}
}

func TestMatchFoldsUnicode(t *testing.T) {
	match := Match("ÉCLAIR")
	if !match("chocolate éclair") {
		t.Fatalf("expected case-folded match")
	}
	if match("eclair") {
		t.Fatalf("accents must not be stripped")
	}
}
