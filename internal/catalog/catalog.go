// Package catalog defines the fixed set of pages shown by the carousel.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no pages.
	ErrEmptyCatalog = errors.New("catalog has no pages")
	// ErrUnnamedPage is returned when a page has an empty name.
	ErrUnnamedPage = errors.New("page has no name")
	// ErrDuplicatePage is returned when two pages share a name.
	ErrDuplicatePage = errors.New("duplicate page name")
)

// Page is one named list of items.
type Page struct {
	Name  string   `toml:"name" yaml:"name"`
	Items []string `toml:"items" yaml:"items"`
}

// Catalog is an ordered sequence of pages. It is not modified after loading.
type Catalog struct {
	Pages []Page `toml:"pages" yaml:"pages"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{Pages: []Page{
		{Name: "Orchard", Items: []string{"apple", "banana", "cherry", "date"}},
		{Name: "Tropical", Items: []string{"orange", "kiwi", "mango", "papaya"}},
		{Name: "Berries", Items: []string{"strawberry", "blueberry", "raspberry", "grape"}},
	}}
}

// Len returns the number of pages.
func (c Catalog) Len() int {
	return len(c.Pages)
}

// Page returns a copy of the page at index i.
func (c Catalog) Page(i int) (Page, bool) {
	if i < 0 || i >= len(c.Pages) {
		return Page{}, false
	}
	return c.Pages[i].clone(), true
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	pages := make([]Page, len(c.Pages))
	for i, p := range c.Pages {
		pages[i] = p.clone()
	}
	return Catalog{Pages: pages}
}

func (p Page) clone() Page {
	return Page{Name: p.Name, Items: append([]string(nil), p.Items...)}
}

// Names returns page names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		names[i] = p.Name
	}
	return names
}

// Validate checks the catalog has at least one page and unique, non-empty names.
func (c Catalog) Validate() error {
	if len(c.Pages) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(c.Pages))
	for i, p := range c.Pages {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("page %d: %w", i, ErrUnnamedPage)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("page %q: %w", p.Name, ErrDuplicatePage)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// normalize trims names and items and drops empty items.
func (c Catalog) normalize() Catalog {
	pages := make([]Page, 0, len(c.Pages))
	for _, p := range c.Pages {
		items := make([]string, 0, len(p.Items))
		for _, item := range p.Items {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			items = append(items, item)
		}
		pages = append(pages, Page{Name: strings.TrimSpace(p.Name), Items: items})
	}
	return Catalog{Pages: pages}
}

// DisplayItem capitalizes an item for presentation. It must not be used for matching.
func DisplayItem(item string) string {
	return cases.Title(language.Und).String(item)
}
