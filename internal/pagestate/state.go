// Package pagestate holds the selected carousel page and the search query,
// and notifies observers when either changes.
package pagestate

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/verte-zerg/carousel/internal/catalog"
	"github.com/verte-zerg/carousel/internal/filter"
	"github.com/verte-zerg/carousel/internal/stats"
)

var (
	// ErrPageOutOfRange is returned when a page index is outside the catalog.
	// The selected page is left unchanged.
	ErrPageOutOfRange = errors.New("page index out of range")
	// ErrInvalidViewport is returned for a non-positive carousel viewport width.
	ErrInvalidViewport = errors.New("viewport width must be positive")
)

// Snapshot is a read-only view of the state handed to observers.
type Snapshot struct {
	Page      int
	PageCount int
	PageName  string
	Query     string
	Items     []string
	Total     int
}

// State is the page selection and search query for one screen.
// It is not safe for concurrent use.
type State struct {
	catalog   catalog.Catalog
	page      int
	query     string
	observers []*subscription
	logger    *slog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a State on page 0 with an empty query.
func New(cat catalog.Catalog, opts ...Option) (*State, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	s := &State{
		catalog: cat.Clone(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SelectedPage returns the selected page index.
func (s *State) SelectedPage() int {
	return s.page
}

// Query returns the current search query.
func (s *State) Query() string {
	return s.query
}

// PageCount returns the number of pages.
func (s *State) PageCount() int {
	return s.catalog.Len()
}

// CurrentPage returns a copy of the selected page with all of its items.
func (s *State) CurrentPage() catalog.Page {
	page, _ := s.catalog.Page(s.page)
	return page
}

// Filtered returns a copy of the items of the selected page matching the query.
func (s *State) Filtered() []string {
	return filter.Apply(s.CurrentPage().Items, s.query)
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	page := s.CurrentPage()
	return Snapshot{
		Page:      s.page,
		PageCount: s.catalog.Len(),
		PageName:  page.Name,
		Query:     s.query,
		Items:     filter.Apply(page.Items, s.query),
		Total:     len(page.Items),
	}
}

// SetSelectedPage selects page i. Out-of-range indexes are rejected.
func (s *State) SetSelectedPage(i int) error {
	if i < 0 || i >= s.catalog.Len() {
		return fmt.Errorf("page %d of %d: %w", i, s.catalog.Len(), ErrPageOutOfRange)
	}
	if i == s.page {
		return nil
	}
	s.logger.Debug("page selected", "from", s.page, "to", i)
	s.page = i
	s.notify()
	return nil
}

// Next swipes to the following page. It reports whether the page changed.
func (s *State) Next() bool {
	return s.SetSelectedPage(s.page+1) == nil
}

// Prev swipes to the preceding page. It reports whether the page changed.
func (s *State) Prev() bool {
	return s.SetSelectedPage(s.page-1) == nil
}

// ScrollTo derives the page from a carousel scroll offset, flooring
// offset/viewportWidth. Offsets past either end are rejected like SetSelectedPage.
func (s *State) ScrollTo(offset, viewportWidth float64) error {
	if viewportWidth <= 0 || math.IsNaN(viewportWidth) {
		return ErrInvalidViewport
	}
	page := math.Floor(offset / viewportWidth)
	if math.IsNaN(page) || page < 0 || page >= float64(s.catalog.Len()) {
		return fmt.Errorf("offset %g: %w", offset, ErrPageOutOfRange)
	}
	return s.SetSelectedPage(int(page))
}

// SetQuery replaces the search query.
func (s *State) SetQuery(query string) {
	if query == s.query {
		return
	}
	s.logger.Debug("query changed", "query", query)
	s.query = query
	s.notify()
}

// Report computes statistics over every item of the selected page, ignoring the query.
func (s *State) Report(n int) stats.Report {
	report := stats.BuildReport(s.CurrentPage(), n)
	s.logger.Debug("report computed", "page", report.Page, "items", report.TotalItems, "top", len(report.Top))
	return report
}
