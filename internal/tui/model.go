// Package tui provides the Bubble Tea carousel screen.
package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/carousel/internal/catalog"
	"github.com/verte-zerg/carousel/internal/model"
	"github.com/verte-zerg/carousel/internal/pagestate"
	"github.com/verte-zerg/carousel/internal/stats"
)

// Model implements the Bubble Tea carousel screen. It observes a pagestate.State
// and re-derives the list whenever the page or query changes.
type Model struct {
	state  *pagestate.State
	config model.Config
	logger *slog.Logger
	cancel func()

	snap   pagestate.Snapshot
	search textinput.Model
	dots   paginator.Model
	list   viewport.Model
	help   help.Model
	keys   keyMap

	searching bool
	sheet     *stats.Report

	width  int
	height int
}

// NewModel constructs the screen and subscribes it to st.
func NewModel(st *pagestate.State, cfg model.Config, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		state:  st,
		config: cfg,
		logger: logger,
		search: newSearchInput(),
		dots:   newDots(),
		list:   viewport.New(defaultWidth, 1),
		help:   help.New(),
		keys:   defaultKeyMap(),
	}
	m.cancel = st.Subscribe(m)
	m.StateChanged(st.Snapshot())
	return m
}

func newSearchInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "Search: "
	input.Placeholder = "type / to filter"
	input.CharLimit = 0
	return input
}

func newDots() paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = activeDotStyle.Render("● ")
	p.InactiveDot = inactiveDotStyle.Render("○ ")
	return p
}

// Close unsubscribes the screen from its state.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// StateChanged implements pagestate.Observer.
func (m *Model) StateChanged(snap pagestate.Snapshot) {
	pageChanged := snap.Page != m.snap.Page
	m.snap = snap
	m.dots.TotalPages = snap.PageCount
	m.dots.Page = snap.Page
	m.refreshList()
	if pageChanged {
		m.list.GotoTop()
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.sheet != nil:
			return m.updateSheet(msg)
		case m.searching:
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.state.Prev()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.state.Next()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.updateLayout()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.state.SetQuery("")
		return m, nil
	case key.Matches(msg, m.keys.Stats):
		m.openSheet()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayout()
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.DoneSearch) {
		m.searching = false
		m.search.Blur()
		m.updateLayout()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.state.SetQuery(m.search.Value())
	return m, cmd
}

func (m *Model) updateSheet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) {
		m.sheet = nil
		m.logger.Debug("statistics dismissed")
	}
	return m, nil
}

func (m *Model) openSheet() {
	report := m.state.Report(m.top())
	m.sheet = &report
	m.logger.Debug("statistics opened", "page", report.Page)
}

func (m *Model) top() int {
	if m.config.Top > 0 {
		return m.config.Top
	}
	return stats.DefaultTop
}

func (m *Model) refreshList() {
	width := m.contentWidth() - 2
	if len(m.snap.Items) == 0 {
		m.list.SetContent(mutedStyle.Render("  No matches."))
		return
	}
	rows := make([]string, len(m.snap.Items))
	for i, item := range m.snap.Items {
		if m.config.Capitalize {
			item = catalog.DisplayItem(item)
		}
		rows[i] = "  " + runewidth.Truncate(item, width, "…")
	}
	m.list.SetContent(strings.Join(rows, "\n"))
}

func (m *Model) updateLayout() {
	width := m.contentWidth()
	m.list.Width = width
	m.search.Width = maxInt(10, width-len(m.search.Prompt)-8)
	m.help.Width = maxInt(10, width-footerReserve)
	m.list.Height = maxInt(1, m.height-m.chromeHeight())
	m.refreshList()
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
