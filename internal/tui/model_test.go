package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/carousel/internal/catalog"
	"github.com/verte-zerg/carousel/internal/model"
	"github.com/verte-zerg/carousel/internal/pagestate"
)

func newTestModel(t *testing.T) (*Model, *pagestate.State) {
	t.Helper()
	st, err := pagestate.New(catalog.Default())
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	m := NewModel(st, model.Config{Top: 3, Capitalize: true}, nil)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	return m, st
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestInitialView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Orchard", "‹ 1/3 ›", "Apple", "Banana", "Cherry", "Date", "4 of 4", "+"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if h := lipgloss.Height(view); h != 24 {
		t.Fatalf("expected view to fill 24 rows, got %d", h)
	}
}

func TestSwipeChangesPage(t *testing.T) {
	m, st := newTestModel(t)
	press(m, "right", "l")
	if st.SelectedPage() != 2 {
		t.Fatalf("expected page 2, got %d", st.SelectedPage())
	}
	press(m, "right")
	if st.SelectedPage() != 2 {
		t.Fatalf("swipe past last page moved to %d", st.SelectedPage())
	}
	view := m.View()
	if !strings.Contains(view, "Berries") || !strings.Contains(view, "Strawberry") {
		t.Fatalf("expected berries page:\n%s", view)
	}
	press(m, "left", "h", "h")
	if st.SelectedPage() != 0 {
		t.Fatalf("expected page 0, got %d", st.SelectedPage())
	}
}

func TestSearchFiltersList(t *testing.T) {
	m, st := newTestModel(t)
	press(m, "/", "a", "n")
	if st.Query() != "an" {
		t.Fatalf("expected query an, got %q", st.Query())
	}
	if !reflect.DeepEqual(m.snap.Items, []string{"banana"}) {
		t.Fatalf("unexpected items: %v", m.snap.Items)
	}
	view := m.View()
	if strings.Contains(view, "Apple") || !strings.Contains(view, "Banana") {
		t.Fatalf("unexpected filtered view:\n%s", view)
	}

	// Swipes are typed into the field while searching.
	press(m, "l")
	if st.SelectedPage() != 0 || st.Query() != "anl" {
		t.Fatalf("unexpected state: page %d query %q", st.SelectedPage(), st.Query())
	}
	press(m, "backspace", "enter")
	if m.searching {
		t.Fatalf("expected search to lose focus")
	}
	press(m, "right")
	if !reflect.DeepEqual(m.snap.Items, []string{"orange", "mango"}) {
		t.Fatalf("query not applied to new page: %v", m.snap.Items)
	}
	press(m, "esc")
	if st.Query() != "" || len(m.snap.Items) != 4 {
		t.Fatalf("expected cleared query, got %q with %v", st.Query(), m.snap.Items)
	}
}

func TestNoMatches(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "/", "z", "z")
	if !strings.Contains(m.View(), "No matches.") {
		t.Fatalf("expected empty-state row:\n%s", m.View())
	}
}

func TestSheetShowsUnfilteredStatistics(t *testing.T) {
	m, st := newTestModel(t)
	press(m, "/", "a", "n", "enter", "+")
	if m.sheet == nil {
		t.Fatalf("expected sheet to open")
	}
	view := m.View()
	for _, want := range []string{"Statistics", "Total items: 4", "a = 5", "e = 3", "p = 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("sheet missing %q:\n%s", want, view)
		}
	}

	press(m, "right")
	if st.SelectedPage() != 0 {
		t.Fatalf("swipe under sheet moved page")
	}

	press(m, "esc")
	if m.sheet != nil {
		t.Fatalf("expected sheet to close")
	}
	if strings.Contains(m.View(), "Total items") {
		t.Fatalf("report still rendered after dismiss")
	}
}

func TestSheetRecomputedPerTap(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "right", "right", "s")
	if m.sheet == nil || m.sheet.Page != "Berries" {
		t.Fatalf("expected berries report, got %+v", m.sheet)
	}
	if !strings.Contains(m.View(), "r = 9") {
		t.Fatalf("unexpected sheet:\n%s", m.View())
	}
	press(m, "q")
	if m.sheet != nil {
		t.Fatalf("expected q to dismiss the sheet")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}

	press(m, "/")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command while searching")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	m, st := newTestModel(t)
	m.Close()
	st.SetQuery("an")
	if len(m.snap.Items) != 4 {
		t.Fatalf("closed model still observing state")
	}
}
