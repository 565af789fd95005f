package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/carousel/internal/stats"
)

const (
	defaultWidth = 60
	bannerHeight = 3
	// footerReserve keeps room for the item count and the action button.
	footerReserve = 16
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#F0F0F0")).
			Align(lipgloss.Center, lipgloss.Center).
			Height(bannerHeight)
	bannerTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	bannerHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	activeDotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A7BD5"))
	inactiveDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	searchStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#6E6E6E")).
				Padding(0, 1)
	searchFocusStyle = searchStyle.BorderForeground(lipgloss.Color("#3A7BD5"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	fabStyle         = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#3A7BD5")).
				Bold(true).
				Padding(0, 1)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#3A7BD5")).
			Padding(1, 2)
	modalTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.sheet != nil {
		return m.renderSheet(*m.sheet)
	}
	sections := []string{
		m.renderBanner(),
		m.renderDots(),
		m.renderSearch(),
		m.list.View(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderBanner() string {
	title := bannerTitleStyle.Render(m.snap.PageName)
	hint := bannerHintStyle.Render(fmt.Sprintf("‹ %d/%d ›", m.snap.Page+1, m.snap.PageCount))
	return bannerStyle.Width(m.contentWidth() - 2).Render(title + "\n" + hint)
}

func (m *Model) renderDots() string {
	return lipgloss.PlaceHorizontal(m.contentWidth(), lipgloss.Center, strings.TrimRight(m.dots.View(), " "))
}

func (m *Model) renderSearch() string {
	style := searchStyle
	if m.searching {
		style = searchFocusStyle
	}
	return style.Width(m.contentWidth() - 2).Render(m.search.View())
}

func (m *Model) renderFooter() string {
	var helpView string
	if m.searching {
		helpView = m.help.View(searchKeys{done: m.keys.DoneSearch})
	} else {
		helpView = m.help.View(m.keys)
	}
	count := mutedStyle.Render(fmt.Sprintf("%d of %d", len(m.snap.Items), m.snap.Total))
	fab := fabStyle.Render("+")
	right := count + " " + fab
	lines := strings.Split(helpView, "\n")
	last := len(lines) - 1
	gap := m.contentWidth() - lipgloss.Width(lines[last]) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	lines[last] += strings.Repeat(" ", gap) + right
	return strings.Join(lines, "\n")
}

func (m *Model) renderSheet(report stats.Report) string {
	body := []string{modalTitleStyle.Render("Statistics")}
	body = append(body, report.Lines()...)
	body = append(body, "", mutedStyle.Render("esc to close"))
	box := modalStyle.Render(strings.Join(body, "\n"))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Bottom, box)
}

// chromeHeight is the number of rows used by everything except the list.
func (m *Model) chromeHeight() int {
	return lipgloss.Height(m.renderBanner()) +
		lipgloss.Height(m.renderDots()) +
		lipgloss.Height(m.renderSearch()) +
		lipgloss.Height(m.renderFooter())
}
