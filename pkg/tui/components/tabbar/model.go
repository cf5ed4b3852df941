package tabbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/calnav/pkg/tui/theme"
)

// Tab is one entry of the bar.
type Tab struct {
	Title string
	Icon  string
}

// Label renders the icon and title.
func (t Tab) Label() string {
	if t.Icon == "" {
		return t.Title
	}
	return t.Icon + " " + t.Title
}

// Model tracks the tabs and the active one.
type Model struct {
	tabs   []Tab
	active int
	width  int
	styles theme.TabTheme
}

// New returns a bar over tabs with the first one active.
func New(styles theme.TabTheme, tabs ...Tab) *Model {
	return &Model{tabs: tabs, styles: styles}
}

// Tabs returns the configured tabs.
func (m *Model) Tabs() []Tab { return m.tabs }

// Active returns the index of the active tab.
func (m *Model) Active() int { return m.active }

// SetActive selects tab i and reports whether it changed.
func (m *Model) SetActive(i int) bool {
	if i < 0 || i >= len(m.tabs) || i == m.active {
		return false
	}
	m.active = i
	return true
}

// Next moves right, wrapping around.
func (m *Model) Next() bool {
	if len(m.tabs) == 0 {
		return false
	}
	return m.SetActive((m.active + 1) % len(m.tabs))
}

// Prev moves left, wrapping around.
func (m *Model) Prev() bool {
	if len(m.tabs) == 0 {
		return false
	}
	return m.SetActive((m.active + len(m.tabs) - 1) % len(m.tabs))
}

// SetWidth sets the rendered width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Height reports the number of lines consumed by the bar.
func (m *Model) Height() int {
	return 1 + m.styles.Bar.GetVerticalFrameSize()
}

// TabAt maps a column to a tab index.
func (m *Model) TabAt(x int) (int, bool) {
	slot := m.slotWidth()
	if slot <= 0 || x < 0 {
		return 0, false
	}
	i := x / slot
	if i >= len(m.tabs) {
		return 0, false
	}
	return i, true
}

func (m *Model) slotWidth() int {
	if len(m.tabs) == 0 || m.width <= 0 {
		return 0
	}
	return m.width / len(m.tabs)
}

// View renders the tabs in equal slots.
func (m *Model) View() string {
	slot := m.slotWidth()
	if slot <= 0 {
		return ""
	}
	var b strings.Builder
	for i, tab := range m.tabs {
		label := truncate.StringWithTail(tab.Label(), uint(slot), "…")
		style := m.styles.Inactive
		if i == m.active {
			style = m.styles.Active
		}
		b.WriteString(lipgloss.PlaceHorizontal(slot, lipgloss.Center, style.Render(label)))
	}
	return m.styles.Bar.Width(m.width).Render(b.String())
}
