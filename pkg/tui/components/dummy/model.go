// Package dummy provides placeholder screens for tabs without content.
package dummy

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calnav/pkg/tui/ui"
)

// Model renders a label centered in its area.
type Model struct {
	label  string
	width  int
	height int

	style lipgloss.Style
}

// New constructs a placeholder showing label.
func New(label string, style lipgloss.Style) *Model {
	return &Model{label: label, style: style}
}

// Label returns the text shown.
func (m *Model) Label() string { return m.label }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) { return m, nil }

// View renders the centered label.
func (m *Model) View() string {
	text := m.style.Render(m.label)
	if m.width <= 0 || m.height <= 0 {
		return text
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, text)
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
}
