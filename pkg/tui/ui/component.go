package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Positioned is implemented by components that map pointer coordinates and
// need to know where they are drawn.
type Positioned interface {
	SetOffset(x, y int)
}

// Place sizes c and, when it supports it, records its offset.
func Place(c Component, x, y, width, height int) {
	c.SetSize(width, height)
	if p, ok := c.(Positioned); ok {
		p.SetOffset(x, y)
	}
}
