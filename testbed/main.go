package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/tui/components/eventviewer"
	"tableflip.dev/calnav/pkg/tui/theme"
	"tableflip.dev/calnav/pkg/tui/ui"
)

type options struct {
	full   bool
	width  int
	height int
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run calnav components in isolation",
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 40, "frame width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 14, "frame height when not fullscreen")

	rootCmd.AddCommand(newCalendarCmd(&opts))
	rootCmd.AddCommand(newDummyCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options, component ui.Component) error {
	h := newHarness(opts, component)
	p := tea.NewProgram(h, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// harness frames one component and logs every message it sees below it.
type harness struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int

	termWidth  int
	termHeight int

	component ui.Component
	events    *eventviewer.Model

	frameWidth  int
	frameHeight int
	frameX      int
	eventHeight int
}

func newHarness(opts options, component ui.Component) *harness {
	return &harness{
		fullscreen: opts.full,
		maxWidth:   opts.width,
		maxHeight:  opts.height,
		component:  component,
		events:     eventviewer.New(400, theme.Default().Log),
	}
}

func (m *harness) Init() tea.Cmd { return m.component.Init() }

func (m *harness) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.events.Record(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layout()
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.MouseWheelMsg:
		_, cmd := m.events.Update(msg)
		return m, cmd
	}

	next, cmd := m.component.Update(msg)
	m.component = next
	return m, cmd
}

func (m *harness) layout() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.eventHeight = m.computeEventHeight()
	frameSpace := max(minFrameHeight, m.termHeight-m.eventHeight-frameGap)

	width := clamp(m.maxWidth, 20, m.termWidth-4)
	height := clamp(m.maxHeight, minFrameHeight, frameSpace)
	if m.fullscreen {
		width = m.termWidth
		height = frameSpace
	}
	m.frameWidth = width
	m.frameHeight = height
	m.frameX = max(0, (m.termWidth-width)/2)

	// One column and row of border around the content.
	ui.Place(m.component, m.frameX+1, 1, max(1, width-2), max(1, height-2))
	if m.eventHeight > 0 {
		m.events.SetSize(m.termWidth, m.eventHeight)
	}
}

func (m *harness) computeEventHeight() int {
	maxAvailable := m.termHeight - minFrameHeight - frameGap
	if maxAvailable < minEventHeight {
		return 0
	}
	return min(clamp(m.termHeight/4, minEventHeight, maxEventHeight), maxAvailable)
}

func (m *harness) View() (string, *tea.Cursor) {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…", nil
	}
	inner := lipgloss.NewStyle().
		Width(max(1, m.frameWidth-2)).
		Height(max(1, m.frameHeight-2)).
		MaxHeight(max(1, m.frameHeight-2)).
		Render(m.component.View())
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(inner)
	placed := lipgloss.NewStyle().MarginLeft(m.frameX).Render(frame)
	if m.eventHeight == 0 {
		return placed, nil
	}
	return lipgloss.JoinVertical(lipgloss.Left, placed, "", m.events.View()), nil
}

func clamp(value, lo, hi int) int {
	if hi <= 0 {
		return lo
	}
	return min(max(value, lo), hi)
}

const (
	minFrameHeight = 12
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)
