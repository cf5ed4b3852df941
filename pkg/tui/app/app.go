package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/store"
	calview "tableflip.dev/calnav/pkg/tui/components/calendar"
	"tableflip.dev/calnav/pkg/tui/components/dummy"
	"tableflip.dev/calnav/pkg/tui/components/eventviewer"
	"tableflip.dev/calnav/pkg/tui/components/tabbar"
	"tableflip.dev/calnav/pkg/tui/events"
	"tableflip.dev/calnav/pkg/tui/theme"
	"tableflip.dev/calnav/pkg/tui/ui"
)

const (
	tabHome = iota
	tabCalendar
	tabLibrary
	tabMyPage
)

const (
	shellID    = events.ComponentID("shell")
	calendarID = events.ComponentID("calendar")
)

// Options configures the shell.
type Options struct {
	Config *store.Config
	// Prefs is optional; without it mode changes are not remembered.
	Prefs  *store.Prefs
	Mode   calendar.Mode
	On     *calendar.Date
	Select *calendar.Date
	// Reloads, when set, delivers config re-reads from the watcher.
	Reloads <-chan store.ConfigEvent
	Clock   calendar.Clock
}

// Model is the root Bubble Tea model: a tab shell whose Calendar tab hosts
// the calendar component.
type Model struct {
	config  *store.Config
	prefs   *store.Prefs
	reloads <-chan store.ConfigEvent
	theme   theme.Theme

	width  int
	height int

	tabs     *tabbar.Model
	screens  []ui.Component
	calendar *calview.Model

	debugEnabled bool
	eventViewer  *eventviewer.Model

	status string
}

// New constructs the shell with the Calendar tab active.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &store.Config{}
	}
	th := theme.Default()

	engineOpts := []calendar.Option{
		calendar.WithMode(opts.Mode),
		calendar.WithLocation(cfg.Location),
	}
	if t := cfg.Thresholds(); t != (calendar.Thresholds{}) {
		engineOpts = append(engineOpts, calendar.WithThresholds(t))
	}
	if opts.Clock != nil {
		engineOpts = append(engineOpts, calendar.WithClock(opts.Clock))
	}
	if opts.On != nil {
		engineOpts = append(engineOpts, calendar.WithAnchor(*opts.On))
	}
	engine := calendar.New(engineOpts...)
	if opts.Select != nil {
		engine.Tap(*opts.Select)
	}

	cal := calview.New(calview.Options{
		ID:              calendarID,
		Engine:          engine,
		Styles:          th.Calendar,
		CellWidthUnits:  cfg.CellWidthUnits,
		CellHeightUnits: cfg.CellHeightUnits,
	})

	tabs := tabbar.New(th.Tabs,
		tabbar.Tab{Title: "Home", Icon: "⌂"},
		tabbar.Tab{Title: "Calendar", Icon: "▦"},
		tabbar.Tab{Title: "Library", Icon: "▤"},
		tabbar.Tab{Title: "My Page", Icon: "☺"},
	)
	tabs.SetActive(tabCalendar)

	return &Model{
		config:  cfg,
		prefs:   opts.Prefs,
		reloads: opts.Reloads,
		theme:   th,
		tabs:    tabs,
		screens: []ui.Component{
			tabHome:     dummy.New("Home", th.Panel.Title),
			tabCalendar: cal,
			tabLibrary:  dummy.New("Library", th.Panel.Title),
			tabMyPage:   dummy.New("My Page", th.Panel.Title),
		},
		calendar: cal,
		status:   "Ready",
	}
}

// Run launches the Bubble Tea program until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.screens)+1)
	for _, s := range m.screens {
		cmds = append(cmds, s.Init())
	}
	cmds = append(cmds, events.WaitForConfigCmd(m.reloads))
	return tea.Batch(cmds...)
}

// Calendar returns the calendar component.
func (m *Model) Calendar() *calview.Model { return m.calendar }

// ActiveTab returns the index of the visible tab.
func (m *Model) ActiveTab() int { return m.tabs.Active() }

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

// Update routes Bubble Tea messages to composed components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layoutContent()
		return m, nil
	case tea.KeyPressMsg:
		switch v.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "D":
			m.toggleDebug()
			return m, nil
		case "tab":
			return m, m.switchTab(func() bool { return m.tabs.Next() })
		case "shift+tab":
			return m, m.switchTab(func() bool { return m.tabs.Prev() })
		case "1", "2", "3", "4":
			i := int(v.String()[0] - '1')
			return m, m.switchTab(func() bool { return m.tabs.SetActive(i) })
		}
	case tea.MouseClickMsg:
		if i, ok := m.tabAt(v.X, v.Y); ok {
			return m, m.switchTab(func() bool { return m.tabs.SetActive(i) })
		}
	case tea.MouseWheelMsg:
		if m.debugEnabled {
			_, cmd := m.eventViewer.Update(msg)
			return m, cmd
		}
	case events.DateSelectMsg:
		m.status = "Selected " + v.Date.String()
		return m, nil
	case events.PeriodShiftMsg:
		m.status = fmt.Sprintf("%s %s", v.Direction, v.Anchor.Time().Format("January 2006"))
		m.noteSnapshot()
		return m, nil
	case events.ModeChangeMsg:
		m.status = fmt.Sprintf("%s view", v.Mode)
		m.saveMode(v.Mode)
		m.noteSnapshot()
		return m, nil
	case events.TabChangeMsg:
		return m, nil
	case events.ConfigReloadMsg:
		m.applyReload(v)
		return m, events.WaitForConfigCmd(m.reloads)
	}

	// Everything else goes to the visible screen. Timer messages from
	// hidden screens are delivered to all of them.
	if _, ok := msg.(tea.KeyPressMsg); ok || isMouse(msg) {
		return m, m.updateScreen(m.tabs.Active(), msg)
	}
	cmds := make([]tea.Cmd, 0, len(m.screens))
	for i := range m.screens {
		cmds = append(cmds, m.updateScreen(i, msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updateScreen(i int, msg tea.Msg) tea.Cmd {
	next, cmd := m.screens[i].Update(msg)
	m.screens[i] = next
	return cmd
}

func (m *Model) switchTab(change func() bool) tea.Cmd {
	if !change() {
		return nil
	}
	i := m.tabs.Active()
	title := m.tabs.Tabs()[i].Title
	m.status = title
	m.layoutContent()
	return events.TabChangeCmd(shellID, i, title)
}

func (m *Model) tabAt(x, y int) (int, bool) {
	if m.height <= 0 || y < m.height-m.tabs.Height() {
		return 0, false
	}
	return m.tabs.TabAt(x)
}

func (m *Model) saveMode(mode calendar.Mode) {
	if m.prefs == nil {
		return
	}
	if err := m.prefs.SetMode(mode); err != nil {
		m.status = "Could not save mode: " + err.Error()
		m.appendEvent(eventviewer.Entry{
			Source:  "prefs",
			Summary: "save mode",
			Detail:  err.Error(),
			Level:   eventviewer.LevelError,
		})
	}
}

func (m *Model) applyReload(msg events.ConfigReloadMsg) {
	if msg.Err != nil {
		m.status = "Config reload failed: " + msg.Err.Error()
		return
	}
	if msg.Config == nil {
		return
	}
	m.config = msg.Config
	m.calendar.ApplyConfig(msg.Config)
	m.status = "Config reloaded"
}

func (m *Model) toggleDebug() {
	if m.debugEnabled {
		m.debugEnabled = false
		m.eventViewer = nil
		m.status = "Debug log hidden"
		m.layoutContent()
		return
	}
	m.debugEnabled = true
	m.eventViewer = eventviewer.New(200, m.theme.Log)
	m.appendEvent(eventviewer.Entry{
		Summary: "debug",
		Detail:  "Debug window enabled",
		Source:  "ui",
	})
	m.status = "Debug log visible"
	m.layoutContent()
}

func (m *Model) noteEvent(msg tea.Msg) {
	if m.eventViewer == nil {
		return
	}
	m.eventViewer.Record(msg)
}

// noteSnapshot logs the engine state that follows a period or mode change.
func (m *Model) noteSnapshot() {
	m.appendEvent(eventviewer.Entry{
		Source:  "engine",
		Summary: "snapshot",
		Detail:  m.calendar.Snapshot().Describe(),
	})
}

func (m *Model) appendEvent(entry eventviewer.Entry) {
	if m.eventViewer == nil {
		return
	}
	m.eventViewer.Append(entry)
}

// layoutContent recomputes component sizes: content on top, then the
// optional event viewer, the status line and the tab bar.
func (m *Model) layoutContent() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.tabs.SetWidth(m.width)
	available := m.height - m.tabs.Height() - 1
	debugHeight := 0
	if m.debugEnabled {
		debugHeight = m.computeDebugHeight(available)
		m.eventViewer.SetSize(m.width, debugHeight)
	}
	contentHeight := max(1, available-debugHeight)
	for _, s := range m.screens {
		ui.Place(s, 0, 0, m.width, contentHeight)
	}
}

func (m *Model) contentHeight() int {
	h := m.height - m.tabs.Height() - 1
	if m.debugEnabled {
		h -= m.computeDebugHeight(h)
	}
	return max(1, h)
}

func (m *Model) computeDebugHeight(totalRows int) int {
	if totalRows <= 4 {
		return 0
	}
	minHeight := 5
	maxHeight := totalRows - 1
	if maxHeight < minHeight {
		return maxHeight
	}
	return min(max(totalRows/3, minHeight), min(12, maxHeight))
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width <= 0 || m.height <= 0 {
		return "", nil
	}
	content := m.screens[m.tabs.Active()].View()
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		Render(content)

	parts := []string{content}
	if m.debugEnabled && m.eventViewer != nil {
		if v := m.eventViewer.View(); v != "" {
			parts = append(parts, v)
		}
	}
	parts = append(parts, m.renderStatus(), m.tabs.View())
	return strings.Join(parts, "\n"), nil
}

func (m *Model) renderStatus() string {
	hint := "tab switch · D debug · q quit"
	line := m.status + "  " + hint
	return m.theme.Footer.Status.Render(truncate.StringWithTail(line, uint(max(m.width, 1)), "…"))
}

func isMouse(msg tea.Msg) bool {
	_, ok := msg.(tea.MouseMsg)
	return ok
}
