// Package calendar renders the month grid and week strip and turns keys and
// pointer drags into calendar engine operations.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	cal "tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/store"
	"tableflip.dev/calnav/pkg/tui/events"
	"tableflip.dev/calnav/pkg/tui/theme"
	"tableflip.dev/calnav/pkg/tui/ui"
)

const (
	cellWidth = 2
	cellGap   = 1
	gridWidth = cal.DaysPerWeek*(cellWidth+cellGap) - cellGap

	// Rows above the first week: title and weekday header.
	headerRows = 2

	refreshInterval = time.Minute
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

type refreshMsg struct{}

// Options configures a calendar model.
type Options struct {
	ID     events.ComponentID
	Engine *cal.Engine
	Styles theme.CalendarTheme

	// CellWidthUnits and CellHeightUnits scale a pointer movement of one
	// terminal cell into gesture units.
	CellWidthUnits  float64
	CellHeightUnits float64
}

// Model is the calendar component.
type Model struct {
	id     events.ComponentID
	engine *cal.Engine
	snap   cal.Snapshot
	focus  cal.Date

	styles theme.CalendarTheme
	keys   KeyMap
	help   help.Model

	width   int
	height  int
	offsetX int
	offsetY int

	unitsX float64
	unitsY float64

	pointer pointer
}

// pointer tracks a press for drag and swipe detection. origin is reset
// whenever a drag step fires so the next step needs a full threshold again.
type pointer struct {
	down   bool
	moved  bool
	fired  bool
	pressX int
	pressY int
	origX  int
	origY  int
}

// New constructs a calendar component around opts.Engine.
func New(opts Options) *Model {
	engine := opts.Engine
	if engine == nil {
		engine = cal.New()
	}
	id := opts.ID
	if id == "" {
		id = events.ComponentID("calendar")
	}
	m := &Model{
		id:     id,
		engine: engine,
		styles: opts.Styles,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		unitsX: opts.CellWidthUnits,
		unitsY: opts.CellHeightUnits,
	}
	if m.unitsX <= 0 {
		m.unitsX = 10
	}
	if m.unitsY <= 0 {
		m.unitsY = 25
	}
	m.snap = engine.Snapshot()
	m.focus = m.initialFocus()
	return m
}

// ID returns the component identifier used on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Engine exposes the underlying calendar engine.
func (m *Model) Engine() *cal.Engine { return m.engine }

// Snapshot returns the last rendered snapshot.
func (m *Model) Snapshot() cal.Snapshot { return m.snap }

// Focus returns the day under the keyboard cursor.
func (m *Model) Focus() cal.Date { return m.focus }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd {
	return refreshCmd()
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetOffset records where the component is drawn so pointer coordinates can
// be mapped back to cells.
func (m *Model) SetOffset(x, y int) {
	m.offsetX = x
	m.offsetY = y
}

// ApplyConfig takes new thresholds, location and cell units from cfg.
func (m *Model) ApplyConfig(cfg *store.Config) {
	if cfg == nil {
		return
	}
	m.engine.SetThresholds(cfg.Thresholds())
	if cfg.Location != nil {
		m.engine.SetLocation(cfg.Location)
	}
	if cfg.CellWidthUnits > 0 {
		m.unitsX = cfg.CellWidthUnits
	}
	if cfg.CellHeightUnits > 0 {
		m.unitsY = cfg.CellHeightUnits
	}
	m.snap = m.engine.Snapshot()
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch v := msg.(type) {
	case refreshMsg:
		m.snap = m.engine.Snapshot()
		return m, refreshCmd()
	case tea.KeyPressMsg:
		return m, m.handleKey(v)
	case tea.MouseClickMsg:
		if v.Button == tea.MouseLeft {
			x, y := m.local(v.X, v.Y)
			m.pointer = pointer{down: true, pressX: x, pressY: y, origX: x, origY: y}
		}
	case tea.MouseMotionMsg:
		if m.pointer.down {
			x, y := m.local(v.X, v.Y)
			return m, m.drag(x, y)
		}
	case tea.MouseReleaseMsg:
		if m.pointer.down {
			x, y := m.local(v.X, v.Y)
			return m, m.release(x, y)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-cal.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(cal.DaysPerWeek)
	case key.Matches(msg, m.keys.Select):
		return m.tap(m.focus)
	case key.Matches(msg, m.keys.Prev):
		return m.step(cal.DirectionBackward, "key")
	case key.Matches(msg, m.keys.Next):
		return m.step(cal.DirectionForward, "key")
	case key.Matches(msg, m.keys.SwipeLeft):
		return m.gesture(cal.Gesture{DX: -2 * m.engine.Thresholds().Swipe, Kind: cal.GestureSwipe}, "swipe")
	case key.Matches(msg, m.keys.SwipeRight):
		return m.gesture(cal.Gesture{DX: 2 * m.engine.Thresholds().Swipe, Kind: cal.GestureSwipe}, "swipe")
	case key.Matches(msg, m.keys.SwipeUp):
		return m.gesture(cal.Gesture{DY: -2 * m.engine.Thresholds().Mode, Kind: cal.GestureSwipe}, "swipe")
	case key.Matches(msg, m.keys.SwipeDown):
		return m.gesture(cal.Gesture{DY: 2 * m.engine.Thresholds().Mode, Kind: cal.GestureSwipe}, "swipe")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.ToggleMode):
		next := cal.ModeWeek
		if m.engine.Mode() == cal.ModeWeek {
			next = cal.ModeMonth
		}
		return m.switchMode(next)
	}
	return nil
}

// Tap selects d as if its cell had been clicked.
func (m *Model) Tap(d cal.Date) tea.Cmd { return m.tap(d) }

func (m *Model) tap(d cal.Date) tea.Cmd {
	m.snap = m.engine.Tap(d)
	m.focus = d
	return events.DateSelectCmd(m.id, d)
}

func (m *Model) step(dir cal.Direction, source string) tea.Cmd {
	m.snap = m.engine.Step(dir)
	m.followAnchor(dir)
	return events.PeriodShiftCmd(m.id, m.snap.Mode.Unit(), dir, m.snap.Anchor, source)
}

func (m *Model) switchMode(mode cal.Mode) tea.Cmd {
	prev := m.engine.Mode()
	if prev == mode {
		return nil
	}
	m.snap = m.engine.SwitchMode(mode)
	m.keepFocusVisible()
	return events.ModeChangeCmd(m.id, mode, prev)
}

// gesture feeds g to the engine and reports whether anything changed.
func (m *Model) gesture(g cal.Gesture, source string) tea.Cmd {
	prev := m.engine.Mode()
	out, snap := m.engine.Gesture(g)
	m.snap = snap
	switch {
	case out.Transition != cal.TransitionNone:
		m.keepFocusVisible()
		return events.ModeChangeCmd(m.id, snap.Mode, prev)
	case out.Direction != cal.DirectionNone:
		m.followAnchor(out.Direction)
		return events.PeriodShiftCmd(m.id, snap.Mode.Unit(), out.Direction, snap.Anchor, source)
	}
	return nil
}

func (m *Model) drag(x, y int) tea.Cmd {
	p := &m.pointer
	if x != p.pressX || y != p.pressY {
		p.moved = true
	}
	g := m.translation(x-p.origX, y-p.origY, cal.GestureDrag)
	cmd := m.gesture(g, "drag")
	if cmd != nil {
		p.fired = true
		p.origX, p.origY = x, y
	}
	return cmd
}

func (m *Model) release(x, y int) tea.Cmd {
	p := m.pointer
	m.pointer = pointer{}
	if !p.moved && x == p.pressX && y == p.pressY {
		return m.click(x, y)
	}
	if p.fired {
		return nil
	}
	return m.gesture(m.translation(x-p.pressX, y-p.pressY, cal.GestureSwipe), "swipe")
}

func (m *Model) click(x, y int) tea.Cmd {
	if y == 0 {
		if x < m.width/2 {
			return m.step(cal.DirectionBackward, "click")
		}
		return m.step(cal.DirectionForward, "click")
	}
	if d, ok := m.CellAt(x, y); ok {
		return m.tap(d)
	}
	return nil
}

func (m *Model) translation(dx, dy int, kind cal.GestureKind) cal.Gesture {
	return cal.Gesture{
		DX:   float64(dx) * m.unitsX,
		DY:   float64(dy) * m.unitsY,
		Kind: kind,
	}
}

func (m *Model) local(x, y int) (int, int) {
	return x - m.offsetX, y - m.offsetY
}

// CellAt maps component-local coordinates to the day drawn there.
func (m *Model) CellAt(x, y int) (cal.Date, bool) {
	row := y - headerRows
	x -= m.gridLeft()
	if row < 0 || x < 0 {
		return cal.Date{}, false
	}
	if x%(cellWidth+cellGap) >= cellWidth {
		return cal.Date{}, false
	}
	col := x / (cellWidth + cellGap)
	if col >= cal.DaysPerWeek {
		return cal.Date{}, false
	}
	idx := row*cal.DaysPerWeek + col
	if idx >= len(m.snap.Cells) {
		return cal.Date{}, false
	}
	return m.snap.Cells[idx].Date, true
}

func (m *Model) gridLeft() int {
	if m.width <= gridWidth {
		return 0
	}
	return (m.width - gridWidth) / 2
}

func (m *Model) initialFocus() cal.Date {
	if sel, ok := m.engine.Selected(); ok && m.displayed(sel) {
		return sel
	}
	if m.displayed(m.snap.Today) {
		return m.snap.Today
	}
	return m.snap.Anchor
}

func (m *Model) moveFocus(days int) {
	next := m.focus.AddDays(days)
	if m.displayed(next) {
		m.focus = next
	}
}

func (m *Model) followAnchor(dir cal.Direction) {
	sign := 1
	if dir == cal.DirectionBackward {
		sign = -1
	}
	if m.snap.Mode == cal.ModeWeek {
		m.focus = m.focus.AddDays(sign * cal.DaysPerWeek)
	} else {
		m.focus = m.focus.AddMonths(sign)
	}
	m.keepFocusVisible()
}

func (m *Model) keepFocusVisible() {
	if !m.displayed(m.focus) {
		m.focus = m.snap.Anchor
	}
}

func (m *Model) displayed(d cal.Date) bool {
	for _, c := range m.snap.Cells {
		if c.Date == d {
			return true
		}
	}
	return false
}

// View renders the title, weekday header, grid and key help.
func (m *Model) View() string {
	pad := strings.Repeat(" ", m.gridLeft())
	lines := make([]string, 0, headerRows+6+2)
	lines = append(lines, m.renderTitle())
	lines = append(lines, pad+m.renderHeader())
	for row := 0; row*cal.DaysPerWeek < len(m.snap.Cells); row++ {
		end := min((row+1)*cal.DaysPerWeek, len(m.snap.Cells))
		cells := make([]string, 0, cal.DaysPerWeek)
		for _, c := range m.snap.Cells[row*cal.DaysPerWeek : end] {
			cells = append(cells, m.renderCell(c))
		}
		lines = append(lines, pad+strings.Join(cells, strings.Repeat(" ", cellGap)))
	}
	lines = append(lines, "")
	lines = append(lines, m.renderStatus())
	if h := m.help.View(m.keys); h != "" {
		lines = append(lines, m.clip(h))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTitle() string {
	title := fmt.Sprintf("%s %d", m.snap.Anchor.Month, m.snap.Anchor.Year)
	arrow := m.styles.Arrow
	text := arrow.Render("‹") + "  " + m.styles.Title.Render(title) + "  " + arrow.Render("›")
	if m.width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, text)
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(weekdayHeader))
	for i, name := range weekdayHeader {
		style := m.styles.Header
		switch i {
		case 0:
			style = style.Inherit(m.styles.Sunday)
		case len(weekdayHeader) - 1:
			style = style.Inherit(m.styles.Saturday)
		}
		parts = append(parts, style.Render(name))
	}
	return strings.Join(parts, strings.Repeat(" ", cellGap))
}

func (m *Model) renderCell(c cal.Cell) string {
	style := m.styles.Day
	switch {
	case c.Outside:
		style = m.styles.Outside
	case c.WeekendStart():
		style = m.styles.Sunday
	case c.WeekendEnd():
		style = m.styles.Saturday
	}
	if c.Today {
		style = style.Inherit(m.styles.Today)
	}
	if c.Selected {
		style = m.styles.Selected.Inherit(style)
	}
	if c.Date == m.focus {
		style = style.Inherit(m.styles.Focus)
	}
	return style.Render(fmt.Sprintf("%2d", c.Date.Day))
}

func (m *Model) renderStatus() string {
	sel := "none"
	if m.snap.Selected != nil {
		sel = m.snap.Selected.String()
	}
	return m.clip(fmt.Sprintf("%s view · today %s · selected %s", m.snap.Mode, m.snap.Today, sel))
}

func (m *Model) clip(s string) string {
	if m.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(m.width), "…")
}

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}
