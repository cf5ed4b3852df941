package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calnav/pkg/tui/events"
	"tableflip.dev/calnav/pkg/tui/theme"
	"tableflip.dev/calnav/pkg/tui/ui"
)

const defaultLimit = 200

// Level orders log lines by how loudly they render.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Entry is one line of the debug log.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// Model is the debug pane: a bordered, scrollable list of the messages seen
// by the shell, most recent on top.
type Model struct {
	pane    viewport.Model
	entries []Entry
	limit   int
	now     func() time.Time
	styles  theme.LogTheme

	width, height int
}

// New returns an empty log that keeps at most limit entries.
func New(limit int, styles theme.LogTheme) *Model {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Model{
		pane:   viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:  limit,
		now:    time.Now,
		styles: styles,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

// Update scrolls on the mouse wheel. Entries are added with Record and
// Append, never through Update.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if _, ok := msg.(tea.MouseWheelMsg); !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.pane, cmd = m.pane.Update(msg)
	return m, cmd
}

// SetSize fits the pane into width x height cells, border included. One
// inner row is taken by the heading.
func (m *Model) SetSize(width, height int) {
	width, height = max(width, 4), max(height, 3)
	if width == m.width && height == m.height {
		return
	}
	m.width, m.height = width, height
	m.pane.SetWidth(max(1, width-2))
	m.pane.SetHeight(max(1, height-3))
	m.render()
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	heading := m.styles.Heading.Render(fmt.Sprintf("Events (%d)", len(m.entries)))
	return m.styles.Frame.
		Width(m.width).
		Height(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, m.pane.View()))
}

// Entries returns the log, most recent first.
func (m *Model) Entries() []Entry { return m.entries }

// Record adds msg to the log. Failed config reloads are logged as errors.
func (m *Model) Record(msg tea.Msg) {
	e := Entry{
		Source:  Source(msg),
		Summary: fmt.Sprintf("%T", msg),
		Detail:  Describe(msg),
	}
	if r, ok := msg.(events.ConfigReloadMsg); ok && r.Err != nil {
		e.Level = LevelError
	}
	m.Append(e)
}

// Append puts e on top of the log and drops the oldest entries past the
// limit. The pane scrolls back to the top.
func (m *Model) Append(e Entry) {
	if e.Timestamp.IsZero() {
		e.Timestamp = m.now()
	}
	if e.Source == "" {
		e.Source = "tea"
	}
	if e.Summary == "" {
		e.Summary = "event"
	}
	m.entries = append([]Entry{e}, m.entries...)
	if len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
	m.render()
	m.pane.SetYOffset(0)
}

func (m *Model) Clear() {
	m.entries = nil
	m.render()
}

// Describe is the log text for msg: its own Describe method when it has one.
func Describe(msg tea.Msg) string {
	if d, ok := msg.(interface{ Describe() string }); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	case tea.MouseMsg:
		mouse := v.Mouse()
		return fmt.Sprintf("mouse=%s x=%d y=%d", v, mouse.X, mouse.Y)
	}
	return fmt.Sprintf("%v", msg)
}

// Source is the component that emitted msg, "tea" for runtime messages.
func Source(msg tea.Msg) string {
	switch v := msg.(type) {
	case events.DateSelectMsg:
		return string(v.Component)
	case events.PeriodShiftMsg:
		return string(v.Component)
	case events.ModeChangeMsg:
		return string(v.Component)
	case events.TabChangeMsg:
		return string(v.Component)
	case events.ConfigReloadMsg:
		return "config"
	}
	return "tea"
}

func (m *Model) render() {
	if len(m.entries) == 0 {
		m.pane.SetContent(m.styles.Meta.Render("No events yet"))
		return
	}
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = m.line(e)
	}
	m.pane.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) line(e Entry) string {
	text := e.Summary
	if e.Detail != "" {
		text += ": " + e.Detail
	}
	body := m.styles.Info
	switch e.Level {
	case LevelWarn:
		body = m.styles.Warn
	case LevelError:
		body = m.styles.Error
	}
	return m.styles.Meta.Render(e.Timestamp.Format("15:04:05.000")+" ["+e.Source+"]") + " " + body.Render(text)
}
