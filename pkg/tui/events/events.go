package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/store"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// DateSelectMsg is emitted when a day cell is tapped.
type DateSelectMsg struct {
	Component ComponentID
	Date      calendar.Date
}

// Describe renders the selection in a human-friendly format for logs.
func (m DateSelectMsg) Describe() string {
	return fmt.Sprintf(`date:%q`, m.Date)
}

// DateSelectCmd emits a DateSelectMsg.
func DateSelectCmd(component ComponentID, d calendar.Date) tea.Cmd {
	return func() tea.Msg {
		return DateSelectMsg{Component: component, Date: d}
	}
}

// PeriodShiftMsg announces that the anchor moved by one month or week.
type PeriodShiftMsg struct {
	Component ComponentID
	Unit      calendar.Unit
	Direction calendar.Direction
	Anchor    calendar.Date
	// Source is "key", "drag" or "swipe".
	Source string
}

// Describe renders the shift in a human-friendly format for logs.
func (m PeriodShiftMsg) Describe() string {
	return fmt.Sprintf(`unit:%q dir:%q anchor:%q source:%q`, m.Unit, m.Direction, m.Anchor, m.Source)
}

// PeriodShiftCmd emits a PeriodShiftMsg.
func PeriodShiftCmd(component ComponentID, unit calendar.Unit, dir calendar.Direction, anchor calendar.Date, source string) tea.Cmd {
	return func() tea.Msg {
		return PeriodShiftMsg{
			Component: component,
			Unit:      unit,
			Direction: dir,
			Anchor:    anchor,
			Source:    source,
		}
	}
}

// ModeChangeMsg announces a switch between month and week mode.
type ModeChangeMsg struct {
	Component ComponentID
	Mode      calendar.Mode
	Previous  calendar.Mode
}

// Describe renders the change in a human-friendly format for logs.
func (m ModeChangeMsg) Describe() string {
	return fmt.Sprintf(`mode:%q previous:%q`, m.Mode, m.Previous)
}

// ModeChangeCmd emits a ModeChangeMsg.
func ModeChangeCmd(component ComponentID, mode, previous calendar.Mode) tea.Cmd {
	return func() tea.Msg {
		return ModeChangeMsg{Component: component, Mode: mode, Previous: previous}
	}
}

// ConfigReloadMsg carries a config re-read from disk. Err is set when the
// file could not be parsed; the previous config stays in effect.
type ConfigReloadMsg struct {
	Config *store.Config
	Err    error
}

// Describe renders the reload in a human-friendly format for logs.
func (m ConfigReloadMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`error:%q`, m.Err)
	}
	if m.Config == nil {
		return "config:<nil>"
	}
	t := m.Config.Thresholds()
	return fmt.Sprintf(`file:%q drag:%g swipe:%g mode:%g`, m.Config.File, t.Drag, t.Swipe, t.Mode)
}

// WaitForConfigCmd blocks on ch and converts the next event into a
// ConfigReloadMsg. It returns nil once ch is closed.
func WaitForConfigCmd(ch <-chan store.ConfigEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadMsg{Config: ev.Config, Err: ev.Err}
	}
}

// TabChangeMsg is emitted when the shell switches tabs.
type TabChangeMsg struct {
	Component ComponentID
	Index     int
	Title     string
}

// Describe renders the tab switch in a human-friendly format for logs.
func (m TabChangeMsg) Describe() string {
	return fmt.Sprintf(`tab:%d title:%q`, m.Index, m.Title)
}

// TabChangeCmd emits a TabChangeMsg.
func TabChangeCmd(component ComponentID, index int, title string) tea.Cmd {
	return func() tea.Msg {
		return TabChangeMsg{Component: component, Index: index, Title: title}
	}
}
