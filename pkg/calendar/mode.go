package calendar

import (
	"fmt"
	"strings"
)

// Mode selects between the month grid and the week strip.
type Mode int

const (
	// ModeMonth shows a full month padded to whole weeks.
	ModeMonth Mode = iota
	// ModeWeek shows a single Sunday-first week.
	ModeWeek
)

func (m Mode) String() string {
	if m == ModeWeek {
		return "week"
	}
	return "month"
}

// Unit returns the navigation step used while m is active.
func (m Mode) Unit() Unit {
	if m == ModeWeek {
		return UnitWeek
	}
	return UnitMonth
}

// ParseMode accepts "month" or "week", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month", "m":
		return ModeMonth, nil
	case "week", "w":
		return ModeWeek, nil
	}
	return ModeMonth, fmt.Errorf("calendar: unknown mode %q", s)
}

// Transition is the outcome of interpreting a vertical gesture.
type Transition int

const (
	// TransitionNone leaves the mode unchanged.
	TransitionNone Transition = iota
	// SwitchToMonth expands the week strip into the month grid.
	SwitchToMonth
	// SwitchToWeek collapses the month grid into the week strip.
	SwitchToWeek
)

func (t Transition) String() string {
	switch t {
	case SwitchToMonth:
		return "to-month"
	case SwitchToWeek:
		return "to-week"
	}
	return "none"
}

// Modes owns the active view mode.
type Modes struct {
	mode Mode
}

// NewModes starts in mode.
func NewModes(mode Mode) *Modes {
	return &Modes{mode: mode}
}

// Mode returns the active mode.
func (c *Modes) Mode() Mode { return c.mode }

// Interpret maps a vertical translation to a transition. Dragging down past
// threshold in week mode expands to month; dragging up in month mode
// collapses to week. Anything else, including a swipe toward the mode that
// is already active, is TransitionNone.
func (c *Modes) Interpret(deltaY, threshold float64) Transition {
	switch {
	case deltaY > threshold && c.mode == ModeWeek:
		return SwitchToMonth
	case deltaY < -threshold && c.mode == ModeMonth:
		return SwitchToWeek
	}
	return TransitionNone
}

// Apply performs t and reports whether the mode changed.
func (c *Modes) Apply(t Transition) bool {
	switch t {
	case SwitchToMonth:
		if c.mode != ModeMonth {
			c.mode = ModeMonth
			return true
		}
	case SwitchToWeek:
		if c.mode != ModeWeek {
			c.mode = ModeWeek
			return true
		}
	}
	return false
}

// Set forces the mode and reports whether it changed.
func (c *Modes) Set(m Mode) bool {
	if c.mode == m {
		return false
	}
	c.mode = m
	return true
}
