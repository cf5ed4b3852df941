package calendar

// Unit is the size of one navigation step.
type Unit int

const (
	// UnitMonth steps by one calendar month.
	UnitMonth Unit = iota
	// UnitWeek steps by seven days.
	UnitWeek
)

func (u Unit) String() string {
	if u == UnitWeek {
		return "week"
	}
	return "month"
}

// Direction is the outcome of interpreting a horizontal gesture.
type Direction int

const (
	// DirectionNone means no navigation.
	DirectionNone Direction = iota
	// DirectionForward advances to the next period.
	DirectionForward
	// DirectionBackward returns to the previous period.
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	}
	return "none"
}

// Navigator owns the anchor date and the optional selected date.
//
// Month shifts clamp against the live anchor: Jan 31 -> Feb 28 -> Mar 28.
// The original day-of-month is not remembered between steps.
type Navigator struct {
	anchor   Date
	selected *Date
}

// NewNavigator starts at anchor with nothing selected.
func NewNavigator(anchor Date) *Navigator {
	return &Navigator{anchor: anchor}
}

// Anchor returns the date that determines the displayed period.
func (n *Navigator) Anchor() Date { return n.anchor }

// Selected returns the last tapped date, if any.
func (n *Navigator) Selected() (Date, bool) {
	if n.selected == nil {
		return Date{}, false
	}
	return *n.selected, true
}

// Select stores d as the selection. Any date is accepted, including days
// outside the displayed period; the anchor does not move.
func (n *Navigator) Select(d Date) {
	n.selected = &d
}

// Shift moves the anchor by one unit in dir and returns the new anchor.
// The selection is never changed.
func (n *Navigator) Shift(unit Unit, dir Direction) Date {
	step := 0
	switch dir {
	case DirectionForward:
		step = 1
	case DirectionBackward:
		step = -1
	default:
		return n.anchor
	}
	switch unit {
	case UnitWeek:
		n.anchor = n.anchor.AddDays(step * DaysPerWeek)
	default:
		n.anchor = n.anchor.AddMonths(step)
	}
	return n.anchor
}

// HorizontalDirection maps a horizontal translation to a navigation step.
// Content dragged left (negative deltaX) advances to the next period.
func HorizontalDirection(deltaX, threshold float64) Direction {
	switch {
	case deltaX < -threshold:
		return DirectionForward
	case deltaX > threshold:
		return DirectionBackward
	}
	return DirectionNone
}
