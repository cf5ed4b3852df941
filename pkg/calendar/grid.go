package calendar

import "time"

// DaysPerWeek is the width of every grid row.
const DaysPerWeek = 7

// Cell is a displayed day tagged relative to the anchor, today and the
// selection.
type Cell struct {
	Date     Date
	Today    bool
	Outside  bool
	Selected bool
}

// WeekendStart reports whether the cell is a Sunday.
func (c Cell) WeekendStart() bool { return c.Date.Weekday() == time.Sunday }

// WeekendEnd reports whether the cell is a Saturday.
func (c Cell) WeekendEnd() bool { return c.Date.Weekday() == time.Saturday }

// StartOfWeek returns the Sunday on or before d.
func StartOfWeek(d Date) Date {
	return d.AddDays(-int(d.Weekday()))
}

// MonthGrid returns the days of anchor's month padded with days from the
// neighbouring months so that the grid starts on a Sunday and ends on a
// Saturday.
func MonthGrid(anchor Date) []Date {
	first := anchor.FirstOfMonth()
	last := anchor.LastOfMonth()

	lead := int(first.Weekday())
	days := make([]Date, 0, 6*DaysPerWeek)

	// Trailing days of the previous month.
	for i := lead; i > 0; i-- {
		days = append(days, first.AddDays(-i))
	}
	for d := first; !d.After(last); d = d.AddDays(1) {
		days = append(days, d)
	}
	if rem := len(days) % DaysPerWeek; rem != 0 {
		for i := 1; i <= DaysPerWeek-rem; i++ {
			days = append(days, last.AddDays(i))
		}
	}
	return days
}

// Week returns the seven days of the Sunday-first week containing anchor.
func Week(anchor Date) []Date {
	start := StartOfWeek(anchor)
	days := make([]Date, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// Tag converts dates into cells. Outside is only set in month mode, for
// days that do not belong to anchor's month.
func Tag(dates []Date, mode Mode, anchor, today Date, selected *Date) []Cell {
	cells := make([]Cell, len(dates))
	for i, d := range dates {
		cells[i] = Cell{
			Date:     d,
			Today:    d == today,
			Outside:  mode == ModeMonth && !d.SameMonth(anchor),
			Selected: selected != nil && d == *selected,
		}
	}
	return cells
}

// Build returns the tagged cells for mode.
func Build(mode Mode, anchor, today Date, selected *Date) []Cell {
	var dates []Date
	switch mode {
	case ModeWeek:
		dates = Week(anchor)
	default:
		dates = MonthGrid(anchor)
	}
	return Tag(dates, mode, anchor, today, selected)
}
