package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calnav/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Month prints the month grid of s, one week per line.
func (pp *PrettyPrint) Month(s calendar.Snapshot) {
	w := pp.out()
	pp.centered(fmt.Sprintf("%s %d", s.Anchor.Month, s.Anchor.Year))
	pp.header()

	for i, c := range s.Cells {
		sep := " "
		if (i+1)%calendar.DaysPerWeek == 0 {
			sep = "\n"
		}
		_, _ = cellColor(c).Fprintf(w, "%2d", c.Date.Day)
		_, _ = fmt.Fprint(w, sep)
	}
}

// Week prints the week strip of s followed by a per-day table.
func (pp *PrettyPrint) Week(s calendar.Snapshot) {
	w := pp.out()
	pp.centered(fmt.Sprintf("%s %d", s.Anchor.Month, s.Anchor.Year))
	pp.header()
	for i, c := range s.Cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, " ")
		}
		_, _ = cellColor(c).Fprintf(w, "%2d", c.Date.Day)
	}
	_, _ = fmt.Fprint(w, "\n\n")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Day"), bold.Sprint("Date"), bold.Sprint(""))
	for _, c := range s.Cells {
		tbl.AddRow(c.Date.Weekday().String()[:3], c.Date.String(), marks(c))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func (pp *PrettyPrint) centered(title string) {
	tf := color.New(color.FgWhite, color.Italic)
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), title)
}

func (pp *PrettyPrint) header() {
	w := pp.out()
	h := color.New(color.Faint)
	for i, name := range weekdayHeader {
		c := h
		switch i {
		case 0:
			c = color.New(color.FgRed)
		case len(weekdayHeader) - 1:
			c = color.New(color.FgBlue)
		}
		if i > 0 {
			_, _ = fmt.Fprint(w, " ")
		}
		_, _ = c.Fprint(w, name)
	}
	_, _ = fmt.Fprint(w, "\n")
}

func cellColor(c calendar.Cell) *color.Color {
	attrs := []color.Attribute{}
	switch {
	case c.Outside:
		attrs = append(attrs, color.Faint)
	case c.WeekendStart():
		attrs = append(attrs, color.FgRed)
	case c.WeekendEnd():
		attrs = append(attrs, color.FgBlue)
	}
	if c.Today {
		attrs = append(attrs, color.Bold)
	}
	if c.Selected {
		attrs = append(attrs, color.ReverseVideo)
	}
	return color.New(attrs...)
}

func marks(c calendar.Cell) string {
	var parts []string
	if c.Today {
		parts = append(parts, "today")
	}
	if c.Selected {
		parts = append(parts, "selected")
	}
	return strings.Join(parts, ", ")
}
