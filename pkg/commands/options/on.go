package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// DateOptions holds the anchor and selection flags.
type DateOptions struct {
	OnString     string
	SelectString string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Anchor date, example: --on="2020-2-28", --on="2/28", --on=today or --on="+1m".`)
	cmd.Flags().StringVar(&o.SelectString, "select", "",
		`Mark a date as selected, same forms as --on.`)
}

// GetOn returns the anchor, or nil when the flag was not set.
func (o *DateOptions) GetOn(today calendar.Date) (*calendar.Date, error) {
	return parseOptional(o.OnString, today)
}

// GetSelect returns the selected date, or nil when the flag was not set.
func (o *DateOptions) GetSelect(today calendar.Date) (*calendar.Date, error) {
	return parseOptional(o.SelectString, today)
}

func parseOptional(s string, today calendar.Date) (*calendar.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseDate(s, today)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseDate accepts "today", "yesterday", "tomorrow", "2006-1-2", "1/2" (in
// the year of today) and relative offsets such as "+2w" or "-1m".
func ParseDate(s string, today calendar.Date) (calendar.Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "today", "now":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	if t, err := time.Parse(layoutISO, s); err == nil {
		return calendar.DateOf(t), nil
	}
	if t, err := time.Parse(layoutISOShort, s); err == nil {
		// Let the year be the same.
		return calendar.NewDate(today.Year, t.Month(), t.Day()), nil
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		r, err := timeutil.ParseRelative(s)
		if err != nil {
			return calendar.Date{}, err
		}
		return today.AddMonths(r.Months).AddDays(r.Days), nil
	}
	return calendar.Date{}, fmt.Errorf("unrecognized date %q", s)
}
