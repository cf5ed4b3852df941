package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	relativePattern = regexp.MustCompile(`^\s*([+-])?\s*(\d+)\s*([a-z]+)`)
	relativeUnits   = map[string]Relative{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"wks":    {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"m":      {Months: 1},
		"mo":     {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
		"y":      {Months: 12},
		"yr":     {Months: 12},
		"year":   {Months: 12},
		"years":  {Months: 12},
	}
)

// Relative is a calendar offset. Months are applied before days.
type Relative struct {
	Months int
	Days   int
}

// IsZero reports whether r moves nothing.
func (r Relative) IsZero() bool { return r.Months == 0 && r.Days == 0 }

// ParseRelative parses offsets such as "+1w", "-3d" or "1m2w". Each segment
// may carry its own sign; unsigned segments are positive.
func ParseRelative(input string) (Relative, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return Relative{}, fmt.Errorf("empty relative date")
	}

	var total Relative
	for len(remaining) > 0 {
		matches := relativePattern.FindStringSubmatch(remaining)
		if len(matches) != 4 {
			return Relative{}, fmt.Errorf("invalid relative segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[2])
		if err != nil {
			return Relative{}, fmt.Errorf("invalid relative value %q: %w", matches[2], err)
		}
		if matches[1] == "-" {
			value = -value
		}
		unit, ok := relativeUnits[matches[3]]
		if !ok {
			return Relative{}, fmt.Errorf("unsupported relative unit %q", matches[3])
		}
		total.Months += unit.Months * value
		total.Days += unit.Days * value

		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}
	return total, nil
}
