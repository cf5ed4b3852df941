package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var offsetPattern = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2}))?$`)

// ParseOffset turns a fixed UTC offset such as "+09:00", "-0530" or "+9"
// into a location. An empty string or "local" returns time.Local, and "utc"
// or "z" returns time.UTC.
func ParseOffset(input string) (*time.Location, error) {
	trimmed := strings.TrimSpace(input)
	switch strings.ToLower(trimmed) {
	case "", "local":
		return time.Local, nil
	case "utc", "z":
		return time.UTC, nil
	}

	matches := offsetPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return nil, fmt.Errorf("invalid utc offset %q", input)
	}
	hours, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("invalid utc offset hours %q: %w", matches[2], err)
	}
	minutes := 0
	if matches[3] != "" {
		if minutes, err = strconv.Atoi(matches[3]); err != nil {
			return nil, fmt.Errorf("invalid utc offset minutes %q: %w", matches[3], err)
		}
	}
	if hours > 14 || minutes > 59 {
		return nil, fmt.Errorf("utc offset %q out of range", input)
	}

	seconds := hours*60*60 + minutes*60
	if matches[1] == "-" {
		seconds = -seconds
	}
	return time.FixedZone(FormatOffset(seconds), seconds), nil
}

// FormatOffset renders an offset in seconds as "+hh:mm".
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
