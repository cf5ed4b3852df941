package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/calendar"
)

// ModeOptions picks the starting view mode.
type ModeOptions struct {
	Month bool
	Week  bool
}

func AddModeArgs(cmd *cobra.Command, o *ModeOptions) {
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"Start in month mode.")
	cmd.Flags().BoolVarP(&o.Week, "week", "w", false,
		"Start in week mode.")
}

// GetMode returns the requested mode, or ok=false when neither flag is set.
func (o *ModeOptions) GetMode() (mode calendar.Mode, ok bool, err error) {
	switch {
	case o.Month && o.Week:
		return calendar.ModeMonth, false, errors.New("--month and --week are mutually exclusive")
	case o.Week:
		return calendar.ModeWeek, true, nil
	case o.Month:
		return calendar.ModeMonth, true, nil
	}
	return calendar.ModeMonth, false, nil
}

// ParseSteps reads a signed period count such as "+2" or "-1".
func ParseSteps(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if err != nil {
		return 0, fmt.Errorf("invalid step count %q: %w", s, err)
	}
	return n, nil
}
