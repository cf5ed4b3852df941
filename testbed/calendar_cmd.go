package main

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/calendar"
	calview "tableflip.dev/calnav/pkg/tui/components/calendar"
	"tableflip.dev/calnav/pkg/tui/theme"
)

func newCalendarCmd(opts *options) *cobra.Command {
	var (
		on   string
		mode string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Preview the calendar component",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := calendar.ParseMode(mode)
			if err != nil {
				return err
			}
			engineOpts := []calendar.Option{calendar.WithMode(m)}
			if on != "" {
				d, err := calendar.ParseDate(on)
				if err != nil {
					return err
				}
				engineOpts = append(engineOpts, calendar.WithAnchor(d))
			}
			c := calview.New(calview.Options{
				ID:     "testbed-calendar",
				Engine: calendar.New(engineOpts...),
				Styles: theme.Default().Calendar,
			})
			return run(*opts, c)
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "anchor date (2006-01-02)")
	cmd.Flags().StringVar(&mode, "mode", "month", "month or week")
	return cmd
}
