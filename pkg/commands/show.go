package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/commands/options"
	"tableflip.dev/calnav/pkg/runner/show"
)

const (
	monthMode = calendar.ModeMonth
	weekMode  = calendar.ModeWeek
)

func addMonth(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "month [+n|-n]",
		Aliases: []string{"m"},
		Short:   "print a month grid",
		Example: `
calnav month
calnav month --on 2024-2-1 --select 2/14
calnav month +1
calnav month --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runShow(cmd, monthMode, do, args...)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addWeek(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "week [+n|-n]",
		Aliases: []string{"w"},
		Short:   "print a week strip",
		Example: `
calnav week
calnav week --on today -- -1
calnav week --select tomorrow
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runShow(cmd, weekMode, do, args...)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, mode calendar.Mode, do *options.DateOptions, args ...string) error {
	output.Apply()
	cfg, err := config.Load()
	if err != nil {
		return output.HandleError(err)
	}

	today := calendar.DateOf(cfg.Now())
	on, err := do.GetOn(today)
	if err != nil {
		return output.HandleError(err)
	}
	sel, err := do.GetSelect(today)
	if err != nil {
		return output.HandleError(err)
	}
	steps := 0
	if len(args) > 0 {
		if steps, err = options.ParseSteps(args[0]); err != nil {
			return output.HandleError(err)
		}
	}

	s := show.Show{
		Config: cfg,
		Mode:   mode,
		On:     on,
		Select: sel,
		Steps:  steps,
		JSON:   output.JSON,
		Out:    cmd.OutOrStdout(),
	}
	return output.HandleError(s.Do(contextOf(cmd)))
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
