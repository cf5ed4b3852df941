package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/calnav/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	config = &options.ConfigOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "calnav",
		Short: base.Wrap80("Swipeable month and week calendar in the terminal."),
		Long: base.Wrap80("calnav renders a month or week calendar grid. " +
			"Drag or swipe horizontally to change period, vertically to switch between month and week. " +
			"Without a subcommand it opens the interactive UI on a terminal and prints the current month otherwise."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive() {
				return runUI(cmd, &options.ModeOptions{}, &options.DateOptions{})
			}
			return runShow(cmd, monthMode, &options.DateOptions{})
		},
	}

	options.AddConfigArg(cmd, config)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addMonth(topLevel)
	addWeek(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func interactive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
