package main

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/tui/components/dummy"
	"tableflip.dev/calnav/pkg/tui/theme"
)

func newDummyCmd(opts *options) *cobra.Command {
	label := "Library"
	cmd := &cobra.Command{
		Use:   "dummy",
		Short: "Preview a placeholder screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*opts, dummy.New(label, theme.Default().Panel.Title))
		},
	}
	cmd.Flags().StringVar(&label, "label", label, "text to center")
	return cmd
}
