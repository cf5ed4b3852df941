package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/runner/info"
	"tableflip.dev/calnav/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the effective configuration and where preferences are stored.",
		Example: `
calnav info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s := info.Info{
				Config: cfg,
				Out:    cmd.OutOrStdout(),
			}
			if p, err := store.OpenPrefs(cfg.PrefsPath); err == nil {
				s.Prefs = p
			}
			return s.Do(contextOf(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}
