package commands

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/commands/options"
	"tableflip.dev/calnav/pkg/store"
	"tableflip.dev/calnav/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	mo := &options.ModeOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive calendar",
		Example: `
calnav ui
calnav ui --week
calnav ui --on 2024-2-1
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, mo, do)
		},
	}

	options.AddModeArgs(cmd, mo)
	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, mo *options.ModeOptions, do *options.DateOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	prefs, err := store.OpenPrefs(cfg.PrefsPath)
	if err != nil {
		// The calendar works without remembered state.
		log.Printf("preferences unavailable: %v", err)
		prefs = nil
	}

	mode := cfg.StartMode
	if prefs != nil {
		if m, ok := prefs.Mode(); ok {
			mode = m
		}
	}
	if m, ok, err := mo.GetMode(); err != nil {
		return err
	} else if ok {
		mode = m
	}

	opts := app.Options{
		Config: cfg,
		Prefs:  prefs,
		Mode:   mode,
	}
	today := calendar.DateOf(cfg.Now())
	if opts.On, err = do.GetOn(today); err != nil {
		return err
	}
	if opts.Select, err = do.GetSelect(today); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(contextOf(cmd))
	defer cancel()
	if cfg.File != "" {
		reloads, err := store.WatchConfig(ctx, cfg.File)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			opts.Reloads = reloads
		}
	}
	return app.Run(ctx, opts)
}
