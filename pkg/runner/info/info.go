package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calnav/pkg/store"
	"tableflip.dev/calnav/pkg/timeutil"
)

type Info struct {
	Config *store.Config
	Prefs  *store.Prefs
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("CALNAV_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "CALNAV_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "CALNAV_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	file := n.Config.File
	if file == "" {
		file = "(defaults)"
	}
	_, offset := n.Config.Now().Zone()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("config", file)
	tbl.AddRow("drag-threshold", n.Config.DragThreshold)
	tbl.AddRow("swipe-threshold", n.Config.SwipeThreshold)
	tbl.AddRow("mode-threshold", n.Config.ModeThreshold)
	tbl.AddRow("start-mode", n.Config.StartMode)
	tbl.AddRow("utc-offset", timeutil.FormatOffset(offset))
	tbl.AddRow("cell-units", fmt.Sprintf("%gx%g", n.Config.CellWidthUnits, n.Config.CellHeightUnits))
	tbl.AddRow("prefs-path", n.Config.PrefsPath)
	if n.Prefs != nil {
		mode := "(none)"
		if m, ok := n.Prefs.Mode(); ok {
			mode = m.String()
		}
		tbl.AddRow("saved-mode", mode)
	}
	_, _ = fmt.Fprintln(out, tbl)
	return ctx.Err()
}
