package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/printers"
	"tableflip.dev/calnav/pkg/store"
)

// Show prints a single calendar snapshot.
type Show struct {
	Config *store.Config
	Mode   calendar.Mode
	On     *calendar.Date
	Select *calendar.Date
	Steps  int
	JSON   bool

	Out   io.Writer
	Clock calendar.Clock
}

func (n *Show) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not show, no config")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e := calendar.New(n.engineOptions()...)
	if n.Select != nil {
		e.Tap(*n.Select)
	}
	dir := calendar.DirectionForward
	steps := n.Steps
	if steps < 0 {
		dir, steps = calendar.DirectionBackward, -steps
	}
	for i := 0; i < steps; i++ {
		e.Step(dir)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	s := e.Snapshot()
	if n.JSON {
		return pp.JSON(s)
	}
	pp.Snapshot(s)
	return nil
}

func (n *Show) engineOptions() []calendar.Option {
	opts := []calendar.Option{
		calendar.WithLocation(n.Config.Location),
		calendar.WithThresholds(n.Config.Thresholds()),
		calendar.WithMode(n.Mode),
	}
	if n.Clock != nil {
		opts = append(opts, calendar.WithClock(n.Clock))
	}
	if n.On != nil {
		opts = append(opts, calendar.WithAnchor(*n.On))
	}
	return opts
}
