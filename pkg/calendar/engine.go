package calendar

import (
	"fmt"
	"time"
)

const (
	// DefaultDragThreshold applies to continuous drag gestures.
	DefaultDragThreshold = 100
	// DefaultSwipeThreshold applies to discrete swipe-release gestures.
	DefaultSwipeThreshold = 50
	// DefaultModeThreshold applies to vertical mode-switch gestures.
	DefaultModeThreshold = 50
)

// Thresholds are the gesture distances that must be exceeded before a
// gesture has any effect.
type Thresholds struct {
	Drag  float64
	Swipe float64
	Mode  float64
}

// DefaultThresholds returns the stock gesture thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Drag:  DefaultDragThreshold,
		Swipe: DefaultSwipeThreshold,
		Mode:  DefaultModeThreshold,
	}
}

// GestureKind distinguishes gestures still in progress from released ones.
type GestureKind int

const (
	// GestureDrag is a continuous drag update.
	GestureDrag GestureKind = iota
	// GestureSwipe is a discrete swipe reported on release.
	GestureSwipe
)

func (k GestureKind) String() string {
	if k == GestureSwipe {
		return "swipe"
	}
	return "drag"
}

// Gesture is a translation delta delivered by the gesture source.
type Gesture struct {
	DX   float64
	DY   float64
	Kind GestureKind
}

// Outcome reports what a gesture did.
type Outcome struct {
	Direction  Direction
	Transition Transition
}

// Changed reports whether the gesture altered any state.
func (o Outcome) Changed() bool {
	return o.Direction != DirectionNone || o.Transition != TransitionNone
}

// Clock returns the current instant.
type Clock func() time.Time

// Snapshot is a consistent view of the engine after one transition.
type Snapshot struct {
	Mode     Mode
	Anchor   Date
	Selected *Date
	Today    Date
	Cells    []Cell
}

// Describe renders the snapshot for logs.
func (s Snapshot) Describe() string {
	sel := "none"
	if s.Selected != nil {
		sel = s.Selected.String()
	}
	return fmt.Sprintf("mode:%s anchor:%s selected:%s today:%s cells:%d", s.Mode, s.Anchor, sel, s.Today, len(s.Cells))
}

// Engine bundles the navigator, the mode controller and the clock. It is
// driven from a single goroutine: each method is one transition and returns
// the snapshot built after every mutation of that transition.
type Engine struct {
	nav        *Navigator
	modes      *Modes
	clock      Clock
	loc        *time.Location
	thresholds Thresholds

	anchor *Date
	mode   Mode
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides time.Now, mostly for tests.
func WithClock(clock Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLocation fixes the offset used to decide which day is today.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// WithThresholds overrides the gesture thresholds.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) { e.thresholds = t }
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(e *Engine) { e.mode = m }
}

// WithAnchor sets the initial anchor instead of today.
func WithAnchor(d Date) Option {
	return func(e *Engine) { e.anchor = &d }
}

// New creates an engine anchored on today unless WithAnchor is given.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:      time.Now,
		loc:        time.Local,
		thresholds: DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	anchor := e.Today()
	if e.anchor != nil {
		anchor = *e.anchor
	}
	e.nav = NewNavigator(anchor)
	e.modes = NewModes(e.mode)
	return e
}

// Today returns the current date at the configured location. It is read
// from the clock on every call.
func (e *Engine) Today() Date {
	now := e.clock()
	if e.loc != nil {
		now = now.In(e.loc)
	}
	return DateOf(now)
}

// Thresholds returns the active gesture thresholds.
func (e *Engine) Thresholds() Thresholds { return e.thresholds }

// SetThresholds replaces the gesture thresholds.
func (e *Engine) SetThresholds(t Thresholds) { e.thresholds = t }

// SetLocation replaces the location used for today.
func (e *Engine) SetLocation(loc *time.Location) { e.loc = loc }

// Mode returns the active mode.
func (e *Engine) Mode() Mode { return e.modes.Mode() }

// Anchor returns the anchor date.
func (e *Engine) Anchor() Date { return e.nav.Anchor() }

// Selected returns the selected date, if any.
func (e *Engine) Selected() (Date, bool) { return e.nav.Selected() }

// Snapshot rebuilds the cells for the active mode.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Mode:   e.modes.Mode(),
		Anchor: e.nav.Anchor(),
		Today:  e.Today(),
	}
	if sel, ok := e.nav.Selected(); ok {
		s.Selected = &sel
	}
	s.Cells = Build(s.Mode, s.Anchor, s.Today, s.Selected)
	return s
}

// Tap selects d.
func (e *Engine) Tap(d Date) Snapshot {
	e.nav.Select(d)
	return e.Snapshot()
}

// Step moves one period in dir using the unit of the active mode.
func (e *Engine) Step(dir Direction) Snapshot {
	e.nav.Shift(e.modes.Mode().Unit(), dir)
	return e.Snapshot()
}

// SwitchMode forces a mode. Anchor and selection are kept.
func (e *Engine) SwitchMode(m Mode) Snapshot {
	e.modes.Set(m)
	return e.Snapshot()
}

// Gesture interprets a translation. A vertical mode transition takes
// precedence; when one fires the horizontal component is ignored.
func (e *Engine) Gesture(g Gesture) (Outcome, Snapshot) {
	var out Outcome
	if t := e.modes.Interpret(g.DY, e.thresholds.Mode); t != TransitionNone {
		e.modes.Apply(t)
		out.Transition = t
		return out, e.Snapshot()
	}
	threshold := e.thresholds.Drag
	if g.Kind == GestureSwipe {
		threshold = e.thresholds.Swipe
	}
	if dir := HorizontalDirection(g.DX, threshold); dir != DirectionNone {
		e.nav.Shift(e.modes.Mode().Unit(), dir)
		out.Direction = dir
	}
	return out, e.Snapshot()
}
