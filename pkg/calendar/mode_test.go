package calendar

import "testing"

func TestModesInterpret(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		dy    float64
		want  Transition
		after Mode
	}{
		{"swipe up in month", ModeMonth, -60, SwitchToWeek, ModeWeek},
		{"swipe down in week", ModeWeek, 60, SwitchToMonth, ModeMonth},
		{"swipe down in month", ModeMonth, 60, TransitionNone, ModeMonth},
		{"swipe up in week", ModeWeek, -60, TransitionNone, ModeWeek},
		{"below threshold", ModeMonth, -50, TransitionNone, ModeMonth},
		{"zero", ModeWeek, 0, TransitionNone, ModeWeek},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewModes(tc.mode)
			got := c.Interpret(tc.dy, DefaultModeThreshold)
			if got != tc.want {
				t.Fatalf("Interpret(%v) = %s, want %s", tc.dy, got, tc.want)
			}
			changed := c.Apply(got)
			if changed != (tc.mode != tc.after) {
				t.Fatalf("Apply reported changed=%v", changed)
			}
			if c.Mode() != tc.after {
				t.Fatalf("mode %s, want %s", c.Mode(), tc.after)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"month": ModeMonth, "Week": ModeWeek, " w ": ModeWeek, "M": ModeMonth} {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseMode("year"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestModeUnit(t *testing.T) {
	if ModeMonth.Unit() != UnitMonth || ModeWeek.Unit() != UnitWeek {
		t.Fatalf("unexpected units %s %s", ModeMonth.Unit(), ModeWeek.Unit())
	}
}
