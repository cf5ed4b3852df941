package timeutil

import (
	"testing"
	"time"
)

func TestParseRelative(t *testing.T) {
	tests := []struct {
		in   string
		want Relative
	}{
		{"+1w", Relative{Days: 7}},
		{"-3d", Relative{Days: -3}},
		{"1m2w", Relative{Months: 1, Days: 14}},
		{"+1y -1d", Relative{Months: 12, Days: -1}},
		{"2 Months", Relative{Months: 2}},
	}
	for _, tc := range tests {
		got, err := ParseRelative(tc.in)
		if err != nil {
			t.Fatalf("ParseRelative(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRelative(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseRelativeInvalid(t *testing.T) {
	for _, in := range []string{"", "soon", "3 fortnights", "+w"} {
		if _, err := ParseRelative(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		seconds int
	}{
		{"+09:00", 9 * 3600},
		{"-0530", -(5*3600 + 30*60)},
		{"+9", 9 * 3600},
		{"utc", 0},
	}
	ref := time.Date(2024, time.April, 5, 12, 0, 0, 0, time.UTC)
	for _, tc := range tests {
		loc, err := ParseOffset(tc.in)
		if err != nil {
			t.Fatalf("ParseOffset(%q): %v", tc.in, err)
		}
		if _, off := ref.In(loc).Zone(); off != tc.seconds {
			t.Fatalf("ParseOffset(%q) offset %d, want %d", tc.in, off, tc.seconds)
		}
	}

	loc, err := ParseOffset("")
	if err != nil || loc != time.Local {
		t.Fatalf("expected local for empty offset, got %v %v", loc, err)
	}
	for _, in := range []string{"+25:00", "nine", "+09:75"} {
		if _, err := ParseOffset(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	if got := FormatOffset(-(3*3600 + 30*60)); got != "-03:30" {
		t.Fatalf("unexpected %q", got)
	}
}
