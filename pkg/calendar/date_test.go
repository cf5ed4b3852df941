package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDateNormalizes(t *testing.T) {
	tests := []struct {
		name string
		got  Date
		want Date
	}{
		{"day zero is last of previous month", NewDate(2024, time.March, 0), Date{2024, time.February, 29}},
		{"day zero of january", NewDate(2024, time.January, 0), Date{2023, time.December, 31}},
		{"overflow day", NewDate(2023, time.February, 29), Date{2023, time.March, 1}},
		{"month thirteen", NewDate(2023, 13, 1), Date{2024, time.January, 1}},
		{"month zero", NewDate(2023, 0, 15), Date{2022, time.December, 15}},
		{"negative day", NewDate(2024, time.March, -1), Date{2024, time.February, 28}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %s, want %s", tc.got, tc.want)
			}
		})
	}
}

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("plus9", 9*60*60)
	morning := DateOf(time.Date(2024, time.April, 5, 0, 1, 0, 0, loc))
	night := DateOf(time.Date(2024, time.April, 5, 23, 59, 0, 0, loc))
	if morning != night {
		t.Fatalf("expected same day, got %s and %s", morning, night)
	}
}

func TestAddMonthsClamps(t *testing.T) {
	tests := []struct {
		from Date
		n    int
		want Date
	}{
		{Date{2023, time.January, 31}, 1, Date{2023, time.February, 28}},
		{Date{2024, time.January, 31}, 1, Date{2024, time.February, 29}},
		{Date{2024, time.March, 31}, -1, Date{2024, time.February, 29}},
		{Date{2023, time.December, 15}, 1, Date{2024, time.January, 15}},
		{Date{2024, time.January, 15}, -1, Date{2023, time.December, 15}},
		{Date{2024, time.May, 31}, 1, Date{2024, time.June, 30}},
		{Date{2024, time.February, 29}, 12, Date{2025, time.February, 28}},
	}
	for _, tc := range tests {
		if got := tc.from.AddMonths(tc.n); got != tc.want {
			t.Errorf("%s + %d months = %s, want %s", tc.from, tc.n, got, tc.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := map[Date]int{
		{2023, time.February, 10}: 28,
		{2024, time.February, 10}: 29,
		{1900, time.February, 1}:  28,
		{2000, time.February, 1}:  29,
		{2024, time.April, 30}:    30,
		{2024, time.December, 1}:  31,
	}
	for d, want := range tests {
		if got := d.DaysInMonth(); got != want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", d, got, want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := Date{2024, time.April, 5}
	b := Date{2024, time.April, 6}
	c := Date{2023, time.December, 31}
	if !a.Before(b) || !b.After(a) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if !c.Before(a) {
		t.Fatalf("expected %s before %s", c, a)
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected equal compare")
	}
}

func TestDateText(t *testing.T) {
	d := Date{2024, time.April, 5}
	b, err := json.Marshal(struct {
		On Date `json:"on"`
	}{d})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"on":"2024-04-05"}` {
		t.Fatalf("unexpected json %s", b)
	}

	var back Date
	if err := back.UnmarshalText([]byte("2024-04-05")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("got %s, want %s", back, d)
	}
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Fatalf("expected error for invalid month")
	}
}
