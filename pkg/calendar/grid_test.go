package calendar

import (
	"testing"
	"time"
)

func eachMonth(t *testing.T, from, to int, fn func(anchor Date)) {
	t.Helper()
	for year := from; year <= to; year++ {
		for month := time.January; month <= time.December; month++ {
			first := Date{year, month, 1}
			for day := 1; day <= first.DaysInMonth(); day += 7 {
				fn(Date{year, month, day})
			}
			fn(first.LastOfMonth())
		}
	}
}

func TestMonthGridShape(t *testing.T) {
	eachMonth(t, 1999, 2031, func(anchor Date) {
		grid := MonthGrid(anchor)
		if len(grid)%DaysPerWeek != 0 {
			t.Fatalf("%s: length %d not a multiple of 7", anchor, len(grid))
		}
		if len(grid) < 28 || len(grid) > 42 {
			t.Fatalf("%s: length %d out of range", anchor, len(grid))
		}
		if wd := grid[0].Weekday(); wd != time.Sunday {
			t.Fatalf("%s: first cell is %s", anchor, wd)
		}
		if wd := grid[len(grid)-1].Weekday(); wd != time.Saturday {
			t.Fatalf("%s: last cell is %s", anchor, wd)
		}
		for i := 1; i < len(grid); i++ {
			if grid[i] != grid[i-1].AddDays(1) {
				t.Fatalf("%s: cells %s and %s are not consecutive", anchor, grid[i-1], grid[i])
			}
		}
	})
}

func TestMonthGridCoversMonthOnce(t *testing.T) {
	eachMonth(t, 2015, 2026, func(anchor Date) {
		cells := Tag(MonthGrid(anchor), ModeMonth, anchor, Date{}, nil)
		seen := map[int]int{}
		for _, c := range cells {
			inMonth := c.Date.SameMonth(anchor)
			if c.Outside == inMonth {
				t.Fatalf("%s: cell %s outside=%v", anchor, c.Date, c.Outside)
			}
			if inMonth {
				seen[c.Date.Day]++
			}
		}
		if len(seen) != anchor.DaysInMonth() {
			t.Fatalf("%s: saw %d days, want %d", anchor, len(seen), anchor.DaysInMonth())
		}
		for day, n := range seen {
			if n != 1 {
				t.Fatalf("%s: day %d appears %d times", anchor, day, n)
			}
		}
	})
}

func TestMonthGridPadding(t *testing.T) {
	tests := []struct {
		name   string
		anchor Date
		first  Date
		last   Date
		length int
	}{
		// February 2015 starts on Sunday and has exactly four weeks.
		{"no padding", Date{2015, time.February, 14}, Date{2015, time.February, 1}, Date{2015, time.February, 28}, 28},
		{"year rollover back", Date{2022, time.January, 10}, Date{2021, time.December, 26}, Date{2022, time.February, 5}, 42},
		{"year rollover forward", Date{2023, time.December, 25}, Date{2023, time.November, 26}, Date{2024, time.January, 6}, 42},
		{"leap february", Date{2024, time.February, 29}, Date{2024, time.January, 28}, Date{2024, time.March, 2}, 35},
		{"april 2024", Date{2024, time.April, 5}, Date{2024, time.March, 31}, Date{2024, time.May, 4}, 35},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := MonthGrid(tc.anchor)
			if len(grid) != tc.length {
				t.Fatalf("length %d, want %d", len(grid), tc.length)
			}
			if grid[0] != tc.first {
				t.Fatalf("first %s, want %s", grid[0], tc.first)
			}
			if grid[len(grid)-1] != tc.last {
				t.Fatalf("last %s, want %s", grid[len(grid)-1], tc.last)
			}
		})
	}
}

func TestWeek(t *testing.T) {
	eachMonth(t, 2020, 2025, func(anchor Date) {
		week := Week(anchor)
		if len(week) != DaysPerWeek {
			t.Fatalf("%s: week has %d days", anchor, len(week))
		}
		if week[0].Weekday() != time.Sunday {
			t.Fatalf("%s: week starts on %s", anchor, week[0].Weekday())
		}
		if anchor.Before(week[0]) || anchor.After(week[6]) {
			t.Fatalf("%s: not within %s..%s", anchor, week[0], week[6])
		}
		for i := 1; i < len(week); i++ {
			if week[i] != week[i-1].AddDays(1) {
				t.Fatalf("%s: week not consecutive at %d", anchor, i)
			}
		}
	})

	week := Week(Date{2024, time.January, 2})
	if week[0] != (Date{2023, time.December, 31}) {
		t.Fatalf("expected week to start 2023-12-31, got %s", week[0])
	}
}

func TestTagWeekHasNoOutside(t *testing.T) {
	anchor := Date{2024, time.January, 2}
	for _, c := range Build(ModeWeek, anchor, Date{}, nil) {
		if c.Outside {
			t.Fatalf("week cell %s tagged outside", c.Date)
		}
	}
}

func TestTagTodayAndSelection(t *testing.T) {
	anchor := Date{2024, time.April, 1}
	today := Date{2024, time.April, 5}
	selected := Date{2024, time.May, 2}
	cells := Build(ModeMonth, anchor, today, &selected)

	var todays, selections int
	for _, c := range cells {
		if c.Today {
			todays++
			if c.Date != today {
				t.Fatalf("today tagged on %s", c.Date)
			}
		}
		if c.Selected {
			selections++
			if !c.Outside {
				t.Fatalf("expected selected padding day to be outside")
			}
		}
	}
	if todays != 1 || selections != 1 {
		t.Fatalf("todays=%d selections=%d, want 1 and 1", todays, selections)
	}
	if !cells[0].WeekendStart() || !cells[6].WeekendEnd() {
		t.Fatalf("expected first column Sunday and last column Saturday")
	}
}
