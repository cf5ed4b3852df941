package show

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/store"
)

func testConfig() *store.Config {
	t := calendar.DefaultThresholds()
	return &store.Config{
		DragThreshold:  t.Drag,
		SwipeThreshold: t.Swipe,
		ModeThreshold:  t.Mode,
		Location:       time.UTC,
	}
}

func TestShowStepsFromAnchor(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	on := calendar.Date{Year: 2024, Month: time.January, Day: 31}
	s := &Show{
		Config: testConfig(),
		Mode:   calendar.ModeMonth,
		On:     &on,
		Steps:  1,
		Out:    &buf,
		Clock:  func() time.Time { return time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC) },
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "February 2024") {
		t.Fatalf("expected february, got:\n%s", buf.String())
	}
}

func TestShowJSONWeek(t *testing.T) {
	var buf bytes.Buffer
	on := calendar.Date{Year: 2024, Month: time.April, Day: 5}
	s := &Show{
		Config: testConfig(),
		Mode:   calendar.ModeWeek,
		On:     &on,
		Select: &on,
		Steps:  -1,
		JSON:   true,
		Out:    &buf,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"mode": "week"`) || !strings.Contains(out, `"anchor": "2024-03-29"`) {
		t.Fatalf("unexpected json:\n%s", out)
	}
	if !strings.Contains(out, `"selected": "2024-04-05"`) {
		t.Fatalf("selection should survive stepping:\n%s", out)
	}
}

func TestShowRequiresConfig(t *testing.T) {
	if err := (&Show{}).Do(context.Background()); err == nil {
		t.Fatal("expected error without config")
	}
}
