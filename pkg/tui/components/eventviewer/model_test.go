package eventviewer

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/tui/events"
	"tableflip.dev/calnav/pkg/tui/theme"
)

func TestRecordUsesDescribe(t *testing.T) {
	m := New(10, theme.Default().Log)
	m.now = func() time.Time { return time.Date(2024, time.April, 5, 12, 0, 0, 0, time.UTC) }
	m.Record(events.DateSelectMsg{Component: "cal", Date: calendar.Date{Year: 2024, Month: time.April, Day: 10}})
	m.Record(tea.KeyPressMsg{Code: 'D', Text: "D"})

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Source != "tea" || entries[0].Detail != `key="D"` {
		t.Fatalf("unexpected key entry %+v", entries[0])
	}
	if entries[1].Source != "cal" || entries[1].Detail != `date:"2024-04-10"` {
		t.Fatalf("unexpected select entry %+v", entries[1])
	}
}

func TestRecordReloadErrorLevel(t *testing.T) {
	m := New(10, theme.Default().Log)
	m.Record(events.ConfigReloadMsg{Err: errors.New("bad yaml")})
	if got := m.Entries()[0]; got.Level != LevelError || got.Source != "config" {
		t.Fatalf("unexpected entry %+v", got)
	}
}

func TestAppendCapsEntries(t *testing.T) {
	m := New(3, theme.Default().Log)
	for i := 0; i < 5; i++ {
		m.Append(Entry{Summary: "tick"})
	}
	if len(m.Entries()) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(m.Entries()))
	}
}

func TestViewRendersHeader(t *testing.T) {
	m := New(10, theme.Default().Log)
	if m.View() != "" {
		t.Fatal("expected empty view before sizing")
	}
	m.SetSize(60, 6)
	m.Append(Entry{Source: "ui", Summary: "debug", Detail: "enabled"})
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Events (1)") || !strings.Contains(view, "debug: enabled") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}
