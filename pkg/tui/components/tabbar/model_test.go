package tabbar

import (
	"strings"
	"testing"

	"tableflip.dev/calnav/pkg/tui/theme"
)

func newBar() *Model {
	return New(theme.Default().Tabs,
		Tab{Title: "Home"},
		Tab{Title: "Calendar"},
		Tab{Title: "Library"},
		Tab{Title: "My Page"},
	)
}

func TestNavigationWraps(t *testing.T) {
	m := newBar()
	if m.Prev(); m.Active() != 3 {
		t.Fatalf("expected wrap to last tab, got %d", m.Active())
	}
	if m.Next(); m.Active() != 0 {
		t.Fatalf("expected wrap to first tab, got %d", m.Active())
	}
	if m.SetActive(0) {
		t.Fatal("re-selecting the active tab is not a change")
	}
	if m.SetActive(9) {
		t.Fatal("out of range tab accepted")
	}
}

func TestTabAt(t *testing.T) {
	m := newBar()
	m.SetWidth(40)
	tests := map[int]int{0: 0, 9: 0, 10: 1, 25: 2, 39: 3}
	for x, want := range tests {
		if got, ok := m.TabAt(x); !ok || got != want {
			t.Fatalf("TabAt(%d) = %d, %v; want %d", x, got, ok, want)
		}
	}
	if _, ok := m.TabAt(40); ok {
		t.Fatal("expected miss past the last slot")
	}
}

func TestViewTruncatesLabels(t *testing.T) {
	m := newBar()
	m.SetWidth(24)
	view := m.View()
	if !strings.Contains(view, "Home") || !strings.Contains(view, "Calen…") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}
