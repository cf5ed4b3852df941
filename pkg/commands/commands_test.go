package commands

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("CALNAV_CONFIG_PATH", t.TempDir())
	t.Setenv("CALNAV_UTC_OFFSET", "utc")
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	cmd := New()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestMonthCommand(t *testing.T) {
	out := execute(t, "month", "--no-color", "--on", "2024-4-1", "--select", "4/10")
	if !strings.Contains(out, "April 2024") {
		t.Fatalf("expected April title, got:\n%s", out)
	}
	if !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("expected weekday header, got:\n%s", out)
	}
}

func TestMonthCommandSteps(t *testing.T) {
	out := execute(t, "month", "--no-color", "--on", "2024-1-31", "+1")
	if !strings.Contains(out, "February 2024") {
		t.Fatalf("expected February title, got:\n%s", out)
	}
}

func TestWeekCommandJSON(t *testing.T) {
	out := execute(t, "week", "--json", "--on", "2024-4-5")
	if !strings.Contains(out, `"mode": "week"`) || !strings.Contains(out, `"2024-03-31"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version", "--short")
	if !strings.Contains(out, "dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestCommandsRegistered(t *testing.T) {
	root := New()
	for _, name := range []string{"ui", "month", "week", "info", "version", "completion"} {
		if c, _, err := root.Find([]string{name}); err != nil || c.Name() != name {
			t.Fatalf("expected %q to be registered, got %v", name, err)
		}
	}
}
