package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchConfigEmitsReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".calnav.yaml")
	writeFile(t, path, "drag-threshold: 100\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := WatchConfig(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)
	writeFile(t, path, "drag-threshold: 40\n")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed early")
			}
			if evt.Err != nil {
				// Partial writes can be observed; wait for the next event.
				continue
			}
			if evt.Config.DragThreshold == 40 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatchConfigClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".calnav.yaml")
	writeFile(t, path, "mode-threshold: 50\n")

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := WatchConfig(ctx, path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestWatchConfigRequiresPath(t *testing.T) {
	if _, err := WatchConfig(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
