package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigEvent is emitted by WatchConfig whenever the config file changes.
// Err is set when the new contents could not be loaded; Config is then nil.
type ConfigEvent struct {
	Config *Config
	Err    error
}

// WatchConfig streams reloaded configuration until ctx is cancelled. The
// directory holding path is watched so that editors which replace the file
// on save are picked up. Callers should drain the returned channel; events
// are dropped rather than blocking the watcher.
func WatchConfig(ctx context.Context, path string) (<-chan ConfigEvent, error) {
	if path == "" {
		return nil, errors.New("store: config path unknown")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", filepath.Dir(abs), err)
	}

	events := make(chan ConfigEvent, 4)

	go func() {
		var mu sync.Mutex
		closed := false
		send := func(ev ConfigEvent) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// A later write triggers another reload.
			}
		}
		reload := func() {
			cfg, err := ReadConfigFile(abs)
			send(ConfigEvent{Config: cfg, Err: err})
		}

		throttle := newReloadThrottle(100 * time.Millisecond)
		defer func() {
			throttle.Stop()
			closeWatcher()
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(ConfigEvent{Err: fmt.Errorf("store: watch config: %w", err)})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(reload)
			}
		}
	}()

	return events, nil
}

// reloadThrottle coalesces bursts of writes (editors often write, chmod and
// rename in quick succession) into a single reload.
type reloadThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newReloadThrottle(delay time.Duration) *reloadThrottle {
	return &reloadThrottle{delay: delay}
}

func (t *reloadThrottle) Enqueue(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

func (t *reloadThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
