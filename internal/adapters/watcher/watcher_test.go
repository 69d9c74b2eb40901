package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/crab/internal/adapters/watcher"
	"go.trai.ch/crab/internal/core/ports"
)

// collectEvents drains the watcher's iterator into a channel so tests can
// select on it with timeouts.
func collectEvents(w *watcher.Watcher) <-chan ports.WatchEvent {
	ch := make(chan ports.WatchEvent, 100)
	go func() {
		for event := range w.Events() {
			ch <- event
		}
		close(ch)
	}()
	return ch
}

func waitForPath(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed before seeing %s", path)
			}
			if event.Path == path {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event on %s", path)
		}
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "lib.rs")
	require.NoError(t, os.WriteFile(file, []byte("fn main() {}"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)

	require.NoError(t, os.WriteFile(file, []byte("fn main() { changed() }"), 0o644))

	event := waitForPath(t, events, file)
	require.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, event.Operation)
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)

	sub := filepath.Join(root, "src")
	require.NoError(t, os.Mkdir(sub, 0o750))
	waitForPath(t, events, sub)

	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)

	file := filepath.Join(sub, "lib.rs")
	require.NoError(t, os.WriteFile(file, []byte("fn main() {}"), 0o644))
	waitForPath(t, events, file)
}

func TestWatcher_SkipsBuildOutputDirectories(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	require.NoError(t, os.Mkdir(target, 0o750))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)

	// Writes inside the cargo output directory must not retrigger builds.
	inTarget := filepath.Join(target, "artifact.wasm")
	require.NoError(t, os.WriteFile(inTarget, []byte("wasm"), 0o644))

	// A write at the root is still seen, proving the watcher is live.
	inRoot := filepath.Join(root, "Cargo.toml")
	require.NoError(t, os.WriteFile(inRoot, []byte("[package]"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case event := <-events:
			require.NotEqual(t, inTarget, event.Path, "events under target/ must be suppressed")
			if event.Path == inRoot {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for root event")
		}
	}
}

func TestWatcher_StopClosesEvents(t *testing.T) {
	root := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	events := collectEvents(w)

	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		require.False(t, ok, "event channel should close after Stop")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event channel to close")
	}
}
