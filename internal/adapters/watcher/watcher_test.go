package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertcord/alertcord/internal/adapters/watcher"
	"github.com/alertcord/alertcord/internal/core/ports"
)

func TestNewWatcher(t *testing.T) {
	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, w.Stop())
}

func TestWatcher_Start_MissingDirectory(t *testing.T) {
	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(t.Context(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestWatcher_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "alertcord.yaml")
	require.NoError(t, os.WriteFile(path, []byte("discord:\n"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(t.Context(), dir))

	var mu sync.Mutex
	var events []ports.WatchEvent
	go func() {
		for event := range w.Events() {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
		}
	}()

	require.NoError(t, os.WriteFile(path, []byte("discord:\n  webhook_url: x\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, event := range events {
			if event.Path == path {
				return true
			}
		}
		return false
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatcher_CreateAndRemove(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(t.Context(), dir))

	var mu sync.Mutex
	ops := map[ports.WatchOp]bool{}
	go func() {
		for event := range w.Events() {
			mu.Lock()
			ops[event.Operation] = true
			mu.Unlock()
		}
	}()

	path := filepath.Join(dir, "alertcord.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n"), 0o644))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return ops[ports.OpCreate] || ops[ports.OpWrite]
	}, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return ops[ports.OpRemove]
	}, 3*time.Second, 10*time.Millisecond)
}

func TestWatcher_EventsClosedOnCancel(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, dir))
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range w.Events() {
		}
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		assert.Fail(t, "events iterator did not terminate after cancellation")
	}
}
