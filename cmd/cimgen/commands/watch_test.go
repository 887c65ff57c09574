package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the watcher goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// startWatcher runs w in the background and returns a function that stops
// it and returns the result of Watch.
func startWatcher(t *testing.T, w *watcher) func() error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
			return nil
		}
	}
}

// touchUntil rewrites path until ch receives or the deadline passes. The
// watcher may not be registered yet when the first write happens.
func touchUntil(t *testing.T, path string, ch <-chan struct{}) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		require.NoError(t, os.WriteFile(path, []byte("package: Core\n"), 0o644))
		select {
		case <-ch:
			return
		case <-deadline:
			t.Fatal("change was not detected")
		case <-tick.C:
		}
	}
}

func TestWatcherDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	var logs syncBuffer
	ran := make(chan struct{}, 16)
	w := newWatcher(dir, slog.New(slog.NewTextHandler(&logs, nil)), func(context.Context) error {
		ran <- struct{}{}
		return errors.New("boom")
	})
	w.debounce = 10 * time.Millisecond
	stop := startWatcher(t, w)

	touchUntil(t, filepath.Join(dir, "core.yaml"), ran)
	assert.ErrorIs(t, stop(), context.Canceled)
	assert.Contains(t, logs.String(), "watching schema")
	assert.Contains(t, logs.String(), "regenerate failed")
	assert.Contains(t, logs.String(), "boom")
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	schema := filepath.Join(dir, "core.yaml")
	require.NoError(t, os.WriteFile(schema, []byte("package: Core\n"), 0o644))

	var (
		mu    sync.Mutex
		count int
	)
	ran := make(chan struct{}, 16)
	w := newWatcher(schema, slog.New(slog.NewTextHandler(&syncBuffer{}, nil)), func(context.Context) error {
		mu.Lock()
		count++
		mu.Unlock()
		ran <- struct{}{}
		return nil
	})
	w.debounce = 10 * time.Millisecond
	stop := startWatcher(t, w)

	touchUntil(t, schema, ran)
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	before := count
	mu.Unlock()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("package: Other\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.ErrorIs(t, stop(), context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, before, count)
}

func TestWatcherMissingPath(t *testing.T) {
	t.Parallel()
	w := newWatcher(filepath.Join(t.TempDir(), "missing"), slog.New(slog.NewTextHandler(&syncBuffer{}, nil)), func(context.Context) error {
		return nil
	})
	err := w.Watch(context.Background())
	assert.True(t, os.IsNotExist(err))
}
