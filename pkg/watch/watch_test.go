package watch_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Oliyy/karabiner-cli/pkg/watch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	events chan watch.Event
	errors chan error
}

func newFakeSource() *fakeSource {
	return &fakeSource{events: make(chan watch.Event, 8), errors: make(chan error, 8)}
}

func (f *fakeSource) Events() <-chan watch.Event { return f.events }
func (f *fakeSource) Errors() <-chan error       { return f.errors }
func (f *fakeSource) Close() error               { return nil }

func TestRun_HandlesChangesUntilRemoved(t *testing.T) {
	src := newFakeSource()
	src.events <- watch.Event{Kind: watch.Changed, Path: "/k.json"}
	src.errors <- stderrors.New("overflow")
	src.events <- watch.Event{Kind: watch.Changed, Path: "/k.json"}
	src.events <- watch.Event{Kind: watch.Removed, Path: "/k.json"}
	src.events <- watch.Event{Kind: watch.Changed, Path: "/k.json"}

	var calls int
	reason, err := watch.Run(context.Background(), src, func(e watch.Event) error {
		calls++
		if calls == 1 {
			return stderrors.New("render failed")
		}
		return nil
	}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, watch.StopRemoved, reason)
	assert.Equal(t, 2, calls, "handler errors do not stop the loop and nothing runs after removal")
}

func TestRun_StopsOnCancel(t *testing.T) {
	src := newFakeSource()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan watch.StopReason, 1)
	go func() {
		reason, err := watch.Run(ctx, src, func(watch.Event) error { return nil }, zerolog.Nop())
		assert.NoError(t, err)
		done <- reason
	}()

	cancel()
	select {
	case reason := <-done:
		assert.Equal(t, watch.StopCancelled, reason)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_StopsWhenSourceCloses(t *testing.T) {
	src := newFakeSource()
	close(src.errors)
	close(src.events)

	reason, err := watch.Run(context.Background(), src, func(watch.Event) error { return nil }, zerolog.Nop())
	assert.NoError(t, err)
	assert.Equal(t, watch.StopClosed, reason)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "changed", watch.Changed.String())
	assert.Equal(t, "removed", watch.Removed.String())
	assert.Equal(t, "unknown", watch.Kind(0).String())
}

func waitEvent(t *testing.T, src watch.Source) watch.Event {
	t.Helper()
	select {
	case e := <-src.Events():
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return watch.Event{}
	}
}

func TestFSNotifySource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "karabiner.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profiles":[]}`), 0644))

	src, err := watch.NewFSNotifySource(path, 100*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	// Unrelated files in the same directory are ignored and a burst of
	// writes collapses into one event.
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"profiles":[{}]}`), 0644))
	}

	e := waitEvent(t, src)
	assert.Equal(t, watch.Changed, e.Kind)
	assert.Equal(t, path, e.Path)

	select {
	case extra := <-src.Events():
		t.Fatalf("unexpected extra event %v", extra.Kind)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.Remove(path))
	e = waitEvent(t, src)
	assert.Equal(t, watch.Removed, e.Kind)
}

func TestFSNotifySource_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karabiner.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	src, err := watch.NewFSNotifySource(path, 0)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path())

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, src.Close())
		}()
	}
	wg.Wait()

	_, open := <-src.Events()
	assert.False(t, open)
}

func TestNewFSNotifySource_MissingDirectory(t *testing.T) {
	_, err := watch.NewFSNotifySource(filepath.Join(t.TempDir(), "missing", "karabiner.json"), 0)
	assert.Error(t, err)
}
