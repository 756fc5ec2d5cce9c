package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(42), "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.op.String())
	}
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in   fsnotify.Op
		want Operation
		ok   bool
	}{
		{fsnotify.Write, OpWrite, true},
		{fsnotify.Create, OpCreate, true},
		{fsnotify.Remove, OpRemove, true},
		{fsnotify.Rename, OpRename, true},
		{fsnotify.Create | fsnotify.Write, OpCreate, true},
		{fsnotify.Chmod, 0, false},
	}
	for _, tc := range tests {
		got, ok := convertOp(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in.String())
		if ok {
			assert.Equal(t, tc.want, got, tc.in.String())
		}
	}
}

func TestWatchWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	events := make(chan Event, 10)
	w, err := New(path, func(ev Event) { events <- ev }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, path, w.Path())

	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0o644))
	ev := waitEvent(t, events)
	assert.Equal(t, path, ev.Path)
	assert.Contains(t, []Operation{OpWrite, OpCreate}, ev.Op)
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	events := make(chan Event, 10)
	w, err := New(path, func(ev Event) { events <- ev }, WithDebounce(0))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ev := waitEvent(t, events)
	assert.Equal(t, path, ev.Path)
}

func TestDebounceCoalesces(t *testing.T) {
	var got []Event
	done := make(chan struct{}, 1)
	w := &Watcher{
		path:     "/tmp/config.toml",
		debounce: 30 * time.Millisecond,
		handler: func(ev Event) {
			got = append(got, ev)
			done <- struct{}{}
		},
		closeCh: make(chan struct{}),
	}

	w.queue(Event{Path: w.path, Op: OpCreate})
	w.queue(Event{Path: w.path, Op: OpWrite})
	w.queue(Event{Path: w.path, Op: OpWrite})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
	require.Len(t, got, 1)
	assert.Equal(t, OpCreate, got[0].Op)
}

func TestDebounceReplaceBecomesWrite(t *testing.T) {
	done := make(chan Event, 1)
	w := &Watcher{
		path:     "/tmp/config.toml",
		debounce: 20 * time.Millisecond,
		handler:  func(ev Event) { done <- ev },
		closeCh:  make(chan struct{}),
	}

	w.queue(Event{Path: w.path, Op: OpRename})
	w.queue(Event{Path: w.path, Op: OpCreate})

	select {
	case ev := <-done:
		assert.Equal(t, OpWrite, ev.Op)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "config.toml"), func(Event) {})
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "config.toml"), func(Event) {})
	assert.Error(t, err)
}
