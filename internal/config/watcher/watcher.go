// Package watcher provides file watching for configuration live reload.
//
// The watcher follows a single file. It watches the parent directory so
// that editors which save by writing a temporary file and renaming it
// over the original are still seen. Bursts of events are coalesced and
// delivered once the file has been quiet for the debounce period.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before an event is delivered.
const DefaultDebounce = 100 * time.Millisecond

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the event occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// Watcher monitors one file for changes.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	path     string
	handler  Handler
	onError  func(error)
	debounce time.Duration

	// Debounce state
	pending    Event
	hasPending bool
	timer      *time.Timer

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes. Zero
// delivers every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler receives errors reported by the file system watcher.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// New starts watching path and calls handler on changes. The file does
// not need to exist yet, but its directory does.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     absPath,
		handler:  handler,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.processLoop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.hasPending = false
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

// processLoop reads fsnotify events until the watcher is closed.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if op, ok := convertOp(ev.Op); ok {
				w.queue(Event{Path: w.path, Op: op, Time: time.Now()})
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

// convertOp maps an fsnotify operation. Chmod alone is ignored.
func convertOp(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	}
	return 0, false
}

// queue records an event for debounced delivery. It coalesces events:
//   - create + write => create
//   - write + write => write (latest time)
//   - any + remove => remove
//   - remove + create => write, since the file was replaced
func (w *Watcher) queue(ev Event) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	if w.debounce == 0 {
		w.mu.Unlock()
		w.handler(ev)
		return
	}

	if w.hasPending {
		prev := w.pending.Op
		switch {
		case ev.Op == OpRemove:
		case (prev == OpRemove || prev == OpRename) && ev.Op == OpCreate:
			ev.Op = OpWrite
		case prev == OpCreate && ev.Op == OpWrite:
			ev.Op = OpCreate
		}
	}
	w.pending = ev
	w.hasPending = true

	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
	} else {
		w.timer.Reset(w.debounce)
	}
	w.mu.Unlock()
}

// flush delivers the pending event.
func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed || !w.hasPending {
		w.mu.Unlock()
		return
	}
	ev := w.pending
	w.hasPending = false
	w.mu.Unlock()

	w.handler(ev)
}
