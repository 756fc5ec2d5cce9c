package logging

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const recentSize = 100

// Entry is a captured warning or error.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// String formats the entry for display.
func (e Entry) String() string {
	return fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), e.Level, e.Message)
}

// ring is a fixed-size circular buffer of entries.
type ring struct {
	mu      sync.RWMutex
	entries []Entry
	head    int
	count   int

	warnCount  int
	errorCount int
}

func newRing(size int) *ring {
	return &ring{entries: make([]Entry, size)}
}

func (r *ring) add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = e
	r.head = (r.head + 1) % len(r.entries)
	if r.count < len(r.entries) {
		r.count++
	}

	if e.Level >= slog.LevelError {
		r.errorCount++
	} else {
		r.warnCount++
	}
}

func (r *ring) all() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := len(r.entries)
	out := make([]Entry, r.count)
	for i := range r.count {
		out[i] = r.entries[(r.head-r.count+i+size)%size]
	}
	return out
}

func (r *ring) counts() (warn, err int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.warnCount, r.errorCount
}
