// Package caret provides the caret blink task.
//
// A Blinker toggles caret visibility on a fixed interval. It never touches
// editor state: the owner reacts to visibility changes through a callback,
// typically by scheduling a redraw.
//
// # Lifecycle
//
// Start and Stop follow window focus. Pause and Resume bracket pointer drags;
// while paused the caret stays visible. Reset restarts the interval after
// typing so the caret does not vanish mid-keystroke.
package caret

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the time between visibility toggles.
const DefaultInterval = 500 * time.Millisecond

// Config holds blink configuration.
type Config struct {
	// Enabled turns blinking on. When off the caret stays visible while
	// the blinker runs.
	Enabled bool

	// Interval is the time between toggles.
	Interval time.Duration
}

// DefaultConfig returns the default blink configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Interval: DefaultInterval,
	}
}

func (c Config) normalized() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	return c
}

// Blinker toggles caret visibility on a ticker.
// Safe for concurrent use.
type Blinker struct {
	mu sync.Mutex

	cfg      Config
	onToggle func(visible bool)

	parent     context.Context
	running    bool
	paused     bool
	visible    bool
	lastToggle time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a stopped blinker. onToggle may be nil; it is called outside
// the blinker's lock whenever visibility changes, sometimes from the ticker
// goroutine, and must not call Stop or SetConfig.
func New(cfg Config, onToggle func(visible bool)) *Blinker {
	return &Blinker{
		cfg:      cfg.normalized(),
		onToggle: onToggle,
	}
}

// Config returns the current configuration.
func (b *Blinker) Config() Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// SetConfig replaces the configuration, restarting the ticker if running.
func (b *Blinker) SetConfig(cfg Config) {
	b.mu.Lock()
	b.cfg = cfg.normalized()
	var cancel context.CancelFunc
	var done chan struct{}
	if b.running {
		cancel, done = b.cancel, b.done
		b.startLoopLocked()
	}
	changed := b.setVisibleLocked(b.running)
	b.mu.Unlock()

	wait(cancel, done)
	b.notify(changed, true)
}

// Start makes the caret visible and begins blinking. The ticker stops when
// ctx is done or Stop is called. Starting a running blinker does nothing.
func (b *Blinker) Start(ctx context.Context) {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.parent = ctx
	b.running = true
	b.paused = false
	b.lastToggle = time.Now()
	b.startLoopLocked()
	changed := b.setVisibleLocked(true)
	b.mu.Unlock()

	b.notify(changed, true)
}

// Stop halts blinking and hides the caret.
func (b *Blinker) Stop() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	cancel, done := b.cancel, b.done
	b.cancel, b.done = nil, nil
	b.running = false
	b.paused = false
	changed := b.setVisibleLocked(false)
	b.mu.Unlock()

	wait(cancel, done)
	b.notify(changed, false)
}

// Pause holds the caret visible without toggling.
func (b *Blinker) Pause() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.paused = true
	changed := b.setVisibleLocked(true)
	b.mu.Unlock()

	b.notify(changed, true)
}

// Resume continues blinking after Pause, starting a fresh interval.
func (b *Blinker) Resume() {
	b.mu.Lock()
	if !b.running || !b.paused {
		b.mu.Unlock()
		return
	}
	b.paused = false
	b.lastToggle = time.Now()
	changed := b.setVisibleLocked(true)
	b.mu.Unlock()

	b.notify(changed, true)
}

// Reset shows the caret and restarts the interval.
func (b *Blinker) Reset() {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return
	}
	b.lastToggle = time.Now()
	changed := b.setVisibleLocked(true)
	b.mu.Unlock()

	b.notify(changed, true)
}

// Update toggles visibility if a full interval has passed since the last
// toggle. It reports whether visibility changed. The ticker calls it; tests
// may call it directly with synthetic times.
func (b *Blinker) Update(now time.Time) bool {
	b.mu.Lock()
	if !b.running || b.paused || !b.cfg.Enabled {
		b.mu.Unlock()
		return false
	}
	if now.Sub(b.lastToggle) < b.cfg.Interval {
		b.mu.Unlock()
		return false
	}
	b.visible = !b.visible
	b.lastToggle = now
	visible := b.visible
	b.mu.Unlock()

	b.notify(true, visible)
	return true
}

// Visible reports whether the caret should be drawn.
func (b *Blinker) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Running reports whether the blinker has been started.
func (b *Blinker) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Paused reports whether blinking is paused.
func (b *Blinker) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

func (b *Blinker) setVisibleLocked(v bool) bool {
	if b.visible == v {
		return false
	}
	b.visible = v
	return true
}

func (b *Blinker) notify(changed, visible bool) {
	if changed && b.onToggle != nil {
		b.onToggle(visible)
	}
}

// startLoopLocked launches a ticker goroutine for the current interval.
// A disabled blinker has no goroutine.
func (b *Blinker) startLoopLocked() {
	b.cancel, b.done = nil, nil
	if !b.cfg.Enabled {
		return
	}
	parent := b.parent
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	b.cancel, b.done = cancel, done

	go func(interval time.Duration) {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				b.Update(now)
			}
		}
	}(b.cfg.Interval)
}

func wait(cancel context.CancelFunc, done chan struct{}) {
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
