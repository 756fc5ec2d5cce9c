package caret

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu     sync.Mutex
	events []bool
}

func (r *recorder) record(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, v)
}

func (r *recorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.events...)
}

// slow returns a config whose ticker never fires during a test so Update can
// be driven with synthetic times.
func slow() Config {
	return Config{Enabled: true, Interval: time.Hour}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled {
		t.Error("expected blinking enabled by default")
	}
	if cfg.Interval != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", cfg.Interval)
	}
}

func TestNormalizedInterval(t *testing.T) {
	b := New(Config{Enabled: true}, nil)
	if got := b.Config().Interval; got != DefaultInterval {
		t.Errorf("expected default interval, got %v", got)
	}
}

func TestStartStop(t *testing.T) {
	rec := &recorder{}
	b := New(slow(), rec.record)

	if b.Visible() || b.Running() {
		t.Fatal("new blinker should be stopped and hidden")
	}

	b.Start(context.Background())
	if !b.Visible() || !b.Running() {
		t.Error("started blinker should be running and visible")
	}

	b.Start(context.Background())
	b.Stop()
	if b.Visible() || b.Running() {
		t.Error("stopped blinker should be hidden")
	}
	b.Stop()

	got := rec.snapshot()
	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("expected [true false], got %v", got)
	}
}

func TestUpdateToggles(t *testing.T) {
	b := New(slow(), nil)
	b.Start(context.Background())
	defer b.Stop()

	now := time.Now()
	if b.Update(now) {
		t.Error("should not toggle before an interval has passed")
	}
	if !b.Update(now.Add(2 * time.Hour)) {
		t.Fatal("expected toggle after an interval")
	}
	if b.Visible() {
		t.Error("expected hidden after one toggle")
	}
	if !b.Update(now.Add(4 * time.Hour)) {
		t.Fatal("expected second toggle")
	}
	if !b.Visible() {
		t.Error("expected visible after two toggles")
	}
}

func TestUpdateStopped(t *testing.T) {
	b := New(slow(), nil)
	if b.Update(time.Now().Add(24 * time.Hour)) {
		t.Error("stopped blinker should not toggle")
	}
}

func TestPauseResume(t *testing.T) {
	b := New(slow(), nil)
	b.Start(context.Background())
	defer b.Stop()

	now := time.Now()
	b.Update(now.Add(2 * time.Hour))
	if b.Visible() {
		t.Fatal("expected hidden before pause")
	}

	b.Pause()
	if !b.Visible() || !b.Paused() {
		t.Error("pause should show the caret")
	}
	if b.Update(now.Add(10 * time.Hour)) {
		t.Error("paused blinker should not toggle")
	}

	b.Resume()
	if b.Paused() {
		t.Error("expected resumed")
	}
	if !b.Visible() {
		t.Error("resume should keep the caret visible")
	}
}

func TestPauseWhenStopped(t *testing.T) {
	b := New(slow(), nil)
	b.Pause()
	if b.Paused() || b.Visible() {
		t.Error("pause on a stopped blinker should do nothing")
	}
}

func TestReset(t *testing.T) {
	b := New(slow(), nil)
	b.Start(context.Background())
	defer b.Stop()

	b.Update(time.Now().Add(2 * time.Hour))
	b.Reset()
	if !b.Visible() {
		t.Error("reset should show the caret")
	}
	if b.Update(time.Now()) {
		t.Error("reset should restart the interval")
	}
}

func TestDisabled(t *testing.T) {
	b := New(Config{Enabled: false, Interval: time.Millisecond}, nil)
	b.Start(context.Background())
	defer b.Stop()

	if !b.Visible() {
		t.Error("disabled blinker should keep the caret visible")
	}
	if b.Update(time.Now().Add(time.Hour)) {
		t.Error("disabled blinker should not toggle")
	}
}

func TestTickerToggles(t *testing.T) {
	toggled := make(chan bool, 16)
	b := New(Config{Enabled: true, Interval: 5 * time.Millisecond}, func(v bool) {
		select {
		case toggled <- v:
		default:
		}
	})
	b.Start(context.Background())
	defer b.Stop()

	// Drain the initial show.
	if v := <-toggled; !v {
		t.Fatal("expected initial show")
	}

	select {
	case v := <-toggled:
		if v {
			t.Error("first tick should hide the caret")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never toggled")
	}
}

func TestContextCancelStopsTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := New(Config{Enabled: true, Interval: time.Millisecond}, nil)
	b.Start(ctx)
	cancel()

	// Stop must still return once the loop has exited on its own.
	done := make(chan struct{})
	go func() {
		b.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSetConfigRestarts(t *testing.T) {
	b := New(slow(), nil)
	b.Start(context.Background())
	defer b.Stop()

	b.SetConfig(Config{Enabled: true, Interval: 2 * time.Hour})
	if got := b.Config().Interval; got != 2*time.Hour {
		t.Errorf("expected 2h, got %v", got)
	}
	if !b.Running() || !b.Visible() {
		t.Error("expected running and visible after reconfigure")
	}
}
