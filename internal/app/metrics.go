package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks event loop performance.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input handling
	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64
	inputDropped atomic.Uint64

	// Interrupts from the blinker and config watcher
	interruptCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records the time spent drawing one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records the time spent handling one input event.
func (m *Metrics) RecordInput(duration time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
}

// RecordInputDropped records an input event dropped because the event
// queue was full.
func (m *Metrics) RecordInputDropped() {
	m.inputDropped.Add(1)
}

// RecordInterrupt records an interrupt event.
func (m *Metrics) RecordInterrupt() {
	m.interruptCount.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	inputCount := m.inputCount.Load()

	var avgFrameNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}

	var avgInputNs int64
	if inputCount > 0 {
		avgInputNs = m.inputTotalNs.Load() / int64(inputCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		InputCount:     inputCount,
		AvgInputTimeNs: avgInputNs,
		InputDropped:   m.inputDropped.Load(),
		InterruptCount: m.interruptCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	InputCount     uint64
	AvgInputTimeNs int64
	InputDropped   uint64
	InterruptCount uint64
}

// String formats the snapshot as a one-line summary.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime %s, %d frames (avg %s, max %s), %d inputs (avg %s, %d dropped), %d interrupts",
		s.Uptime.Round(time.Millisecond),
		s.FrameCount, time.Duration(s.AvgFrameTimeNs), time.Duration(s.MaxFrameTimeNs),
		s.InputCount, time.Duration(s.AvgInputTimeNs), s.InputDropped,
		s.InterruptCount)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
