package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/vtext/internal/dispatcher/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actions map[string]*ActionMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
}

// AverageDuration returns the mean handler time.
func (m ActionMetrics) AverageDuration() time.Duration {
	if m.DispatchCount == 0 {
		return 0
	}
	return m.TotalDuration / time.Duration(m.DispatchCount)
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{actions: make(map[string]*ActionMetrics)}
}

// RecordDispatch records a dispatch event.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	am := m.actions[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actions[actionName] = am
	}
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastStatus = status
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}

	if status == handler.StatusError {
		m.totalErrors++
		am.ErrorCount++
	}
}

// RecordPanic records a recovered handler panic.
func (m *Metrics) RecordPanic(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	TotalDispatches uint64
	TotalErrors     uint64
	TotalPanics     uint64
	TotalDuration   time.Duration
	Actions         []ActionMetrics
}

// Snapshot returns a copy of the metrics with actions sorted by dispatch
// count, most frequent first.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Snapshot{
		TotalDispatches: m.totalDispatches,
		TotalErrors:     m.totalErrors,
		TotalPanics:     m.totalPanics,
		TotalDuration:   m.totalDuration,
		Actions:         make([]ActionMetrics, 0, len(m.actions)),
	}
	for _, am := range m.actions {
		s.Actions = append(s.Actions, *am)
	}
	sort.Slice(s.Actions, func(i, j int) bool {
		if s.Actions[i].DispatchCount != s.Actions[j].DispatchCount {
			return s.Actions[i].DispatchCount > s.Actions[j].DispatchCount
		}
		return s.Actions[i].Name < s.Actions[j].Name
	})
	return s
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}
