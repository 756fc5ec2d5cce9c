package layout

import (
	"sync"

	"github.com/dshills/vtext/internal/engine/buffer"
)

// DefaultCacheSize bounds the number of cached segment measurements.
const DefaultCacheSize = 4096

// LayoutEngine computes frames from segments.
type LayoutEngine struct {
	mu    sync.RWMutex
	cfg   Config
	cache *SegmentCache
}

// NewLayoutEngine creates a layout engine measuring with m.
func NewLayoutEngine(m Measurer, cfg Config) *LayoutEngine {
	return &LayoutEngine{
		cfg:   cfg.normalized(),
		cache: NewSegmentCache(m, DefaultCacheSize),
	}
}

// Config returns the current configuration.
func (e *LayoutEngine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// SetConfig replaces the configuration.
func (e *LayoutEngine) SetConfig(cfg Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg.normalized()
}

// SetMeasurer replaces the measurer and drops cached measurements.
func (e *LayoutEngine) SetMeasurer(m Measurer) {
	e.cache.SetMeasurer(m)
}

// Cache returns the segment measurement cache.
func (e *LayoutEngine) Cache() *SegmentCache {
	return e.cache
}

// Layout computes the frame for segs. The slice is retained by the frame
// and must not be modified afterwards.
func (e *LayoutEngine) Layout(segs []buffer.Segment) *Frame {
	cfg := e.Config()
	if len(segs) == 0 {
		segs = []buffer.Segment{{}}
	}
	layouts := make([]*SegmentLayout, len(segs))
	for i, seg := range segs {
		layouts[i] = e.cache.Get(seg)
	}
	return newFrame(segs, layouts, cfg)
}
