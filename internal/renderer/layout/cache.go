package layout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/vtext/internal/engine/buffer"
)

// SegmentCache caches measured segments with LRU eviction.
// Entries are keyed by segment content, so edits elsewhere in the document
// never invalidate them.
type SegmentCache struct {
	mu        sync.RWMutex
	entries   map[uint64]*cacheEntry
	measurer  Measurer
	maxSize   int
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheEntry struct {
	keys       []glyphKey
	layout     *SegmentLayout
	lastAccess time.Time // For LRU eviction
}

// glyphKey holds the parts of a character that affect its measurement.
type glyphKey struct {
	r       rune
	size    int
	spacing float64
	bold    bool
	italic  bool
	family  string
}

func glyphKeys(seg buffer.Segment) []glyphKey {
	keys := make([]glyphKey, len(seg))
	for i, c := range seg {
		f := c.Format
		keys[i] = glyphKey{c.Rune, f.PointSize, f.LetterSpacing, f.Bold, f.Italic, f.Family}
	}
	return keys
}

// NewSegmentCache creates a new segment cache.
// maxSize is the maximum number of segments to cache (0 = unlimited).
func NewSegmentCache(m Measurer, maxSize int) *SegmentCache {
	if maxSize < 0 {
		maxSize = 0
	}
	return &SegmentCache{
		entries:  make(map[uint64]*cacheEntry),
		measurer: m,
		maxSize:  maxSize,
	}
}

// Get retrieves or computes the layout of seg. A hash collision counts as
// a miss and replaces the colliding entry.
func (c *SegmentCache) Get(seg buffer.Segment) *SegmentLayout {
	keys := glyphKeys(seg)
	key := hashKeys(keys)

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && slices.Equal(entry.keys, keys) {
		entry.lastAccess = time.Now()
		layout := entry.layout
		c.mu.Unlock()
		c.hits.Add(1)
		return layout
	}
	m := c.measurer
	c.mu.Unlock()

	c.misses.Add(1)
	layout := MeasureSegment(seg, m)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		keys:       keys,
		layout:     layout,
		lastAccess: time.Now(),
	}

	if c.maxSize > 0 && len(c.entries) > c.maxSize {
		c.evict()
	}

	return layout
}

// InvalidateAll clears the entire cache.
func (c *SegmentCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*cacheEntry)
}

// SetMeasurer replaces the measurer and invalidates the cache.
func (c *SegmentCache) SetMeasurer(m Measurer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.measurer = m
	c.entries = make(map[uint64]*cacheEntry)
}

// evict removes the least recently used entries until under maxSize.
// Must be called with write lock held.
func (c *SegmentCache) evict() {
	if c.maxSize <= 0 || len(c.entries) <= c.maxSize {
		return
	}

	type keyTime struct {
		key  uint64
		time time.Time
	}

	entries := make([]keyTime, 0, len(c.entries))
	for key, entry := range c.entries {
		entries = append(entries, keyTime{key, entry.lastAccess})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].time.Before(entries[j].time)
	})

	toRemove := len(entries) - c.maxSize
	for i := 0; i < toRemove; i++ {
		delete(c.entries, entries[i].key)
	}
	c.evictions.Add(uint64(toRemove))
}

// Size returns the number of cached entries.
func (c *SegmentCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *SegmentCache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()

	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{
		Size:      size,
		MaxSize:   c.maxSize,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats resets the cache statistics counters.
func (c *SegmentCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// CacheStats holds cache statistics.
type CacheStats struct {
	Size      int     // Current number of entries
	MaxSize   int     // Maximum entries allowed
	Hits      uint64  // Number of cache hits
	Misses    uint64  // Number of cache misses
	Evictions uint64  // Number of evicted entries
	HitRate   float64 // Hit rate (0.0 - 1.0)
}

// hashKeys computes an FNV-1a hash over the measured parts of a segment.
func hashKeys(keys []glyphKey) uint64 {
	h := fnv.New64a()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(keys)))
	h.Write(b[:])
	for _, k := range keys {
		binary.LittleEndian.PutUint32(b[:4], uint32(k.r))
		binary.LittleEndian.PutUint32(b[4:], uint32(k.size))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(k.spacing))
		h.Write(b[:])
		var flags byte
		if k.bold {
			flags |= 1
		}
		if k.italic {
			flags |= 2
		}
		h.Write([]byte{flags})
		h.Write([]byte(k.family))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
