package history

import (
	"errors"
	"sync"
)

// DefaultMaxEntries is used when a non-positive limit is given.
const DefaultMaxEntries = 1000

// ErrNothingToUndo indicates the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// History manages the undo stack of an editor.
type History struct {
	mu sync.Mutex

	undoStack []*Snapshot

	// Grouping state
	grouping   bool
	groupName  string
	groupFirst *Snapshot

	maxEntries int
}

// New creates a history keeping at most maxEntries snapshots.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Push adds a snapshot to the undo stack.
// While grouping only the first snapshot of the group is retained.
func (h *History) Push(snap *Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		if h.groupFirst == nil {
			h.groupFirst = snap
		}
		return
	}

	h.pushLocked(snap)
}

// pushLocked adds a snapshot without acquiring the lock.
func (h *History) pushLocked(snap *Snapshot) {
	h.undoStack = append(h.undoStack, snap)

	// Enforce max entries
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo pops the most recent snapshot.
func (h *History) Undo() (*Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}

	snap := h.undoStack[len(h.undoStack)-1]
	h.undoStack[len(h.undoStack)-1] = nil
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	return snap, nil
}

// Redo does nothing and returns false. Forward states are not kept.
func (h *History) Redo() bool {
	return false
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo always returns false.
func (h *History) CanRedo() bool {
	return false
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// BeginGroup starts collapsing pushes into a single undo step.
// Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupFirst = nil
}

// EndGroup finishes a group, pushing its first snapshot if any.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}

	h.grouping = false
	if h.groupFirst == nil {
		return
	}

	if h.groupName != "" {
		h.groupFirst.Description = h.groupName
	}
	h.pushLocked(h.groupFirst)
	h.groupFirst = nil
}

// IsGrouping returns true if currently in a group.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Clear removes all history and ends any open group.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.grouping = false
	h.groupFirst = nil
}

// Entries returns a copy of the undo stack, oldest first.
func (h *History) Entries() []*Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*Snapshot(nil), h.undoStack...)
}

// ReplaceEntries swaps the undo stack for entries and ends any open group.
func (h *History) ReplaceEntries(entries []*Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append([]*Snapshot(nil), entries...)
	h.grouping = false
	h.groupFirst = nil
}

// UndoInfo returns info about available undo steps, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, len(h.undoStack))
	for i, snap := range h.undoStack {
		result[i] = OperationInfo{
			Description: snap.Description,
			Timestamp:   snap.Timestamp,
		}
	}
	return result
}

// PeekUndo returns info about the next undo step without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}

	snap := h.undoStack[len(h.undoStack)-1]
	return OperationInfo{
		Description: snap.Description,
		Timestamp:   snap.Timestamp,
	}, true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max

	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
