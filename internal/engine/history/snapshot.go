package history

import (
	"time"

	"github.com/dshills/vtext/internal/engine/buffer"
	"github.com/dshills/vtext/internal/engine/cursor"
)

// Snapshot is the full editor state captured before a mutation.
type Snapshot struct {
	// Description names the operation that pushed the snapshot.
	Description string

	// Buffer holds copies of every segment with its formats.
	Buffer *buffer.Snapshot

	// Cursor is the caret position at capture time.
	Cursor cursor.Cursor

	// SegmentCount is the number of segments at capture time.
	SegmentCount int

	Timestamp time.Time
}

// NewSnapshot creates a snapshot of buf and cur.
func NewSnapshot(description string, buf *buffer.Snapshot, cur cursor.Cursor) *Snapshot {
	return &Snapshot{
		Description:  description,
		Buffer:       buf,
		Cursor:       cur,
		SegmentCount: buf.SegmentCount(),
		Timestamp:    time.Now(),
	}
}

// OperationInfo describes a stored snapshot.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}
