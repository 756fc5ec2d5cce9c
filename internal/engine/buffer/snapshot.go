package buffer

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It will not change even if the original buffer is modified.
type Snapshot struct {
	segments []Segment
	revision RevisionID
}

// SegmentCount returns the number of segments in the snapshot.
func (s *Snapshot) SegmentCount() int {
	return len(s.segments)
}

// Segment returns a copy of segment i.
func (s *Snapshot) Segment(i int) Segment {
	return s.segments[i].Clone()
}

// Segments returns copies of all segments.
func (s *Snapshot) Segments() []Segment {
	return cloneSegments(s.segments)
}

// RevisionID returns the buffer revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revision
}
