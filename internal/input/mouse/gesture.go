package mouse

import "time"

// clickCounter decides whether a press completes a double click. Only two
// levels exist: a third quick press starts over as a single click.
type clickCounter struct {
	window time.Duration
	slop   int

	pos     Position
	at      time.Time
	pending bool
}

func newClickCounter(window time.Duration, slop int) *clickCounter {
	return &clickCounter{window: window, slop: slop}
}

// press records a press at pos and reports whether it is the second click
// of a pair. A zero timestamp means now.
func (c *clickCounter) press(pos Position, at time.Time) bool {
	if at.IsZero() {
		at = time.Now()
	}
	double := c.pending && c.within(pos, at)

	c.pending = !double
	c.pos = pos
	c.at = at
	return double
}

func (c *clickCounter) within(pos Position, at time.Time) bool {
	elapsed := at.Sub(c.at)
	if elapsed < 0 || elapsed > c.window {
		return false
	}
	return pos.Distance(c.pos) <= c.slop
}

func (c *clickCounter) reset() {
	*c = clickCounter{window: c.window, slop: c.slop}
}

// DragState describes a left-button drag. The press cell is the selection
// anchor and CurrentPos is the last cell the active end was extended to.
type DragState struct {
	// Active is set between press and release.
	Active bool

	// Selecting is set once the pointer has moved since the press.
	Selecting bool

	// Button is the held button.
	Button Button

	// StartPos is the press cell.
	StartPos Position

	// CurrentPos is the latest cell.
	CurrentPos Position
}

// begin starts a drag from pos.
func (d *DragState) begin(pos Position, b Button) {
	*d = DragState{Active: true, Button: b, StartPos: pos, CurrentPos: pos}
}

// moveTo records pos and reports whether the active end must follow.
// Repeated reports for the same cell are dropped once selecting.
func (d *DragState) moveTo(pos Position) bool {
	if !d.Active || d.Button != ButtonLeft {
		return false
	}
	if d.Selecting && pos == d.CurrentPos {
		return false
	}
	d.CurrentPos = pos
	d.Selecting = true
	return true
}

// finish ends the drag and reports whether one was in progress.
func (d *DragState) finish() bool {
	was := d.Active
	*d = DragState{}
	return was
}
