// Package dispatcher implements the context-switch overlay: a small piece
// of state threaded through an engine run that turns process transitions
// into explicit CS timeline segments.
package dispatcher

import "github.com/ayushbarthwal/virtualscheduler/timeline"

// Dispatcher tracks which process was last switched in, so that Switch can
// tell a resumption of the same process apart from a genuine transition.
type Dispatcher struct {
	cost    int
	prevPID string
	hasPrev bool
}

// New returns a Dispatcher charging cost on every process transition. cost
// of zero disables the overlay entirely: Switch never emits a segment.
func New(cost int) *Dispatcher {
	return &Dispatcher{cost: cost}
}

// Switch records that nextPID is about to be switched in at time now, and
// returns the time at which it may actually start running. If nextPID
// differs from the previously switched-in process, a CS segment is charged
// and appended to tl. No segment is charged before the first process runs,
// between consecutive quanta of the same process, or when cost is zero.
func (d *Dispatcher) Switch(tl *timeline.Timeline, now int, nextPID string) int {
	charge := d.hasPrev && d.prevPID != nextPID && d.cost != 0
	d.prevPID = nextPID
	d.hasPrev = true
	if !charge {
		return now
	}
	tl.Append(timeline.CS, now, now+d.cost)
	return now + d.cost
}
