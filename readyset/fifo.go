package readyset

import "github.com/ayushbarthwal/virtualscheduler/process"

// FIFO is an insertion-ordered ready queue, used by the algorithms that
// admit in arrival order and never reorder by a key: RR, and each
// individual level of MLFQ.
type FIFO struct {
	items []*process.Process
}

// NewFIFO returns an empty FIFO queue.
func NewFIFO() *FIFO {
	return &FIFO{}
}

// Push enqueues p at the tail.
func (f *FIFO) Push(p *process.Process) {
	f.items = append(f.items, p)
}

// Pop dequeues and returns the head. It panics if the queue is empty;
// callers must check Len first.
func (f *FIFO) Pop() *process.Process {
	p := f.items[0]
	f.items = f.items[1:]
	return p
}

// Len returns the number of processes currently queued.
func (f *FIFO) Len() int {
	return len(f.items)
}
