// Package readyset provides the two ready-structure abstractions shared by
// the scheduling engine's algorithms: an ordered set keyed by a
// lexicographic (primary, arrival, pid) triple, used by FCFS, SJF, SRTF,
// PRIORITY, and each MLQ band, and a plain FIFO queue, used by RR and MLFQ.
package readyset

import (
	"container/heap"

	"github.com/ayushbarthwal/virtualscheduler/process"
)

// PrimaryFunc extracts a process's primary ordering key: remaining time for
// SRTF, burst length for SJF, or priority for PRIORITY. Ties are always
// broken by arrival, then by PID, regardless of which PrimaryFunc is in use.
type PrimaryFunc func(p *process.Process) int

// Ordered is a priority queue over processes, keyed by the lexicographic
// triple (primary, arrival, pid). This tie-break rule is normative across
// every algorithm that uses an Ordered ready set.
type Ordered struct {
	primary PrimaryFunc
	items   orderedHeap
}

// NewOrdered returns an empty Ordered set keyed by primary.
func NewOrdered(primary PrimaryFunc) *Ordered {
	o := &Ordered{primary: primary}
	heap.Init(&o.items)
	return o
}

// Push admits p into the set.
func (o *Ordered) Push(p *process.Process) {
	heap.Push(&o.items, orderedItem{p: p, key: o.primary(p)})
}

// Len returns the number of processes currently admitted.
func (o *Ordered) Len() int {
	return len(o.items)
}

// Peek returns the minimal process without removing it, or nil if the set
// is empty.
func (o *Ordered) Peek() *process.Process {
	if len(o.items) == 0 {
		return nil
	}
	return o.items[0].p
}

// Pop removes and returns the minimal process. It panics if the set is
// empty; callers must check Len first.
func (o *Ordered) Pop() *process.Process {
	item := heap.Pop(&o.items).(orderedItem)
	return item.p
}

type orderedItem struct {
	p   *process.Process
	key int
}

// orderedHeap implements heap.Interface over orderedItems, ordering by
// (key, arrival, pid).
type orderedHeap []orderedItem

func (h orderedHeap) Len() int { return len(h) }

func (h orderedHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.key != b.key {
		return a.key < b.key
	}
	if a.p.Arrival != b.p.Arrival {
		return a.p.Arrival < b.p.Arrival
	}
	return a.p.PID < b.p.PID
}

func (h orderedHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *orderedHeap) Push(x any) {
	*h = append(*h, x.(orderedItem))
}

func (h *orderedHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
