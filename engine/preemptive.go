package engine

import (
	"github.com/ayushbarthwal/virtualscheduler/dispatcher"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/readyset"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// runPreemptive drives SRTF and preemptive PRIORITY, which share the exact
// same control flow: a "current" process runs until either it completes or
// the next arrival occurs, whichever is sooner; an arrival that beats a
// strictly smaller primary key into the ready set preempts current. SRTF
// keys by remaining time, PRIORITY by (unchanging) priority.
func runPreemptive(procs []*process.Process, disp *dispatcher.Dispatcher, primary readyset.PrimaryFunc) (timeline.Timeline, error) {
	var tl timeline.Timeline
	now := 0
	idx := 0
	n := len(procs)
	ready := readyset.NewOrdered(primary)
	var current *process.Process

	admit := func() {
		for idx < n && procs[idx].Arrival <= now {
			ready.Push(procs[idx])
			idx++
		}
	}

	for idx < n || ready.Len() > 0 || current != nil {
		admit()

		if current == nil {
			if ready.Len() == 0 {
				if now < procs[idx].Arrival {
					tl.Append(timeline.IDLE, now, procs[idx].Arrival)
				}
				now = procs[idx].Arrival
				continue
			}
			current = ready.Pop()
			now = disp.Switch(&tl, now, current.PID)
			current.Start(now)
			continue
		}

		hasNextArrival := idx < n
		completionTime := now + current.Remaining
		if !hasNextArrival || completionTime <= procs[idx].Arrival {
			// Current finishes before (or exactly as) the next arrival:
			// run it out.
			tl.Append(current.PID, now, completionTime)
			current.Run(current.Remaining)
			current.Complete(completionTime)
			now = completionTime
			current = nil
			continue
		}

		// An arrival interrupts: run current up to that boundary, admit
		// it (and anything else arriving at the same instant), and
		// preempt iff the new minimum is strictly better than current.
		run := procs[idx].Arrival - now
		tl.Append(current.PID, now, now+run)
		current.Run(run)
		now += run
		admit()
		if ready.Len() > 0 && ready.Peek() != nil && primary(ready.Peek()) < primary(current) {
			ready.Push(current)
			current = nil
		}
	}
	return tl, nil
}
