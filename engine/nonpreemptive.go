package engine

import (
	"github.com/ayushbarthwal/virtualscheduler/dispatcher"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/readyset"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// runNonPreemptiveFrom drives FCFS, SJF, and non-preemptive PRIORITY: all
// three admit arrivals into an readyset.Ordered keyed by primary and run
// whatever it selects to completion before reselecting. FCFS uses a
// constant primary, which collapses the ordering to pure (arrival, pid) —
// exactly FCFS's rule. startNow lets MLQ resume a band's FCFS run from the
// time the previous band finished, rather than from zero.
func runNonPreemptiveFrom(startNow int, procs []*process.Process, disp *dispatcher.Dispatcher, primary readyset.PrimaryFunc) (timeline.Timeline, error) {
	var tl timeline.Timeline
	now := startNow
	idx := 0
	n := len(procs)
	ready := readyset.NewOrdered(primary)

	for idx < n || ready.Len() > 0 {
		if ready.Len() == 0 {
			if now < procs[idx].Arrival {
				tl.Append(timeline.IDLE, now, procs[idx].Arrival)
			}
			now = max(now, procs[idx].Arrival)
		}
		for idx < n && procs[idx].Arrival <= now {
			ready.Push(procs[idx])
			idx++
		}

		p := ready.Pop()
		now = disp.Switch(&tl, now, p.PID)
		p.Start(now)
		end := now + p.Remaining
		tl.Append(p.PID, now, end)
		p.Run(p.Remaining)
		p.Complete(end)
		now = end
	}
	return tl, nil
}
