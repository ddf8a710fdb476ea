package engine

import (
	"github.com/ayushbarthwal/virtualscheduler/dispatcher"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/readyset"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// runRR drives round robin: pop the queue head, run it for at most
// quantum, enqueue any arrivals that occurred during that slice ahead of
// the just-run process, then requeue it if it still has remaining work.
func runRR(procs []*process.Process, disp *dispatcher.Dispatcher, quantum int) (timeline.Timeline, error) {
	var tl timeline.Timeline
	now := 0
	idx := 0
	n := len(procs)
	q := readyset.NewFIFO()

	for idx < n || q.Len() > 0 {
		if q.Len() == 0 {
			if now < procs[idx].Arrival {
				tl.Append(timeline.IDLE, now, procs[idx].Arrival)
			}
			now = max(now, procs[idx].Arrival)
		}
		for idx < n && procs[idx].Arrival <= now {
			q.Push(procs[idx])
			idx++
		}

		p := q.Pop()
		now = disp.Switch(&tl, now, p.PID)
		p.Start(now)
		run := min(quantum, p.Remaining)
		end := now + run
		tl.Append(p.PID, now, end)
		p.Run(run)
		now = end

		for idx < n && procs[idx].Arrival <= now {
			q.Push(procs[idx])
			idx++
		}
		if p.Remaining > 0 {
			q.Push(p)
		} else {
			p.Complete(now)
		}
	}
	return tl, nil
}
