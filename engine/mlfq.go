package engine

import (
	"github.com/ayushbarthwal/virtualscheduler/dispatcher"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/readyset"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// runMLFQ drives the multilevel feedback queue: new arrivals enter level 0,
// selection always serves the lowest-indexed non-empty level, and a
// process that exhausts its level's quantum without completing is demoted
// one level (capped at the last level).
func runMLFQ(procs []*process.Process, disp *dispatcher.Dispatcher, levels int, quanta []int) (timeline.Timeline, error) {
	quantaFull := expandQuanta(quanta, levels)
	queues := make([]*readyset.FIFO, levels)
	for i := range queues {
		queues[i] = readyset.NewFIFO()
	}

	var tl timeline.Timeline
	now := 0
	idx := 0
	n := len(procs)

	anyQueued := func() bool {
		for _, q := range queues {
			if q.Len() > 0 {
				return true
			}
		}
		return false
	}
	admit := func() {
		for idx < n && procs[idx].Arrival <= now {
			queues[0].Push(procs[idx])
			idx++
		}
	}
	lowestNonEmpty := func() int {
		for i, q := range queues {
			if q.Len() > 0 {
				return i
			}
		}
		return -1
	}

	for idx < n || anyQueued() {
		if !anyQueued() {
			if now < procs[idx].Arrival {
				tl.Append(timeline.IDLE, now, procs[idx].Arrival)
			}
			now = max(now, procs[idx].Arrival)
		}
		admit()

		lvl := lowestNonEmpty()
		if lvl == -1 {
			continue
		}
		p := queues[lvl].Pop()
		now = disp.Switch(&tl, now, p.PID)
		p.Start(now)
		run := min(quantaFull[lvl], p.Remaining)
		end := now + run
		tl.Append(p.PID, now, end)
		p.Run(run)
		now = end

		admit()
		if p.Remaining > 0 {
			demoted := lvl + 1
			if demoted > levels-1 {
				demoted = levels - 1
			}
			queues[demoted].Push(p)
		} else {
			p.Complete(now)
		}
	}
	return tl, nil
}
