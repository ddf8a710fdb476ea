package engine

import (
	"sort"

	"github.com/ayushbarthwal/virtualscheduler/dispatcher"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// runMLQ drives the static multilevel queue: processes are partitioned by
// (clamped) QueueLevel into queues fixed bands, and bands are run to
// complete exhaustion in strict priority order. Band k's FCFS run starts no
// earlier than band k-1's last segment ended, so a later band never
// observes the idle jumps band k-1 took to reach its own arrivals.
func runMLQ(procs []*process.Process, disp *dispatcher.Dispatcher, queues int) (timeline.Timeline, error) {
	bands := make([][]*process.Process, queues)
	for _, p := range procs {
		lvl := clampLevel(p.QueueLevel, queues-1)
		bands[lvl] = append(bands[lvl], p)
	}

	var tl timeline.Timeline
	now := 0
	for _, band := range bands {
		if len(band) == 0 {
			continue
		}
		sort.Slice(band, func(i, j int) bool {
			if band[i].Arrival != band[j].Arrival {
				return band[i].Arrival < band[j].Arrival
			}
			return band[i].PID < band[j].PID
		})
		bandTL, err := runNonPreemptiveFrom(now, band, disp, func(*process.Process) int { return 0 })
		if err != nil {
			return nil, err
		}
		tl = append(tl, bandTL...)
		if len(bandTL) > 0 {
			now = bandTL[len(bandTL)-1].End
		}
	}
	return tl, nil
}
