// Package engine implements the seven scheduling disciplines on a shared
// event-loop shape: admit arrivals, select a process, run until the next
// event, append timeline segments, advance the clock.
package engine

import (
	"sort"

	log "github.com/golang/glog"

	"github.com/ayushbarthwal/virtualscheduler/config"
	"github.com/ayushbarthwal/virtualscheduler/dispatcher"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/simerrors"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// Run executes cfg's algorithm over procs, whose processes it takes
// ownership of: the returned process slice is a new slice holding the same
// *process.Process pointers sorted by (arrival, pid), and each of those
// processes is mutated in place. The order of procs itself is left as it
// was. A run never mutates any other owner's copy, so a caller that needs
// the original workload afterward must pass process.CloneAll(procs) in.
func Run(procs []*process.Process, cfg config.Config) (timeline.Timeline, []*process.Process, error) {
	ordered := make([]*process.Process, len(procs))
	copy(ordered, procs)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Arrival != ordered[j].Arrival {
			return ordered[i].Arrival < ordered[j].Arrival
		}
		return ordered[i].PID < ordered[j].PID
	})

	disp := dispatcher.New(cfg.ContextSwitch)

	switch alg := cfg.Algorithm.(type) {
	case config.FCFS:
		log.V(2).Infof("engine: running FCFS over %d processes", len(ordered))
		tl, err := runNonPreemptiveFrom(0, ordered, disp, func(*process.Process) int { return 0 })
		return tl, ordered, err

	case config.SJF:
		log.V(2).Infof("engine: running SJF over %d processes", len(ordered))
		tl, err := runNonPreemptiveFrom(0, ordered, disp, func(p *process.Process) int { return p.CPUBurst })
		return tl, ordered, err

	case config.SRTF:
		log.V(2).Infof("engine: running SRTF over %d processes", len(ordered))
		tl, err := runPreemptive(ordered, disp, func(p *process.Process) int { return p.Remaining })
		return tl, ordered, err

	case config.Priority:
		log.V(2).Infof("engine: running PRIORITY (preemptive=%v) over %d processes", alg.Preemptive, len(ordered))
		primary := func(p *process.Process) int { return p.Priority }
		var tl timeline.Timeline
		var err error
		if alg.Preemptive {
			tl, err = runPreemptive(ordered, disp, primary)
		} else {
			tl, err = runNonPreemptiveFrom(0, ordered, disp, primary)
		}
		return tl, ordered, err

	case config.RR:
		if alg.Quantum <= 0 {
			return nil, nil, simerrors.InvalidParameters("RR quantum must be positive, got %d", alg.Quantum)
		}
		log.V(2).Infof("engine: running RR (quantum=%d) over %d processes", alg.Quantum, len(ordered))
		tl, err := runRR(ordered, disp, alg.Quantum)
		return tl, ordered, err

	case config.MLQ:
		if alg.Queues < 1 {
			return nil, nil, simerrors.InvalidParameters("MLQ queues must be >= 1, got %d", alg.Queues)
		}
		log.V(2).Infof("engine: running MLQ (queues=%d) over %d processes", alg.Queues, len(ordered))
		tl, err := runMLQ(ordered, disp, alg.Queues)
		return tl, ordered, err

	case config.MLFQ:
		if alg.Levels < 1 {
			return nil, nil, simerrors.InvalidParameters("MLFQ levels must be >= 1, got %d", alg.Levels)
		}
		log.V(2).Infof("engine: running MLFQ (levels=%d) over %d processes", alg.Levels, len(ordered))
		tl, err := runMLFQ(ordered, disp, alg.Levels, alg.Quanta)
		return tl, ordered, err

	default:
		return nil, nil, simerrors.InvalidParameters("unknown algorithm %T", cfg.Algorithm)
	}
}

// expandQuanta returns a slice of exactly levels entries, repeating quanta's
// last entry if quanta is shorter.
func expandQuanta(quanta []int, levels int) []int {
	out := make([]int, levels)
	last := 1
	for i := 0; i < levels; i++ {
		if i < len(quanta) {
			last = quanta[i]
		}
		out[i] = last
	}
	return out
}

// clampLevel constrains v to [0, max].
func clampLevel(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
