package partition

import (
	"sync"

	"github.com/golang/sync/errgroup"

	"github.com/ayushbarthwal/virtualscheduler/config"
	"github.com/ayushbarthwal/virtualscheduler/engine"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// CoreResult is one simulated core's independent run: the timeline it
// produced and the processes it ran, in their final (mutated) bookkeeping
// state.
type CoreResult struct {
	Timeline timeline.Timeline
	Ran      []*process.Process
}

// RunConcurrent splits processes across cores with Split and drives one
// independent engine.Run per core concurrently, aggregating into a map
// behind a mutex the way Collection.ThreadStats fans out one goroutine per
// PID and collects into perPIDStats. Each core's slice is disjoint and each
// engine.Run owns only the copy it was handed, so the aggregation map is the
// only state the goroutines share. If any core's run fails, RunConcurrent
// returns the first error and no partial results.
func RunConcurrent(processes []*process.Process, cores int, cfg config.Config) ([]CoreResult, error) {
	slices := Split(processes, cores)

	var mu sync.Mutex
	results := make(map[int]CoreResult, cores)
	var eg errgroup.Group
	for i, slice := range slices {
		i, slice := i, slice
		eg.Go(func() error {
			owned := process.CloneAll(slice)
			tl, ran, err := engine.Run(owned, cfg)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			results[i] = CoreResult{Timeline: tl, Ran: ran}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]CoreResult, cores)
	for i := 0; i < cores; i++ {
		out[i] = results[i]
	}
	return out, nil
}
