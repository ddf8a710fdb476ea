// Package metrics computes per-process and aggregate performance metrics
// directly from process bookkeeping (arrival, burst, started, completed),
// never from the timeline, so that CS and IDLE segments cannot distort
// waiting or turnaround time.
package metrics

import "github.com/ayushbarthwal/virtualscheduler/process"

// PerProcess holds the four per-process metrics derived from one process's
// bookkeeping.
type PerProcess struct {
	Waiting    int `json:"waiting"`
	Turnaround int `json:"turnaround"`
	Response   int `json:"response"`
	Completion int `json:"completion"`
}

// Result is the full metrics record for a run: one PerProcess entry per
// PID plus the aggregates.
type Result struct {
	PerProcess     map[string]PerProcess `json:"per_process"`
	AvgWaiting     float64               `json:"avg_waiting"`
	AvgTurnaround  float64               `json:"avg_turnaround"`
	Throughput     float64               `json:"throughput"`
	CPUUtilization float64               `json:"cpu_utilization"`
	TotalTime      int                   `json:"total_time"`
}

// accumulator collects running sums across an empty-or-populated workload
// while PerProcess entries are built, mirroring the gather-then-finalize
// shape used elsewhere in this codebase for aggregate statistics.
type accumulator struct {
	perProcess map[string]PerProcess
	sumWaiting float64
	sumTAT     float64
	totalCPU   int
	totalTime  int
}

func newAccumulator(n int) *accumulator {
	return &accumulator{perProcess: make(map[string]PerProcess, n)}
}

func (a *accumulator) record(p *process.Process) {
	turnaround := p.Completed - p.Arrival
	waiting := turnaround - p.CPUBurst
	response := process.Unset
	if p.Started != process.Unset {
		response = p.Started - p.Arrival
	}
	a.perProcess[p.PID] = PerProcess{
		Waiting:    waiting,
		Turnaround: turnaround,
		Response:   response,
		Completion: p.Completed,
	}
	a.sumWaiting += float64(waiting)
	a.sumTAT += float64(turnaround)
	a.totalCPU += p.CPUBurst
	if p.Completed > a.totalTime {
		a.totalTime = p.Completed
	}
}

func (a *accumulator) finalize() Result {
	res := Result{PerProcess: a.perProcess, TotalTime: a.totalTime}
	n := len(a.perProcess)
	if n == 0 {
		return res
	}
	res.AvgWaiting = a.sumWaiting / float64(n)
	res.AvgTurnaround = a.sumTAT / float64(n)
	if a.totalTime > 0 {
		res.Throughput = float64(n) / float64(a.totalTime)
		res.CPUUtilization = float64(a.totalCPU) / float64(a.totalTime)
		if res.CPUUtilization > 1 {
			res.CPUUtilization = 1
		}
	}
	return res
}

// Compute derives a Result from the final state of a completed run's
// processes. It is computed over the original workload's processes using
// each one's final Completed time, never over a concatenation of
// per-algorithm internal queues: an algorithm that holds residual state in
// several structures (MLFQ's per-level queues, MLQ's bands) must still pass
// Compute the single flat process list it was given, not those structures.
func Compute(procs []*process.Process) Result {
	a := newAccumulator(len(procs))
	for _, p := range procs {
		a.record(p)
	}
	return a.finalize()
}
