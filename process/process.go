// Package process defines the Process entity and the bookkeeping fields the
// scheduling engine mutates while a run is in progress.
package process

// Unset marks an optional integer field (Started, Completed) that has not
// yet been assigned a value.
const Unset = -1

// Process is a single schedulable unit of work. PID, Arrival, CPUBurst,
// Priority, and QueueLevel are the workload's inputs and are never modified
// after construction. Remaining, Started, and Completed are bookkeeping
// fields mutated only by the engine running this process, via Start, Run,
// and Complete.
type Process struct {
	PID        string
	Arrival    int
	CPUBurst   int
	Priority   int
	QueueLevel int

	Remaining int
	Started   int
	Completed int
}

// New returns a Process with Remaining initialized to cpuBurst and Started
// and Completed unset.
func New(pid string, arrival, cpuBurst, priority, queueLevel int) *Process {
	return &Process{
		PID:        pid,
		Arrival:    arrival,
		CPUBurst:   cpuBurst,
		Priority:   priority,
		QueueLevel: queueLevel,
		Remaining:  cpuBurst,
		Started:    Unset,
		Completed:  Unset,
	}
}

// Start records the first instant this process was switched in. Subsequent
// calls are no-ops: only the first dispatch sets response time.
func (p *Process) Start(now int) {
	if p.Started == Unset {
		p.Started = now
	}
}

// Run advances this process's progress by units, which must not exceed
// Remaining.
func (p *Process) Run(units int) {
	p.Remaining -= units
}

// Complete records the instant this process's Remaining reached zero.
func (p *Process) Complete(now int) {
	p.Completed = now
}

// Done reports whether this process has no remaining work.
func (p *Process) Done() bool {
	return p.Remaining <= 0
}

// Clone returns a value-copy of p, safe to mutate without affecting p.
func (p *Process) Clone() *Process {
	cp := *p
	return &cp
}

// CloneAll returns owned copies of procs, in the same order. Callers that
// want to run more than one simulation over the same workload (comparing
// algorithms, or fanning a workload out across simulated cores) clone before
// each run: the engine takes ownership of whatever slice it is given and
// mutates it in place.
func CloneAll(procs []*Process) []*Process {
	out := make([]*Process, len(procs))
	for i, p := range procs {
		out[i] = p.Clone()
	}
	return out
}
