package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayushbarthwal/virtualscheduler/config"
	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

func seg(pid string, start, end int) timeline.Segment {
	return timeline.Segment{PID: pid, Start: start, End: end}
}

func build(pid string, arrival, burst, priority, queueLevel int) *process.Process {
	return process.New(pid, arrival, burst, priority, queueLevel)
}

func TestFCFSBasic(t *testing.T) {
	in := []*process.Process{
		build("A", 0, 4, 0, 0),
		build("B", 1, 3, 0, 0),
		build("C", 2, 1, 0, 0),
	}
	tl, ran, err := Run(in, config.Config{Algorithm: config.FCFS{}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := timeline.Timeline{seg("A", 0, 4), seg("B", 4, 7), seg("C", 7, 8)}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	checkProcessOrderPreserved(t, ran, []string{"A", "B", "C"})
}

func TestSJFNonPreemptive(t *testing.T) {
	in := []*process.Process{
		build("A", 0, 7, 0, 0),
		build("B", 2, 4, 0, 0),
		build("C", 4, 1, 0, 0),
		build("D", 5, 4, 0, 0),
	}
	tl, _, err := Run(in, config.Config{Algorithm: config.SJF{}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := timeline.Timeline{seg("A", 0, 7), seg("C", 7, 8), seg("B", 8, 12), seg("D", 12, 16)}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestSRTF(t *testing.T) {
	in := []*process.Process{
		build("A", 0, 8, 0, 0),
		build("B", 1, 4, 0, 0),
		build("C", 2, 2, 0, 0),
	}
	tl, ran, err := Run(in, config.Config{Algorithm: config.SRTF{}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := timeline.Timeline{
		seg("A", 0, 1), seg("B", 1, 2), seg("C", 2, 4), seg("B", 4, 7), seg("A", 7, 14),
	}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	for _, p := range ran {
		if p.Started != p.Arrival {
			t.Errorf("process %s: response time should be 0, started=%d arrival=%d", p.PID, p.Started, p.Arrival)
		}
	}
}

func TestPriorityPreemptive(t *testing.T) {
	in := []*process.Process{
		build("A", 0, 5, 2, 0),
		build("B", 2, 3, 1, 0),
	}
	tl, ran, err := Run(in, config.Config{Algorithm: config.Priority{Preemptive: true}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := timeline.Timeline{seg("A", 0, 2), seg("B", 2, 5), seg("A", 5, 8)}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	byPID := indexByPID(ran)
	if r := byPID["A"].Started - byPID["A"].Arrival; r != 0 {
		t.Errorf("A response = %d, want 0", r)
	}
	if r := byPID["B"].Started - byPID["B"].Arrival; r != 0 {
		t.Errorf("B response = %d, want 0", r)
	}
}

func TestPriorityNonPreemptiveRunsToCompletion(t *testing.T) {
	in := []*process.Process{
		build("A", 0, 5, 2, 0),
		build("B", 2, 3, 1, 0),
	}
	tl, _, err := Run(in, config.Config{Algorithm: config.Priority{Preemptive: false}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := timeline.Timeline{seg("A", 0, 5), seg("B", 5, 8)}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundRobin(t *testing.T) {
	in := []*process.Process{
		build("A", 0, 5, 0, 0),
		build("B", 1, 4, 0, 0),
		build("C", 2, 2, 0, 0),
	}
	tl, _, err := Run(in, config.Config{Algorithm: config.RR{Quantum: 2}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := timeline.Timeline{
		seg("A", 0, 2), seg("B", 2, 4), seg("C", 4, 6),
		seg("A", 6, 8), seg("B", 8, 10), seg("A", 10, 11),
	}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	if got := tl.Last(); got != 11 {
		t.Errorf("total_time = %d, want 11", got)
	}
}

func TestRoundRobinRejectsNonPositiveQuantum(t *testing.T) {
	in := []*process.Process{build("A", 0, 5, 0, 0)}
	if _, _, err := Run(in, config.Config{Algorithm: config.RR{Quantum: 0}}); err == nil {
		t.Fatal("Run() with quantum=0 should fail")
	}
}

func TestMLFQ(t *testing.T) {
	in := []*process.Process{
		build("A", 0, 10, 0, 0),
		build("B", 1, 4, 0, 0),
	}
	tl, _, err := Run(in, config.Config{Algorithm: config.MLFQ{Levels: 3, Quanta: []int{2, 4, 8}}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := timeline.Timeline{
		seg("A", 0, 2), seg("B", 2, 4), seg("A", 4, 8), seg("B", 8, 10), seg("A", 10, 14),
	}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestMLFQRejectsBadLevels(t *testing.T) {
	in := []*process.Process{build("A", 0, 5, 0, 0)}
	if _, _, err := Run(in, config.Config{Algorithm: config.MLFQ{Levels: 0, Quanta: []int{2}}}); err == nil {
		t.Fatal("Run() with levels=0 should fail")
	}
}

func TestMLQStrictBandOrder(t *testing.T) {
	in := []*process.Process{
		build("LoA", 0, 3, 0, 1),
		build("HiA", 5, 2, 0, 0),
		build("HiB", 0, 2, 0, 0),
	}
	tl, _, err := Run(in, config.Config{Algorithm: config.MLQ{Queues: 2}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Band 0 (HiB, HiA) drains completely before band 1 (LoA) ever runs,
	// even though LoA arrived before HiA; the gap waiting for HiA to
	// arrive shows up as an IDLE segment confined to band 0's own clock.
	want := timeline.Timeline{
		seg("HiB", 0, 2), seg(timeline.IDLE, 2, 5), seg("HiA", 5, 7), seg("LoA", 7, 10),
	}
	if diff := cmp.Diff(want, tl); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestMLQRejectsBadQueues(t *testing.T) {
	in := []*process.Process{build("A", 0, 5, 0, 0)}
	if _, _, err := Run(in, config.Config{Algorithm: config.MLQ{Queues: 0}}); err == nil {
		t.Fatal("Run() with queues=0 should fail")
	}
}

func TestRunDoesNotMutateCallersOriginalWhenCloned(t *testing.T) {
	original := []*process.Process{build("A", 0, 4, 0, 0)}
	owned := process.CloneAll(original)
	if _, _, err := Run(owned, config.Config{Algorithm: config.FCFS{}}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if original[0].Completed != process.Unset {
		t.Errorf("original process was mutated: Completed = %d, want Unset", original[0].Completed)
	}
}

// --- universal invariant checks, exercised across every algorithm ---

func TestUniversalInvariants(t *testing.T) {
	workload := func() []*process.Process {
		return []*process.Process{
			build("A", 0, 6, 2, 0),
			build("B", 1, 3, 1, 1),
			build("C", 2, 5, 0, 0),
			build("D", 4, 2, 3, 1),
		}
	}

	cfgs := map[string]config.Config{
		"FCFS":              {Algorithm: config.FCFS{}},
		"SJF":               {Algorithm: config.SJF{}},
		"SRTF":              {Algorithm: config.SRTF{}},
		"PriorityPreempt":   {Algorithm: config.Priority{Preemptive: true}},
		"PriorityNonPreept": {Algorithm: config.Priority{Preemptive: false}},
		"RR":                {Algorithm: config.RR{Quantum: 3}},
		"MLQ":               {Algorithm: config.MLQ{Queues: 2}},
		"MLFQ":              {Algorithm: config.MLFQ{Levels: 3, Quanta: []int{2, 4, 8}}},
		"FCFS+CS":           {Algorithm: config.FCFS{}, ContextSwitch: 1},
		"RR+CS":             {Algorithm: config.RR{Quantum: 3}, ContextSwitch: 1},
	}

	for name, cfg := range cfgs {
		t.Run(name, func(t *testing.T) {
			in := workload()
			tl, ran, err := Run(in, cfg)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			checkConservation(t, tl, ran)
			checkOrdering(t, tl, ran)
			checkNonOverlap(t, tl)
			checkCompletionConsistency(t, tl, ran)

			// Determinism: an independent run over an independently
			// cloned copy of the same workload produces byte-identical
			// output.
			tl2, _, err := Run(workload(), cfg)
			if err != nil {
				t.Fatalf("second Run() error = %v", err)
			}
			if diff := cmp.Diff(tl, tl2); diff != "" {
				t.Errorf("non-deterministic timeline (-first +second):\n%s", diff)
			}
		})
	}
}

func checkConservation(t *testing.T, tl timeline.Timeline, ran []*process.Process) {
	t.Helper()
	sums := map[string]int{}
	for _, s := range tl {
		if s.PID == timeline.IDLE || s.PID == timeline.CS {
			continue
		}
		sums[s.PID] += s.End - s.Start
	}
	for _, p := range ran {
		if sums[p.PID] != p.CPUBurst {
			t.Errorf("process %s: timeline duration %d != CPUBurst %d", p.PID, sums[p.PID], p.CPUBurst)
		}
	}
}

func checkOrdering(t *testing.T, tl timeline.Timeline, ran []*process.Process) {
	t.Helper()
	arrivalByPID := map[string]int{}
	for _, p := range ran {
		arrivalByPID[p.PID] = p.Arrival
	}
	for i := 1; i < len(tl); i++ {
		if tl[i].Start < tl[i-1].Start {
			t.Errorf("segment %d starts before segment %d: %v then %v", i, i-1, tl[i-1], tl[i])
		}
	}
	for _, s := range tl {
		if s.PID == timeline.IDLE || s.PID == timeline.CS {
			continue
		}
		if arr, ok := arrivalByPID[s.PID]; ok && s.Start < arr {
			t.Errorf("segment %v starts before %s's arrival %d", s, s.PID, arr)
		}
	}
}

func checkNonOverlap(t *testing.T, tl timeline.Timeline) {
	t.Helper()
	for i := 1; i < len(tl); i++ {
		if tl[i].Start < tl[i-1].End {
			t.Errorf("segment %v overlaps preceding segment %v", tl[i], tl[i-1])
		}
	}
}

func checkCompletionConsistency(t *testing.T, tl timeline.Timeline, ran []*process.Process) {
	t.Helper()
	lastEndByPID := map[string]int{}
	for _, s := range tl {
		if s.PID == timeline.IDLE || s.PID == timeline.CS {
			continue
		}
		lastEndByPID[s.PID] = s.End
	}
	for _, p := range ran {
		if p.Completed != lastEndByPID[p.PID] {
			t.Errorf("process %s: Completed=%d, want %d (last segment end)", p.PID, p.Completed, lastEndByPID[p.PID])
		}
	}
}

func checkProcessOrderPreserved(t *testing.T, ran []*process.Process, want []string) {
	t.Helper()
	if len(ran) != len(want) {
		t.Fatalf("got %d processes, want %d", len(ran), len(want))
	}
	for i, p := range ran {
		if p.PID != want[i] {
			t.Errorf("process %d = %q, want %q", i, p.PID, want[i])
		}
	}
}

func indexByPID(procs []*process.Process) map[string]*process.Process {
	m := make(map[string]*process.Process, len(procs))
	for _, p := range procs {
		m[p.PID] = p
	}
	return m
}
