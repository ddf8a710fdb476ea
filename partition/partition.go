// Package partition provides a round-robin fan-out of a workload across N
// independent process slices. Split performs no scheduling itself:
// splitting a workload for simulated multi-core use is an external-caller
// concern (see SPEC_FULL.md §4.14), not part of the engine's semantics.
// RunConcurrent drives one independent engine.Run per slice.
package partition

import "github.com/ayushbarthwal/virtualscheduler/process"

// Split round-robin-assigns processes by index into cores independent
// slices, preserving each process's relative order within its slice. The
// caller is responsible for running each slice through its own independent
// engine.Run and for merging results, if desired.
func Split(processes []*process.Process, cores int) [][]*process.Process {
	out := make([][]*process.Process, cores)
	for i, p := range processes {
		c := i % cores
		out[c] = append(out[c], p)
	}
	return out
}
