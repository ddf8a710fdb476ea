// Binary vschedsim runs a single invocation of the scheduling engine over a
// workload file and writes the resulting timeline and metrics to a result
// file.
package main

import (
	"fmt"
	"os"
	"strings"

	"flag"

	log "github.com/golang/glog"

	"github.com/ayushbarthwal/virtualscheduler/config"
	"github.com/ayushbarthwal/virtualscheduler/engine"
	"github.com/ayushbarthwal/virtualscheduler/metrics"
	"github.com/ayushbarthwal/virtualscheduler/result"
	"github.com/ayushbarthwal/virtualscheduler/simerrors"
	"github.com/ayushbarthwal/virtualscheduler/workload"
)

var (
	input         = flag.String("input", "", "Required. Path to the workload file (.csv or .json).")
	algName       = flag.String("alg", "", "Required. One of FCFS, SJF, SRTF, RR, PRIORITY, MLQ, MLFQ.")
	quantum       = flag.Int("quantum", 4, "Quantum for RR, and for MLFQ level 0.")
	contextSwitch = flag.Int("context-switch", 0, "Context-switch cost charged on a process transition.")
	queues        = flag.Int("queues", 3, "Number of MLQ priority bands.")
	preemptive    = flag.Bool("preemptive", false, "PRIORITY only: run the preemptive variant.")
	out           = flag.String("out", "", "Path to write the result file. Defaults to {alg_lowercase}_output.json.")
)

func main() {
	flag.Parse()

	if *input == "" {
		log.Exit("--input is required.")
	}
	if *algName == "" {
		log.Exit("--alg is required.")
	}

	cfg, err := buildConfig()
	if err != nil {
		exitWith(err)
	}

	procs, err := workload.Load(*input)
	if err != nil {
		exitWith(err)
	}
	log.V(1).Infof("loaded %d processes from %s", len(procs), *input)

	tl, ran, err := engine.Run(procs, cfg)
	if err != nil {
		exitWith(err)
	}

	m := metrics.Compute(ran)
	r := result.New(tl, m)

	outPath := *out
	if outPath == "" {
		outPath = strings.ToLower(*algName) + "_output.json"
	}
	if err := r.WriteFile(outPath); err != nil {
		exitWith(err)
	}
	log.V(1).Infof("wrote result to %s", outPath)
}

// buildConfig maps the flag surface to a config.Config. It rejects an
// unknown algorithm name; the per-algorithm values (quantum, queues) are
// checked by engine.Run, not here.
func buildConfig() (config.Config, error) {
	var alg config.Algorithm
	switch strings.ToUpper(*algName) {
	case "FCFS":
		alg = config.FCFS{}
	case "SJF":
		alg = config.SJF{}
	case "SRTF":
		alg = config.SRTF{}
	case "PRIORITY":
		alg = config.Priority{Preemptive: *preemptive}
	case "RR":
		alg = config.RR{Quantum: *quantum}
	case "MLQ":
		alg = config.MLQ{Queues: *queues}
	case "MLFQ":
		alg = config.MLFQ{Levels: 3, Quanta: []int{*quantum, *quantum * 2, *quantum * 4}}
	default:
		return config.Config{}, simerrors.InvalidParameters("unknown algorithm %q", *algName)
	}
	return config.Config{Algorithm: alg, ContextSwitch: *contextSwitch}, nil
}

// exitWith prints a single-line diagnostic for err and exits with a
// non-zero status matching its error kind.
func exitWith(err error) {
	fmt.Fprintln(os.Stderr, simerrors.Diagnostic(err))
	code := 1
	switch {
	case simerrors.IsInvalidWorkload(err):
		code = 2
	case simerrors.IsInvalidParameters(err):
		code = 3
	case simerrors.IsIOError(err):
		code = 4
	}
	os.Exit(code)
}
