// Package result defines the stable, two-key output shape a run emits and
// writes it to disk.
package result

import (
	"encoding/json"
	"os"

	"github.com/ayushbarthwal/virtualscheduler/metrics"
	"github.com/ayushbarthwal/virtualscheduler/simerrors"
	"github.com/ayushbarthwal/virtualscheduler/timeline"
)

// Result is the full record of a run: its timeline and its metrics.
type Result struct {
	Timeline timeline.Timeline `json:"timeline"`
	Metrics  metrics.Result    `json:"metrics"`
}

// New assembles a Result from a completed run's timeline and metrics.
func New(tl timeline.Timeline, m metrics.Result) Result {
	return Result{Timeline: tl, Metrics: m}
}

// WriteFile serializes the result to path as indented JSON.
func (r Result) WriteFile(path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return simerrors.IOError(err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return simerrors.IOError(err)
	}
	return nil
}
