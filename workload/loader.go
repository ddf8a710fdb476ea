// Package workload parses a tabular workload description (CSV or JSON)
// into a validated list of processes.
package workload

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/ayushbarthwal/virtualscheduler/process"
	"github.com/ayushbarthwal/virtualscheduler/simerrors"
)

// columnSet names the recognized header columns, matched case-sensitively
// first and then against their lowercase form.
var columnSet = []string{"PID", "ArrivalTime", "BurstTime", "Priority", "QueueLevel"}

// Load dispatches to the CSV or JSON reader by the file's extension.
func Load(path string) ([]*process.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, simerrors.IOError(err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(f)
	case ".csv":
		return LoadCSV(f)
	default:
		return nil, simerrors.InvalidWorkload("unrecognized workload file extension %q", filepath.Ext(path))
	}
}

// LoadCSV parses a header-plus-rows tabular workload.
func LoadCSV(r io.Reader) ([]*process.Process, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, simerrors.IOError(err)
	}
	if len(rows) == 0 {
		return nil, simerrors.InvalidWorkload("workload is empty, no header row")
	}
	header := rows[0]
	idx := resolveColumns(header)

	seen := make(map[string]bool, len(rows)-1)
	procs := make([]*process.Process, 0, len(rows)-1)
	for i, row := range rows[1:] {
		get := func(col string) string {
			j, ok := idx[col]
			if !ok || j >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[j])
		}
		p, err := buildProcess(i, get)
		if err != nil {
			return nil, err
		}
		if seen[p.PID] {
			return nil, simerrors.InvalidWorkload("duplicate PID %q at row %d", p.PID, i+1)
		}
		seen[p.PID] = true
		procs = append(procs, p)
	}
	return procs, nil
}

// resolveColumns matches the spec's recognized column names against a
// header row, case-sensitively first and then by lowercase fallback.
func resolveColumns(header []string) map[string]int {
	idx := make(map[string]int, len(columnSet))
	for _, col := range columnSet {
		for i, h := range header {
			if strings.TrimSpace(h) == col {
				idx[col] = i
				break
			}
		}
		if _, found := idx[col]; found {
			continue
		}
		for i, h := range header {
			if strings.ToLower(strings.TrimSpace(h)) == strings.ToLower(col) {
				idx[col] = i
				break
			}
		}
	}
	return idx
}

// buildProcess validates and constructs one process from a row accessor,
// applying the defaulting rules common to both CSV and JSON input.
func buildProcess(rowIndex int, get func(col string) string) (*process.Process, error) {
	pid := get("PID")
	if pid == "" {
		pid = fmt.Sprintf("P%d", rowIndex+1)
		log.V(2).Infof("row %d: PID missing, synthesized %q", rowIndex+1, pid)
	}

	arrival, err := parseIntDefault(get("ArrivalTime"), 0, pid, "ArrivalTime")
	if err != nil {
		return nil, err
	}

	burstStr := get("BurstTime")
	if burstStr == "" {
		return nil, simerrors.InvalidWorkload("row %d (PID %q): BurstTime is required", rowIndex+1, pid)
	}
	burst, err := strconv.Atoi(burstStr)
	if err != nil {
		return nil, simerrors.InvalidWorkload("row %d (PID %q): BurstTime %q is not an integer", rowIndex+1, pid, burstStr)
	}
	if burst <= 0 {
		return nil, simerrors.InvalidWorkload("row %d (PID %q): BurstTime must be positive, got %d", rowIndex+1, pid, burst)
	}

	priority, err := parseIntDefault(get("Priority"), 0, pid, "Priority")
	if err != nil {
		return nil, err
	}
	queueLevel, err := parseIntDefault(get("QueueLevel"), 0, pid, "QueueLevel")
	if err != nil {
		return nil, err
	}

	return process.New(pid, arrival, burst, priority, queueLevel), nil
}

func parseIntDefault(raw string, def int, pid, col string) (int, error) {
	if raw == "" {
		log.V(2).Infof("PID %q: %s missing, defaulting to %d", pid, col, def)
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, simerrors.InvalidWorkload("PID %q: %s %q is not an integer", pid, col, raw)
	}
	return v, nil
}

// jsonRow is the alternate array-of-objects form from spec §6: an array of
// objects with keys pid|arrival|burst|priority|queue_level.
type jsonRow struct {
	PID        *string `json:"pid"`
	Arrival    *int    `json:"arrival"`
	Burst      *int    `json:"burst"`
	Priority   *int    `json:"priority"`
	QueueLevel *int    `json:"queue_level"`
}

// LoadJSON parses the alternate JSON array-of-objects workload form.
func LoadJSON(r io.Reader) ([]*process.Process, error) {
	var rows []jsonRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, simerrors.InvalidWorkload("malformed JSON workload: %v", err)
	}

	seen := make(map[string]bool, len(rows))
	procs := make([]*process.Process, 0, len(rows))
	for i, row := range rows {
		get := func(col string) string {
			switch col {
			case "PID":
				if row.PID != nil {
					return *row.PID
				}
			case "ArrivalTime":
				if row.Arrival != nil {
					return strconv.Itoa(*row.Arrival)
				}
			case "BurstTime":
				if row.Burst != nil {
					return strconv.Itoa(*row.Burst)
				}
			case "Priority":
				if row.Priority != nil {
					return strconv.Itoa(*row.Priority)
				}
			case "QueueLevel":
				if row.QueueLevel != nil {
					return strconv.Itoa(*row.QueueLevel)
				}
			}
			return ""
		}
		p, err := buildProcess(i, get)
		if err != nil {
			return nil, err
		}
		if seen[p.PID] {
			return nil, simerrors.InvalidWorkload("duplicate PID %q at row %d", p.PID, i+1)
		}
		seen[p.PID] = true
		procs = append(procs, p)
	}
	return procs, nil
}
