package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"cpusim/internal/requests"
)

// loadProcesses parses a process CSV. Columns: id, arrival, burst and an
// optional priority (default 0). A non-numeric first row is treated as a
// header and skipped.
func loadProcesses(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: need at least id, arrival, burst", i+1)
		}
		if i == 0 {
			if _, err := strconv.Atoi(row[0]); err != nil {
				continue // header row
			}
		}
		job, err := parseJob(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseJob(row []string) (requests.Job, error) {
	var job requests.Job
	var err error
	if job.ProcessID, err = strconv.Atoi(row[0]); err != nil {
		return job, fmt.Errorf("parse id %q: %w", row[0], err)
	}
	if job.ArrivalTime, err = strconv.Atoi(row[1]); err != nil {
		return job, fmt.Errorf("parse arrival %q: %w", row[1], err)
	}
	if job.BurstTime, err = strconv.Atoi(row[2]); err != nil {
		return job, fmt.Errorf("parse burst %q: %w", row[2], err)
	}
	if len(row) > 3 {
		if job.Priority, err = strconv.Atoi(row[3]); err != nil {
			return job, fmt.Errorf("parse priority %q: %w", row[3], err)
		}
	}
	return job, nil
}
