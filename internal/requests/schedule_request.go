package requests

import "cpusim/internal/core"

// Job is one process descriptor as supplied by a client (synthetic input,
// CSV row, or the live-process loader).
type Job struct {
	ProcessID   int    `json:"process_id"`
	Name        string `json:"name,omitempty"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

// ScheduleRequest is the engine input. ContextSwitchOverhead and
// TimeQuantum override the server defaults when set.
type ScheduleRequest struct {
	Jobs                  []Job `json:"jobs"`
	ContextSwitchOverhead *int  `json:"context_switch_overhead,omitempty"`
	TimeQuantum           *int  `json:"time_quantum,omitempty"`
}

// Config resolves the simulation configuration for this request, falling
// back to defaults for any field the request leaves unset.
func (r *ScheduleRequest) Config(defaults core.Config) core.Config {
	cfg := defaults
	if r.ContextSwitchOverhead != nil {
		cfg.ContextSwitchOverhead = *r.ContextSwitchOverhead
	}
	if r.TimeQuantum != nil {
		cfg.TimeQuantum = *r.TimeQuantum
	}
	return cfg
}

// Processes builds fresh engine-owned process records from the jobs. The
// engine never touches the request itself.
func (r *ScheduleRequest) Processes() []*core.Process {
	procs := make([]*core.Process, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		procs = append(procs, core.NewProcess(j.ProcessID, j.Name, j.ArrivalTime, j.BurstTime, j.Priority))
	}
	return procs
}
