package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("run not found")

// Run is one persisted simulation run: the configuration it ran under,
// its headline metrics, and the full response as JSON.
type Run struct {
	ID                    string    `json:"id"`
	Algorithm             string    `json:"algorithm"`
	ProcessCount          int       `json:"process_count"`
	ContextSwitchOverhead int       `json:"context_switch_overhead"`
	TimeQuantum           int       `json:"time_quantum"`
	TotalTime             int       `json:"total_time"`
	CpuUtilization        float64   `json:"cpu_utilization"`
	AverageWaitingTime    float64   `json:"average_waiting_time"`
	AverageTurnAroundTime float64   `json:"average_turn_around_time"`
	Response              string    `json:"response,omitempty"` // full ScheduleResponse JSON
	CreatedAt             time.Time `json:"created_at"`
}

// Store persists simulation runs.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}
