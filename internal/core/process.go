package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a rejected simulation configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidProcess reports a rejected process descriptor.
	ErrInvalidProcess = errors.New("invalid process")
)

// Process is one schedulable process. ID, ArrivalTime, BurstTime and
// Priority describe the input and never change; RemainingTime and
// CompletionTime are owned and mutated by the engine during a run.
type Process struct {
	ID          int
	Name        string
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value = higher priority

	RemainingTime  int
	CompletionTime int // valid once RemainingTime reaches 0
}

// NewProcess returns a fresh Process with RemainingTime initialized to
// the burst time. The engine only ever works on copies produced here, so
// repeated runs over the same input are independent.
func NewProcess(id int, name string, arrival, burst, priority int) *Process {
	return &Process{
		ID:            id,
		Name:          name,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		Priority:      priority,
		RemainingTime: burst,
	}
}

// Config carries the knobs the engine needs for one run.
type Config struct {
	ContextSwitchOverhead int
	TimeQuantum           int // round robin only
}

// Validate checks the configuration. The quantum is only required when
// needQuantum is set (round robin); other policies ignore it.
func (c Config) Validate(needQuantum bool) error {
	if c.ContextSwitchOverhead < 0 {
		return fmt.Errorf("%w: context switch overhead must be >= 0, got %d",
			ErrInvalidConfig, c.ContextSwitchOverhead)
	}
	if needQuantum && c.TimeQuantum < 1 {
		return fmt.Errorf("%w: round robin time quantum must be >= 1, got %d",
			ErrInvalidConfig, c.TimeQuantum)
	}
	return nil
}

// ValidateProcesses rejects the whole input if any descriptor is invalid:
// non-positive burst, negative arrival, or a duplicate id. An empty list
// is valid and yields an empty run.
func ValidateProcesses(procs []*Process) error {
	seen := make(map[int]bool, len(procs))
	for _, p := range procs {
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: process %d has non-positive burst time %d",
				ErrInvalidProcess, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has negative arrival time %d",
				ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
