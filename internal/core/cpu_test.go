package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fcfsOrder is the minimal selecting policy: earliest arrival, ties by id.
type fcfsOrder struct{ preemptive bool }

func (fcfsOrder) Name() string       { return "fcfs" }
func (p fcfsOrder) Preemptive() bool { return p.preemptive }

func (fcfsOrder) Select(now int, ready []*Process) *Process {
	best := ready[0]
	for _, p := range ready[1:] {
		if p.ArrivalTime < best.ArrivalTime ||
			(p.ArrivalTime == best.ArrivalTime && p.ID < best.ID) {
			best = p
		}
	}
	return best
}

func TestRunEmptyInput(t *testing.T) {
	tl, err := Run(nil, fcfsOrder{}, Config{})
	require.NoError(t, err)
	assert.Empty(t, tl)
	assert.Equal(t, 0, tl.Makespan())
}

func TestRunSingleProcessNoSwitches(t *testing.T) {
	procs := []*Process{NewProcess(1, "", 0, 7, 0)}
	tl, err := Run(procs, fcfsOrder{}, Config{ContextSwitchOverhead: 3})
	require.NoError(t, err)

	require.Len(t, tl, 1)
	assert.Equal(t, Segment{Kind: SegmentProcess, ProcessID: 1, Start: 0, End: 7}, tl[0])
	assert.Equal(t, 7, procs[0].CompletionTime)
	assert.Equal(t, 0, tl.SwitchTime())
}

func TestRunIdleUntilFirstArrival(t *testing.T) {
	procs := []*Process{NewProcess(1, "", 4, 2, 0)}
	tl, err := Run(procs, fcfsOrder{}, Config{})
	require.NoError(t, err)

	require.Len(t, tl, 2)
	assert.Equal(t, SegmentIdle, tl[0].Kind)
	assert.Equal(t, 0, tl[0].Start)
	assert.Equal(t, 4, tl[0].End)
	assert.Equal(t, 6, procs[0].CompletionTime)
}

func TestRunSwitchOverheadChargedBetweenProcesses(t *testing.T) {
	procs := []*Process{
		NewProcess(1, "", 0, 2, 0),
		NewProcess(2, "", 0, 2, 0),
	}
	tl, err := Run(procs, fcfsOrder{}, Config{ContextSwitchOverhead: 1})
	require.NoError(t, err)

	want := Timeline{
		{Kind: SegmentProcess, ProcessID: 1, Start: 0, End: 2},
		{Kind: SegmentSwitch, Start: 2, End: 3},
		{Kind: SegmentProcess, ProcessID: 2, Start: 3, End: 5},
	}
	assert.Equal(t, want, tl)
	assert.Equal(t, 1, tl.SwitchTime())
	assert.Equal(t, 4, tl.BusyTime())
}

// An idle gap must neither charge overhead itself nor suppress the charge
// for the process change across it.
func TestRunSwitchOverheadAcrossIdleGap(t *testing.T) {
	procs := []*Process{
		NewProcess(1, "", 0, 2, 0),
		NewProcess(2, "", 5, 1, 0),
	}
	tl, err := Run(procs, fcfsOrder{}, Config{ContextSwitchOverhead: 1})
	require.NoError(t, err)

	want := Timeline{
		{Kind: SegmentProcess, ProcessID: 1, Start: 0, End: 2},
		{Kind: SegmentIdle, Start: 2, End: 5},
		{Kind: SegmentSwitch, Start: 5, End: 6},
		{Kind: SegmentProcess, ProcessID: 2, Start: 6, End: 7},
	}
	assert.Equal(t, want, tl)
}

func TestRunPreemptiveMergesContiguousSegments(t *testing.T) {
	// P2 arrives at t=1 but FCFS ordering keeps P1 running, so the two
	// event-bounded slices of P1 must appear as one segment.
	procs := []*Process{
		NewProcess(1, "", 0, 4, 0),
		NewProcess(2, "", 1, 1, 0),
	}
	tl, err := Run(procs, fcfsOrder{preemptive: true}, Config{})
	require.NoError(t, err)

	want := Timeline{
		{Kind: SegmentProcess, ProcessID: 1, Start: 0, End: 4},
		{Kind: SegmentProcess, ProcessID: 2, Start: 4, End: 5},
	}
	assert.Equal(t, want, tl)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate(false))
	assert.NoError(t, Config{TimeQuantum: 1}.Validate(true))

	err := Config{ContextSwitchOverhead: -1}.Validate(false)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	err = Config{TimeQuantum: 0}.Validate(true)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateProcesses(t *testing.T) {
	tests := []struct {
		name  string
		procs []*Process
	}{
		{"zero burst", []*Process{NewProcess(1, "", 0, 0, 0)}},
		{"negative arrival", []*Process{NewProcess(1, "", -1, 3, 0)}},
		{"duplicate id", []*Process{NewProcess(1, "", 0, 3, 0), NewProcess(1, "", 1, 2, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateProcesses(tt.procs), ErrInvalidProcess)
		})
	}
	assert.NoError(t, ValidateProcesses(nil))
}

func TestTimelineAddMergesAndDropsEmpty(t *testing.T) {
	var tl Timeline
	tl.add(SegmentProcess, 1, 0, 2)
	tl.add(SegmentProcess, 1, 2, 4) // merges
	tl.add(SegmentProcess, 2, 4, 4) // zero length, dropped
	tl.add(SegmentProcess, 2, 4, 5)

	require.Len(t, tl, 2)
	assert.Equal(t, Segment{Kind: SegmentProcess, ProcessID: 1, Start: 0, End: 4}, tl[0])
	assert.Equal(t, 5, tl.Makespan())
	assert.Equal(t, 5, tl.BusyTime())
}
