package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// roundRobin dispatches from a FIFO ready queue with a fixed quantum.
// The engine owns the queue; Select only exists to satisfy core.Policy
// and mirrors the queue's admission order.
type roundRobin struct {
	quantum int
}

func (roundRobin) Name() string     { return "rr" }
func (roundRobin) Preemptive() bool { return true }
func (r roundRobin) Quantum() int   { return r.quantum }

func (roundRobin) Select(now int, ready []*core.Process) *core.Process {
	return selectMin(ready, func(a, b *core.Process) bool {
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.ID < b.ID
	})
}

func ScheduleRoundRobin(request *requests.ScheduleRequest, cfg core.Config) (responses.ScheduleResponse, error) {
	return Schedule(RoundRobin, request, cfg)
}
