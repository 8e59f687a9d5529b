package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// shortestJobFirst picks the ready process with the smallest original
// burst time and runs it to completion. Ties go to the lower id, then the
// earlier arrival.
type shortestJobFirst struct{}

func (shortestJobFirst) Name() string     { return "sjf" }
func (shortestJobFirst) Preemptive() bool { return false }

func (shortestJobFirst) Select(now int, ready []*core.Process) *core.Process {
	return selectMin(ready, func(a, b *core.Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.ArrivalTime < b.ArrivalTime
	})
}

func ScheduleShortestJobFirst(request *requests.ScheduleRequest, cfg core.Config) (responses.ScheduleResponse, error) {
	return Schedule(ShortestJobFirst, request, cfg)
}
