package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// firstComeFirstServe runs processes to completion in arrival order,
// breaking ties by lower id.
type firstComeFirstServe struct{}

func (firstComeFirstServe) Name() string     { return "fcfs" }
func (firstComeFirstServe) Preemptive() bool { return false }

func (firstComeFirstServe) Select(now int, ready []*core.Process) *core.Process {
	return selectMin(ready, func(a, b *core.Process) bool {
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.ID < b.ID
	})
}

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequest, cfg core.Config) (responses.ScheduleResponse, error) {
	return Schedule(FirstComeFirstServe, request, cfg)
}
