package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// shortestRemainingTime is the preemptive variant of SJF: selection is
// re-run at every arrival and completion boundary against the remaining
// time, ties to the lower id.
type shortestRemainingTime struct{}

func (shortestRemainingTime) Name() string     { return "srtf" }
func (shortestRemainingTime) Preemptive() bool { return true }

func (shortestRemainingTime) Select(now int, ready []*core.Process) *core.Process {
	return selectMin(ready, func(a, b *core.Process) bool {
		if a.RemainingTime != b.RemainingTime {
			return a.RemainingTime < b.RemainingTime
		}
		return a.ID < b.ID
	})
}

func ScheduleShortestRemainingTime(request *requests.ScheduleRequest, cfg core.Config) (responses.ScheduleResponse, error) {
	return Schedule(ShortestRemainingTime, request, cfg)
}
