package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/requests"
	"cpusim/internal/responses"
)

// priorityPolicy schedules by ascending priority value (lower value =
// higher priority), ties to the lower id. The preemptive variant re-runs
// selection on each arrival and completion.
type priorityPolicy struct {
	preemptive bool
}

func (p priorityPolicy) Name() string {
	if p.preemptive {
		return "priority-preemptive"
	}
	return "priority"
}

func (p priorityPolicy) Preemptive() bool { return p.preemptive }

func (priorityPolicy) Select(now int, ready []*core.Process) *core.Process {
	return selectMin(ready, func(a, b *core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ID < b.ID
	})
}

func SchedulePriority(request *requests.ScheduleRequest, cfg core.Config) (responses.ScheduleResponse, error) {
	return Schedule(PriorityNonPreemptive, request, cfg)
}

func SchedulePriorityPreemptive(request *requests.ScheduleRequest, cfg core.Config) (responses.ScheduleResponse, error) {
	return Schedule(PriorityPreemptive, request, cfg)
}
