package schedulers

import (
	"cpusim/internal/core"
	"cpusim/internal/responses"
	"cpusim/internal/util"
)

// generateResponse derives the per-process and aggregate metrics from the
// finished run. With no processes (makespan 0) every rate is reported as
// 0 rather than NaN.
func generateResponse(alg Algorithm, procs []*core.Process, timeline core.Timeline) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(procs))
	for _, p := range procs {
		details = append(details, generateProcessDetails(p))
	}
	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(details)

	makespan := timeline.Makespan()
	busy := timeline.BusyTime()
	var utilization, throughput float64
	if makespan > 0 {
		utilization = float64(busy) / float64(makespan)
		throughput = float64(len(procs)) / float64(makespan)
	}

	return responses.ScheduleResponse{
		Algorithm:             alg.String(),
		TotalTime:             makespan,
		BusyTime:              busy,
		IdleTime:              timeline.IdleTime(),
		SwitchTime:            timeline.SwitchTime(),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Timeline:              generateTimeline(timeline),
		Details:               details,
	}
}

func generateProcessDetails(p *core.Process) responses.ProcessResponse {
	turnAround := p.CompletionTime - p.ArrivalTime
	return responses.ProcessResponse{
		ProcessID:      p.ID,
		Name:           p.Name,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		CompletionTime: p.CompletionTime,
		TurnAroundTime: turnAround,
		WaitingTime:    turnAround - p.BurstTime,
	}
}

func generateTimeline(timeline core.Timeline) []responses.SegmentResponse {
	segments := make([]responses.SegmentResponse, 0, len(timeline))
	for _, s := range timeline {
		segments = append(segments, responses.SegmentResponse{
			Kind:      s.Kind.String(),
			ProcessID: s.ProcessID,
			StartTime: s.Start,
			EndTime:   s.End,
		})
	}
	return segments
}
