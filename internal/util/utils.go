package util

import "cpusim/internal/responses"

// CalculateAverage returns the arithmetic means of waiting time and
// turnaround time over the finished processes. Both are 0 when details is
// empty.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return 0, 0
	}

	var waitingTimeSum float64
	var turnAroundTimeSum float64
	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		turnAroundTimeSum += float64(process.TurnAroundTime)
	}

	processCount := float64(len(processDetails))
	averageWaitingTime = waitingTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
