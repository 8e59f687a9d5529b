package responses

// SegmentResponse is one Gantt segment. Kind is "process", "idle" or
// "switch"; ProcessID is only set for process segments.
type SegmentResponse struct {
	Kind      string `json:"kind"`
	ProcessID int    `json:"process_id,omitempty"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
}

type ProcessResponse struct {
	ProcessID      int    `json:"process_id"`
	Name           string `json:"name,omitempty"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	BusyTime              int               `json:"busy_time"`
	IdleTime              int               `json:"idle_time"`
	SwitchTime            int               `json:"switch_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Timeline              []SegmentResponse `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}
