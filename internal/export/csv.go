// Package export serializes a finished simulation to a CSV report: a
// summary block, the per-process metrics table, and the execution
// timeline.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"cpusim/internal/responses"
)

// WriteReport writes the full report for one run.
func WriteReport(w io.Writer, response responses.ScheduleResponse) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"CPU Scheduling Simulation Report"},
		{"Algorithm", response.Algorithm},
		{"Average Turnaround Time", fmt.Sprintf("%.2f", response.AverageTurnAroundTime)},
		{"Average Waiting Time", fmt.Sprintf("%.2f", response.AverageWaitingTime)},
		{"CPU Utilization", fmt.Sprintf("%.2f%%", response.CpuUtilization*100)},
		{"Total Completion Time", fmt.Sprint(response.TotalTime)},
		{},
		{"--- Process Metrics ---"},
		{"process_id", "name", "arrival_time", "burst_time", "priority",
			"completion_time", "turn_around_time", "waiting_time"},
	}
	for _, p := range response.Details {
		records = append(records, []string{
			fmt.Sprint(p.ProcessID), p.Name,
			fmt.Sprint(p.ArrivalTime), fmt.Sprint(p.BurstTime), fmt.Sprint(p.Priority),
			fmt.Sprint(p.CompletionTime), fmt.Sprint(p.TurnAroundTime), fmt.Sprint(p.WaitingTime),
		})
	}

	records = append(records, []string{}, []string{"--- Execution Timeline ---"},
		[]string{"kind", "process_id", "start_time", "end_time"})
	for _, s := range response.Timeline {
		pid := ""
		if s.Kind == "process" {
			pid = fmt.Sprint(s.ProcessID)
		}
		records = append(records, []string{s.Kind, pid, fmt.Sprint(s.StartTime), fmt.Sprint(s.EndTime)})
	}

	for _, record := range records {
		if len(record) == 0 {
			record = []string{""}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write report record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
