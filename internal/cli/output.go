package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusim/internal/responses"
)

func outputResponse(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response.Algorithm)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2+8))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", 4), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2+8))
}

// outputGantt prints the segment sequence with boundary times underneath.
func outputGantt(w io.Writer, timeline []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		_, _ = fmt.Fprintf(w, " %s |", segmentLabel(s))
	}
	_, _ = fmt.Fprintln(w)
	for _, s := range timeline {
		_, _ = fmt.Fprint(w, s.StartTime, "\t")
	}
	if len(timeline) > 0 {
		_, _ = fmt.Fprint(w, timeline[len(timeline)-1].EndTime)
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func segmentLabel(s responses.SegmentResponse) string {
	switch s.Kind {
	case "idle":
		return "idle"
	case "switch":
		return "cs"
	default:
		return fmt.Sprintf("P%d", s.ProcessID)
	}
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Completion"})
	for _, p := range response.Details {
		table.Append([]string{
			fmt.Sprint(p.ProcessID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  (busy %d, idle %d, switch %d, total %d)\n\n",
		response.CpuUtilization*100, response.BusyTime, response.IdleTime,
		response.SwitchTime, response.TotalTime)
}
