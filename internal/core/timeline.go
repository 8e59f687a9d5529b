package core

// SegmentKind says what the CPU was doing during a segment.
type SegmentKind int

const (
	SegmentProcess SegmentKind = iota
	SegmentIdle
	SegmentSwitch
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentProcess:
		return "process"
	case SegmentIdle:
		return "idle"
	case SegmentSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Segment is one half-open interval [Start, End) of the Gantt timeline.
// ProcessID is only meaningful for SegmentProcess.
type Segment struct {
	Kind      SegmentKind
	ProcessID int
	Start     int
	End       int
}

// Timeline is the ordered, contiguous sequence of segments covering
// [0, makespan).
type Timeline []Segment

// Makespan returns the end of the last segment, or 0 for an empty timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// BusyTime is the total duration attributed to process execution.
func (t Timeline) BusyTime() int {
	var busy int
	for _, s := range t {
		if s.Kind == SegmentProcess {
			busy += s.End - s.Start
		}
	}
	return busy
}

// IdleTime is the total duration of idle segments.
func (t Timeline) IdleTime() int {
	return t.kindTime(SegmentIdle)
}

// SwitchTime is the total duration charged to context switches.
func (t Timeline) SwitchTime() int {
	return t.kindTime(SegmentSwitch)
}

func (t Timeline) kindTime(kind SegmentKind) int {
	var total int
	for _, s := range t {
		if s.Kind == kind {
			total += s.End - s.Start
		}
	}
	return total
}

// add appends [start, end), merging with the previous segment when it is
// contiguous and attributes time to the same thing. Zero-length segments
// are dropped.
func (t *Timeline) add(kind SegmentKind, pid, start, end int) {
	if end <= start {
		return
	}
	n := len(*t)
	if n > 0 {
		last := &(*t)[n-1]
		if last.Kind == kind && last.ProcessID == pid && last.End == start {
			last.End = end
			return
		}
	}
	*t = append(*t, Segment{Kind: kind, ProcessID: pid, Start: start, End: end})
}
