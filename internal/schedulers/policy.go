package schedulers

import (
	"fmt"
	"strings"

	"cpusim/internal/core"
)

// Algorithm enumerates the supported scheduling policies.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	ShortestRemainingTime
	PriorityNonPreemptive
	PriorityPreemptive
	RoundRobin
)

// Algorithms returns every supported algorithm, in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTime,
		PriorityNonPreemptive,
		PriorityPreemptive,
		RoundRobin,
	}
}

func (a Algorithm) String() string {
	switch a {
	case FirstComeFirstServe:
		return "fcfs"
	case ShortestJobFirst:
		return "sjf"
	case ShortestRemainingTime:
		return "srtf"
	case PriorityNonPreemptive:
		return "priority"
	case PriorityPreemptive:
		return "priority-preemptive"
	case RoundRobin:
		return "rr"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps an algorithm identifier to its Algorithm value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest-job-first":
		return ShortestJobFirst, nil
	case "srtf", "shortest-remaining-time":
		return ShortestRemainingTime, nil
	case "priority":
		return PriorityNonPreemptive, nil
	case "priority-preemptive":
		return PriorityPreemptive, nil
	case "rr", "round-robin":
		return RoundRobin, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidConfig, s)
	}
}

// policy returns the core.Policy implementing this algorithm.
func (a Algorithm) policy(cfg core.Config) core.Policy {
	switch a {
	case FirstComeFirstServe:
		return firstComeFirstServe{}
	case ShortestJobFirst:
		return shortestJobFirst{}
	case ShortestRemainingTime:
		return shortestRemainingTime{}
	case PriorityNonPreemptive:
		return priorityPolicy{preemptive: false}
	case PriorityPreemptive:
		return priorityPolicy{preemptive: true}
	case RoundRobin:
		return roundRobin{quantum: cfg.TimeQuantum}
	default:
		return firstComeFirstServe{}
	}
}

// selectMin returns the process ranking lowest under less. less must be a
// strict total order over any ready set so that selection is reproducible.
func selectMin(ready []*core.Process, less func(a, b *core.Process) bool) *core.Process {
	best := ready[0]
	for _, p := range ready[1:] {
		if less(p, best) {
			best = p
		}
	}
	return best
}
