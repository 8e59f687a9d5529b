package core

import "sort"

// Policy decides, at each decision point, which ready process runs next.
// Implementations must be deterministic: identical inputs always produce
// the identical choice.
type Policy interface {
	Name() string
	Preemptive() bool
	// Select picks one process from ready. ready is never empty and every
	// entry has arrived (ArrivalTime <= now) with RemainingTime > 0.
	Select(now int, ready []*Process) *Process
}

// FIFOPolicy is implemented by policies that dispatch from a FIFO queue
// with a fixed time quantum (round robin) instead of re-ranking the
// ready set at every decision point.
type FIFOPolicy interface {
	Policy
	Quantum() int
}

// Run simulates a single CPU over procs under the given policy and
// returns the resulting timeline. It mutates RemainingTime and
// CompletionTime on the given processes; callers pass fresh copies.
//
// Context-switch overhead is charged only when the dispatched process
// differs from the last process that executed. Idle gaps neither charge
// overhead nor reset that memory, and nothing is charged before the very
// first process segment.
func Run(procs []*Process, pol Policy, cfg Config) (Timeline, error) {
	fp, needQuantum := pol.(FIFOPolicy)
	if err := cfg.Validate(needQuantum); err != nil {
		return nil, err
	}
	if err := ValidateProcesses(procs); err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		return Timeline{}, nil
	}
	if needQuantum {
		return runFIFO(procs, fp.Quantum(), cfg), nil
	}
	return runSelecting(procs, pol, cfg), nil
}

// runSelecting drives the non-preemptive and event-driven preemptive
// policies. Preemptive policies re-run selection at every arrival and
// completion boundary; non-preemptive policies commit to the chosen
// process until it completes.
func runSelecting(procs []*Process, pol Policy, cfg Config) Timeline {
	var (
		tl        Timeline
		now       int
		last      *Process
		remaining = len(procs)
	)

	for remaining > 0 {
		ready := readyAt(procs, now)
		if len(ready) == 0 {
			arrival := nextArrival(procs, now)
			tl.add(SegmentIdle, 0, now, arrival)
			now = arrival
			continue
		}

		cur := pol.Select(now, ready)
		if last != nil && last != cur && cfg.ContextSwitchOverhead > 0 {
			tl.add(SegmentSwitch, 0, now, now+cfg.ContextSwitchOverhead)
			now += cfg.ContextSwitchOverhead
		}

		run := cur.RemainingTime
		if pol.Preemptive() {
			// Run only until the next arrival, then reconsider.
			if next := nextArrival(procs, now); next > now && next-now < run {
				run = next - now
			}
		}

		tl.add(SegmentProcess, cur.ID, now, now+run)
		cur.RemainingTime -= run
		now += run
		if cur.RemainingTime == 0 {
			cur.CompletionTime = now
			remaining--
		}
		last = cur
	}
	return tl
}

// runFIFO drives round robin. Arrivals enqueue in arrival-time order
// (ties by id); a process preempted at quantum expiry re-enqueues at the
// tail after every process that arrived up to and including that instant.
func runFIFO(procs []*Process, quantum int, cfg Config) Timeline {
	order := make([]*Process, len(procs))
	copy(order, procs)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].ArrivalTime != order[j].ArrivalTime {
			return order[i].ArrivalTime < order[j].ArrivalTime
		}
		return order[i].ID < order[j].ID
	})

	var (
		tl        Timeline
		queue     []*Process
		now       int
		next      int // index of the next unadmitted arrival in order
		last      *Process
		remaining = len(procs)
	)
	admit := func(t int) {
		for next < len(order) && order[next].ArrivalTime <= t {
			queue = append(queue, order[next])
			next++
		}
	}
	admit(now)

	for remaining > 0 {
		if len(queue) == 0 {
			arrival := order[next].ArrivalTime
			tl.add(SegmentIdle, 0, now, arrival)
			now = arrival
			admit(now)
			continue
		}

		cur := queue[0]
		queue = queue[1:]
		if last != nil && last != cur && cfg.ContextSwitchOverhead > 0 {
			tl.add(SegmentSwitch, 0, now, now+cfg.ContextSwitchOverhead)
			now += cfg.ContextSwitchOverhead
		}

		run := quantum
		if cur.RemainingTime < run {
			run = cur.RemainingTime
		}
		tl.add(SegmentProcess, cur.ID, now, now+run)
		cur.RemainingTime -= run
		now += run

		admit(now) // arrivals during the slice go in before the preempted process
		if cur.RemainingTime == 0 {
			cur.CompletionTime = now
			remaining--
		} else {
			queue = append(queue, cur)
		}
		last = cur
	}
	return tl
}

// readyAt returns the arrived, unfinished processes in input order.
func readyAt(procs []*Process, now int) []*Process {
	var ready []*Process
	for _, p := range procs {
		if p.ArrivalTime <= now && p.RemainingTime > 0 {
			ready = append(ready, p)
		}
	}
	return ready
}

// nextArrival returns the earliest arrival time strictly after now among
// unfinished processes, or now when there is none.
func nextArrival(procs []*Process, now int) int {
	next := now
	for _, p := range procs {
		if p.RemainingTime > 0 && p.ArrivalTime > now {
			if next == now || p.ArrivalTime < next {
				next = p.ArrivalTime
			}
		}
	}
	return next
}
