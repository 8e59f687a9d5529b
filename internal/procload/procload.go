// Package procload samples running OS processes and turns them into
// synthetic scheduling input: burst time estimated from the CPU time a
// process consumed between two snapshots, priority derived from its
// niceness. The engine treats the result exactly like hand-written input.
package procload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"cpusim/internal/requests"
)

// clockTicks is the kernel's USER_HZ; /proc stat times are reported in
// these ticks.
const clockTicks = 100.0

// procSample is one process's state at snapshot time.
type procSample struct {
	name     string
	cpuTicks uint64 // utime + stime
	nice     int
}

// Sampler takes two /proc snapshots a fixed interval apart.
type Sampler struct {
	Interval   time.Duration
	BurstScale float64 // multiplier from CPU-seconds consumed to burst units

	procRoot string
	sleep    func(time.Duration)
}

// NewSampler returns a Sampler reading from /proc.
func NewSampler(interval time.Duration, burstScale float64) *Sampler {
	return &Sampler{
		Interval:   interval,
		BurstScale: burstScale,
		procRoot:   "/proc",
		sleep:      time.Sleep,
	}
}

// Sample snapshots /proc twice and returns one job per process that
// consumed measurable CPU time in between. Jobs all arrive at t=0 and are
// renumbered 1..n in priority order.
func (s *Sampler) Sample() ([]requests.Job, error) {
	before, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	s.sleep(s.Interval)
	after, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return buildJobs(before, after, s.BurstScale), nil
}

// snapshot reads every numeric /proc entry's stat file. Processes that
// vanish mid-scan are skipped.
func (s *Sampler) snapshot() (map[int]procSample, error) {
	entries, err := os.ReadDir(s.procRoot)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.procRoot, err)
	}

	samples := make(map[int]procSample)
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.procRoot, entry.Name(), "stat"))
		if err != nil {
			continue
		}
		sample, err := parseStat(string(data))
		if err != nil {
			continue
		}
		samples[pid] = sample
	}
	return samples, nil
}

// parseStat extracts comm, utime+stime and nice from a /proc/[pid]/stat
// line. comm may contain spaces and parentheses, so fields are taken
// relative to the last ')'.
func parseStat(line string) (procSample, error) {
	open := strings.IndexByte(line, '(')
	end := strings.LastIndexByte(line, ')')
	if open < 0 || end < open {
		return procSample{}, fmt.Errorf("malformed stat line")
	}
	name := line[open+1 : end]

	// rest[0] is the state field (field 3 of the full line).
	rest := strings.Fields(line[end+1:])
	// utime=field 14, stime=field 15, nice=field 19
	if len(rest) < 17 {
		return procSample{}, fmt.Errorf("stat line too short: %d fields after comm", len(rest))
	}
	utime, err := strconv.ParseUint(rest[11], 10, 64)
	if err != nil {
		return procSample{}, fmt.Errorf("parse utime: %w", err)
	}
	stime, err := strconv.ParseUint(rest[12], 10, 64)
	if err != nil {
		return procSample{}, fmt.Errorf("parse stime: %w", err)
	}
	nice, err := strconv.Atoi(rest[16])
	if err != nil {
		return procSample{}, fmt.Errorf("parse nice: %w", err)
	}
	return procSample{name: name, cpuTicks: utime + stime, nice: nice}, nil
}

// buildJobs converts the delta between two snapshots into jobs. Only
// processes present in both snapshots with a positive CPU delta are kept.
func buildJobs(before, after map[int]procSample, burstScale float64) []requests.Job {
	pids := make([]int, 0, len(after))
	for pid := range after {
		if _, ok := before[pid]; ok {
			pids = append(pids, pid)
		}
	}
	sort.Ints(pids)

	var jobs []requests.Job
	for _, pid := range pids {
		delta := after[pid].cpuTicks - before[pid].cpuTicks
		if after[pid].cpuTicks < before[pid].cpuTicks || delta == 0 {
			continue
		}
		jobs = append(jobs, requests.Job{
			Name:        after[pid].name,
			ArrivalTime: 0,
			BurstTime:   estimateBurst(delta, burstScale),
			Priority:    estimatePriority(after[pid].nice),
		})
	}

	// Highest priority first, then renumber so ids are stable and small.
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Priority < jobs[j].Priority })
	for i := range jobs {
		jobs[i].ProcessID = i + 1
	}
	return jobs
}

// estimateBurst scales CPU-seconds consumed during the interval into
// whole burst units, with a floor of 1.
func estimateBurst(deltaTicks uint64, scale float64) int {
	burst := int(float64(deltaTicks) / clockTicks * scale)
	if burst < 1 {
		burst = 1
	}
	return burst
}

// estimatePriority shifts the niceness range [-20, 19] to [1, 40]; lower
// stays higher priority.
func estimatePriority(nice int) int {
	p := nice + 21
	if p < 1 {
		p = 1
	}
	if p > 40 {
		p = 40
	}
	return p
}
