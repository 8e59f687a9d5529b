package procload

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statLine builds a /proc/[pid]/stat line with the given comm, utime,
// stime and nice; the other fields are fixed filler.
func statLine(pid int, comm string, utime, stime uint64, nice int) string {
	return fmt.Sprintf("%d (%s) S 1 %d %d 0 -1 4194304 100 0 0 0 %d %d 0 0 20 %d 1 0 100 0 0",
		pid, comm, pid, pid, utime, stime, nice)
}

func TestParseStat(t *testing.T) {
	sample, err := parseStat(statLine(42, "nginx", 250, 50, -5))
	require.NoError(t, err)
	assert.Equal(t, "nginx", sample.name)
	assert.Equal(t, uint64(300), sample.cpuTicks)
	assert.Equal(t, -5, sample.nice)
}

func TestParseStatCommWithSpacesAndParens(t *testing.T) {
	sample, err := parseStat(statLine(7, "Web Content (x)", 10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "Web Content (x)", sample.name)
}

func TestParseStatMalformed(t *testing.T) {
	_, err := parseStat("not a stat line")
	assert.Error(t, err)
	_, err = parseStat("1 (short) S 1 2")
	assert.Error(t, err)
}

func TestEstimateBurst(t *testing.T) {
	assert.Equal(t, 4, estimateBurst(50, 8.0))  // 0.5 CPU-seconds * 8
	assert.Equal(t, 1, estimateBurst(1, 8.0))   // floor of 1
	assert.Equal(t, 16, estimateBurst(200, 8.0))
}

func TestEstimatePriority(t *testing.T) {
	assert.Equal(t, 1, estimatePriority(-20))
	assert.Equal(t, 21, estimatePriority(0))
	assert.Equal(t, 40, estimatePriority(19))
	assert.Equal(t, 1, estimatePriority(-30)) // clamped
	assert.Equal(t, 40, estimatePriority(25)) // clamped
}

func TestBuildJobs(t *testing.T) {
	before := map[int]procSample{
		100: {name: "busy", cpuTicks: 1000, nice: 0},
		200: {name: "nicer", cpuTicks: 500, nice: 10},
		300: {name: "sleeper", cpuTicks: 40, nice: 0},
		400: {name: "gone", cpuTicks: 10, nice: 0},
	}
	after := map[int]procSample{
		100: {name: "busy", cpuTicks: 1100, nice: 0},   // delta 100
		200: {name: "nicer", cpuTicks: 550, nice: 10},  // delta 50
		300: {name: "sleeper", cpuTicks: 40, nice: 0},  // no CPU consumed
		500: {name: "new", cpuTicks: 99, nice: 0},      // not in first snapshot
	}

	jobs := buildJobs(before, after, 8.0)
	require.Len(t, jobs, 2)

	// Sorted by priority, renumbered from 1, all arriving at t=0.
	assert.Equal(t, 1, jobs[0].ProcessID)
	assert.Equal(t, "busy", jobs[0].Name)
	assert.Equal(t, 21, jobs[0].Priority)
	assert.Equal(t, 8, jobs[0].BurstTime)
	assert.Equal(t, 0, jobs[0].ArrivalTime)

	assert.Equal(t, 2, jobs[1].ProcessID)
	assert.Equal(t, "nicer", jobs[1].Name)
	assert.Equal(t, 31, jobs[1].Priority)
	assert.Equal(t, 4, jobs[1].BurstTime)
}

func TestSamplerAgainstFakeProcRoot(t *testing.T) {
	root := t.TempDir()
	writeStat := func(pid int, comm string, utime uint64) {
		dir := filepath.Join(root, fmt.Sprint(pid))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"),
			[]byte(statLine(pid, comm, utime, 0, 0)), 0o644))
	}
	writeStat(10, "worker", 100)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "self"), 0o755)) // non-numeric, skipped

	s := &Sampler{
		Interval:   time.Second,
		BurstScale: 8.0,
		procRoot:   root,
		// The "interval" advances the fake process's CPU time instead of
		// sleeping.
		sleep: func(time.Duration) { writeStat(10, "worker", 200) },
	}

	jobs, err := s.Sample()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "worker", jobs[0].Name)
	assert.Equal(t, 8, jobs[0].BurstTime) // 100 ticks = 1 CPU-second * 8
	assert.Equal(t, 21, jobs[0].Priority)
}
