package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProcesses(t *testing.T) {
	input := strings.NewReader("1,0,5,2\n2,1,3,1\n3,2,1\n")
	jobs, err := loadProcesses(input)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, 1, jobs[0].ProcessID)
	assert.Equal(t, 0, jobs[0].ArrivalTime)
	assert.Equal(t, 5, jobs[0].BurstTime)
	assert.Equal(t, 2, jobs[0].Priority)
	assert.Equal(t, 0, jobs[2].Priority, "missing priority defaults to 0")
}

func TestLoadProcessesSkipsHeader(t *testing.T) {
	input := strings.NewReader("id,arrival,burst,priority\n1,0,5,2\n")
	jobs, err := loadProcesses(input)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 1, jobs[0].ProcessID)
}

func TestLoadProcessesRejectsBadRows(t *testing.T) {
	_, err := loadProcesses(strings.NewReader("1,0\n"))
	assert.Error(t, err)

	_, err = loadProcesses(strings.NewReader("1,zero,5\n"))
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "procs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,0,5\n2,1,3\n3,2,1\n"), 0o644))

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", "--file", csvPath, "--algorithm", "fcfs"})
	require.NoError(t, root.Execute())

	output := out.String()
	assert.Contains(t, output, "fcfs")
	assert.Contains(t, output, "Gantt schedule")
	assert.Contains(t, output, "| P1 | P2 | P3 |")
	assert.Contains(t, output, "Schedule table")
	assert.Contains(t, output, "CPU utilization: 100.00%")
}

func TestRunCommandAll(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "procs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,0,2\n2,0,2\n"), 0o644))

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", "--file", csvPath, "--all"})
	require.NoError(t, root.Execute())

	for _, alg := range []string{"fcfs", "sjf", "srtf", "priority", "priority-preemptive", "rr"} {
		assert.Contains(t, out.String(), alg)
	}
}

func TestRunCommandExport(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "procs.csv")
	reportPath := filepath.Join(dir, "report.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,0,5\n2,1,3\n"), 0o644))

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--file", csvPath, "--algorithm", "sjf", "--export", reportPath})
	require.NoError(t, root.Execute())

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "Algorithm,sjf")
	assert.Contains(t, string(report), "--- Execution Timeline ---")
}

func TestRunCommandRejectsUnknownAlgorithm(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "procs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,0,5\n"), 0o644))

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"run", "--file", csvPath, "--algorithm", "mlfq"})
	assert.Error(t, root.Execute())
}
