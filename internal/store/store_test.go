package store

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpusim/internal/logging"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:", logging.NewLoggerWithWriter(slog.LevelError, "text", testWriter{t}))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestSaveAndGetRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run := &Run{
		Algorithm:             "srtf",
		ProcessCount:          3,
		ContextSwitchOverhead: 1,
		TotalTime:             11,
		CpuUtilization:        9.0 / 11.0,
		AverageWaitingTime:    2.5,
		AverageTurnAroundTime: 5.5,
		Response:              `{"algorithm":"srtf"}`,
	}
	require.NoError(t, st.SaveRun(ctx, run))
	assert.NotEmpty(t, run.ID, "SaveRun assigns an id")
	assert.False(t, run.CreatedAt.IsZero())

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Algorithm, got.Algorithm)
	assert.Equal(t, run.ProcessCount, got.ProcessCount)
	assert.Equal(t, run.TotalTime, got.TotalTime)
	assert.InDelta(t, run.CpuUtilization, got.CpuUtilization, 1e-9)
	assert.Equal(t, run.Response, got.Response)
}

func TestGetRunNotFound(t *testing.T) {
	st := newTestStore(t)
	_, err := st.GetRun(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRunsNewestFirstWithoutPayload(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, alg := range []string{"fcfs", "sjf", "rr"} {
		require.NoError(t, st.SaveRun(ctx, &Run{
			Algorithm: alg,
			Response:  `{"algorithm":"` + alg + `"}`,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	runs, err := st.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, run := range runs {
		assert.Empty(t, run.Response, "list omits the payload")
	}

	all, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "rr", all[0].Algorithm, "newest first")
}
