package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIntervalJobRejectsBadInput(t *testing.T) {
	s := NewJobScheduler()

	assert.Error(t, s.AddIntervalJob("zero", 0, func() {}))
	require.NoError(t, s.AddIntervalJob("ping", time.Minute, func() {}))
	assert.Error(t, s.AddIntervalJob("ping", time.Minute, func() {}))
}

func TestJobRunsOnStart(t *testing.T) {
	s := NewJobScheduler()

	var runs atomic.Int32
	require.NoError(t, s.AddIntervalJob("ping", time.Hour, func() { runs.Add(1) }))

	s.Start()
	defer s.Stop()
	assert.True(t, s.IsRunning())

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		info, ok := s.GetJob("ping")
		return ok && info.LastRun != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRemoveJob(t *testing.T) {
	s := NewJobScheduler()
	require.NoError(t, s.AddIntervalJob("ping", time.Minute, func() {}))

	require.NoError(t, s.RemoveJob("ping"))
	_, ok := s.GetJob("ping")
	assert.False(t, ok)
	assert.Error(t, s.RemoveJob("ping"))
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewJobScheduler()
	s.Stop()
	s.Start()
	s.Start()
	s.Stop()
	assert.False(t, s.IsRunning())
}
