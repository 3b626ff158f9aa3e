package scheduler

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAlerter struct {
	mu       sync.Mutex
	subjects []string
}

func (f *fakeAlerter) Alert(_ context.Context, subject, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
}

func (f *fakeAlerter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subjects)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestTriggerUnknownJob(t *testing.T) {
	s := New(testLogger(), &fakeAlerter{})
	assert.Error(t, s.Trigger("no-such-job"))
}

func TestAddDuplicateJob(t *testing.T) {
	s := New(testLogger(), &fakeAlerter{})
	noop := func(context.Context) error { return nil }
	require.NoError(t, s.Add("job", "@daily", noop))
	assert.Error(t, s.Add("job", "@daily", noop))
}

func TestOverlappingRunIsSkipped(t *testing.T) {
	s := New(testLogger(), &fakeAlerter{})

	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	runs := 0
	require.NoError(t, s.Add("slow", "@daily", func(context.Context) error {
		mu.Lock()
		runs++
		mu.Unlock()
		close(started)
		<-release
		return nil
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Trigger("slow")
	}()
	<-started

	// The first run is still holding the flag, so this fire is dropped.
	require.NoError(t, s.Trigger("slow"))
	mu.Lock()
	assert.Equal(t, 1, runs)
	mu.Unlock()

	close(release)
	<-done
}

func TestPanicDoesNotPoisonNextRun(t *testing.T) {
	alerter := &fakeAlerter{}
	s := New(testLogger(), alerter)

	calls := 0
	require.NoError(t, s.Add("flaky", "@daily", func(context.Context) error {
		calls++
		if calls == 1 {
			panic("boom")
		}
		return nil
	}))

	require.NoError(t, s.Trigger("flaky"))
	assert.Equal(t, 1, alerter.count(), "the panic reaches ops")

	// The job is back to idle and runs cleanly.
	require.NoError(t, s.Trigger("flaky"))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, alerter.count())
}

func TestFailedRunAlertsOps(t *testing.T) {
	alerter := &fakeAlerter{}
	s := New(testLogger(), alerter)
	require.NoError(t, s.Add("failing", "@daily", func(context.Context) error {
		return assert.AnError
	}))

	require.NoError(t, s.Trigger("failing"))
	require.Equal(t, 1, alerter.count())
	assert.Equal(t, "job failed: failing", alerter.subjects[0])
}

func TestStopWaitsForRunningJob(t *testing.T) {
	s := New(testLogger(), &fakeAlerter{})
	require.NoError(t, s.Add("quick", "@daily", func(context.Context) error { return nil }))
	s.Start()

	select {
	case <-s.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}
