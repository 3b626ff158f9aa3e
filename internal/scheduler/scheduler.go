package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Alerter receives operator notices about failed or panicking jobs.
type Alerter interface {
	Alert(ctx context.Context, subject, detail string)
}

type job struct {
	name    string
	run     func(ctx context.Context) error
	running atomic.Bool
}

// Scheduler runs named background jobs on cron specs. A job that is
// still running when its next fire comes due skips that fire rather
// than queueing it, and a panicking run is caught at the job boundary
// so the next firing is unaffected.
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]*job
	alerter Alerter
	log     *logrus.Entry
}

func New(l *logrus.Logger, alerter Alerter) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		jobs:    make(map[string]*job),
		alerter: alerter,
		log:     l.WithField("from", "scheduler"),
	}
}

// Add registers a job under a unique name. spec accepts the standard
// five-field cron syntax and descriptors like @daily.
func (s *Scheduler) Add(name, spec string, run func(ctx context.Context) error) error {
	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("job %q already registered", name)
	}
	j := &job{name: name, run: run}
	if _, err := s.cron.AddFunc(spec, func() { s.execute(j) }); err != nil {
		return fmt.Errorf("job %q spec %q: %w", name, spec, err)
	}
	s.jobs[name] = j
	s.log.WithField("job", name).Infof("scheduled %q", spec)
	return nil
}

// Trigger runs a registered job immediately, in the caller's
// goroutine. It errors only on an unknown name; run failures follow
// the same log-and-alert path as scheduled fires.
func (s *Scheduler) Trigger(name string) error {
	j, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %q", name)
	}
	s.execute(j)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling. The returned context is done once in-flight
// jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) execute(j *job) {
	if !j.running.CompareAndSwap(false, true) {
		s.log.WithField("job", j.name).Warn("previous run still active, skipping")
		return
	}
	defer j.running.Store(false)

	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			s.alerter.Alert(ctx, "job panic: "+j.name, fmt.Sprintf("%v", r))
		}
	}()

	log := s.log.WithField("job", j.name)
	start := time.Now()
	if err := j.run(ctx); err != nil {
		s.alerter.Alert(ctx, "job failed: "+j.name, err.Error())
		return
	}
	log.Infof("finished in %s", time.Since(start).Round(time.Millisecond))
}
