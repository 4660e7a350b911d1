// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"inqboard/internal/shared/logger"
)

// TriageJob is one scheduled pipeline pass over the inquiry backlog.
type TriageJob interface {
	RunOnce(ctx context.Context) error
}

// SchedulerManager owns the single gocron scheduler instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterTriageJob schedules the pipeline tick. Singleton mode keeps a slow
// tick (long SSH probes, slow model) from overlapping with the next one; the
// run-lock inside the worker additionally guards against a second process.
func (m *SchedulerManager) RegisterTriageJob(job TriageJob, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval*10)
			defer cancel()
			if err := job.RunOnce(ctx); err != nil {
				m.logger.Errorw("triage pass failed", "error", err)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("inquiry-triage"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered triage job", "interval", interval)
	return nil
}

// Start begins executing registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started")
}

// Stop shuts down the scheduler, waiting for running jobs to finish.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}
	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
