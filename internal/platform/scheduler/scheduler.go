// Package scheduler runs the background jobs that keep the rate and
// catalog caches warm.
package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is a unit of scheduled background work.
type Job interface {
	Run() error
	Name() string
}

// Scheduler manages background jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler.
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger.With(slog.String("component", "scheduler")),
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// AddJob registers a job with a cron schedule (e.g. "@every 6h", "@hourly").
// Job failure is logged, never fatal: a cold cache just means the next
// interactive request pays the fetch.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := job.Run(); err != nil {
			s.logger.Error("Job failed",
				slog.String("job", job.Name()),
				slog.String("error", err.Error()),
			)
			return
		}
		s.logger.Debug("Job completed", slog.String("job", job.Name()))
	})
	return err
}
