// Package scheduler triggers jobs at fixed local times of day.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Job is a named task that runs once per day at a fixed HH:MM time.
type Job struct {
	Name string
	At   string // "15:04" format, local time
	Run  func(ctx context.Context) error
}

// Scheduler runs registered jobs until its context is cancelled.
type Scheduler struct {
	jobs   []Job
	logger zerolog.Logger
}

// New creates a Scheduler.
func New(logger zerolog.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Register adds a job. Returns an error when the time spec is
// malformed; registration order is execution-independent.
func (s *Scheduler) Register(job Job) error {
	if _, err := time.Parse("15:04", job.At); err != nil {
		return fmt.Errorf("job %s: bad time spec %q: %w", job.Name, job.At, err)
	}
	s.jobs = append(s.jobs, job)
	return nil
}

// Start launches one loop per job and blocks until the context is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	for _, job := range s.jobs {
		s.logger.Info().
			Str("job", job.Name).
			Str("at", job.At).
			Msg("job scheduled")
		go s.runLoop(ctx, job)
	}

	<-ctx.Done()
	s.logger.Info().Msg("scheduler shutting down")
	return ctx.Err()
}

func (s *Scheduler) runLoop(ctx context.Context, job Job) {
	for {
		next := nextRun(time.Now(), job.At)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error().
				Err(err).
				Str("job", job.Name).
				Msg("scheduled job failed")
			continue
		}
		s.logger.Info().
			Str("job", job.Name).
			Dur("duration", time.Since(start)).
			Msg("scheduled job completed")
	}
}

// nextRun returns the next occurrence of the HH:MM spec strictly after
// now. The spec is assumed validated by Register.
func nextRun(now time.Time, at string) time.Time {
	spec, _ := time.Parse("15:04", at)
	next := time.Date(now.Year(), now.Month(), now.Day(), spec.Hour(), spec.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
