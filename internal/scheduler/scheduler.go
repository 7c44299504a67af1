package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/wb-go/wbf/zlog"
)

// Job is a task run on a fixed interval.
type Job struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error
}

// Scheduler runs jobs periodically. A run of a job never overlaps with
// another run of the same job.
type Scheduler struct {
	s gocron.Scheduler
}

// New registers jobs on a new scheduler in loc. Every job also runs once
// right after Start. A job with a non-positive interval is skipped.
func New(ctx context.Context, loc *time.Location, jobs ...Job) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	for _, job := range jobs {
		if job.Every <= 0 {
			zlog.Logger.Warn().Str("job", job.Name).Msg("job disabled")
			continue
		}

		_, err = s.NewJob(
			gocron.DurationJob(job.Every),
			gocron.NewTask(runner(ctx, job)),
			gocron.WithName(job.Name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			_ = s.Shutdown()
			return nil, fmt.Errorf("register job %s: %w", job.Name, err)
		}
	}

	return &Scheduler{s: s}, nil
}

func runner(ctx context.Context, job Job) func() {
	return func() {
		start := time.Now()

		if err := job.Run(ctx); err != nil {
			zlog.Logger.Error().Err(err).Str("job", job.Name).Msg("job failed")
			return
		}

		zlog.Logger.Info().Str("job", job.Name).Dur("took", time.Since(start)).Msg("job finished")
	}
}

// Start begins running the registered jobs.
func (s *Scheduler) Start() {
	s.s.Start()
}

// Shutdown stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Shutdown() error {
	if err := s.s.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}

	return nil
}
