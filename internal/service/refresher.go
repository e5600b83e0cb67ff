package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Job is a periodic background task. A failed run is logged and retried on
// the next tick.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Refresher runs jobs on their own cadence until the context is done.
type Refresher struct {
	jobs []Job
	log  zerolog.Logger
}

// NewRefresher creates a refresher. Jobs with a non-positive interval run once.
func NewRefresher(log zerolog.Logger, jobs ...Job) *Refresher {
	return &Refresher{jobs: jobs, log: log}
}

// RunOnce runs every job a single time and returns the first error.
func (r *Refresher) RunOnce(ctx context.Context) error {
	for _, j := range r.jobs {
		if err := j.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", j.Name, err)
		}
	}
	return nil
}

// Run runs each job immediately and then on every tick.
func (r *Refresher) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, j := range r.jobs {
		g.Go(func() error {
			r.loop(ctx, j)
			return nil
		})
	}
	return g.Wait()
}

func (r *Refresher) loop(ctx context.Context, j Job) {
	log := r.log.With().Str("job", j.Name).Logger()
	r.runJob(ctx, log, j)
	if j.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runJob(ctx, log, j)
		}
	}
}

func (r *Refresher) runJob(ctx context.Context, log zerolog.Logger, j Job) {
	start := time.Now()
	if err := j.Run(ctx); err != nil {
		if ctx.Err() == nil {
			log.Warn().Err(err).Msg("background job failed")
		}
		return
	}
	log.Debug().Dur("took", time.Since(start)).Msg("background job done")
}
