package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one scheduled unit of work. The context is cancelled when the
// scheduler stops.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron    *cron.Cron
	log     zerolog.Logger
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler builds a seconds-resolution scheduler. Each run is bounded
// by timeout when it is positive.
func NewScheduler(log zerolog.Logger, timeout time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:     log,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Add registers job under spec, a six-field cron expression.
func (s *Scheduler) Add(spec, name string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return, at most until
// ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) run(name string, job Job) {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := job(ctx); err != nil {
		s.log.Error().Err(err).Str("job", name).Msg("scheduled job failed")
		return
	}
	s.log.Debug().Str("job", name).Dur("took", time.Since(start)).Msg("scheduled job finished")
}
