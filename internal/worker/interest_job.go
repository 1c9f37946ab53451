// Package worker runs background ledger jobs.
package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"microfinance-ledger/internal/core/ports"

	"github.com/jasonlvhit/gocron"
	"github.com/rs/zerolog"
)

// InterestJob accrues interest on every matured term deposit.
type InterestJob struct {
	svc     ports.InterestService
	log     zerolog.Logger
	timeout time.Duration
	running atomic.Bool
}

// NewInterestJob creates the job. timeout bounds a single run; zero means none.
func NewInterestJob(svc ports.InterestService, timeout time.Duration, log zerolog.Logger) *InterestJob {
	return &InterestJob{svc: svc, timeout: timeout, log: log.With().Str("job", "interest_accrual").Logger()}
}

// Run processes all due deposits once. A run that starts while another is
// still in progress is skipped and reports zero.
func (j *InterestJob) Run(ctx context.Context) (int, error) {
	if !j.running.CompareAndSwap(false, true) {
		j.log.Warn().Msg("previous run still in progress, skipping")
		return 0, nil
	}
	defer j.running.Store(false)

	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := j.svc.CalculateInterestForAllAccounts(ctx)
	if err != nil {
		j.log.Error().Err(err).Int("processed", n).Msg("interest run failed")
		return n, err
	}
	j.log.Info().Int("processed", n).Dur("took", time.Since(start)).Msg("interest run finished")
	return n, nil
}

// Scheduler fires the interest job once a day.
type Scheduler struct {
	sched *gocron.Scheduler
	stop  chan bool
	once  sync.Once
}

// StartDaily schedules job every day at "HH:MM" local time. Runs use ctx, so
// cancelling it aborts an in-flight run between deposits.
func StartDaily(ctx context.Context, job *InterestJob, at string) (*Scheduler, error) {
	if _, err := time.Parse("15:04", at); err != nil {
		return nil, fmt.Errorf("invalid schedule time %q: %w", at, err)
	}

	s := gocron.NewScheduler()
	if err := s.Every(1).Day().At(at).Do(func() {
		_, _ = job.Run(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule interest job: %w", err)
	}

	job.log.Info().Str("at", at).Msg("interest job scheduled")
	return &Scheduler{sched: s, stop: s.Start()}, nil
}

// Stop halts the scheduler. It does not wait for a running job.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.sched.Clear()
	})
}
