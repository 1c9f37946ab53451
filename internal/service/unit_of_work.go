package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// UnitOfWork runs one ledger operation per database transaction and retries
// the whole operation when storage reports a lost race.
type UnitOfWork struct {
	transactor ports.DBTransactor
	maxRetries int
	backoff    time.Duration
	log        zerolog.Logger
}

// NewUnitOfWork creates a UnitOfWork. maxRetries counts attempts after the first.
func NewUnitOfWork(transactor ports.DBTransactor, maxRetries int, backoff time.Duration, log zerolog.Logger) *UnitOfWork {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &UnitOfWork{
		transactor: transactor,
		maxRetries: maxRetries,
		backoff:    backoff,
		log:        log,
	}
}

// Run executes fn inside a transaction and commits it. Business errors
// (*apperror.AppError) are returned unchanged; other errors become SYS_001,
// or SYS_004 once retries on ports.ErrConcurrentUpdate are exhausted.
func (u *UnitOfWork) Run(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = u.attempt(ctx, fn)
		if err == nil || !errors.Is(err, ports.ErrConcurrentUpdate) {
			break
		}
		if attempt >= u.maxRetries {
			u.log.Warn().Err(err).Str("op", op).Int("attempts", attempt+1).Msg("concurrent update retries exhausted")
			return apperror.ErrConcurrencyConflict(err)
		}
		u.log.Debug().Err(err).Str("op", op).Int("attempt", attempt+1).Msg("concurrent update, retrying")
		if werr := sleep(ctx, u.backoff*time.Duration(attempt+1)); werr != nil {
			return apperror.InternalError(fmt.Errorf("%s: %w", op, werr))
		}
	}
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}

func (u *UnitOfWork) attempt(ctx context.Context, fn func(tx pgx.Tx) error) error {
	dbTx, err := u.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := fn(dbTx); err != nil {
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
