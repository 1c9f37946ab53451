package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor using pgxpool.Pool.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts a new database transaction. Serialization failures and
// deadlocks reported at commit are marked retryable.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("begin", err)
	}
	return &ledgerTx{Tx: tx}, nil
}

type ledgerTx struct {
	pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.Tx.Commit(ctx); err != nil {
		return wrapErr("commit", err)
	}
	return nil
}
