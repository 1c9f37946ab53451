package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const cashSessionColumns = `id, cashier_id, opened_at, closed_at, opening_balances, closing_balances, status, updated_at`

// CashSessionRepo implements ports.CashSessionRepository. Per-currency
// balances are stored as JSONB objects keyed by currency code.
type CashSessionRepo struct {
	pool Pool
}

// NewCashSessionRepo creates a new CashSessionRepo.
func NewCashSessionRepo(pool Pool) *CashSessionRepo {
	return &CashSessionRepo{pool: pool}
}

// Create inserts a new session.
func (r *CashSessionRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.CashSession) error {
	opening, closing, err := encodeBalances(s)
	if err != nil {
		return err
	}

	query := `INSERT INTO cash_sessions (` + cashSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = on(r.pool, tx).Exec(ctx, query,
		s.ID, s.CashierID, s.OpenedAt, s.ClosedAt, opening, closing, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert cash session", err)
	}
	return nil
}

// GetByID fetches a session by its UUID.
func (r *CashSessionRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashSession, error) {
	query := `SELECT ` + cashSessionColumns + ` FROM cash_sessions WHERE id = $1`
	return r.get(ctx, tx, "get cash session", query, id)
}

// GetByIDForUpdate fetches a session with a row lock.
func (r *CashSessionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashSession, error) {
	query := `SELECT ` + cashSessionColumns + ` FROM cash_sessions WHERE id = $1 FOR UPDATE`
	return r.get(ctx, tx, "get cash session for update", query, id)
}

// LockCashier takes a transaction-scoped advisory lock on the cashier id.
func (r *CashSessionRepo) LockCashier(ctx context.Context, tx pgx.Tx, cashierID string) error {
	if _, err := on(r.pool, tx).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, cashierID); err != nil {
		return wrapErr("lock cashier", err)
	}
	return nil
}

// GetActiveByCashier returns the cashier's OPEN or PAUSED session, if any.
func (r *CashSessionRepo) GetActiveByCashier(ctx context.Context, tx pgx.Tx, cashierID string) (*domain.CashSession, error) {
	query := `SELECT ` + cashSessionColumns + ` FROM cash_sessions
		WHERE cashier_id = $1 AND status <> $2 ORDER BY opened_at DESC LIMIT 1`

	s, err := scanCashSession(on(r.pool, tx).QueryRow(ctx, query, cashierID, domain.SessionStatusClosed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get active cash session", err)
	}
	return s, nil
}

// Update persists status and closing balances.
func (r *CashSessionRepo) Update(ctx context.Context, tx pgx.Tx, s *domain.CashSession) error {
	_, closing, err := encodeBalances(s)
	if err != nil {
		return err
	}

	query := `UPDATE cash_sessions
		SET status = $1, closed_at = $2, closing_balances = $3, updated_at = $4
		WHERE id = $5`

	tag, err := on(r.pool, tx).Exec(ctx, query, s.Status, s.ClosedAt, closing, s.UpdatedAt, s.ID)
	if err != nil {
		return wrapErr("update cash session", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cash session not found: %s", s.ID)
	}
	return nil
}

func (r *CashSessionRepo) get(ctx context.Context, tx pgx.Tx, op, query string, id uuid.UUID) (*domain.CashSession, error) {
	s, err := scanCashSession(on(r.pool, tx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return s, nil
}

func scanCashSession(row scanner) (*domain.CashSession, error) {
	s := &domain.CashSession{}
	var opening, closing []byte
	if err := row.Scan(
		&s.ID, &s.CashierID, &s.OpenedAt, &s.ClosedAt, &opening, &closing, &s.Status, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(opening, &s.OpeningBalances); err != nil {
		return nil, fmt.Errorf("decode opening balances: %w", err)
	}
	if len(closing) > 0 {
		if err := json.Unmarshal(closing, &s.ClosingBalances); err != nil {
			return nil, fmt.Errorf("decode closing balances: %w", err)
		}
	}
	return s, nil
}

// encodeBalances returns the JSONB payloads; closing is nil until the session closes.
func encodeBalances(s *domain.CashSession) (opening, closing []byte, err error) {
	balances := s.OpeningBalances
	if balances == nil {
		balances = domain.Balances{}
	}
	if opening, err = json.Marshal(balances); err != nil {
		return nil, nil, fmt.Errorf("encode opening balances: %w", err)
	}
	if s.ClosingBalances != nil {
		if closing, err = json.Marshal(s.ClosingBalances); err != nil {
			return nil, nil, fmt.Errorf("encode closing balances: %w", err)
		}
	}
	return opening, closing, nil
}
