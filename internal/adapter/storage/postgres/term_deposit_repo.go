package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const termDepositColumns = `account_id, term_months, annual_rate, opened_at, maturity_date,
	accrued_interest, last_accrual_at, status, updated_at`

// TermDepositRepo implements ports.TermDepositRepository.
type TermDepositRepo struct {
	pool Pool
}

// NewTermDepositRepo creates a new TermDepositRepo.
func NewTermDepositRepo(pool Pool) *TermDepositRepo {
	return &TermDepositRepo{pool: pool}
}

// Create inserts the term attributes of a TERM_SAVINGS account.
func (r *TermDepositRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.TermDeposit) error {
	query := `INSERT INTO term_deposits (` + termDepositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		d.AccountID, d.TermMonths, d.AnnualRate, d.OpenedAt, d.MaturityDate,
		d.AccruedInterest, d.LastAccrualAt, d.Status, d.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert term deposit", err)
	}
	return nil
}

// GetByAccountID fetches the deposit attached to an account.
func (r *TermDepositRepo) GetByAccountID(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.TermDeposit, error) {
	query := `SELECT ` + termDepositColumns + ` FROM term_deposits WHERE account_id = $1`

	d := &domain.TermDeposit{}
	err := on(r.pool, tx).QueryRow(ctx, query, accountID).Scan(
		&d.AccountID, &d.TermMonths, &d.AnnualRate, &d.OpenedAt, &d.MaturityDate,
		&d.AccruedInterest, &d.LastAccrualAt, &d.Status, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get term deposit", err)
	}
	return d, nil
}

// Update persists term, rate, accrual progress and status.
func (r *TermDepositRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.TermDeposit) error {
	query := `UPDATE term_deposits
		SET term_months = $1, annual_rate = $2, opened_at = $3, maturity_date = $4,
			accrued_interest = $5, last_accrual_at = $6, status = $7, updated_at = $8
		WHERE account_id = $9`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		d.TermMonths, d.AnnualRate, d.OpenedAt, d.MaturityDate,
		d.AccruedInterest, d.LastAccrualAt, d.Status, d.UpdatedAt, d.AccountID,
	)
	if err != nil {
		return wrapErr("update term deposit", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term deposit not found: %s", d.AccountID)
	}
	return nil
}

// ListDue returns ACTIVE deposits whose maturity date has been reached.
func (r *TermDepositRepo) ListDue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	query := `SELECT account_id FROM term_deposits
		WHERE status = $1 AND maturity_date <= $2 ORDER BY maturity_date, account_id`

	rows, err := r.pool.Query(ctx, query, domain.TermStatusActive, now)
	if err != nil {
		return nil, wrapErr("list due term deposits", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan term deposit id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
