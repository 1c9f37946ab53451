package postgres

import (
	"context"
	"errors"
	"fmt"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const guaranteeColumns = `loan_application_id, account_id, loan_type, blocked_amount, currency, created_at, updated_at`

// GuaranteeRepo implements ports.GuaranteeRepository.
type GuaranteeRepo struct {
	pool Pool
}

// NewGuaranteeRepo creates a new GuaranteeRepo.
func NewGuaranteeRepo(pool Pool) *GuaranteeRepo {
	return &GuaranteeRepo{pool: pool}
}

// Get fetches the guarantee held on an account for a loan application.
func (r *GuaranteeRepo) Get(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, loanApplicationID string) (*domain.Guarantee, error) {
	query := `SELECT ` + guaranteeColumns + ` FROM guarantees
		WHERE account_id = $1 AND loan_application_id = $2`

	g := &domain.Guarantee{}
	err := on(r.pool, tx).QueryRow(ctx, query, accountID, loanApplicationID).Scan(
		&g.LoanApplicationID, &g.AccountID, &g.LoanType, &g.BlockedAmount, &g.Currency, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get guarantee", err)
	}
	return g, nil
}

// Upsert inserts the guarantee or replaces its amount and loan type.
func (r *GuaranteeRepo) Upsert(ctx context.Context, tx pgx.Tx, g *domain.Guarantee) error {
	query := `INSERT INTO guarantees (` + guaranteeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id, loan_application_id)
		DO UPDATE SET loan_type = EXCLUDED.loan_type, blocked_amount = EXCLUDED.blocked_amount,
			updated_at = EXCLUDED.updated_at`

	_, err := on(r.pool, tx).Exec(ctx, query,
		g.LoanApplicationID, g.AccountID, g.LoanType, g.BlockedAmount, g.Currency, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return wrapErr("upsert guarantee", err)
	}
	return nil
}

// Delete removes a guarantee once its funds are released.
func (r *GuaranteeRepo) Delete(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, loanApplicationID string) error {
	tag, err := on(r.pool, tx).Exec(ctx,
		`DELETE FROM guarantees WHERE account_id = $1 AND loan_application_id = $2`,
		accountID, loanApplicationID,
	)
	if err != nil {
		return wrapErr("delete guarantee", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("guarantee not found: %s/%s", accountID, loanApplicationID)
	}
	return nil
}

// ListByAccount returns all guarantees held on an account.
func (r *GuaranteeRepo) ListByAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) ([]domain.Guarantee, error) {
	query := `SELECT ` + guaranteeColumns + ` FROM guarantees
		WHERE account_id = $1 ORDER BY created_at, loan_application_id`

	rows, err := on(r.pool, tx).Query(ctx, query, accountID)
	if err != nil {
		return nil, wrapErr("list guarantees", err)
	}
	defer rows.Close()

	var out []domain.Guarantee
	for rows.Next() {
		var g domain.Guarantee
		if err := rows.Scan(
			&g.LoanApplicationID, &g.AccountID, &g.LoanType, &g.BlockedAmount, &g.Currency, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan guarantee: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
