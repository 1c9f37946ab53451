package postgres

import (
	"context"
	"errors"
	"fmt"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, number, customer_id, type, currency, balance, blocked_balance,
	status, opened_at, closed_at, version, updated_at`

// scanner is satisfied by pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account. A duplicate account number is reported as a
// concurrent update so the caller retries with a fresh number.
func (r *AccountRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		a.ID, a.Number, a.CustomerID, a.Type, a.Currency, a.Balance, a.BlockedBalance,
		a.Status, a.OpenedAt, a.ClosedAt, a.Version, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert account: %w: %w", ports.ErrConcurrentUpdate, err)
		}
		return wrapErr("insert account", err)
	}
	return nil
}

// GetByID fetches an account by its UUID (without locking).
func (r *AccountRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.get(ctx, tx, "get account by id", query, id)
}

// GetByNumber fetches an account by its account number.
func (r *AccountRepo) GetByNumber(ctx context.Context, tx pgx.Tx, number string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE number = $1`
	return r.get(ctx, tx, "get account by number", query, number)
}

// GetByIDForUpdate fetches an account with a row lock.
// This MUST be called within a transaction.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	return r.get(ctx, tx, "get account for update", query, id)
}

func (r *AccountRepo) get(ctx context.Context, tx pgx.Tx, op, query string, arg any) (*domain.Account, error) {
	a, err := scanAccount(on(r.pool, tx).QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return a, nil
}

// Update persists balances and status guarded by the version column.
func (r *AccountRepo) Update(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	query := `UPDATE accounts
		SET balance = $1, blocked_balance = $2, status = $3, closed_at = $4,
			version = version + 1, updated_at = $5
		WHERE id = $6 AND version = $7`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		a.Balance, a.BlockedBalance, a.Status, a.ClosedAt, a.UpdatedAt, a.ID, a.Version,
	)
	if err != nil {
		return wrapErr("update account", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update account %s at version %d: %w", a.ID, a.Version, ports.ErrConcurrentUpdate)
	}
	a.Version++
	return nil
}

// NumberExists reports whether an account number is already taken.
func (r *AccountRepo) NumberExists(ctx context.Context, tx pgx.Tx, number string) (bool, error) {
	var exists bool
	err := on(r.pool, tx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE number = $1)`, number).Scan(&exists)
	if err != nil {
		return false, wrapErr("check account number", err)
	}
	return exists, nil
}

func scanAccount(row scanner) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(
		&a.ID, &a.Number, &a.CustomerID, &a.Type, &a.Currency, &a.Balance, &a.BlockedBalance,
		&a.Status, &a.OpenedAt, &a.ClosedAt, &a.Version, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
