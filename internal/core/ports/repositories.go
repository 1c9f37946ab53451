package ports

import (
	"context"
	"errors"
	"time"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrConcurrentUpdate is wrapped by storage adapters when a write lost a race:
// a version check failed, or the database aborted the transaction with a
// serialization failure or deadlock. The unit of work retries on it.
var ErrConcurrentUpdate = errors.New("concurrent update")

// Repository conventions: methods accepting pgx.Tx run inside that
// transaction; read methods also accept a nil tx and then read committed
// state. Lookups return (nil, nil) when the row does not exist.

// AccountRepository defines persistence operations for ledger accounts.
type AccountRepository interface {
	Create(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	GetByNumber(ctx context.Context, tx pgx.Tx, number string) (*domain.Account, error)
	// GetByIDForUpdate locks the account row until tx ends.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	// Update writes balances and status when the stored version still equals
	// account.Version, then increments account.Version. A version mismatch
	// returns an error wrapping ErrConcurrentUpdate.
	Update(ctx context.Context, tx pgx.Tx, account *domain.Account) error
	NumberExists(ctx context.Context, tx pgx.Tx, number string) (bool, error)
}

// EntryRepository defines persistence for the append-only transaction log.
type EntryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.Entry) error
	GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Entry, error)
	// GetByIDForUpdate locks the entry row until tx ends.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Entry, error)
	// MarkReversed flips a COMPLETED entry to REVERSED and links the
	// compensating entry.
	MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reversalID uuid.UUID) error
	// List methods return entries in creation order.
	ListByAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) ([]domain.Entry, error)
	ListBySession(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID) ([]domain.Entry, error)
	ListByCorrelation(ctx context.Context, tx pgx.Tx, correlationID uuid.UUID) ([]domain.Entry, error)
}

// GuaranteeRepository stores one guarantee per (account, loan application).
type GuaranteeRepository interface {
	Get(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, loanApplicationID string) (*domain.Guarantee, error)
	Upsert(ctx context.Context, tx pgx.Tx, guarantee *domain.Guarantee) error
	Delete(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, loanApplicationID string) error
	ListByAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) ([]domain.Guarantee, error)
}

// TermDepositRepository stores term attributes of TERM_SAVINGS accounts.
type TermDepositRepository interface {
	Create(ctx context.Context, tx pgx.Tx, deposit *domain.TermDeposit) error
	GetByAccountID(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.TermDeposit, error)
	Update(ctx context.Context, tx pgx.Tx, deposit *domain.TermDeposit) error
	// ListDue returns ACTIVE deposits whose maturity date is at or before now.
	ListDue(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// CashSessionRepository stores teller sessions.
type CashSessionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, session *domain.CashSession) error
	GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashSession, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashSession, error)
	// LockCashier serializes session opening for one cashier until tx ends.
	LockCashier(ctx context.Context, tx pgx.Tx, cashierID string) error
	// GetActiveByCashier returns the cashier's OPEN or PAUSED session.
	GetActiveByCashier(ctx context.Context, tx pgx.Tx, cashierID string) (*domain.CashSession, error)
	Update(ctx context.Context, tx pgx.Tx, session *domain.CashSession) error
}

// ExchangeRateStore is the cache of rates published by the exchange desk.
type ExchangeRateStore interface {
	// Get returns ok=false when no rate is cached for the pair.
	Get(ctx context.Context, from, to domain.Currency) (rate decimal.Decimal, ok bool, err error)
	Set(ctx context.Context, from, to domain.Currency, rate decimal.Decimal, ttl time.Duration) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
