package postgres

import (
	"context"
	"errors"
	"fmt"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const entryColumns = `id, account_id, type, amount, currency, balance_before, balance_after,
	blocked_before, blocked_after, counterparty_account_id, related_entry_id, correlation_id,
	exchange_rate, session_id, reference, description, processed_by, status, created_at`

// EntryRepo implements ports.EntryRepository. Rows are never deleted; the
// only permitted change is the COMPLETED to REVERSED status flip.
type EntryRepo struct {
	pool Pool
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(pool Pool) *EntryRepo {
	return &EntryRepo{pool: pool}
}

// Create appends an entry to the log.
func (r *EntryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Entry) error {
	query := `INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		e.ID, e.AccountID, e.Type, e.Amount, e.Currency, e.BalanceBefore, e.BalanceAfter,
		e.BlockedBefore, e.BlockedAfter, e.CounterpartyAccountID, e.RelatedEntryID, e.CorrelationID,
		rateText(e.ExchangeRate), e.SessionID, e.Reference, e.Description, e.ProcessedBy, e.Status, e.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert entry", err)
	}
	return nil
}

// GetByID fetches an entry by its UUID.
func (r *EntryRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = $1`
	return r.get(ctx, tx, "get entry by id", query, id)
}

// GetByIDForUpdate fetches an entry with a row lock.
func (r *EntryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = $1 FOR UPDATE`
	return r.get(ctx, tx, "get entry for update", query, id)
}

func (r *EntryRepo) get(ctx context.Context, tx pgx.Tx, op, query string, id uuid.UUID) (*domain.Entry, error) {
	e, err := scanEntry(on(r.pool, tx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return e, nil
}

// MarkReversed flips a COMPLETED entry to REVERSED and links the reversal.
func (r *EntryRepo) MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reversalID uuid.UUID) error {
	query := `UPDATE entries SET status = $1, related_entry_id = $2
		WHERE id = $3 AND status = $4`

	tag, err := on(r.pool, tx).Exec(ctx, query,
		domain.EntryStatusReversed, reversalID, id, domain.EntryStatusCompleted,
	)
	if err != nil {
		return wrapErr("mark entry reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry not found or not completed: %s", id)
	}
	return nil
}

// ListByAccount returns an account's entries in creation order.
func (r *EntryRepo) ListByAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE account_id = $1 ORDER BY seq`
	return r.list(ctx, tx, "list entries by account", query, accountID)
}

// ListBySession returns the cash entries attributed to a session.
func (r *EntryRepo) ListBySession(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE session_id = $1 ORDER BY seq`
	return r.list(ctx, tx, "list entries by session", query, sessionID)
}

// ListByCorrelation returns both legs of a transfer.
func (r *EntryRepo) ListByCorrelation(ctx context.Context, tx pgx.Tx, correlationID uuid.UUID) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE correlation_id = $1 ORDER BY seq`
	return r.list(ctx, tx, "list entries by correlation", query, correlationID)
}

func (r *EntryRepo) list(ctx context.Context, tx pgx.Tx, op, query string, id uuid.UUID) ([]domain.Entry, error) {
	rows, err := on(r.pool, tx).Query(ctx, query, id)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return entries, nil
}

func scanEntry(row scanner) (*domain.Entry, error) {
	e := &domain.Entry{}
	var rate *string
	err := row.Scan(
		&e.ID, &e.AccountID, &e.Type, &e.Amount, &e.Currency, &e.BalanceBefore, &e.BalanceAfter,
		&e.BlockedBefore, &e.BlockedAfter, &e.CounterpartyAccountID, &e.RelatedEntryID, &e.CorrelationID,
		&rate, &e.SessionID, &e.Reference, &e.Description, &e.ProcessedBy, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rate != nil {
		d, err := decimal.NewFromString(*rate)
		if err != nil {
			return nil, fmt.Errorf("parse exchange rate %q: %w", *rate, err)
		}
		e.ExchangeRate = &d
	}
	return e, nil
}

// rateText renders a rate for a NUMERIC column without float rounding.
func rateText(rate *decimal.Decimal) *string {
	if rate == nil {
		return nil
	}
	s := rate.String()
	return &s
}
