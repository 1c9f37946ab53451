package memory

import (
	"context"
	"fmt"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EntryRepo implements ports.EntryRepository.
type EntryRepo struct {
	store *Store
}

// NewEntryRepo creates an EntryRepo backed by store.
func NewEntryRepo(store *Store) *EntryRepo {
	return &EntryRepo{store: store}
}

func (r *EntryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Entry) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		if _, ok := lookup(r.store.entries, mt.entries, e.ID); ok {
			return fmt.Errorf("entry %s already exists", e.ID)
		}
		mt.entries[e.ID] = &entryRow{seq: r.store.nextSeq(), entry: *e}
		return nil
	})
}

func (r *EntryRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Entry, error) {
	var out *domain.Entry
	err := r.store.read(tx, func(mt *memTx) error {
		if row, ok := lookup(r.store.entries, mt.stagedEntries(), id); ok {
			out = &row.entry
		}
		return nil
	})
	return out, err
}

func (r *EntryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Entry, error) {
	if tx == nil {
		return nil, fmt.Errorf("get entry for update: transaction required")
	}
	return r.GetByID(ctx, tx, id)
}

func (r *EntryRepo) MarkReversed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reversalID uuid.UUID) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		row, ok := lookup(r.store.entries, mt.entries, id)
		if !ok || row.entry.Status != domain.EntryStatusCompleted {
			return fmt.Errorf("entry not found or not completed: %s", id)
		}
		row.entry.Status = domain.EntryStatusReversed
		row.entry.RelatedEntryID = &reversalID
		mt.entries[id] = &row
		return nil
	})
}

func (r *EntryRepo) ListByAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) ([]domain.Entry, error) {
	return r.list(tx, func(e domain.Entry) bool { return e.AccountID == accountID })
}

func (r *EntryRepo) ListBySession(ctx context.Context, tx pgx.Tx, sessionID uuid.UUID) ([]domain.Entry, error) {
	return r.list(tx, func(e domain.Entry) bool { return e.SessionID != nil && *e.SessionID == sessionID })
}

func (r *EntryRepo) ListByCorrelation(ctx context.Context, tx pgx.Tx, correlationID uuid.UUID) ([]domain.Entry, error) {
	return r.list(tx, func(e domain.Entry) bool { return e.CorrelationID != nil && *e.CorrelationID == correlationID })
}

func (r *EntryRepo) list(tx pgx.Tx, keep func(domain.Entry) bool) ([]domain.Entry, error) {
	var out []domain.Entry
	err := r.store.read(tx, func(mt *memTx) error {
		out = sortEntries(visible(r.store.entries, mt.stagedEntries(), func(row entryRow) bool { return keep(row.entry) }))
		return nil
	})
	return out, err
}
