package memory

import (
	"context"
	"fmt"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CashSessionRepo implements ports.CashSessionRepository.
type CashSessionRepo struct {
	store *Store
}

// NewCashSessionRepo creates a CashSessionRepo backed by store.
func NewCashSessionRepo(store *Store) *CashSessionRepo {
	return &CashSessionRepo{store: store}
}

func (r *CashSessionRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.CashSession) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		if _, ok := lookup(r.store.sessions, mt.sessions, s.ID); ok {
			return fmt.Errorf("cash session %s already exists", s.ID)
		}
		if active := r.active(mt, s.CashierID); active != nil && s.Status != domain.SessionStatusClosed {
			return fmt.Errorf("cashier %s already has session %s", s.CashierID, active.ID)
		}
		mt.sessions[s.ID] = cloneSession(*s)
		return nil
	})
}

func (r *CashSessionRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashSession, error) {
	var out *domain.CashSession
	err := r.store.read(tx, func(mt *memTx) error {
		if s, ok := lookup(r.store.sessions, mt.stagedSessions(), id); ok {
			out = cloneSession(s)
		}
		return nil
	})
	return out, err
}

func (r *CashSessionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CashSession, error) {
	if tx == nil {
		return nil, fmt.Errorf("get cash session for update: transaction required")
	}
	return r.GetByID(ctx, tx, id)
}

// LockCashier only validates tx: transactions on the store never overlap.
func (r *CashSessionRepo) LockCashier(ctx context.Context, tx pgx.Tx, cashierID string) error {
	_, err := r.store.tx(tx)
	return err
}

func (r *CashSessionRepo) GetActiveByCashier(ctx context.Context, tx pgx.Tx, cashierID string) (*domain.CashSession, error) {
	var out *domain.CashSession
	err := r.store.read(tx, func(mt *memTx) error {
		out = r.active(mt, cashierID)
		return nil
	})
	return out, err
}

func (r *CashSessionRepo) Update(ctx context.Context, tx pgx.Tx, s *domain.CashSession) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		if _, ok := lookup(r.store.sessions, mt.sessions, s.ID); !ok {
			return fmt.Errorf("cash session not found: %s", s.ID)
		}
		mt.sessions[s.ID] = cloneSession(*s)
		return nil
	})
}

func (r *CashSessionRepo) active(mt *memTx, cashierID string) *domain.CashSession {
	found := visible(r.store.sessions, mt.stagedSessions(), func(s domain.CashSession) bool {
		return s.CashierID == cashierID && s.Status != domain.SessionStatusClosed
	})
	if len(found) == 0 {
		return nil
	}
	return cloneSession(found[0])
}
