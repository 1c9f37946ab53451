package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TermDepositRepo implements ports.TermDepositRepository.
type TermDepositRepo struct {
	store *Store
}

// NewTermDepositRepo creates a TermDepositRepo backed by store.
func NewTermDepositRepo(store *Store) *TermDepositRepo {
	return &TermDepositRepo{store: store}
}

func (r *TermDepositRepo) Create(ctx context.Context, tx pgx.Tx, d *domain.TermDeposit) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		if _, ok := lookup(r.store.terms, mt.terms, d.AccountID); ok {
			return fmt.Errorf("term deposit %s already exists", d.AccountID)
		}
		row := *d
		mt.terms[d.AccountID] = &row
		return nil
	})
}

func (r *TermDepositRepo) GetByAccountID(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.TermDeposit, error) {
	var out *domain.TermDeposit
	err := r.store.read(tx, func(mt *memTx) error {
		if d, ok := lookup(r.store.terms, mt.stagedTerms(), accountID); ok {
			out = &d
		}
		return nil
	})
	return out, err
}

func (r *TermDepositRepo) Update(ctx context.Context, tx pgx.Tx, d *domain.TermDeposit) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		if _, ok := lookup(r.store.terms, mt.terms, d.AccountID); !ok {
			return fmt.Errorf("term deposit not found: %s", d.AccountID)
		}
		row := *d
		mt.terms[d.AccountID] = &row
		return nil
	})
}

func (r *TermDepositRepo) ListDue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var due []domain.TermDeposit
	err := r.store.read(nil, func(mt *memTx) error {
		due = visible(r.store.terms, nil, func(d domain.TermDeposit) bool {
			return d.Status == domain.TermStatusActive && d.IsDue(now)
		})
		return nil
	})
	sort.Slice(due, func(i, j int) bool {
		if !due[i].MaturityDate.Equal(due[j].MaturityDate) {
			return due[i].MaturityDate.Before(due[j].MaturityDate)
		}
		return due[i].AccountID.String() < due[j].AccountID.String()
	})
	ids := make([]uuid.UUID, len(due))
	for i, d := range due {
		ids[i] = d.AccountID
	}
	return ids, err
}
