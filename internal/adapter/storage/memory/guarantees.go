package memory

import (
	"context"
	"fmt"
	"sort"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GuaranteeRepo implements ports.GuaranteeRepository.
type GuaranteeRepo struct {
	store *Store
}

// NewGuaranteeRepo creates a GuaranteeRepo backed by store.
func NewGuaranteeRepo(store *Store) *GuaranteeRepo {
	return &GuaranteeRepo{store: store}
}

func (r *GuaranteeRepo) Get(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, loanApplicationID string) (*domain.Guarantee, error) {
	var out *domain.Guarantee
	err := r.store.read(tx, func(mt *memTx) error {
		if g, ok := lookup(r.store.guarantees, mt.stagedGuarantees(), guaranteeKey{accountID, loanApplicationID}); ok {
			out = &g
		}
		return nil
	})
	return out, err
}

func (r *GuaranteeRepo) Upsert(ctx context.Context, tx pgx.Tx, g *domain.Guarantee) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		key := guaranteeKey{g.AccountID, g.LoanApplicationID}
		row := *g
		if existing, ok := lookup(r.store.guarantees, mt.guarantees, key); ok {
			row.CreatedAt = existing.CreatedAt
			row.Currency = existing.Currency
		}
		mt.guarantees[key] = &row
		return nil
	})
}

func (r *GuaranteeRepo) Delete(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, loanApplicationID string) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		key := guaranteeKey{accountID, loanApplicationID}
		if _, ok := lookup(r.store.guarantees, mt.guarantees, key); !ok {
			return fmt.Errorf("guarantee not found: %s/%s", accountID, loanApplicationID)
		}
		mt.guarantees[key] = nil
		return nil
	})
}

func (r *GuaranteeRepo) ListByAccount(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) ([]domain.Guarantee, error) {
	var out []domain.Guarantee
	err := r.store.read(tx, func(mt *memTx) error {
		out = visible(r.store.guarantees, mt.stagedGuarantees(), func(g domain.Guarantee) bool { return g.AccountID == accountID })
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].LoanApplicationID < out[j].LoanApplicationID
	})
	return out, err
}
