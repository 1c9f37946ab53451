package memory

import (
	"context"
	"fmt"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	store *Store
}

// NewAccountRepo creates an AccountRepo backed by store.
func NewAccountRepo(store *Store) *AccountRepo {
	return &AccountRepo{store: store}
}

func (r *AccountRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		if _, ok := lookup(r.store.accounts, mt.accounts, a.ID); ok {
			return fmt.Errorf("account %s already exists", a.ID)
		}
		if r.numberTaken(mt, a.Number) {
			return fmt.Errorf("account number %s: %w", a.Number, ports.ErrConcurrentUpdate)
		}
		row := *a
		mt.accounts[a.ID] = &row
		return nil
	})
}

func (r *AccountRepo) GetByID(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	var out *domain.Account
	err := r.store.read(tx, func(mt *memTx) error {
		if a, ok := lookup(r.store.accounts, mt.stagedAccounts(), id); ok {
			out = &a
		}
		return nil
	})
	return out, err
}

func (r *AccountRepo) GetByNumber(ctx context.Context, tx pgx.Tx, number string) (*domain.Account, error) {
	var out *domain.Account
	err := r.store.read(tx, func(mt *memTx) error {
		found := visible(r.store.accounts, mt.stagedAccounts(), func(a domain.Account) bool { return a.Number == number })
		if len(found) > 0 {
			out = &found[0]
		}
		return nil
	})
	return out, err
}

// GetByIDForUpdate is GetByID: the running transaction already excludes writers.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	if tx == nil {
		return nil, fmt.Errorf("get account for update: transaction required")
	}
	return r.GetByID(ctx, tx, id)
}

func (r *AccountRepo) Update(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	return r.store.write(ctx, tx, func(mt *memTx) error {
		current, ok := lookup(r.store.accounts, mt.accounts, a.ID)
		if !ok || current.Version != a.Version {
			return fmt.Errorf("update account %s at version %d: %w", a.ID, a.Version, ports.ErrConcurrentUpdate)
		}
		current.Balance = a.Balance
		current.BlockedBalance = a.BlockedBalance
		current.Status = a.Status
		current.ClosedAt = a.ClosedAt
		current.UpdatedAt = a.UpdatedAt
		current.Version++
		mt.accounts[a.ID] = &current
		a.Version = current.Version
		return nil
	})
}

func (r *AccountRepo) NumberExists(ctx context.Context, tx pgx.Tx, number string) (bool, error) {
	var exists bool
	err := r.store.read(tx, func(mt *memTx) error {
		exists = r.numberTaken(mt, number)
		return nil
	})
	return exists, err
}

func (r *AccountRepo) numberTaken(mt *memTx, number string) bool {
	return len(visible(r.store.accounts, mt.stagedAccounts(), func(a domain.Account) bool { return a.Number == number })) > 0
}
