package service

import (
	"context"
	"fmt"
	"time"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountNumberAttempts = 5

// book applies mutators to locked accounts and appends the matching entry.
// Every balance change in the services goes through post.
type book struct {
	accounts ports.AccountRepository
	entries  ports.EntryRepository
	sessions ports.CashSessionRepository
}

// posting describes one mutation and the entry that records it.
type posting struct {
	Type         domain.EntryType
	Mutation     domain.Mutation
	Amount       domain.Money
	Actor        string
	Counterparty *uuid.UUID
	Related      *uuid.UUID
	Correlation  *uuid.UUID
	Rate         *decimal.Decimal
	Reference    string
	Description  string
	// Cash marks movements of physical cash, attributed to the actor's open session.
	Cash bool
}

// lock loads an account with a row lock.
func (b *book) lock(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	acct, err := b.accounts.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("lock account: %w", err)
	}
	if acct == nil {
		return nil, apperror.ErrNotFound("account", id.String())
	}
	return acct, nil
}

// lockPair locks two accounts in ascending id order and returns them in
// argument order.
func (b *book) lockPair(ctx context.Context, tx pgx.Tx, first, second uuid.UUID) (*domain.Account, *domain.Account, error) {
	lo, hi := first, second
	if hi.String() < lo.String() {
		lo, hi = hi, lo
	}
	loAcct, err := b.lock(ctx, tx, lo)
	if err != nil {
		return nil, nil, err
	}
	hiAcct, err := b.lock(ctx, tx, hi)
	if err != nil {
		return nil, nil, err
	}
	if lo == first {
		return loAcct, hiAcct, nil
	}
	return hiAcct, loAcct, nil
}

// post mutates acct, persists it and appends the entry, all inside tx.
func (b *book) post(ctx context.Context, tx pgx.Tx, acct *domain.Account, p posting, now time.Time) (*domain.Entry, error) {
	mutation := p.Mutation
	if mutation == 0 {
		mutation = p.Type.Mutation()
	}
	eff, err := acct.Apply(mutation, p.Amount)
	if err != nil {
		return nil, err
	}
	if err := acct.CheckInvariant(); err != nil {
		return nil, apperror.ErrLedgerInvariantViolation(acct.ID.String(), err)
	}
	acct.UpdatedAt = now
	if err := b.accounts.Update(ctx, tx, acct); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	entry := domain.NewEntry(acct, p.Type, p.Amount, eff, p.Actor, now)
	entry.CounterpartyAccountID = p.Counterparty
	entry.RelatedEntryID = p.Related
	entry.CorrelationID = p.Correlation
	entry.ExchangeRate = p.Rate
	entry.Reference = p.Reference
	entry.Description = p.Description

	if p.Cash && b.sessions != nil && p.Actor != "" {
		session, err := b.sessions.GetActiveByCashier(ctx, tx, p.Actor)
		if err != nil {
			return nil, fmt.Errorf("find cash session: %w", err)
		}
		if session != nil && session.Status == domain.SessionStatusOpen {
			entry.SessionID = &session.ID
		}
	}

	if err := b.entries.Create(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return entry, nil
}

// openAccount creates an account with a fresh unique number.
func (b *book) openAccount(ctx context.Context, tx pgx.Tx, customerID string, t domain.AccountType, c domain.Currency, status domain.AccountStatus, now time.Time) (*domain.Account, error) {
	var number string
	for i := 0; ; i++ {
		n, err := domain.GenerateAccountNumber(c)
		if err != nil {
			return nil, fmt.Errorf("generate account number: %w", err)
		}
		exists, err := b.accounts.NumberExists(ctx, tx, n)
		if err != nil {
			return nil, fmt.Errorf("check account number: %w", err)
		}
		if !exists {
			number = n
			break
		}
		if i+1 >= accountNumberAttempts {
			return nil, fmt.Errorf("no free account number after %d attempts", accountNumberAttempts)
		}
	}

	acct := &domain.Account{
		ID:         uuid.New(),
		Number:     number,
		CustomerID: customerID,
		Type:       t,
		Currency:   c,
		Status:     status,
		OpenedAt:   now,
		UpdatedAt:  now,
	}
	if err := b.accounts.Create(ctx, tx, acct); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return acct, nil
}
