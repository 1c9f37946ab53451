package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	uow   *UnitOfWork
	book  *book
	terms ports.TermDepositRepository
	log   zerolog.Logger
	now   func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	uow *UnitOfWork,
	accounts ports.AccountRepository,
	entries ports.EntryRepository,
	sessions ports.CashSessionRepository,
	terms ports.TermDepositRepository,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		uow:   uow,
		book:  &book{accounts: accounts, entries: entries, sessions: sessions},
		terms: terms,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// OpenAccount creates a savings or current account. A positive initial
// deposit is logged as a cash deposit so the entry fold holds from opening.
func (s *LedgerServiceImpl) OpenAccount(ctx context.Context, req ports.OpenAccountRequest) (*domain.Account, error) {
	if strings.TrimSpace(req.CustomerID) == "" {
		return nil, apperror.Validation("customer_id is required")
	}
	if !req.Type.Valid() || req.Type == domain.AccountTypeTermSavings {
		return nil, apperror.Validation(fmt.Sprintf("unsupported account type %q", req.Type))
	}
	if !req.Currency.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unsupported currency %q", req.Currency))
	}
	if req.InitialDeposit < 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.InitialDeposit > 0 && req.RequireApproval {
		return nil, apperror.Validation("initial deposit requires an active account")
	}

	status := domain.AccountStatusActive
	if req.RequireApproval {
		status = domain.AccountStatusPendingApproval
	}

	var acct *domain.Account
	err := s.uow.Run(ctx, "open account", func(tx pgx.Tx) error {
		now := s.now()
		var err error
		acct, err = s.book.openAccount(ctx, tx, req.CustomerID, req.Type, req.Currency, status, now)
		if err != nil {
			return err
		}
		if req.InitialDeposit > 0 {
			_, err = s.book.post(ctx, tx, acct, posting{
				Type:        domain.EntryTypeDeposit,
				Amount:      domain.NewMoney(req.InitialDeposit, req.Currency),
				Actor:       req.Actor,
				Description: "initial deposit",
				Cash:        true,
			}, now)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", acct.ID.String()).
		Str("number", acct.Number).
		Str("currency", string(acct.Currency)).
		Int64("initial_deposit", req.InitialDeposit).
		Msg("account opened")

	return acct, nil
}

// GetAccount returns an account by id.
func (s *LedgerServiceImpl) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acct, err := s.book.accounts.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		return nil, apperror.ErrNotFound("account", id.String())
	}
	return acct, nil
}

// GetAccountByNumber returns an account by its G/D number.
func (s *LedgerServiceImpl) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if err := domain.ValidateAccountNumber(number, ""); err != nil {
		return nil, err
	}
	acct, err := s.book.accounts.GetByNumber(ctx, nil, number)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account by number: %w", err))
	}
	if acct == nil {
		return nil, apperror.ErrNotFound("account", number)
	}
	return acct, nil
}

// Deposit credits cash to an account.
func (s *LedgerServiceImpl) Deposit(ctx context.Context, req ports.MovementRequest) (*domain.Entry, error) {
	return s.move(ctx, req, domain.EntryTypeDeposit)
}

// Withdraw debits cash from an account. Term savings can only be withdrawn
// once matured.
func (s *LedgerServiceImpl) Withdraw(ctx context.Context, req ports.MovementRequest) (*domain.Entry, error) {
	return s.move(ctx, req, domain.EntryTypeWithdrawal)
}

func (s *LedgerServiceImpl) move(ctx context.Context, req ports.MovementRequest, t domain.EntryType) (*domain.Entry, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	var entry *domain.Entry
	err := s.uow.Run(ctx, strings.ToLower(string(t)), func(tx pgx.Tx) error {
		acct, err := s.book.lock(ctx, tx, req.AccountID)
		if err != nil {
			return err
		}
		if t == domain.EntryTypeWithdrawal && acct.Type == domain.AccountTypeTermSavings {
			if err := s.checkMatured(ctx, tx, acct.ID); err != nil {
				return err
			}
		}
		entry, err = s.book.post(ctx, tx, acct, posting{
			Type:        t,
			Amount:      req.Amount,
			Actor:       req.Actor,
			Description: req.Description,
			Cash:        true,
		}, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", entry.AccountID.String()).
		Str("entry_id", entry.ID.String()).
		Str("type", string(entry.Type)).
		Int64("amount", entry.Amount).
		Str("currency", string(entry.Currency)).
		Msg("cash movement posted")

	return entry, nil
}

func (s *LedgerServiceImpl) checkMatured(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) error {
	deposit, err := s.terms.GetByAccountID(ctx, tx, accountID)
	if err != nil {
		return fmt.Errorf("get term deposit: %w", err)
	}
	if deposit == nil || deposit.Status != domain.TermStatusMatured {
		return apperror.ErrNotMatured()
	}
	return nil
}

// SetStatus approves, suspends or reactivates an account.
func (s *LedgerServiceImpl) SetStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) (*domain.Account, error) {
	var acct *domain.Account
	err := s.uow.Run(ctx, "set account status", func(tx pgx.Tx) error {
		var err error
		acct, err = s.book.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := acct.TransitionTo(status); err != nil {
			return err
		}
		acct.UpdatedAt = s.now()
		return s.book.accounts.Update(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", id.String()).Str("status", string(status)).Msg("account status changed")
	return acct, nil
}

// CloseAccount closes an account whose balance and blocked balance are zero.
func (s *LedgerServiceImpl) CloseAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var acct *domain.Account
	err := s.uow.Run(ctx, "close account", func(tx pgx.Tx) error {
		var err error
		acct, err = s.book.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		now := s.now()
		if err := acct.Close(now); err != nil {
			return err
		}
		acct.UpdatedAt = now
		return s.book.accounts.Update(ctx, tx, acct)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", id.String()).Msg("account closed")
	return acct, nil
}

// ReconcileAccount folds the entry log under the account lock and compares it
// with the materialized balances.
func (s *LedgerServiceImpl) ReconcileAccount(ctx context.Context, id uuid.UUID) (*ports.AccountReconciliation, error) {
	var rec *ports.AccountReconciliation
	err := s.uow.Run(ctx, "reconcile account", func(tx pgx.Tx) error {
		acct, err := s.book.lock(ctx, tx, id)
		if err != nil {
			return err
		}
		entries, err := s.book.entries.ListByAccount(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		balance, blocked := domain.Fold(entries)
		rec = &ports.AccountReconciliation{
			AccountID:     id,
			Balance:       acct.Balance,
			FoldedBalance: balance,
			Blocked:       acct.BlockedBalance,
			FoldedBlocked: blocked,
			Entries:       len(entries),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rec.Balance != rec.FoldedBalance || rec.Blocked != rec.FoldedBlocked {
		s.log.Error().
			Str("account_id", id.String()).
			Int64("balance", rec.Balance).
			Int64("folded_balance", rec.FoldedBalance).
			Int64("blocked", rec.Blocked).
			Int64("folded_blocked", rec.FoldedBlocked).
			Msg("ledger invariant violated")
		return rec, apperror.ErrLedgerInvariantViolation(id.String(),
			fmt.Errorf("balance %d/%d, blocked %d/%d", rec.Balance, rec.FoldedBalance, rec.Blocked, rec.FoldedBlocked)).
			WithDetail("folded_balance", rec.FoldedBalance).
			WithDetail("folded_blocked", rec.FoldedBlocked)
	}
	return rec, nil
}

// ListEntries returns an account statement in creation order.
func (s *LedgerServiceImpl) ListEntries(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error) {
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	entries, err := s.book.entries.ListByAccount(ctx, nil, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list entries: %w", err))
	}
	return entries, nil
}
