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

// GuaranteeServiceImpl implements ports.GuaranteeService.
type GuaranteeServiceImpl struct {
	uow        *UnitOfWork
	book       *book
	guarantees ports.GuaranteeRepository
	policy     *domain.GuaranteePolicy
	log        zerolog.Logger
	now        func() time.Time
}

// NewGuaranteeService creates a new GuaranteeServiceImpl.
func NewGuaranteeService(
	uow *UnitOfWork,
	accounts ports.AccountRepository,
	entries ports.EntryRepository,
	guarantees ports.GuaranteeRepository,
	policy *domain.GuaranteePolicy,
	log zerolog.Logger,
) *GuaranteeServiceImpl {
	if policy == nil {
		policy = domain.DefaultGuaranteePolicy()
	}
	return &GuaranteeServiceImpl{
		uow:        uow,
		book:       &book{accounts: accounts, entries: entries},
		guarantees: guarantees,
		policy:     policy,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetGuarantee blocks requestedAmount × percent(loanType) for the loan
// application, adjusting an existing guarantee by the difference. The stored
// amount changes only after the block or release succeeded.
func (s *GuaranteeServiceImpl) SetGuarantee(ctx context.Context, req ports.GuaranteeRequest) (*domain.Guarantee, error) {
	if strings.TrimSpace(req.LoanApplicationID) == "" {
		return nil, apperror.Validation("loan_application_id is required")
	}
	if strings.TrimSpace(string(req.LoanType)) == "" {
		return nil, apperror.Validation("loan_type is required")
	}
	if !req.RequestedAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	var g *domain.Guarantee
	var delta int64
	err := s.uow.Run(ctx, "set guarantee", func(tx pgx.Tx) error {
		acct, err := s.book.lock(ctx, tx, req.AccountID)
		if err != nil {
			return err
		}
		if req.RequestedAmount.Currency != acct.Currency {
			return apperror.ErrCurrencyMismatch(string(acct.Currency), string(req.RequestedAmount.Currency))
		}

		required := s.policy.RequiredBlock(req.LoanType, req.RequestedAmount)
		existing, err := s.guarantees.Get(ctx, tx, req.AccountID, req.LoanApplicationID)
		if err != nil {
			return fmt.Errorf("get guarantee: %w", err)
		}

		now := s.now()
		var current int64
		if existing != nil {
			current = existing.BlockedAmount
		}
		delta = required.Amount - current

		switch {
		case delta > 0:
			_, err = s.book.post(ctx, tx, acct, posting{
				Type:      domain.EntryTypeGuaranteeBlock,
				Amount:    domain.NewMoney(delta, acct.Currency),
				Actor:     req.Actor,
				Reference: req.LoanApplicationID,
			}, now)
		case delta < 0:
			_, err = s.book.post(ctx, tx, acct, posting{
				Type:      domain.EntryTypeGuaranteeRelease,
				Amount:    domain.NewMoney(-delta, acct.Currency),
				Actor:     req.Actor,
				Reference: req.LoanApplicationID,
			}, now)
		}
		if err != nil {
			return err
		}

		g = &domain.Guarantee{
			LoanApplicationID: req.LoanApplicationID,
			AccountID:         req.AccountID,
			LoanType:          req.LoanType,
			BlockedAmount:     required.Amount,
			Currency:          acct.Currency,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if existing != nil {
			g.CreatedAt = existing.CreatedAt
		}

		// A requirement that rounds to zero holds nothing.
		if required.IsZero() {
			if existing == nil {
				return nil
			}
			return s.guarantees.Delete(ctx, tx, req.AccountID, req.LoanApplicationID)
		}
		if err := s.guarantees.Upsert(ctx, tx, g); err != nil {
			return fmt.Errorf("upsert guarantee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", req.AccountID.String()).
		Str("loan_application_id", req.LoanApplicationID).
		Str("loan_type", string(req.LoanType)).
		Int64("blocked", g.BlockedAmount).
		Int64("delta", delta).
		Str("currency", string(g.Currency)).
		Msg("guarantee set")

	return g, nil
}

// ReleaseGuarantee unblocks the full guaranteed amount and deletes the record.
func (s *GuaranteeServiceImpl) ReleaseGuarantee(ctx context.Context, accountID uuid.UUID, loanApplicationID string, actor string) error {
	var released int64
	err := s.uow.Run(ctx, "release guarantee", func(tx pgx.Tx) error {
		acct, err := s.book.lock(ctx, tx, accountID)
		if err != nil {
			return err
		}
		g, err := s.guarantees.Get(ctx, tx, accountID, loanApplicationID)
		if err != nil {
			return fmt.Errorf("get guarantee: %w", err)
		}
		if g == nil {
			return apperror.ErrNotFound("guarantee", loanApplicationID)
		}

		released = g.BlockedAmount
		if _, err := s.book.post(ctx, tx, acct, posting{
			Type:      domain.EntryTypeGuaranteeRelease,
			Amount:    g.Blocked(),
			Actor:     actor,
			Reference: loanApplicationID,
		}, s.now()); err != nil {
			return err
		}
		if err := s.guarantees.Delete(ctx, tx, accountID, loanApplicationID); err != nil {
			return fmt.Errorf("delete guarantee: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("loan_application_id", loanApplicationID).
		Int64("released", released).
		Msg("guarantee released")
	return nil
}

// ListGuarantees returns the guarantees held on an account.
func (s *GuaranteeServiceImpl) ListGuarantees(ctx context.Context, accountID uuid.UUID) ([]domain.Guarantee, error) {
	acct, err := s.book.accounts.GetByID(ctx, nil, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		return nil, apperror.ErrNotFound("account", accountID.String())
	}
	list, err := s.guarantees.ListByAccount(ctx, nil, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list guarantees: %w", err))
	}
	return list, nil
}
