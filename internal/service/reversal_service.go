package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ReversalServiceImpl implements ports.ReversalService.
type ReversalServiceImpl struct {
	uow  *UnitOfWork
	book *book
	log  zerolog.Logger
	now  func() time.Time
}

// NewReversalService creates a new ReversalServiceImpl.
func NewReversalService(
	uow *UnitOfWork,
	accounts ports.AccountRepository,
	entries ports.EntryRepository,
	sessions ports.CashSessionRepository,
	log zerolog.Logger,
) *ReversalServiceImpl {
	return &ReversalServiceImpl{
		uow:  uow,
		book: &book{accounts: accounts, entries: entries, sessions: sessions},
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Cancel compensates a completed entry with a Reversal entry and marks it
// REVERSED. Cancelling either leg of a transfer reverses both legs.
func (s *ReversalServiceImpl) Cancel(ctx context.Context, req ports.CancelRequest) (*ports.CancelResult, error) {
	var result *ports.CancelResult
	err := s.uow.Run(ctx, "cancel entry", func(tx pgx.Tx) error {
		original, err := s.book.entries.GetByIDForUpdate(ctx, tx, req.EntryID)
		if err != nil {
			return fmt.Errorf("lock entry: %w", err)
		}
		if original == nil {
			return apperror.ErrNotFound("entry", req.EntryID.String())
		}
		if original.Status == domain.EntryStatusReversed {
			return apperror.ErrAlreadyReversed(original.ID.String())
		}
		if !original.IsReversible() {
			return apperror.ErrNotReversible(string(original.Type))
		}

		now := s.now()
		if original.Type.IsTransfer() && original.CorrelationID != nil {
			result, err = s.cancelTransfer(ctx, tx, original, req, now)
			return err
		}

		acct, err := s.book.lock(ctx, tx, original.AccountID)
		if err != nil {
			return err
		}
		reversal, err := s.compensate(ctx, tx, acct, original, req, now)
		if err != nil {
			return err
		}
		result = &ports.CancelResult{Reversal: reversal}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := s.log.Info().
		Str("entry_id", req.EntryID.String()).
		Str("reversal_id", result.Reversal.ID.String()).
		Int64("amount", result.Reversal.Amount).
		Str("currency", string(result.Reversal.Currency))
	if result.Counterpart != nil {
		event = event.Str("counterpart_reversal_id", result.Counterpart.ID.String())
	}
	event.Msg("entry cancelled")

	return result, nil
}

func (s *ReversalServiceImpl) cancelTransfer(ctx context.Context, tx pgx.Tx, original *domain.Entry, req ports.CancelRequest, now time.Time) (*ports.CancelResult, error) {
	legs, err := s.book.entries.ListByCorrelation(ctx, tx, *original.CorrelationID)
	if err != nil {
		return nil, fmt.Errorf("list transfer legs: %w", err)
	}
	var other *domain.Entry
	for i := range legs {
		if legs[i].ID != original.ID && legs[i].Type.IsTransfer() {
			other, err = s.book.entries.GetByIDForUpdate(ctx, tx, legs[i].ID)
			if err != nil {
				return nil, fmt.Errorf("lock transfer leg: %w", err)
			}
			break
		}
	}
	if other == nil {
		return nil, apperror.ErrLedgerInvariantViolation(original.AccountID.String(),
			fmt.Errorf("transfer %s has no counterpart leg", original.CorrelationID))
	}
	if other.Status == domain.EntryStatusReversed {
		return nil, apperror.ErrAlreadyReversed(other.ID.String())
	}

	own, counter, err := s.book.lockPair(ctx, tx, original.AccountID, other.AccountID)
	if err != nil {
		return nil, err
	}

	// Reverse the incoming leg first: it is the one that can fail for lack of funds.
	first, firstAcct, second, secondAcct := original, own, other, counter
	if original.Type == domain.EntryTypeTransferOut {
		first, firstAcct, second, secondAcct = other, counter, original, own
	}
	firstRev, err := s.compensate(ctx, tx, firstAcct, first, req, now)
	if err != nil {
		return nil, err
	}
	secondRev, err := s.compensate(ctx, tx, secondAcct, second, req, now)
	if err != nil {
		return nil, err
	}

	if first.ID == original.ID {
		return &ports.CancelResult{Reversal: firstRev, Counterpart: secondRev}, nil
	}
	return &ports.CancelResult{Reversal: secondRev, Counterpart: firstRev}, nil
}

// compensate applies the inverse mutation of e to acct and links the entries.
func (s *ReversalServiceImpl) compensate(ctx context.Context, tx pgx.Tx, acct *domain.Account, e *domain.Entry, req ports.CancelRequest, now time.Time) (*domain.Entry, error) {
	reversal, err := s.book.post(ctx, tx, acct, posting{
		Type:         domain.EntryTypeReversal,
		Mutation:     e.Type.Mutation().Inverse(),
		Amount:       e.Money(),
		Actor:        req.Actor,
		Counterparty: e.CounterpartyAccountID,
		Related:      &e.ID,
		Correlation:  e.CorrelationID,
		Rate:         e.ExchangeRate,
		Description:  req.Reason,
		Cash:         e.Type.IsCash(),
	}, now)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == apperror.CodeInsufficientFunds {
			shortfall, _ := appErr.Details["shortfall"].(int64)
			return nil, apperror.ErrCannotReverseInsufficientFunds(shortfall, string(acct.Currency)).
				WithDetail("entry_id", e.ID.String())
		}
		return nil, err
	}
	if err := s.book.entries.MarkReversed(ctx, tx, e.ID, reversal.ID); err != nil {
		return nil, fmt.Errorf("mark entry reversed: %w", err)
	}
	return reversal, nil
}
