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
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TransferServiceImpl implements ports.TransferService.
type TransferServiceImpl struct {
	uow   *UnitOfWork
	book  *book
	rates ports.ExchangeRateProvider
	log   zerolog.Logger
	now   func() time.Time
}

// NewTransferService creates a new TransferServiceImpl. rates may be nil, in
// which case cross-currency transfers are refused.
func NewTransferService(
	uow *UnitOfWork,
	accounts ports.AccountRepository,
	entries ports.EntryRepository,
	rates ports.ExchangeRateProvider,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		uow:   uow,
		book:  &book{accounts: accounts, entries: entries},
		rates: rates,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Transfer debits the source and credits the destination in one unit of
// work. Accounts are locked in ascending id order.
func (s *TransferServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	if req.SourceAccountID == req.DestinationAccountID {
		return nil, apperror.ErrSameAccount()
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	// The rate is resolved before any lock is taken. Account currencies never
	// change, so the unlocked read is safe for this purpose.
	rate, err := s.resolveRate(ctx, req)
	if err != nil {
		return nil, err
	}

	var result *ports.TransferResult
	err = s.uow.Run(ctx, "transfer", func(tx pgx.Tx) error {
		src, dst, err := s.book.lockPair(ctx, tx, req.SourceAccountID, req.DestinationAccountID)
		if err != nil {
			return err
		}
		for _, acct := range []*domain.Account{src, dst} {
			if !acct.IsActive() {
				return apperror.ErrAccountNotActive(acct.ID.String())
			}
		}
		if req.Amount.Currency != src.Currency {
			return apperror.ErrCurrencyMismatch(string(src.Currency), string(req.Amount.Currency))
		}

		credited := req.Amount
		if dst.Currency != src.Currency {
			if rate == nil {
				return apperror.ErrCurrencyMismatch(string(src.Currency), string(dst.Currency))
			}
			credited, err = req.Amount.Convert(dst.Currency, *rate)
			if err != nil {
				return err
			}
			if !credited.IsPositive() {
				return apperror.ErrInvalidAmount()
			}
		}

		now := s.now()
		correlation := uuid.New()
		out, err := s.book.post(ctx, tx, src, posting{
			Type:         domain.EntryTypeTransferOut,
			Amount:       req.Amount,
			Actor:        req.Actor,
			Counterparty: &dst.ID,
			Correlation:  &correlation,
			Rate:         rate,
			Description:  req.Description,
		}, now)
		if err != nil {
			return err
		}
		in, err := s.book.post(ctx, tx, dst, posting{
			Type:         domain.EntryTypeTransferIn,
			Amount:       credited,
			Actor:        req.Actor,
			Counterparty: &src.ID,
			Correlation:  &correlation,
			Rate:         rate,
			Description:  req.Description,
		}, now)
		if err != nil {
			return err
		}
		result = &ports.TransferResult{Out: out, In: in, Rate: rate}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("correlation_id", result.Out.CorrelationID.String()).
		Str("source_account_id", req.SourceAccountID.String()).
		Str("destination_account_id", req.DestinationAccountID.String()).
		Int64("amount", result.Out.Amount).
		Str("currency", string(result.Out.Currency)).
		Int64("credited", result.In.Amount).
		Msg("transfer completed")

	return result, nil
}

// resolveRate returns nil for same-currency transfers.
func (s *TransferServiceImpl) resolveRate(ctx context.Context, req ports.TransferRequest) (*decimal.Decimal, error) {
	src, err := s.book.accounts.GetByID(ctx, nil, req.SourceAccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get source account: %w", err))
	}
	dst, err := s.book.accounts.GetByID(ctx, nil, req.DestinationAccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get destination account: %w", err))
	}
	if src == nil || dst == nil || src.Currency == dst.Currency {
		return nil, nil
	}
	if s.rates == nil {
		return nil, apperror.ErrCurrencyMismatch(string(src.Currency), string(dst.Currency))
	}

	rate, err := s.rates.Rate(ctx, src.Currency, dst.Currency)
	if err != nil {
		if apperror.Is(err, apperror.CodeNoExchangeRate) {
			return nil, apperror.ErrCurrencyMismatch(string(src.Currency), string(dst.Currency)).
				WithDetail("reason", "no exchange rate")
		}
		return nil, err
	}
	return &rate, nil
}
