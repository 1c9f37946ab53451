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
	"github.com/shopspring/decimal"
)

// systemActor is recorded as processed_by on scheduled accruals.
const systemActor = "system"

// InterestSettings holds the configurable rates of the interest engine.
type InterestSettings struct {
	// DefaultMonthlyPercent applies to non-standard terms opened without a rate.
	DefaultMonthlyPercent decimal.Decimal
	// ProcessingFeeRate is the loan fee as a fraction of principal.
	ProcessingFeeRate decimal.Decimal
}

// DefaultInterestSettings returns 3.5% monthly and a 5% processing fee.
func DefaultInterestSettings() InterestSettings {
	return InterestSettings{
		DefaultMonthlyPercent: decimal.RequireFromString("3.5"),
		ProcessingFeeRate:     decimal.RequireFromString("0.05"),
	}
}

// InterestServiceImpl implements ports.InterestService.
type InterestServiceImpl struct {
	uow      *UnitOfWork
	book     *book
	terms    ports.TermDepositRepository
	settings InterestSettings
	log      zerolog.Logger
	now      func() time.Time
}

// NewInterestService creates a new InterestServiceImpl.
func NewInterestService(
	uow *UnitOfWork,
	accounts ports.AccountRepository,
	entries ports.EntryRepository,
	sessions ports.CashSessionRepository,
	terms ports.TermDepositRepository,
	settings InterestSettings,
	log zerolog.Logger,
) *InterestServiceImpl {
	return &InterestServiceImpl{
		uow:      uow,
		book:     &book{accounts: accounts, entries: entries, sessions: sessions},
		terms:    terms,
		settings: settings,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// annualRate picks the stored rate: an explicit monthly or annual rate is
// normalized, otherwise standard terms take the rate table and other terms
// the configured monthly default.
func (s *InterestServiceImpl) annualRate(req ports.OpenTermDepositRequest) decimal.Decimal {
	explicit := (req.MonthlyRate != nil && req.MonthlyRate.IsPositive()) ||
		(req.AnnualRate != nil && req.AnnualRate.IsPositive())
	if !explicit {
		if rate, ok := domain.DefaultAnnualRate(req.TermMonths, req.Currency); ok {
			return rate
		}
	}
	return domain.NormalizeAnnualRate(req.MonthlyRate, req.AnnualRate, s.settings.DefaultMonthlyPercent)
}

// OpenTermDeposit opens a TERM_SAVINGS account funded with the principal.
func (s *InterestServiceImpl) OpenTermDeposit(ctx context.Context, req ports.OpenTermDepositRequest) (*ports.TermDepositView, error) {
	if strings.TrimSpace(req.CustomerID) == "" {
		return nil, apperror.Validation("customer_id is required")
	}
	if !req.Currency.Valid() {
		return nil, apperror.Validation(fmt.Sprintf("unsupported currency %q", req.Currency))
	}
	if req.Principal <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.TermMonths <= 0 {
		return nil, apperror.ErrInvalidTerm()
	}
	rate := s.annualRate(req)

	view := &ports.TermDepositView{}
	err := s.uow.Run(ctx, "open term deposit", func(tx pgx.Tx) error {
		now := s.now()
		acct, err := s.book.openAccount(ctx, tx, req.CustomerID, domain.AccountTypeTermSavings, req.Currency, domain.AccountStatusActive, now)
		if err != nil {
			return err
		}
		if _, err := s.book.post(ctx, tx, acct, posting{
			Type:        domain.EntryTypeDeposit,
			Amount:      domain.NewMoney(req.Principal, req.Currency),
			Actor:       req.Actor,
			Description: "term deposit principal",
			Cash:        true,
		}, now); err != nil {
			return err
		}
		deposit, err := domain.NewTermDeposit(acct.ID, req.TermMonths, rate, now)
		if err != nil {
			return err
		}
		if err := s.terms.Create(ctx, tx, deposit); err != nil {
			return fmt.Errorf("create term deposit: %w", err)
		}
		view.Account, view.Deposit = acct, deposit
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", view.Account.ID.String()).
		Int("term_months", req.TermMonths).
		Str("annual_rate", rate.String()).
		Time("maturity_date", view.Deposit.MaturityDate).
		Msg("term deposit opened")

	return view, nil
}

// GetTermDeposit returns a deposit with its account.
func (s *InterestServiceImpl) GetTermDeposit(ctx context.Context, accountID uuid.UUID) (*ports.TermDepositView, error) {
	acct, err := s.book.accounts.GetByID(ctx, nil, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	deposit, err := s.terms.GetByAccountID(ctx, nil, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get term deposit: %w", err))
	}
	if acct == nil || deposit == nil {
		return nil, apperror.ErrNotFound("term deposit", accountID.String())
	}
	return &ports.TermDepositView{Account: acct, Deposit: deposit}, nil
}

// lockDeposit locks the account and loads its deposit. Term deposit rows are
// only written under the account lock.
func (s *InterestServiceImpl) lockDeposit(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (*domain.Account, *domain.TermDeposit, error) {
	acct, err := s.book.lock(ctx, tx, accountID)
	if err != nil {
		return nil, nil, err
	}
	deposit, err := s.terms.GetByAccountID(ctx, tx, accountID)
	if err != nil {
		return nil, nil, fmt.Errorf("get term deposit: %w", err)
	}
	if deposit == nil {
		return nil, nil, apperror.ErrNotFound("term deposit", accountID.String())
	}
	return acct, deposit, nil
}

// accrue credits the interest pending since the last accrual and records it
// on the deposit. A zero amount is recorded without an entry.
func (s *InterestServiceImpl) accrue(ctx context.Context, tx pgx.Tx, acct *domain.Account, deposit *domain.TermDeposit, actor string, now time.Time) (int64, error) {
	amount := deposit.PendingInterest(acct.Balance, now)
	if amount > 0 {
		if _, err := s.book.post(ctx, tx, acct, posting{
			Type:        domain.EntryTypeInterestAccrual,
			Amount:      domain.NewMoney(amount, acct.Currency),
			Actor:       actor,
			Description: fmt.Sprintf("interest %s%%/month", deposit.MonthlyPercent().StringFixed(2)),
		}, now); err != nil {
			return 0, err
		}
	}
	deposit.RecordAccrual(amount, now)
	return amount, nil
}

// CalculateInterest accrues interest on a deposit that reached maturity and
// moves it to MATURED.
func (s *InterestServiceImpl) CalculateInterest(ctx context.Context, accountID uuid.UUID) (domain.Money, error) {
	var interest domain.Money
	err := s.uow.Run(ctx, "calculate interest", func(tx pgx.Tx) error {
		acct, deposit, err := s.lockDeposit(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if !acct.IsActive() {
			return apperror.ErrAccountNotActive(accountID.String())
		}
		if deposit.Status != domain.TermStatusActive {
			return apperror.ErrTermNotActive(string(deposit.Status))
		}
		now := s.now()
		if !deposit.IsDue(now) {
			return apperror.ErrNotMatured()
		}

		amount, err := s.accrue(ctx, tx, acct, deposit, systemActor, now)
		if err != nil {
			return err
		}
		deposit.Status = domain.TermStatusMatured
		if err := s.terms.Update(ctx, tx, deposit); err != nil {
			return fmt.Errorf("update term deposit: %w", err)
		}
		interest = domain.NewMoney(amount, acct.Currency)
		return nil
	})
	if err != nil {
		return domain.Money{}, err
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("interest", interest.Amount).
		Str("currency", string(interest.Currency)).
		Msg("interest accrued")

	return interest, nil
}

// CalculateInterestForAllAccounts accrues every due deposit in its own unit
// of work and returns how many succeeded.
func (s *InterestServiceImpl) CalculateInterestForAllAccounts(ctx context.Context) (int, error) {
	due, err := s.terms.ListDue(ctx, s.now())
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list due deposits: %w", err))
	}

	processed := 0
	for _, id := range due {
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if _, err := s.CalculateInterest(ctx, id); err != nil {
			s.log.Warn().Err(err).Str("account_id", id.String()).Msg("interest accrual skipped")
			continue
		}
		processed++
	}

	s.log.Info().Int("due", len(due)).Int("processed", processed).Msg("interest batch finished")
	return processed, nil
}

// Renew restarts a matured deposit after accruing any interest earned since
// maturity.
func (s *InterestServiceImpl) Renew(ctx context.Context, req ports.RenewRequest) (*ports.TermDepositView, error) {
	if req.TermMonths < 0 {
		return nil, apperror.ErrInvalidTerm()
	}

	view := &ports.TermDepositView{}
	err := s.uow.Run(ctx, "renew term deposit", func(tx pgx.Tx) error {
		acct, deposit, err := s.lockDeposit(ctx, tx, req.AccountID)
		if err != nil {
			return err
		}
		if deposit.Status != domain.TermStatusMatured {
			return apperror.ErrTermNotMatured(string(deposit.Status))
		}
		now := s.now()
		if _, err := s.accrue(ctx, tx, acct, deposit, req.Actor, now); err != nil {
			return err
		}
		term := req.TermMonths
		if term == 0 {
			term = deposit.TermMonths
		}
		if err := deposit.Restart(term, now); err != nil {
			return err
		}
		if err := s.terms.Update(ctx, tx, deposit); err != nil {
			return fmt.Errorf("update term deposit: %w", err)
		}
		view.Account, view.Deposit = acct, deposit
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", req.AccountID.String()).
		Int("term_months", view.Deposit.TermMonths).
		Time("maturity_date", view.Deposit.MaturityDate).
		Msg("term deposit renewed")

	return view, nil
}

// CloseTermDeposit pays out the balance and closes the account. Before
// maturity a penalty is withheld as a separate withdrawal.
func (s *InterestServiceImpl) CloseTermDeposit(ctx context.Context, req ports.CloseTermDepositRequest) (*ports.TermCloseResult, error) {
	if req.PenaltyRate != nil && req.PenaltyRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, apperror.Validation("penalty rate must be a fraction")
	}

	res := &ports.TermCloseResult{}
	err := s.uow.Run(ctx, "close term deposit", func(tx pgx.Tx) error {
		res.Payout, res.Penalty = nil, nil
		acct, deposit, err := s.lockDeposit(ctx, tx, req.AccountID)
		if err != nil {
			return err
		}
		if deposit.Status == domain.TermStatusClosed {
			return apperror.ErrTermNotActive(string(deposit.Status))
		}
		now := s.now()

		matured := deposit.Status == domain.TermStatusMatured
		if !matured && deposit.IsDue(now) {
			if _, err := s.accrue(ctx, tx, acct, deposit, req.Actor, now); err != nil {
				return err
			}
			matured = true
		}

		var penalty int64
		if !matured {
			rate := domain.DefaultEarlyClosePenalty(deposit.TermMonths)
			if req.PenaltyRate != nil {
				rate = *req.PenaltyRate
			}
			if !rate.IsPositive() {
				return apperror.ErrEarlyClosePenaltyRequired()
			}
			penalty = domain.NewMoney(acct.Balance, acct.Currency).MulRate(rate).Amount
		}

		if payout := acct.Balance - penalty; payout > 0 {
			res.Payout, err = s.book.post(ctx, tx, acct, posting{
				Type:        domain.EntryTypeWithdrawal,
				Amount:      domain.NewMoney(payout, acct.Currency),
				Actor:       req.Actor,
				Description: "term deposit payout",
				Cash:        true,
			}, now)
			if err != nil {
				return err
			}
		}
		if penalty > 0 {
			res.Penalty, err = s.book.post(ctx, tx, acct, posting{
				Type:        domain.EntryTypeWithdrawal,
				Amount:      domain.NewMoney(penalty, acct.Currency),
				Actor:       req.Actor,
				Description: "early close penalty",
			}, now)
			if err != nil {
				return err
			}
		}

		if err := acct.Close(now); err != nil {
			return err
		}
		acct.UpdatedAt = now
		if err := s.book.accounts.Update(ctx, tx, acct); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		deposit.Status = domain.TermStatusClosed
		deposit.UpdatedAt = now
		if err := s.terms.Update(ctx, tx, deposit); err != nil {
			return fmt.Errorf("update term deposit: %w", err)
		}
		res.Account = acct
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := s.log.Info().Str("account_id", req.AccountID.String())
	if res.Payout != nil {
		ev = ev.Int64("payout", res.Payout.Amount)
	}
	if res.Penalty != nil {
		ev = ev.Int64("penalty", res.Penalty.Amount)
	}
	ev.Msg("term deposit closed")

	return res, nil
}

// QuoteLoan computes a level-payment repayment plan.
func (s *InterestServiceImpl) QuoteLoan(req ports.LoanQuoteRequest) (*ports.LoanQuote, error) {
	if req.MonthlyRate.IsNegative() {
		return nil, apperror.Validation("monthly rate must not be negative")
	}
	start := req.Start
	if start.IsZero() {
		start = s.now()
	}

	payment, err := domain.MonthlyPayment(req.Principal, req.MonthlyRate, req.Months)
	if err != nil {
		return nil, err
	}
	withFee, err := domain.MonthlyPaymentWithFee(req.Principal, req.MonthlyRate, req.Months, s.settings.ProcessingFeeRate)
	if err != nil {
		return nil, err
	}
	schedule, err := domain.PaymentSchedule(req.Principal, req.MonthlyRate, req.Months, start)
	if err != nil {
		return nil, err
	}

	quote := &ports.LoanQuote{
		MonthlyPayment:        payment,
		MonthlyPaymentWithFee: withFee,
		Schedule:              schedule,
	}
	for _, inst := range schedule {
		quote.TotalInterest += inst.Interest
	}
	return quote, nil
}
