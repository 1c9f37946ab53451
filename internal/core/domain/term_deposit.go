package domain

import (
	"time"

	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TermStatus represents the lifecycle of a term deposit.
type TermStatus string

const (
	TermStatusActive  TermStatus = "ACTIVE"
	TermStatusMatured TermStatus = "MATURED"
	// TermStatusRenewed is accepted from storage but never written; a renewal
	// restarts the deposit as ACTIVE.
	TermStatusRenewed TermStatus = "RENEWED"
	TermStatusClosed  TermStatus = "CLOSED"
)

// TermDeposit carries the term attributes of a TERM_SAVINGS account.
type TermDeposit struct {
	AccountID       uuid.UUID       `json:"account_id"`
	TermMonths      int             `json:"term_months"`
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	OpenedAt        time.Time       `json:"opened_at"`
	MaturityDate    time.Time       `json:"maturity_date"`
	AccruedInterest int64           `json:"accrued_interest"`
	LastAccrualAt   *time.Time      `json:"last_accrual_at,omitempty"`
	Status          TermStatus      `json:"status"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewTermDeposit starts a deposit at openedAt.
func NewTermDeposit(accountID uuid.UUID, termMonths int, annualRate decimal.Decimal, openedAt time.Time) (*TermDeposit, error) {
	if termMonths <= 0 {
		return nil, apperror.ErrInvalidTerm()
	}
	return &TermDeposit{
		AccountID:    accountID,
		TermMonths:   termMonths,
		AnnualRate:   annualRate,
		OpenedAt:     openedAt,
		MaturityDate: MaturityDate(openedAt, termMonths),
		Status:       TermStatusActive,
		UpdatedAt:    openedAt,
	}, nil
}

// MaturityDate adds calendar months to openedAt.
func MaturityDate(openedAt time.Time, termMonths int) time.Time {
	return openedAt.AddDate(0, termMonths, 0)
}

// MonthlyPercent derives the monthly rate in percent from the stored annual fraction.
func (t *TermDeposit) MonthlyPercent() decimal.Decimal {
	return t.AnnualRate.Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
}

// IsDue reports whether the maturity date has been reached.
func (t *TermDeposit) IsDue(now time.Time) bool {
	return !now.Before(t.MaturityDate)
}

// AccrualStart is the start of the period not yet covered by interest.
func (t *TermDeposit) AccrualStart() time.Time {
	if t.LastAccrualAt != nil {
		return *t.LastAccrualAt
	}
	return t.OpenedAt
}

// PendingInterest computes simple interest on principal since the last accrual.
func (t *TermDeposit) PendingInterest(principal int64, now time.Time) int64 {
	return SimpleInterest(principal, t.AnnualRate, ElapsedDays(t.AccrualStart(), now))
}

// RecordAccrual books an accrual at now.
func (t *TermDeposit) RecordAccrual(amount int64, now time.Time) {
	t.AccruedInterest += amount
	t.LastAccrualAt = &now
	t.UpdatedAt = now
}

// Restart begins a new term at now.
func (t *TermDeposit) Restart(termMonths int, now time.Time) error {
	if termMonths <= 0 {
		return apperror.ErrInvalidTerm()
	}
	t.TermMonths = termMonths
	t.OpenedAt = now
	t.MaturityDate = MaturityDate(now, termMonths)
	t.AccruedInterest = 0
	t.LastAccrualAt = nil
	t.Status = TermStatusActive
	t.UpdatedAt = now
	return nil
}

var (
	hundred    = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)
	daysInYear = decimal.NewFromInt(365)
	one        = decimal.NewFromInt(1)
)

// NormalizeAnnualRate resolves the stored annual fractional rate from an
// optional monthly rate and an optional annual rate. Values below 1 are
// fractions, values of 1 or more are percents.
//
//	monthly given: annual = monthlyPercent × 12 / 100
//	annual given:  annual = annualPercent / 100
//	neither:       annual = defaultMonthlyPercent × 12 / 100
func NormalizeAnnualRate(monthly, annual *decimal.Decimal, defaultMonthlyPercent decimal.Decimal) decimal.Decimal {
	switch {
	case monthly != nil && monthly.IsPositive():
		return asPercent(*monthly).Mul(twelve).Div(hundred)
	case annual != nil && annual.IsPositive():
		return asPercent(*annual).Div(hundred)
	default:
		return defaultMonthlyPercent.Mul(twelve).Div(hundred)
	}
}

func asPercent(r decimal.Decimal) decimal.Decimal {
	if r.LessThan(one) {
		return r.Mul(hundred)
	}
	return r
}

// DefaultAnnualRate returns the standard rate for a term, halved for USD.
// ok is false for non-standard terms.
func DefaultAnnualRate(termMonths int, c Currency) (rate decimal.Decimal, ok bool) {
	var base string
	switch termMonths {
	case 3:
		base = "0.025"
	case 6:
		base = "0.035"
	case 12:
		base = "0.045"
	case 24:
		base = "0.055"
	default:
		return decimal.Zero, false
	}
	rate = decimal.RequireFromString(base)
	if c == CurrencyUSD {
		rate = rate.Div(decimal.NewFromInt(2))
	}
	return rate, true
}

// DefaultEarlyClosePenalty is the fraction of the balance withheld when a
// deposit is closed before maturity.
func DefaultEarlyClosePenalty(termMonths int) decimal.Decimal {
	switch termMonths {
	case 3:
		return decimal.RequireFromString("0.05")
	case 6:
		return decimal.RequireFromString("0.075")
	case 24:
		return decimal.RequireFromString("0.15")
	default:
		return decimal.RequireFromString("0.10")
	}
}

// ElapsedDays counts whole days between from and to.
func ElapsedDays(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / (24 * time.Hour))
}

// SimpleInterest is principal × annualRate × days / 365, rounded to the minor unit.
func SimpleInterest(principal int64, annualRate decimal.Decimal, days int) int64 {
	if principal <= 0 || days <= 0 {
		return 0
	}
	return RoundMinor(decimal.NewFromInt(principal).
		Mul(annualRate).
		Mul(decimal.NewFromInt(int64(days))).
		Div(daysInYear))
}
