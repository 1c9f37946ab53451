package domain

import (
	"time"

	"microfinance-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// MonthlyPayment is the level installment repaying principal over months at
// monthlyRate (a fraction): P·r·(1+r)^n / ((1+r)^n − 1), or P/n without interest.
func MonthlyPayment(principal int64, monthlyRate decimal.Decimal, months int) (int64, error) {
	if months <= 0 {
		return 0, apperror.ErrInvalidTerm()
	}
	if principal <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	return RoundMinor(levelPayment(principal, monthlyRate, months)), nil
}

func levelPayment(principal int64, r decimal.Decimal, months int) decimal.Decimal {
	p := decimal.NewFromInt(principal)
	n := decimal.NewFromInt(int64(months))
	if !r.IsPositive() {
		return p.Div(n)
	}
	f := one.Add(r).Pow(n)
	return p.Mul(r).Mul(f).Div(f.Sub(one))
}

// MonthlyPaymentWithFee adds a flat processing fee (feeRate × principal),
// spread evenly across the installments, to the level payment.
func MonthlyPaymentWithFee(principal int64, monthlyRate decimal.Decimal, months int, feeRate decimal.Decimal) (int64, error) {
	if months <= 0 {
		return 0, apperror.ErrInvalidTerm()
	}
	if principal <= 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	fee := decimal.NewFromInt(principal).Mul(feeRate).Div(decimal.NewFromInt(int64(months)))
	return RoundMinor(levelPayment(principal, monthlyRate, months).Add(fee)), nil
}

// Installment is one line of a repayment schedule. Amounts are minor units.
type Installment struct {
	Number    int       `json:"number"`
	DueDate   time.Time `json:"due_date"`
	Principal int64     `json:"principal"`
	Interest  int64     `json:"interest"`
	Total     int64     `json:"total"`
	Remaining int64     `json:"remaining"`
}

// PaymentSchedule splits each level installment into interest on the
// outstanding balance and principal. The first installment is due on start and
// the last one absorbs rounding so that the balance ends at zero.
func PaymentSchedule(principal int64, monthlyRate decimal.Decimal, months int, start time.Time) ([]Installment, error) {
	payment, err := MonthlyPayment(principal, monthlyRate, months)
	if err != nil {
		return nil, err
	}

	schedule := make([]Installment, 0, months)
	remaining := principal
	for i := 1; i <= months; i++ {
		interest := RoundMinor(decimal.NewFromInt(remaining).Mul(monthlyRate))
		princ := payment - interest
		if i == months || princ > remaining {
			princ = remaining
		}
		remaining -= princ
		schedule = append(schedule, Installment{
			Number:    i,
			DueDate:   start.AddDate(0, i-1, 0),
			Principal: princ,
			Interest:  interest,
			Total:     princ + interest,
			Remaining: remaining,
		})
	}
	return schedule, nil
}
