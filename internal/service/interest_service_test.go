package service

import (
	"context"
	"testing"
	"time"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (l *testLedger) openTerm(t *testing.T, principal int64, months int) *ports.TermDepositView {
	t.Helper()
	view, err := l.interest.OpenTermDeposit(context.Background(), ports.OpenTermDepositRequest{
		CustomerID: "CUST-9",
		Currency:   domain.CurrencyHTG,
		Principal:  principal,
		TermMonths: months,
		Actor:      "teller-1",
	})
	require.NoError(t, err)
	return view
}

func TestInterestService_OpenTermDeposit_RateSelection(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	monthly := decimal.RequireFromString("0.015")

	tests := []struct {
		name    string
		req     ports.OpenTermDepositRequest
		annual  string
		monthly string
	}{
		{"standard term table", ports.OpenTermDepositRequest{Currency: domain.CurrencyHTG, TermMonths: 12}, "0.045", "0.375"},
		{"standard term table USD", ports.OpenTermDepositRequest{Currency: domain.CurrencyUSD, TermMonths: 6}, "0.0175", ""},
		{"explicit monthly fraction", ports.OpenTermDepositRequest{Currency: domain.CurrencyHTG, TermMonths: 12, MonthlyRate: &monthly}, "0.18", "1.5"},
		{"non-standard term default", ports.OpenTermDepositRequest{Currency: domain.CurrencyHTG, TermMonths: 9}, "0.42", "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.CustomerID = "CUST-1"
			tt.req.Principal = 100000
			view, err := l.interest.OpenTermDeposit(ctx, tt.req)
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.annual).Equal(view.Deposit.AnnualRate), "annual %s", view.Deposit.AnnualRate)
			if tt.monthly != "" {
				assert.True(t, decimal.RequireFromString(tt.monthly).Equal(view.Deposit.MonthlyPercent()))
			}
			assert.Equal(t, domain.AccountTypeTermSavings, view.Account.Type)
			assert.Equal(t, int64(100000), view.Account.Balance)
			assert.Equal(t, domain.TermStatusActive, view.Deposit.Status)
			assert.Equal(t, l.clock.now().AddDate(0, tt.req.TermMonths, 0), view.Deposit.MaturityDate)
		})
	}
}

func TestInterestService_OpenTermDeposit_Validation(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.interest.OpenTermDeposit(ctx, ports.OpenTermDepositRequest{CustomerID: "C", Currency: domain.CurrencyHTG, Principal: 0, TermMonths: 3})
	assertAppError(t, err, apperror.CodeInvalidAmount)

	_, err = l.interest.OpenTermDeposit(ctx, ports.OpenTermDepositRequest{CustomerID: "C", Currency: domain.CurrencyHTG, Principal: 100, TermMonths: 0})
	assertAppError(t, err, apperror.CodeInvalidTerm)

	_, err = l.interest.OpenTermDeposit(ctx, ports.OpenTermDepositRequest{Currency: domain.CurrencyHTG, Principal: 100, TermMonths: 3})
	assertAppError(t, err, apperror.CodeValidation)
}

func TestInterestService_CalculateInterest_AtMaturity(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	view := l.openTerm(t, 1000000, 3)
	id := view.Account.ID

	_, err := l.interest.CalculateInterest(ctx, id)
	assertAppError(t, err, apperror.CodeNotMatured)

	// Term savings are locked until maturity.
	_, err = l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: id, Amount: domain.NewMoney(100, domain.CurrencyHTG)})
	assertAppError(t, err, apperror.CodeNotMatured)

	l.clock.t = view.Deposit.MaturityDate
	interest, err := l.interest.CalculateInterest(ctx, id)
	require.NoError(t, err)

	// 10,000.00 × 2.5% × 90 / 365
	assert.Equal(t, domain.NewMoney(6164, domain.CurrencyHTG), interest)
	assert.Equal(t, int64(1006164), l.reload(t, id).Balance)

	got, err := l.interest.GetTermDeposit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TermStatusMatured, got.Deposit.Status)
	assert.Equal(t, int64(6164), got.Deposit.AccruedInterest)

	entries, err := l.ledger.ListEntries(ctx, id)
	require.NoError(t, err)
	last := entries[len(entries)-1]
	assert.Equal(t, domain.EntryTypeInterestAccrual, last.Type)
	assert.Equal(t, systemActor, last.ProcessedBy)

	_, err = l.interest.CalculateInterest(ctx, id)
	assertAppError(t, err, apperror.CodeTermNotActive)

	_, err = l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: id, Amount: domain.NewMoney(6164, domain.CurrencyHTG)})
	require.NoError(t, err)
	l.assertFolds(t, view.Account)
}

func TestInterestService_CalculateInterestForAllAccounts(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	a := l.openTerm(t, 100000, 3)
	b := l.openTerm(t, 200000, 3)
	suspended := l.openTerm(t, 300000, 3)
	notDue := l.openTerm(t, 400000, 12)

	_, err := l.ledger.SetStatus(ctx, suspended.Account.ID, domain.AccountStatusSuspended)
	require.NoError(t, err)

	l.clock.advance(100 * 24 * time.Hour)
	processed, err := l.interest.CalculateInterestForAllAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	for _, v := range []*ports.TermDepositView{a, b} {
		got, err := l.interest.GetTermDeposit(ctx, v.Account.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TermStatusMatured, got.Deposit.Status)
		assert.Greater(t, got.Account.Balance, v.Account.Balance)
	}
	for _, v := range []*ports.TermDepositView{suspended, notDue} {
		got, err := l.interest.GetTermDeposit(ctx, v.Account.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TermStatusActive, got.Deposit.Status)
		assert.Equal(t, v.Account.Balance, got.Account.Balance)
	}
}

func TestInterestService_Renew(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	view := l.openTerm(t, 1000000, 3)
	id := view.Account.ID

	_, err := l.interest.Renew(ctx, ports.RenewRequest{AccountID: id, TermMonths: 6})
	assertAppError(t, err, apperror.CodeTermNotMatured)

	l.clock.t = view.Deposit.MaturityDate
	_, err = l.interest.CalculateInterest(ctx, id)
	require.NoError(t, err)
	matured := l.reload(t, id).Balance

	l.clock.advance(10 * 24 * time.Hour)
	renewed, err := l.interest.Renew(ctx, ports.RenewRequest{AccountID: id, TermMonths: 6, Actor: "teller-1"})
	require.NoError(t, err)

	pending := domain.SimpleInterest(matured, view.Deposit.AnnualRate, 10)
	assert.Positive(t, pending)
	assert.Equal(t, matured+pending, renewed.Account.Balance)
	assert.Equal(t, domain.TermStatusActive, renewed.Deposit.Status)
	assert.Equal(t, 6, renewed.Deposit.TermMonths)
	assert.Equal(t, l.clock.now(), renewed.Deposit.OpenedAt)
	assert.Equal(t, l.clock.now().AddDate(0, 6, 0), renewed.Deposit.MaturityDate)
	assert.Zero(t, renewed.Deposit.AccruedInterest)

	_, err = l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: id, Amount: domain.NewMoney(100, domain.CurrencyHTG)})
	assertAppError(t, err, apperror.CodeNotMatured)
	l.assertFolds(t, view.Account)
}

func TestInterestService_CloseEarlyWithPenalty(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	view := l.openTerm(t, 1000000, 12)
	id := view.Account.ID
	l.clock.advance(30 * 24 * time.Hour)

	zero := decimal.Zero
	_, err := l.interest.CloseTermDeposit(ctx, ports.CloseTermDepositRequest{AccountID: id, PenaltyRate: &zero})
	assertAppError(t, err, apperror.CodeEarlyClosePenaltyRequired)

	res, err := l.interest.CloseTermDeposit(ctx, ports.CloseTermDepositRequest{AccountID: id, Actor: "teller-1"})
	require.NoError(t, err)

	require.NotNil(t, res.Payout)
	require.NotNil(t, res.Penalty)
	assert.Equal(t, domain.EntryTypeWithdrawal, res.Payout.Type)
	assert.Equal(t, int64(900000), res.Payout.Amount)
	assert.Equal(t, domain.EntryTypeWithdrawal, res.Penalty.Type)
	assert.Equal(t, int64(100000), res.Penalty.Amount)
	assert.Equal(t, domain.AccountStatusClosed, res.Account.Status)
	assert.Equal(t, int64(0), res.Account.Balance)

	got, err := l.interest.GetTermDeposit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TermStatusClosed, got.Deposit.Status)

	_, err = l.interest.CloseTermDeposit(ctx, ports.CloseTermDepositRequest{AccountID: id})
	assertAppError(t, err, apperror.CodeTermNotActive)
	l.assertFolds(t, view.Account)
}

func TestInterestService_CloseAtMaturityPaysInterest(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	view := l.openTerm(t, 1000000, 3)
	l.clock.t = view.Deposit.MaturityDate

	res, err := l.interest.CloseTermDeposit(ctx, ports.CloseTermDepositRequest{AccountID: view.Account.ID})
	require.NoError(t, err)

	assert.Nil(t, res.Penalty)
	require.NotNil(t, res.Payout)
	assert.Equal(t, int64(1006164), res.Payout.Amount)
	assert.Equal(t, domain.AccountStatusClosed, res.Account.Status)
}

func TestInterestService_QuoteLoan(t *testing.T) {
	l := newTestLedger(t)
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	quote, err := l.interest.QuoteLoan(ports.LoanQuoteRequest{
		Principal:   1000000,
		MonthlyRate: decimal.RequireFromString("0.02"),
		Months:      12,
		Start:       start,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(94560), quote.MonthlyPayment)
	assert.Equal(t, int64(98726), quote.MonthlyPaymentWithFee)
	require.Len(t, quote.Schedule, 12)
	assert.Equal(t, start, quote.Schedule[0].DueDate)
	assert.Equal(t, int64(0), quote.Schedule[11].Remaining)

	var principal, interest int64
	for _, inst := range quote.Schedule {
		principal += inst.Principal
		interest += inst.Interest
	}
	assert.Equal(t, int64(1000000), principal)
	assert.Equal(t, interest, quote.TotalInterest)

	_, err = l.interest.QuoteLoan(ports.LoanQuoteRequest{Principal: 1000, MonthlyRate: decimal.RequireFromString("-0.01"), Months: 3})
	assertAppError(t, err, apperror.CodeValidation)

	_, err = l.interest.QuoteLoan(ports.LoanQuoteRequest{Principal: 1000, Months: 0})
	assertAppError(t, err, apperror.CodeInvalidTerm)
}
