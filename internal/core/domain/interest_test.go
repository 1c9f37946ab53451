package domain

import (
	"testing"
	"time"

	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNormalizeAnnualRate(t *testing.T) {
	def := decimal.RequireFromString("3.5")

	tests := []struct {
		name           string
		monthly        *decimal.Decimal
		annual         *decimal.Decimal
		wantAnnual     string
		wantMonthlyPct string
	}{
		{"monthly fraction", dec("0.015"), nil, "0.18", "1.5"},
		{"monthly percent", dec("1.5"), nil, "0.18", "1.5"},
		{"monthly wins over annual", dec("0.02"), dec("0.5"), "0.24", "2"},
		{"annual fraction", nil, dec("0.12"), "0.12", "1"},
		{"annual percent", nil, dec("12"), "0.12", "1"},
		{"zero monthly falls through to annual", dec("0"), dec("0.06"), "0.06", "0.5"},
		{"default", nil, nil, "0.42", "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annual := NormalizeAnnualRate(tt.monthly, tt.annual, def)
			assert.True(t, decimal.RequireFromString(tt.wantAnnual).Equal(annual), "annual %s", annual)

			td := &TermDeposit{AnnualRate: annual}
			assert.True(t, decimal.RequireFromString(tt.wantMonthlyPct).Equal(td.MonthlyPercent()), "monthly %s", td.MonthlyPercent())
		})
	}
}

func TestDefaultAnnualRate(t *testing.T) {
	r, ok := DefaultAnnualRate(12, CurrencyHTG)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.045").Equal(r))

	r, ok = DefaultAnnualRate(12, CurrencyUSD)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("0.0225").Equal(r))

	_, ok = DefaultAnnualRate(9, CurrencyHTG)
	assert.False(t, ok)
}

func TestSimpleInterest(t *testing.T) {
	rate := decimal.RequireFromString("0.045")

	assert.Equal(t, int64(45000), SimpleInterest(1_000_000, rate, 365))
	// 100000 × 0.045 × 91 / 365 = 1121.917...
	assert.Equal(t, int64(1122), SimpleInterest(100_000, rate, 91))
	assert.Equal(t, int64(0), SimpleInterest(100_000, rate, 0))
	assert.Equal(t, int64(0), SimpleInterest(0, rate, 30))
}

func TestTermDeposit_Lifecycle(t *testing.T) {
	opened := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
	td, err := NewTermDeposit(uuid.New(), 3, decimal.RequireFromString("0.025"), opened)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), td.MaturityDate)
	assert.False(t, td.IsDue(opened.AddDate(0, 2, 0)))
	assert.True(t, td.IsDue(td.MaturityDate))

	at := td.MaturityDate
	pending := td.PendingInterest(1_000_000, at)
	assert.Equal(t, int64(6164), pending) // 1e6 × 0.025 × 90 / 365

	td.RecordAccrual(pending, at)
	assert.Equal(t, int64(6164), td.AccruedInterest)
	assert.Equal(t, int64(0), td.PendingInterest(1_006_164, at))

	require.NoError(t, td.Restart(6, at.Add(time.Hour)))
	assert.Equal(t, TermStatusActive, td.Status)
	assert.Nil(t, td.LastAccrualAt)
	assert.Equal(t, 6, td.TermMonths)

	_, err = NewTermDeposit(uuid.New(), 0, decimal.Zero, opened)
	assert.Equal(t, apperror.CodeInvalidTerm, apperror.CodeOf(err))
}

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      string
		months    int
		want      int64
	}{
		// 10000.00 at 1.5%/month over 12 months = 916.80
		{"level payment", 1_000_000, "0.015", 12, 91680},
		{"zero rate", 1_000_000, "0", 12, 83333},
		{"single month", 50_000, "0.02", 1, 51000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyPayment(tt.principal, decimal.RequireFromString(tt.rate), tt.months)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MonthlyPayment(1000, decimal.Zero, 0)
	assert.Equal(t, apperror.CodeInvalidTerm, apperror.CodeOf(err))
	_, err = MonthlyPayment(0, decimal.Zero, 3)
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))
}

func TestMonthlyPaymentWithFee(t *testing.T) {
	// 5% of 10000.00 over 10 months adds 50.00 per installment
	got, err := MonthlyPaymentWithFee(1_000_000, decimal.Zero, 10, decimal.RequireFromString("0.05"))
	require.NoError(t, err)
	assert.Equal(t, int64(105000), got)
}

func TestPaymentSchedule(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rate := decimal.RequireFromString("0.015")

	schedule, err := PaymentSchedule(1_000_000, rate, 12, start)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	var principal int64
	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, start.AddDate(0, i, 0), inst.DueDate)
		assert.Equal(t, inst.Principal+inst.Interest, inst.Total)
		principal += inst.Principal
	}
	assert.Equal(t, int64(1_000_000), principal)
	assert.Equal(t, int64(0), schedule[11].Remaining)
	assert.Equal(t, int64(15000), schedule[0].Interest)
	assert.Equal(t, int64(91680), schedule[0].Total)
}
