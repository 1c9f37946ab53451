package domain

import (
	"math"
	"testing"

	"microfinance-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	sum, err := htg(150).Add(htg(50))
	require.NoError(t, err)
	assert.Equal(t, htg(200), sum)

	diff, err := htg(150).Sub(htg(200))
	require.NoError(t, err)
	assert.Equal(t, int64(-50), diff.Amount)

	_, err = htg(1).Add(NewMoney(1, CurrencyUSD))
	assert.Equal(t, apperror.CodeCurrencyMismatch, apperror.CodeOf(err))
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1000.00", 100000, false},
		{"0.5", 50, false},
		{" 12 ", 1200, false},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"-3.10", -310, false},
		{"92233720368547758.07", 9223372036854775807, false},
		{"92233720368547758.08", 0, true},
		{"100000000000000000000", 0, true},
		{"-100000000000000000000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMoney(tt.in, CurrencyHTG)
			if tt.wantErr {
				assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Amount)
		})
	}
}

func TestMoney_Formatting(t *testing.T) {
	assert.Equal(t, "1234.50 HTG", htg(123450).String())
	assert.Equal(t, "0.05", FormatMinor(5))
	assert.True(t, decimal.RequireFromString("12.34").Equal(htg(1234).Decimal()))
}

func TestMoney_MulRateRoundsHalfUp(t *testing.T) {
	tests := []struct {
		amount int64
		rate   string
		want   int64
	}{
		{100000, "0.15", 15000},
		{333, "0.15", 50}, // 49.95
		{10, "0.25", 3},   // 2.5
		{10, "0.24", 2},   // 2.4
		{100, "132.5", 13250},
	}
	for _, tt := range tests {
		got := htg(tt.amount).MulRate(decimal.RequireFromString(tt.rate))
		assert.Equal(t, tt.want, got.Amount, "%d × %s", tt.amount, tt.rate)
	}
}

func TestMoney_Convert(t *testing.T) {
	usd, err := NewMoney(1000, CurrencyUSD).Convert(CurrencyHTG, decimal.RequireFromString("132.55"))
	require.NoError(t, err)
	assert.Equal(t, CurrencyHTG, usd.Currency)
	assert.Equal(t, int64(132550), usd.Amount)

	_, err = NewMoney(math.MaxInt64/100, CurrencyUSD).Convert(CurrencyHTG, decimal.RequireFromString("132.55"))
	assert.Equal(t, apperror.CodeInvalidAmount, apperror.CodeOf(err))
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("usd")
	require.NoError(t, err)
	assert.Equal(t, CurrencyUSD, c)

	_, err = ParseCurrency("EUR")
	assert.Error(t, err)
}
