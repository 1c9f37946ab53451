package domain

import (
	"fmt"
	"strings"

	"microfinance-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Currency is an ISO-4217 code supported by the ledger.
type Currency string

const (
	CurrencyHTG Currency = "HTG"
	CurrencyUSD Currency = "USD"
)

// minorExponent is the number of decimal places held in minor units.
const minorExponent = 2

// Valid reports whether the currency is supported.
func (c Currency) Valid() bool {
	return c == CurrencyHTG || c == CurrencyUSD
}

// ParseCurrency normalizes and validates a currency code.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", apperror.Validation(fmt.Sprintf("unsupported currency %q", s))
	}
	return c, nil
}

// Money is an amount in integral minor units tagged with its currency.
type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewMoney builds a Money value from minor units.
func NewMoney(minor int64, currency Currency) Money {
	return Money{Amount: minor, Currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{Currency: currency}
}

func (m Money) IsPositive() bool { return m.Amount > 0 }
func (m Money) IsZero() bool     { return m.Amount == 0 }

// SameCurrency fails with CurrencyMismatch when o is in another currency.
func (m Money) SameCurrency(o Money) error {
	if m.Currency != o.Currency {
		return apperror.ErrCurrencyMismatch(string(m.Currency), string(o.Currency))
	}
	return nil
}

// Add returns m + o.
func (m Money) Add(o Money) (Money, error) {
	if err := m.SameCurrency(o); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}, nil
}

// Sub returns m - o.
func (m Money) Sub(o Money) (Money, error) {
	if err := m.SameCurrency(o); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount - o.Amount, Currency: m.Currency}, nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -minorExponent)
}

// String formats the amount as "1234.50 HTG".
func (m Money) String() string {
	return m.Decimal().StringFixed(minorExponent) + " " + string(m.Currency)
}

// MulRate multiplies the amount by a decimal factor, rounding half-up to the
// nearest minor unit.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{Amount: RoundMinor(decimal.NewFromInt(m.Amount).Mul(rate)), Currency: m.Currency}
}

// Convert expresses m in another currency using rate (units of to per unit
// of m). A result beyond the minor-unit range is rejected as an invalid amount.
func (m Money) Convert(to Currency, rate decimal.Decimal) (Money, error) {
	minor := decimal.NewFromInt(m.Amount).Mul(rate).Round(0)
	if !minor.BigInt().IsInt64() {
		return Money{}, apperror.ErrInvalidAmount().WithDetail("reason", "converted amount out of range")
	}
	return Money{Amount: minor.IntPart(), Currency: to}, nil
}

// RoundMinor rounds a minor-unit decimal to an integer, halves away from zero.
func RoundMinor(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// ParseMoney reads a decimal string in major units ("1000.50") into Money.
// Amounts with more precision than the currency's minor unit are rejected.
func ParseMoney(s string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, apperror.Validation(fmt.Sprintf("invalid amount %q", s))
	}
	return MoneyFromDecimal(d, currency)
}

// MoneyFromDecimal converts major units into Money without rounding.
func MoneyFromDecimal(d decimal.Decimal, currency Currency) (Money, error) {
	minor := d.Shift(minorExponent)
	if !minor.Equal(minor.Truncate(0)) {
		return Money{}, apperror.Validation(fmt.Sprintf("amount %s has more than %d decimal places", d.String(), minorExponent))
	}
	if !FitsMinor(d) {
		return Money{}, apperror.Validation(fmt.Sprintf("amount %s is out of range", d.String()))
	}
	if !currency.Valid() {
		return Money{}, apperror.Validation(fmt.Sprintf("unsupported currency %q", currency))
	}
	return Money{Amount: minor.IntPart(), Currency: currency}, nil
}

// FitsMinor reports whether the major-unit amount d is representable as
// int64 minor units.
func FitsMinor(d decimal.Decimal) bool {
	return d.Shift(minorExponent).Truncate(0).BigInt().IsInt64()
}

// FormatMinor renders minor units as a fixed two-decimal string.
func FormatMinor(minor int64) string {
	return decimal.New(minor, -minorExponent).StringFixed(minorExponent)
}
