package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanType identifies a microcredit product.
type LoanType string

const (
	LoanTypeCommercial   LoanType = "Commercial"
	LoanTypeAgricultural LoanType = "Agricultural"
	LoanTypePersonal     LoanType = "Personal"
	LoanTypeEmergency    LoanType = "Emergency"
	LoanTypeCreditAuto   LoanType = "CreditAuto"
	LoanTypeCreditMoto   LoanType = "CreditMoto"
)

// Guarantee is the portion of a savings account blocked against one loan
// application.
type Guarantee struct {
	LoanApplicationID string    `json:"loan_application_id"`
	AccountID         uuid.UUID `json:"account_id"`
	LoanType          LoanType  `json:"loan_type"`
	BlockedAmount     int64     `json:"blocked_amount"`
	Currency          Currency  `json:"currency"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Blocked returns the blocked amount as Money.
func (g *Guarantee) Blocked() Money {
	return Money{Amount: g.BlockedAmount, Currency: g.Currency}
}

// GuaranteePolicy maps loan types to the fraction of the requested amount
// that must be blocked.
type GuaranteePolicy struct {
	defaultPercent decimal.Decimal
	percentages    map[string]decimal.Decimal
}

// DefaultGuaranteePolicy blocks 30% for vehicle credit and 15% otherwise.
func DefaultGuaranteePolicy() *GuaranteePolicy {
	return &GuaranteePolicy{
		defaultPercent: decimal.RequireFromString("0.15"),
		percentages: map[string]decimal.Decimal{
			"personal":   decimal.RequireFromString("0.15"),
			"creditauto": decimal.RequireFromString("0.30"),
			"creditmoto": decimal.RequireFromString("0.30"),
		},
	}
}

// NewGuaranteePolicy parses fractions given as decimal strings. Loan type keys
// are matched case-insensitively.
func NewGuaranteePolicy(defaultPercent string, percentages map[string]string) (*GuaranteePolicy, error) {
	def, err := parseFraction(defaultPercent)
	if err != nil {
		return nil, fmt.Errorf("default guarantee percent: %w", err)
	}
	p := &GuaranteePolicy{defaultPercent: def, percentages: make(map[string]decimal.Decimal, len(percentages))}
	for k, v := range percentages {
		pct, err := parseFraction(v)
		if err != nil {
			return nil, fmt.Errorf("guarantee percent for %s: %w", k, err)
		}
		p.percentages[strings.ToLower(k)] = pct
	}
	return p, nil
}

func parseFraction(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("fraction %s out of range [0,1]", s)
	}
	return d, nil
}

// Percent returns the fraction to block for a loan type.
func (p *GuaranteePolicy) Percent(t LoanType) decimal.Decimal {
	if pct, ok := p.percentages[strings.ToLower(string(t))]; ok {
		return pct
	}
	return p.defaultPercent
}

// RequiredBlock is requested × percent, rounded half-up to the minor unit.
func (p *GuaranteePolicy) RequiredBlock(t LoanType, requested Money) Money {
	return requested.MulRate(p.Percent(t))
}
