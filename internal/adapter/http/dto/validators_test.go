package dto

import (
	"testing"

	"microfinance-ledger/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := OpenAccountRequest{CustomerID: "  CUST-1  ", Currency: " HTG "}
	SanitizeStruct(&req)

	assert.Equal(t, "CUST-1", req.CustomerID)
	assert.Equal(t, "HTG", req.Currency)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := CancelRequest{Reason: "teller error <script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_SkipsTaggedFields(t *testing.T) {
	req := LoginRequest{OperatorID: " teller-1 ", Password: " p<a>ss "}
	SanitizeStruct(&req)

	assert.Equal(t, "teller-1", req.OperatorID)
	assert.Equal(t, " p<a>ss ", req.Password)
}

func TestSanitizeStruct_PointerAndNil(t *testing.T) {
	rate := " 0.05 "
	req := OpenTermDepositRequest{AnnualRate: &rate}
	SanitizeStruct(&req)

	assert.Equal(t, "0.05", *req.AnnualRate)
	assert.Nil(t, req.MonthlyRate)
}

func TestSanitizeStruct_NonStructIsNoOp(t *testing.T) {
	s := "  hello  "
	SanitizeStruct(&s)
	assert.Equal(t, "  hello  ", s)
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		req   any
		valid bool
	}{
		{"valid movement", &MovementRequest{Amount: "1500.25"}, true},
		{"integer amount", &MovementRequest{Amount: "100"}, true},
		{"three decimals", &MovementRequest{Amount: "1.005"}, false},
		{"trailing zero third decimal", &MovementRequest{Amount: "1.500"}, true},
		{"zero amount", &MovementRequest{Amount: "0"}, false},
		{"negative amount", &MovementRequest{Amount: "-5"}, false},
		{"not a number", &MovementRequest{Amount: "ten"}, false},
		{"largest amount", &MovementRequest{Amount: "92233720368547758.07"}, true},
		{"amount beyond minor-unit range", &MovementRequest{Amount: "100000000000000000000"}, false},
		{"transfer beyond range", &TransferRequest{SourceAccountID: "6f1c2a3e-5b4d-4c7a-9e8f-1a2b3c4d5e6f", DestinationAccountID: "7a2d3b4f-6c5e-4d8b-8f9a-2b3c4d5e6f70", Amount: "100000000000000000000"}, false},
		{"valid account", &OpenAccountRequest{CustomerID: "CUST-1", Type: "SAVINGS", Currency: "usd"}, true},
		{"bad currency", &OpenAccountRequest{CustomerID: "CUST-1", Type: "SAVINGS", Currency: "EUR"}, false},
		{"term type via open account", &OpenAccountRequest{CustomerID: "CUST-1", Type: "TERM_SAVINGS", Currency: "HTG"}, false},
		{"unsafe customer id", &OpenAccountRequest{CustomerID: "a b", Type: "SAVINGS", Currency: "HTG"}, false},
		{"same currency pair", &ExchangeRateRequest{From: "HTG", To: "HTG", Rate: "1"}, false},
		{"rate pair", &ExchangeRateRequest{From: "HTG", To: "USD", Rate: "0.0075"}, true},
		{"negative rate", &ExchangeRateRequest{From: "HTG", To: "USD", Rate: "-1"}, false},
		{"quote", &LoanQuoteRequest{Principal: "10000", MonthlyRate: "0.02", Months: 12, StartDate: "2026-01-15"}, true},
		{"quote bad date", &LoanQuoteRequest{Principal: "10000", MonthlyRate: "0.02", Months: 12, StartDate: "15/01/2026"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseBalances(t *testing.T) {
	b, err := ParseBalances(map[string]string{"htg": "5000.50", "USD": "0"})
	require.NoError(t, err)
	assert.Equal(t, domain.Balances{domain.CurrencyHTG: 500050, domain.CurrencyUSD: 0}, b)

	_, err = ParseBalances(map[string]string{"HTG": "-1"})
	assert.Error(t, err)

	_, err = ParseBalances(map[string]string{"EUR": "1"})
	assert.Error(t, err)
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate(nil)
	require.NoError(t, err)
	assert.Nil(t, r)

	s := "0.05"
	r, err = ParseRate(&s)
	require.NoError(t, err)
	assert.Equal(t, "0.05", r.String())

	bad := "x"
	_, err = ParseRate(&bad)
	assert.Error(t, err)
}
