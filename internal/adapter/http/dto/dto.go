package dto

import "time"

// Amounts travel as decimal strings in major units ("1500.25"). Rates are
// decimal strings too.

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	OperatorID string `json:"operator_id" binding:"required,safe_id,max=64"`
	Password   string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// OpenAccountRequest is the request body for opening an account.
type OpenAccountRequest struct {
	CustomerID      string `json:"customer_id" binding:"required,safe_id,max=64"`
	Type            string `json:"type" binding:"required,oneof=SAVINGS CURRENT"`
	Currency        string `json:"currency" binding:"required,currency"`
	InitialDeposit  string `json:"initial_deposit,omitempty" binding:"omitempty,decimal_amount"`
	RequireApproval bool   `json:"require_approval"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	CustomerID       string     `json:"customer_id"`
	Type             string     `json:"type"`
	Currency         string     `json:"currency"`
	Balance          string     `json:"balance"`
	BlockedBalance   string     `json:"blocked_balance"`
	AvailableBalance string     `json:"available_balance"`
	Status           string     `json:"status"`
	OpenedAt         time.Time  `json:"opened_at"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
}

// MovementRequest is the request body for a cash deposit or withdrawal. The
// currency is the account's.
type MovementRequest struct {
	Amount      string `json:"amount" binding:"required,decimal_amount"`
	Description string `json:"description,omitempty" binding:"max=255"`
}

// StatusRequest changes the lifecycle status of an account.
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE SUSPENDED"`
}

// EntryResponse is the public view of a log entry.
type EntryResponse struct {
	ID                    string    `json:"id"`
	AccountID             string    `json:"account_id"`
	Type                  string    `json:"type"`
	Amount                string    `json:"amount"`
	Currency              string    `json:"currency"`
	BalanceBefore         string    `json:"balance_before"`
	BalanceAfter          string    `json:"balance_after"`
	BlockedBefore         string    `json:"blocked_before"`
	BlockedAfter          string    `json:"blocked_after"`
	CounterpartyAccountID *string   `json:"counterparty_account_id,omitempty"`
	RelatedEntryID        *string   `json:"related_entry_id,omitempty"`
	CorrelationID         *string   `json:"correlation_id,omitempty"`
	ExchangeRate          *string   `json:"exchange_rate,omitempty"`
	SessionID             *string   `json:"session_id,omitempty"`
	Reference             string    `json:"reference,omitempty"`
	Description           string    `json:"description,omitempty"`
	ProcessedBy           string    `json:"processed_by"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
}

// AccountReconciliationResponse compares stored balances with the entry log.
type AccountReconciliationResponse struct {
	AccountID     string `json:"account_id"`
	Balance       string `json:"balance"`
	FoldedBalance string `json:"folded_balance"`
	Blocked       string `json:"blocked"`
	FoldedBlocked string `json:"folded_blocked"`
	Entries       int    `json:"entries"`
}

// TransferRequest is the request body for a transfer. Amount is in the
// source account currency.
type TransferRequest struct {
	SourceAccountID      string `json:"source_account_id" binding:"required,uuid"`
	DestinationAccountID string `json:"destination_account_id" binding:"required,uuid"`
	Amount               string `json:"amount" binding:"required,decimal_amount"`
	Description          string `json:"description,omitempty" binding:"max=255"`
}

// TransferResponse holds both legs of a transfer.
type TransferResponse struct {
	Out          EntryResponse `json:"out"`
	In           EntryResponse `json:"in"`
	ExchangeRate *string       `json:"exchange_rate,omitempty"`
}

// CancelRequest is the request body for cancelling an entry.
type CancelRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// CancelResponse holds the compensating entries.
type CancelResponse struct {
	Reversal    EntryResponse  `json:"reversal"`
	Counterpart *EntryResponse `json:"counterpart,omitempty"`
}

// GuaranteeRequest sets the guarantee held for a loan application.
type GuaranteeRequest struct {
	LoanApplicationID string `json:"loan_application_id" binding:"required,safe_id,max=64"`
	LoanType          string `json:"loan_type" binding:"required,safe_id,max=32"`
	RequestedAmount   string `json:"requested_amount" binding:"required,decimal_amount"`
}

// GuaranteeResponse is the public view of a guarantee.
type GuaranteeResponse struct {
	LoanApplicationID string    `json:"loan_application_id"`
	AccountID         string    `json:"account_id"`
	LoanType          string    `json:"loan_type"`
	BlockedAmount     string    `json:"blocked_amount"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OpenTermDepositRequest opens a term savings account funded in cash. Rates
// are accepted as a fraction (0.05) or a percent (5). Leave both empty for
// the standard rate of the term.
type OpenTermDepositRequest struct {
	CustomerID  string  `json:"customer_id" binding:"required,safe_id,max=64"`
	Currency    string  `json:"currency" binding:"required,currency"`
	Principal   string  `json:"principal" binding:"required,decimal_amount"`
	TermMonths  int     `json:"term_months" binding:"required,gt=0,lte=120"`
	MonthlyRate *string `json:"monthly_rate,omitempty" binding:"omitempty,decimal_rate"`
	AnnualRate  *string `json:"annual_rate,omitempty" binding:"omitempty,decimal_rate"`
}

// TermDepositResponse joins a deposit with its account.
type TermDepositResponse struct {
	Account         AccountResponse `json:"account"`
	TermMonths      int             `json:"term_months"`
	AnnualRate      string          `json:"annual_rate"`
	MonthlyPercent  string          `json:"monthly_percent"`
	OpenedAt        time.Time       `json:"opened_at"`
	MaturityDate    time.Time       `json:"maturity_date"`
	AccruedInterest string          `json:"accrued_interest"`
	LastAccrualAt   *time.Time      `json:"last_accrual_at,omitempty"`
	Status          string          `json:"status"`
}

// RenewRequest restarts a matured deposit. Zero keeps the current term.
type RenewRequest struct {
	TermMonths int `json:"term_months" binding:"gte=0,lte=120"`
}

// CloseTermDepositRequest pays out a deposit. PenaltyRate applies only
// before maturity.
type CloseTermDepositRequest struct {
	PenaltyRate *string `json:"penalty_rate,omitempty" binding:"omitempty,decimal_rate"`
}

// TermCloseResponse holds the withdrawals that emptied the account.
type TermCloseResponse struct {
	Account AccountResponse `json:"account"`
	Payout  EntryResponse   `json:"payout"`
	Penalty *EntryResponse  `json:"penalty,omitempty"`
}

// AccrualResponse is the interest credited by a single accrual.
type AccrualResponse struct {
	AccountID string `json:"account_id"`
	Interest  string `json:"interest"`
	Currency  string `json:"currency"`
}

// AccrueAllResponse reports a batch accrual run.
type AccrueAllResponse struct {
	Processed int `json:"processed"`
}

// LoanQuoteRequest asks for a level-payment repayment plan. MonthlyRate is a
// fraction (0.02 for 2%).
type LoanQuoteRequest struct {
	Principal   string `json:"principal" binding:"required,decimal_amount"`
	Currency    string `json:"currency,omitempty" binding:"omitempty,currency"`
	MonthlyRate string `json:"monthly_rate" binding:"required,decimal_rate"`
	Months      int    `json:"months" binding:"required,gt=0,lte=360"`
	StartDate   string `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// InstallmentResponse is one line of a repayment schedule.
type InstallmentResponse struct {
	Number    int    `json:"number"`
	DueDate   string `json:"due_date"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Total     string `json:"total"`
	Remaining string `json:"remaining"`
}

// LoanQuoteResponse is a repayment plan.
type LoanQuoteResponse struct {
	Currency              string                `json:"currency"`
	MonthlyPayment        string                `json:"monthly_payment"`
	MonthlyPaymentWithFee string                `json:"monthly_payment_with_fee"`
	TotalInterest         string                `json:"total_interest"`
	Schedule              []InstallmentResponse `json:"schedule"`
}

// OpenSessionRequest opens a cash session for the authenticated teller.
type OpenSessionRequest struct {
	OpeningBalances map[string]string `json:"opening_balances"`
}

// CloseSessionRequest declares the counted float.
type CloseSessionRequest struct {
	DeclaredBalances map[string]string `json:"declared_balances" binding:"required"`
}

// SessionResponse is the public view of a cash session.
type SessionResponse struct {
	ID              string            `json:"id"`
	CashierID       string            `json:"cashier_id"`
	Status          string            `json:"status"`
	OpenedAt        time.Time         `json:"opened_at"`
	ClosedAt        *time.Time        `json:"closed_at,omitempty"`
	OpeningBalances map[string]string `json:"opening_balances"`
	ClosingBalances map[string]string `json:"closing_balances,omitempty"`
}

// ReconciliationLineResponse is the expected vs declared float for one currency.
type ReconciliationLineResponse struct {
	Currency    string `json:"currency"`
	Opening     string `json:"opening"`
	Credits     string `json:"credits"`
	Debits      string `json:"debits"`
	Expected    string `json:"expected"`
	Declared    string `json:"declared"`
	Discrepancy string `json:"discrepancy"`
}

// SessionReconciliationResponse is the result of closing a session.
type SessionReconciliationResponse struct {
	SessionID string                       `json:"session_id"`
	Balanced  bool                         `json:"balanced"`
	Lines     []ReconciliationLineResponse `json:"lines"`
}

// ExchangeRateRequest publishes a rate as units of To per unit of From.
type ExchangeRateRequest struct {
	From string `json:"from" binding:"required,currency"`
	To   string `json:"to" binding:"required,currency,nefield=From"`
	Rate string `json:"rate" binding:"required,decimal_rate"`
}

// ExchangeRateResponse is a resolved rate.
type ExchangeRateResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rate string `json:"rate"`
}
