package ports

import (
	"context"
	"time"

	"microfinance-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenService handles JWT token operations. The token subject is the actor
// id recorded as processed_by on every entry.
type TokenService interface {
	Generate(actorID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID string
}

// HashService hashes and verifies operator passwords.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// AuthService authenticates back-office operators and issues their tokens.
type AuthService interface {
	Login(ctx context.Context, operatorID, password string) (string, time.Time, error)
}

// ExchangeRateProvider resolves the current rate between two currencies,
// expressed as units of to per unit of from.
type ExchangeRateProvider interface {
	Rate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error)
}

// --- Service Ports (Business Logic) ---

// LedgerService exposes account lifecycle and the single-account mutators.
type LedgerService interface {
	OpenAccount(ctx context.Context, req OpenAccountRequest) (*domain.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error)
	Deposit(ctx context.Context, req MovementRequest) (*domain.Entry, error)
	Withdraw(ctx context.Context, req MovementRequest) (*domain.Entry, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) (*domain.Account, error)
	CloseAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ReconcileAccount(ctx context.Context, id uuid.UUID) (*AccountReconciliation, error)
	ListEntries(ctx context.Context, accountID uuid.UUID) ([]domain.Entry, error)
}

// OpenAccountRequest holds validated input for account opening.
type OpenAccountRequest struct {
	CustomerID      string
	Type            domain.AccountType
	Currency        domain.Currency
	InitialDeposit  int64 // minor units, may be zero
	RequireApproval bool  // open as PENDING_APPROVAL
	Actor           string
}

// MovementRequest holds validated input for a deposit or withdrawal.
type MovementRequest struct {
	AccountID   uuid.UUID
	Amount      domain.Money
	Actor       string
	Description string
}

// AccountReconciliation compares materialized balances with the entry log.
type AccountReconciliation struct {
	AccountID     uuid.UUID `json:"account_id"`
	Balance       int64     `json:"balance"`
	FoldedBalance int64     `json:"folded_balance"`
	Blocked       int64     `json:"blocked"`
	FoldedBlocked int64     `json:"folded_blocked"`
	Entries       int       `json:"entries"`
}

// TransferService moves funds between two accounts atomically.
type TransferService interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}

// TransferRequest holds validated input for a transfer. Amount is in the
// source account currency.
type TransferRequest struct {
	SourceAccountID      uuid.UUID
	DestinationAccountID uuid.UUID
	Amount               domain.Money
	Actor                string
	Description          string
}

// TransferResult holds the linked pair of entries.
type TransferResult struct {
	Out  *domain.Entry
	In   *domain.Entry
	Rate *decimal.Decimal // nil for same-currency transfers
}

// ReversalService cancels completed entries.
type ReversalService interface {
	Cancel(ctx context.Context, req CancelRequest) (*CancelResult, error)
}

// CancelRequest holds input for a cancellation.
type CancelRequest struct {
	EntryID uuid.UUID
	Reason  string
	Actor   string
}

// CancelResult holds the compensating entries. Counterpart is set when the
// cancelled entry was a transfer leg.
type CancelResult struct {
	Reversal    *domain.Entry
	Counterpart *domain.Entry
}

// GuaranteeService blocks savings against loan applications.
type GuaranteeService interface {
	SetGuarantee(ctx context.Context, req GuaranteeRequest) (*domain.Guarantee, error)
	ReleaseGuarantee(ctx context.Context, accountID uuid.UUID, loanApplicationID string, actor string) error
	ListGuarantees(ctx context.Context, accountID uuid.UUID) ([]domain.Guarantee, error)
}

// GuaranteeRequest holds input from the loan application workflow.
type GuaranteeRequest struct {
	AccountID         uuid.UUID
	LoanApplicationID string
	LoanType          domain.LoanType
	RequestedAmount   domain.Money
	Actor             string
}

// InterestService manages term deposits and interest accrual.
type InterestService interface {
	OpenTermDeposit(ctx context.Context, req OpenTermDepositRequest) (*TermDepositView, error)
	GetTermDeposit(ctx context.Context, accountID uuid.UUID) (*TermDepositView, error)
	CalculateInterest(ctx context.Context, accountID uuid.UUID) (domain.Money, error)
	CalculateInterestForAllAccounts(ctx context.Context) (int, error)
	Renew(ctx context.Context, req RenewRequest) (*TermDepositView, error)
	CloseTermDeposit(ctx context.Context, req CloseTermDepositRequest) (*TermCloseResult, error)
	QuoteLoan(req LoanQuoteRequest) (*LoanQuote, error)
}

// OpenTermDepositRequest holds input for opening a term deposit. When both
// rates are nil the standard rate for the term applies.
type OpenTermDepositRequest struct {
	CustomerID  string
	Currency    domain.Currency
	Principal   int64
	TermMonths  int
	MonthlyRate *decimal.Decimal
	AnnualRate  *decimal.Decimal
	Actor       string
}

// TermDepositView joins a deposit with its account.
type TermDepositView struct {
	Account *domain.Account
	Deposit *domain.TermDeposit
}

// RenewRequest restarts a matured deposit. TermMonths zero keeps the current term.
type RenewRequest struct {
	AccountID  uuid.UUID
	TermMonths int
	Actor      string
}

// CloseTermDepositRequest pays out a deposit. PenaltyRate applies only before
// maturity; nil selects the standard penalty for the term.
type CloseTermDepositRequest struct {
	AccountID   uuid.UUID
	PenaltyRate *decimal.Decimal
	Actor       string
}

// TermCloseResult holds the withdrawals that emptied the account.
type TermCloseResult struct {
	Account *domain.Account
	Payout  *domain.Entry
	Penalty *domain.Entry // nil when closed at maturity
}

// LoanQuoteRequest holds input for the repayment calculator.
type LoanQuoteRequest struct {
	Principal   int64
	MonthlyRate decimal.Decimal // fraction
	Months      int
	Start       time.Time
}

// LoanQuote is a level-payment repayment plan.
type LoanQuote struct {
	MonthlyPayment        int64                `json:"monthly_payment"`
	MonthlyPaymentWithFee int64                `json:"monthly_payment_with_fee"`
	TotalInterest         int64                `json:"total_interest"`
	Schedule              []domain.Installment `json:"schedule"`
}

// CashSessionService manages teller sessions.
type CashSessionService interface {
	Open(ctx context.Context, cashierID string, opening domain.Balances) (*domain.CashSession, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.CashSession, error)
	Pause(ctx context.Context, id uuid.UUID) (*domain.CashSession, error)
	Resume(ctx context.Context, id uuid.UUID) (*domain.CashSession, error)
	Close(ctx context.Context, id uuid.UUID, declared domain.Balances) (*domain.Reconciliation, error)
}

// ExchangeService publishes and resolves exchange rates.
type ExchangeService interface {
	ExchangeRateProvider
	PublishRate(ctx context.Context, from, to domain.Currency, rate decimal.Decimal) error
}
