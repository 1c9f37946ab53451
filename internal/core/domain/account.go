package domain

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"time"

	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// AccountStatus represents the lifecycle state of a ledger account.
type AccountStatus string

const (
	AccountStatusPendingApproval AccountStatus = "PENDING_APPROVAL"
	AccountStatusActive          AccountStatus = "ACTIVE"
	AccountStatusSuspended       AccountStatus = "SUSPENDED"
	AccountStatusClosed          AccountStatus = "CLOSED"
)

// AccountType distinguishes savings products. All types share the same
// mutation rules.
type AccountType string

const (
	AccountTypeSavings     AccountType = "SAVINGS"
	AccountTypeCurrent     AccountType = "CURRENT"
	AccountTypeTermSavings AccountType = "TERM_SAVINGS"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeCurrent, AccountTypeTermSavings:
		return true
	}
	return false
}

// Account holds the materialized balances of a customer account. Balance and
// BlockedBalance are caches of the entry log and change only through the
// mutators below.
type Account struct {
	ID             uuid.UUID     `json:"id"`
	Number         string        `json:"number"`
	CustomerID     string        `json:"customer_id"`
	Type           AccountType   `json:"type"`
	Currency       Currency      `json:"currency"`
	Balance        int64         `json:"balance"`
	BlockedBalance int64         `json:"blocked_balance"`
	Status         AccountStatus `json:"status"`
	OpenedAt       time.Time     `json:"opened_at"`
	ClosedAt       *time.Time    `json:"closed_at,omitempty"`
	Version        int64         `json:"version"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// AvailableBalance is balance minus blocked funds.
func (a *Account) AvailableBalance() int64 {
	return a.Balance - a.BlockedBalance
}

func (a *Account) IsActive() bool { return a.Status == AccountStatusActive }
func (a *Account) IsClosed() bool { return a.Status == AccountStatusClosed }

// Mutation is one of the four balance primitives.
type Mutation int

const (
	MutationCredit Mutation = iota + 1
	MutationDebit
	MutationBlock
	MutationRelease
)

// Inverse returns the mutation that undoes m.
func (m Mutation) Inverse() Mutation {
	switch m {
	case MutationCredit:
		return MutationDebit
	case MutationDebit:
		return MutationCredit
	case MutationBlock:
		return MutationRelease
	case MutationRelease:
		return MutationBlock
	}
	return 0
}

func (m Mutation) String() string {
	switch m {
	case MutationCredit:
		return "credit"
	case MutationDebit:
		return "debit"
	case MutationBlock:
		return "block"
	case MutationRelease:
		return "release"
	}
	return "unknown"
}

// Effect captures the balances on both sides of a mutation.
type Effect struct {
	BalanceBefore int64
	BalanceAfter  int64
	BlockedBefore int64
	BlockedAfter  int64
}

// Apply dispatches to the matching mutator.
func (a *Account) Apply(m Mutation, amount Money) (Effect, error) {
	switch m {
	case MutationCredit:
		return a.Credit(amount)
	case MutationDebit:
		return a.Debit(amount)
	case MutationBlock:
		return a.Block(amount)
	case MutationRelease:
		return a.Release(amount)
	}
	return Effect{}, fmt.Errorf("unknown mutation %d", m)
}

// checkMutable validates the preconditions shared by all mutators.
func (a *Account) checkMutable(amount Money, requireActive bool) error {
	if a.IsClosed() {
		return apperror.ErrAccountClosed(a.ID.String())
	}
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if amount.Currency != a.Currency {
		return apperror.ErrCurrencyMismatch(string(a.Currency), string(amount.Currency))
	}
	if requireActive && !a.IsActive() {
		return apperror.ErrAccountNotActive(a.ID.String())
	}
	return nil
}

func (a *Account) snapshot() Effect {
	return Effect{
		BalanceBefore: a.Balance,
		BalanceAfter:  a.Balance,
		BlockedBefore: a.BlockedBalance,
		BlockedAfter:  a.BlockedBalance,
	}
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount Money) (Effect, error) {
	if err := a.checkMutable(amount, true); err != nil {
		return Effect{}, err
	}
	if amount.Amount > math.MaxInt64-a.Balance {
		return Effect{}, apperror.ErrInvalidAmount().WithDetail("reason", "balance would exceed the supported range")
	}
	eff := a.snapshot()
	a.Balance += amount.Amount
	eff.BalanceAfter = a.Balance
	return eff, nil
}

// Debit removes amount from the balance. Blocked funds are never touched.
func (a *Account) Debit(amount Money) (Effect, error) {
	if err := a.checkMutable(amount, true); err != nil {
		return Effect{}, err
	}
	if avail := a.AvailableBalance(); avail < amount.Amount {
		return Effect{}, apperror.ErrInsufficientFunds(amount.Amount-avail, string(a.Currency))
	}
	eff := a.snapshot()
	a.Balance -= amount.Amount
	eff.BalanceAfter = a.Balance
	return eff, nil
}

// Block reserves part of the available balance.
func (a *Account) Block(amount Money) (Effect, error) {
	if err := a.checkMutable(amount, true); err != nil {
		return Effect{}, err
	}
	if avail := a.AvailableBalance(); avail < amount.Amount {
		return Effect{}, apperror.ErrInsufficientFunds(amount.Amount-avail, string(a.Currency))
	}
	eff := a.snapshot()
	a.BlockedBalance += amount.Amount
	eff.BlockedAfter = a.BlockedBalance
	return eff, nil
}

// Release frees previously blocked funds. It is allowed on suspended or
// pending accounts so that guarantees can always be unwound.
func (a *Account) Release(amount Money) (Effect, error) {
	if err := a.checkMutable(amount, false); err != nil {
		return Effect{}, err
	}
	if a.BlockedBalance < amount.Amount {
		return Effect{}, apperror.ErrReleaseExceedsBlocked(amount.Amount-a.BlockedBalance, string(a.Currency))
	}
	eff := a.snapshot()
	a.BlockedBalance -= amount.Amount
	eff.BlockedAfter = a.BlockedBalance
	return eff, nil
}

// Close moves the account to Closed. Both balances must be zero.
func (a *Account) Close(now time.Time) error {
	if a.IsClosed() {
		return apperror.ErrAccountClosed(a.ID.String())
	}
	if a.Balance != 0 || a.BlockedBalance != 0 {
		return apperror.ErrAccountHasFunds()
	}
	a.Status = AccountStatusClosed
	a.ClosedAt = &now
	return nil
}

// TransitionTo changes the status of a non-closed account. Closing goes
// through Close.
func (a *Account) TransitionTo(to AccountStatus) error {
	if a.IsClosed() {
		return apperror.ErrAccountClosed(a.ID.String())
	}
	allowed := false
	switch a.Status {
	case AccountStatusPendingApproval:
		allowed = to == AccountStatusActive
	case AccountStatusActive:
		allowed = to == AccountStatusSuspended
	case AccountStatusSuspended:
		allowed = to == AccountStatusActive
	}
	if !allowed {
		return apperror.ErrInvalidStatusTransition(string(a.Status), string(to))
	}
	a.Status = to
	return nil
}

// CheckInvariant verifies balance >= blocked >= 0.
func (a *Account) CheckInvariant() error {
	if a.BlockedBalance < 0 || a.Balance < a.BlockedBalance {
		return fmt.Errorf("account %s: balance %d, blocked %d", a.ID, a.Balance, a.BlockedBalance)
	}
	return nil
}

var accountNumberPattern = regexp.MustCompile(`^[GD][0-9]{11}$`)

// accountNumberPrefix is G for gourde accounts and D for dollar accounts.
func accountNumberPrefix(c Currency) string {
	if c == CurrencyUSD {
		return "D"
	}
	return "G"
}

// GenerateAccountNumber returns a random number of the form G12345678901.
// Uniqueness is checked by the caller against storage.
func GenerateAccountNumber(c Currency) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100_000_000_000))
	if err != nil {
		return "", fmt.Errorf("generating account number: %w", err)
	}
	return fmt.Sprintf("%s%011d", accountNumberPrefix(c), n.Int64()), nil
}

// ValidateAccountNumber checks the format and, when c is set, the currency prefix.
func ValidateAccountNumber(number string, c Currency) error {
	if !accountNumberPattern.MatchString(number) || (c != "" && number[:1] != accountNumberPrefix(c)) {
		return apperror.ErrInvalidAccountNumber(number)
	}
	return nil
}
