package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType represents the kind of balance-affecting operation.
type EntryType string

const (
	EntryTypeDeposit          EntryType = "DEPOSIT"
	EntryTypeWithdrawal       EntryType = "WITHDRAWAL"
	EntryTypeTransferOut      EntryType = "TRANSFER_OUT"
	EntryTypeTransferIn       EntryType = "TRANSFER_IN"
	EntryTypeGuaranteeBlock   EntryType = "GUARANTEE_BLOCK"
	EntryTypeGuaranteeRelease EntryType = "GUARANTEE_RELEASE"
	EntryTypeInterestAccrual  EntryType = "INTEREST_ACCRUAL"
	EntryTypeReversal         EntryType = "REVERSAL"
)

// Mutation returns the primitive applied by entries of this type. Reversal
// entries carry the inverse of the entry they compensate, so they have none.
func (t EntryType) Mutation() Mutation {
	switch t {
	case EntryTypeDeposit, EntryTypeTransferIn, EntryTypeInterestAccrual:
		return MutationCredit
	case EntryTypeWithdrawal, EntryTypeTransferOut:
		return MutationDebit
	case EntryTypeGuaranteeBlock:
		return MutationBlock
	case EntryTypeGuaranteeRelease:
		return MutationRelease
	}
	return 0
}

// IsCash reports whether the operation moves physical cash at a till.
func (t EntryType) IsCash() bool {
	return t == EntryTypeDeposit || t == EntryTypeWithdrawal
}

// IsTransfer reports whether the entry is one leg of a transfer.
func (t EntryType) IsTransfer() bool {
	return t == EntryTypeTransferOut || t == EntryTypeTransferIn
}

// EntryStatus represents the state of a log entry.
type EntryStatus string

const (
	EntryStatusCompleted EntryStatus = "COMPLETED"
	EntryStatusReversed  EntryStatus = "REVERSED"
)

// Entry is an append-only record of one balance mutation. Only Status and
// RelatedEntryID change after creation, when the entry is reversed.
type Entry struct {
	ID                    uuid.UUID        `json:"id"`
	AccountID             uuid.UUID        `json:"account_id"`
	Type                  EntryType        `json:"type"`
	Amount                int64            `json:"amount"`
	Currency              Currency         `json:"currency"`
	BalanceBefore         int64            `json:"balance_before"`
	BalanceAfter          int64            `json:"balance_after"`
	BlockedBefore         int64            `json:"blocked_before"`
	BlockedAfter          int64            `json:"blocked_after"`
	CounterpartyAccountID *uuid.UUID       `json:"counterparty_account_id,omitempty"`
	RelatedEntryID        *uuid.UUID       `json:"related_entry_id,omitempty"`
	CorrelationID         *uuid.UUID       `json:"correlation_id,omitempty"`
	ExchangeRate          *decimal.Decimal `json:"exchange_rate,omitempty"`
	SessionID             *uuid.UUID       `json:"session_id,omitempty"`
	Reference             string           `json:"reference,omitempty"`
	Description           string           `json:"description,omitempty"`
	ProcessedBy           string           `json:"processed_by"`
	Status                EntryStatus      `json:"status"`
	CreatedAt             time.Time        `json:"created_at"`
}

// NewEntry records the effect of a mutation on acct.
func NewEntry(acct *Account, t EntryType, amount Money, eff Effect, processedBy string, now time.Time) *Entry {
	return &Entry{
		ID:            uuid.New(),
		AccountID:     acct.ID,
		Type:          t,
		Amount:        amount.Amount,
		Currency:      amount.Currency,
		BalanceBefore: eff.BalanceBefore,
		BalanceAfter:  eff.BalanceAfter,
		BlockedBefore: eff.BlockedBefore,
		BlockedAfter:  eff.BlockedAfter,
		ProcessedBy:   processedBy,
		Status:        EntryStatusCompleted,
		CreatedAt:     now,
	}
}

// Money returns the entry amount as Money.
func (e *Entry) Money() Money {
	return Money{Amount: e.Amount, Currency: e.Currency}
}

// IsReversible reports whether the entry may still be cancelled.
func (e *Entry) IsReversible() bool {
	if e.Status != EntryStatusCompleted {
		return false
	}
	switch e.Type {
	case EntryTypeDeposit, EntryTypeWithdrawal, EntryTypeTransferOut, EntryTypeTransferIn:
		return true
	}
	return false
}

// SignedDelta is the change the entry made to the account balance.
func (e *Entry) SignedDelta() int64 {
	switch e.Type.Mutation() {
	case MutationCredit:
		return e.Amount
	case MutationDebit:
		return -e.Amount
	case MutationBlock, MutationRelease:
		return 0
	}
	// Reversal: direction depends on the compensated entry.
	return e.BalanceAfter - e.BalanceBefore
}

// BlockedDelta is the change the entry made to the blocked balance.
func (e *Entry) BlockedDelta() int64 {
	switch e.Type {
	case EntryTypeGuaranteeBlock:
		return e.Amount
	case EntryTypeGuaranteeRelease:
		return -e.Amount
	}
	return 0
}

// Fold recomputes balance and blocked balance from an account's entry log.
// Reversed entries and their compensating Reversal entries cancel out, so both
// are skipped.
func Fold(entries []Entry) (balance, blocked int64) {
	for i := range entries {
		e := &entries[i]
		blocked += e.BlockedDelta()
		if e.Type == EntryTypeReversal || e.Status != EntryStatusCompleted {
			continue
		}
		balance += e.SignedDelta()
	}
	return balance, blocked
}
