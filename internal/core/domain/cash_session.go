package domain

import (
	"sort"
	"time"

	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// SessionStatus represents the state of a teller's cash session.
type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "OPEN"
	SessionStatusPaused SessionStatus = "PAUSED"
	SessionStatusClosed SessionStatus = "CLOSED"
)

// Balances maps a currency to an amount in minor units.
type Balances map[Currency]int64

// CashSession is a teller's working period. Cash entries processed by the
// cashier while the session is OPEN carry its id.
type CashSession struct {
	ID              uuid.UUID     `json:"id"`
	CashierID       string        `json:"cashier_id"`
	OpenedAt        time.Time     `json:"opened_at"`
	ClosedAt        *time.Time    `json:"closed_at,omitempty"`
	OpeningBalances Balances      `json:"opening_balances"`
	ClosingBalances Balances      `json:"closing_balances,omitempty"`
	Status          SessionStatus `json:"status"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NewCashSession opens a session for cashierID.
func NewCashSession(cashierID string, opening Balances, now time.Time) (*CashSession, error) {
	if cashierID == "" {
		return nil, apperror.Validation("cashier id is required")
	}
	for c, v := range opening {
		if !c.Valid() {
			return nil, apperror.Validation("unsupported currency " + string(c))
		}
		if v < 0 {
			return nil, apperror.ErrInvalidAmount()
		}
	}
	if opening == nil {
		opening = Balances{}
	}
	return &CashSession{
		ID:              uuid.New(),
		CashierID:       cashierID,
		OpenedAt:        now,
		OpeningBalances: opening,
		Status:          SessionStatusOpen,
		UpdatedAt:       now,
	}, nil
}

// Pause suspends attribution without closing the session.
func (s *CashSession) Pause(now time.Time) error {
	if s.Status != SessionStatusOpen {
		return apperror.ErrSessionNotOpen(string(s.Status))
	}
	s.Status = SessionStatusPaused
	s.UpdatedAt = now
	return nil
}

// Resume reopens a paused session.
func (s *CashSession) Resume(now time.Time) error {
	if s.Status != SessionStatusPaused {
		return apperror.ErrSessionNotOpen(string(s.Status))
	}
	s.Status = SessionStatusOpen
	s.UpdatedAt = now
	return nil
}

// Close records the declared closing float. Paused sessions may be closed.
func (s *CashSession) Close(declared Balances, now time.Time) error {
	if s.Status == SessionStatusClosed {
		return apperror.ErrSessionNotOpen(string(s.Status))
	}
	for _, v := range declared {
		if v < 0 {
			return apperror.ErrInvalidAmount()
		}
	}
	s.Status = SessionStatusClosed
	s.ClosingBalances = declared
	s.ClosedAt = &now
	s.UpdatedAt = now
	return nil
}

// CurrencyReconciliation compares the declared float against the expected
// float for one currency.
type CurrencyReconciliation struct {
	Currency    Currency `json:"currency"`
	Opening     int64    `json:"opening"`
	Credits     int64    `json:"credits"`
	Debits      int64    `json:"debits"`
	Expected    int64    `json:"expected"`
	Declared    int64    `json:"declared"`
	Discrepancy int64    `json:"discrepancy"`
}

// Reconciliation is the result of closing a session. A discrepancy does not
// prevent closing; callers decide whether to escalate.
type Reconciliation struct {
	SessionID uuid.UUID                `json:"session_id"`
	Lines     []CurrencyReconciliation `json:"lines"`
	Balanced  bool                     `json:"balanced"`
}

// Reconcile computes expected = opening + credits − debits over the entries
// attributed to the session, per currency, and the declared − expected
// discrepancy.
func Reconcile(s *CashSession, entries []Entry, declared Balances) Reconciliation {
	lines := make(map[Currency]*CurrencyReconciliation)
	line := func(c Currency) *CurrencyReconciliation {
		l, ok := lines[c]
		if !ok {
			l = &CurrencyReconciliation{Currency: c}
			lines[c] = l
		}
		return l
	}

	for c, v := range s.OpeningBalances {
		line(c).Opening = v
	}
	for i := range entries {
		delta := entries[i].SignedDelta()
		l := line(entries[i].Currency)
		if delta > 0 {
			l.Credits += delta
		} else {
			l.Debits -= delta
		}
	}
	for c, v := range declared {
		line(c).Declared = v
	}

	rec := Reconciliation{SessionID: s.ID, Balanced: true}
	for _, l := range lines {
		l.Expected = l.Opening + l.Credits - l.Debits
		l.Discrepancy = l.Declared - l.Expected
		if l.Discrepancy != 0 {
			rec.Balanced = false
		}
		rec.Lines = append(rec.Lines, *l)
	}
	sort.Slice(rec.Lines, func(i, j int) bool { return rec.Lines[i].Currency < rec.Lines[j].Currency })
	return rec
}
