package service

import (
	"context"
	"testing"
	"time"

	"microfinance-ledger/internal/adapter/storage/memory"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (m *mockTx) Rollback(_ context.Context) error {
	m.rollbacks++
	return nil
}

func (m *mockTx) Commit(_ context.Context) error {
	m.commits++
	return m.commitErr
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

// testClock is a settable clock shared by all services of a ledger.
type testClock struct{ t time.Time }

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// testLedger wires every service to one in-memory store.
type testLedger struct {
	store      *memory.Store
	accounts   *memory.AccountRepo
	entries    *memory.EntryRepo
	guarRepo   *memory.GuaranteeRepo
	termRepo   *memory.TermDepositRepo
	sessRepo   *memory.CashSessionRepo
	clock      *testClock
	ledger     *LedgerServiceImpl
	transfers  *TransferServiceImpl
	reversals  *ReversalServiceImpl
	guarantees *GuaranteeServiceImpl
	interest   *InterestServiceImpl
	sessions   *CashSessionServiceImpl
	exchange   *ExchangeServiceImpl
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()
	store := memory.NewStore()
	l := &testLedger{
		store:    store,
		accounts: memory.NewAccountRepo(store),
		entries:  memory.NewEntryRepo(store),
		guarRepo: memory.NewGuaranteeRepo(store),
		termRepo: memory.NewTermDepositRepo(store),
		sessRepo: memory.NewCashSessionRepo(store),
		clock:    &testClock{t: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)},
	}
	log := zerolog.Nop()
	uow := NewUnitOfWork(store, 3, time.Millisecond, log)

	exchange, err := NewExchangeService(nil, map[string]string{
		"HTG_USD": "0.0075",
		"usd_htg": "132.50",
	}, time.Hour, log)
	require.NoError(t, err)
	l.exchange = exchange

	l.ledger = NewLedgerService(uow, l.accounts, l.entries, l.sessRepo, l.termRepo, log)
	l.ledger.now = l.clock.now
	l.transfers = NewTransferService(uow, l.accounts, l.entries, exchange, log)
	l.transfers.now = l.clock.now
	l.reversals = NewReversalService(uow, l.accounts, l.entries, l.sessRepo, log)
	l.reversals.now = l.clock.now
	l.guarantees = NewGuaranteeService(uow, l.accounts, l.entries, l.guarRepo, nil, log)
	l.guarantees.now = l.clock.now
	l.interest = NewInterestService(uow, l.accounts, l.entries, l.sessRepo, l.termRepo, DefaultInterestSettings(), log)
	l.interest.now = l.clock.now
	l.sessions = NewCashSessionService(uow, l.sessRepo, l.entries, log)
	l.sessions.now = l.clock.now
	return l
}

// open creates an active account funded with minor units of c.
func (l *testLedger) open(t *testing.T, c domain.Currency, minor int64) *domain.Account {
	t.Helper()
	acct, err := l.ledger.OpenAccount(context.Background(), ports.OpenAccountRequest{
		CustomerID:     "CUST-1",
		Type:           domain.AccountTypeSavings,
		Currency:       c,
		InitialDeposit: minor,
		Actor:          "teller-1",
	})
	require.NoError(t, err)
	return acct
}

// reload reads the committed state of an account.
func (l *testLedger) reload(t *testing.T, id uuid.UUID) *domain.Account {
	t.Helper()
	acct, err := l.ledger.GetAccount(context.Background(), id)
	require.NoError(t, err)
	return acct
}

// assertFolds checks that the stored balances equal the fold of the entry log.
func (l *testLedger) assertFolds(t *testing.T, acct *domain.Account) {
	t.Helper()
	rec, err := l.ledger.ReconcileAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Balance, rec.FoldedBalance)
	assert.Equal(t, rec.Blocked, rec.FoldedBlocked)
}
