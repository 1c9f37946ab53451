package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_OpenAccount_WithInitialDeposit(t *testing.T) {
	l := newTestLedger(t)

	acct := l.open(t, domain.CurrencyHTG, 500000)

	assert.True(t, strings.HasPrefix(acct.Number, "G"))
	assert.NoError(t, domain.ValidateAccountNumber(acct.Number, domain.CurrencyHTG))
	assert.Equal(t, domain.AccountStatusActive, acct.Status)
	assert.Equal(t, int64(500000), acct.Balance)

	entries, err := l.ledger.ListEntries(context.Background(), acct.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryTypeDeposit, entries[0].Type)
	assert.Equal(t, int64(0), entries[0].BalanceBefore)
	assert.Equal(t, int64(500000), entries[0].BalanceAfter)
	assert.Equal(t, "teller-1", entries[0].ProcessedBy)
	l.assertFolds(t, acct)
}

func TestLedgerService_OpenAccount_USDNumber(t *testing.T) {
	l := newTestLedger(t)

	acct := l.open(t, domain.CurrencyUSD, 0)

	assert.True(t, strings.HasPrefix(acct.Number, "D"))
	got, err := l.ledger.GetAccountByNumber(context.Background(), strings.ToLower(acct.Number))
	require.NoError(t, err)
	assert.Equal(t, acct.ID, got.ID)
}

func TestLedgerService_OpenAccount_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ports.OpenAccountRequest
		code string
	}{
		{"missing customer", ports.OpenAccountRequest{Type: domain.AccountTypeSavings, Currency: domain.CurrencyHTG}, apperror.CodeValidation},
		{"term savings", ports.OpenAccountRequest{CustomerID: "C", Type: domain.AccountTypeTermSavings, Currency: domain.CurrencyHTG}, apperror.CodeValidation},
		{"unknown currency", ports.OpenAccountRequest{CustomerID: "C", Type: domain.AccountTypeSavings, Currency: "EUR"}, apperror.CodeValidation},
		{"negative deposit", ports.OpenAccountRequest{CustomerID: "C", Type: domain.AccountTypeSavings, Currency: domain.CurrencyHTG, InitialDeposit: -1}, apperror.CodeInvalidAmount},
		{"deposit on pending account", ports.OpenAccountRequest{CustomerID: "C", Type: domain.AccountTypeSavings, Currency: domain.CurrencyHTG, InitialDeposit: 100, RequireApproval: true}, apperror.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			_, err := l.ledger.OpenAccount(context.Background(), tt.req)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestLedgerService_DepositWithdraw(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	acct := l.open(t, domain.CurrencyHTG, 100000)

	dep, err := l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(25050, domain.CurrencyHTG), Actor: "teller-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(100000), dep.BalanceBefore)
	assert.Equal(t, int64(125050), dep.BalanceAfter)

	wd, err := l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(50, domain.CurrencyHTG), Actor: "teller-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(125000), wd.BalanceAfter)

	assert.Equal(t, int64(125000), l.reload(t, acct.ID).Balance)
	l.assertFolds(t, acct)
}

func TestLedgerService_Withdraw_InsufficientFunds(t *testing.T) {
	l := newTestLedger(t)
	acct := l.open(t, domain.CurrencyHTG, 10000)

	_, err := l.ledger.Withdraw(context.Background(), ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(10001, domain.CurrencyHTG)})

	assertAppError(t, err, apperror.CodeInsufficientFunds)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, int64(1), appErr.Details["shortfall"])

	assert.Equal(t, int64(10000), l.reload(t, acct.ID).Balance)
	entries, err := l.ledger.ListEntries(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLedgerService_Deposit_Errors(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	acct := l.open(t, domain.CurrencyHTG, 0)

	_, err := l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(0, domain.CurrencyHTG)})
	assertAppError(t, err, apperror.CodeInvalidAmount)

	_, err = l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(100, domain.CurrencyUSD)})
	assertAppError(t, err, apperror.CodeCurrencyMismatch)

	_, err = l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: uuid.New(), Amount: domain.NewMoney(100, domain.CurrencyHTG)})
	assertAppError(t, err, apperror.CodeNotFound)
}

func TestLedgerService_ConcurrentWithdrawals(t *testing.T) {
	l := newTestLedger(t)
	acct := l.open(t, domain.CurrencyHTG, 10000)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.ledger.Withdraw(context.Background(), ports.MovementRequest{
				AccountID: acct.ID,
				Amount:    domain.NewMoney(10000, domain.CurrencyHTG),
			})
		}(i)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			assertAppError(t, err, apperror.CodeInsufficientFunds)
			failed++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, int64(0), l.reload(t, acct.ID).Balance)
	l.assertFolds(t, acct)
}

func TestLedgerService_StatusLifecycle(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	acct, err := l.ledger.OpenAccount(ctx, ports.OpenAccountRequest{
		CustomerID:      "CUST-2",
		Type:            domain.AccountTypeCurrent,
		Currency:        domain.CurrencyHTG,
		RequireApproval: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusPendingApproval, acct.Status)

	_, err = l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(100, domain.CurrencyHTG)})
	assertAppError(t, err, apperror.CodeAccountNotActive)

	acct, err = l.ledger.SetStatus(ctx, acct.ID, domain.AccountStatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, acct.Status)

	_, err = l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(100, domain.CurrencyHTG)})
	require.NoError(t, err)

	_, err = l.ledger.CloseAccount(ctx, acct.ID)
	assertAppError(t, err, apperror.CodeAccountHasFunds)

	_, err = l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(100, domain.CurrencyHTG)})
	require.NoError(t, err)

	acct, err = l.ledger.CloseAccount(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusClosed, acct.Status)
	assert.NotNil(t, acct.ClosedAt)

	_, err = l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(100, domain.CurrencyHTG)})
	assertAppError(t, err, apperror.CodeAccountClosed)

	_, err = l.ledger.SetStatus(ctx, acct.ID, domain.AccountStatusActive)
	require.Error(t, err)
}

func TestLedgerService_ReconcileDetectsDrift(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	acct := l.open(t, domain.CurrencyHTG, 10000)

	stored := l.reload(t, acct.ID)
	stored.Balance += 1
	require.NoError(t, l.accounts.Update(ctx, nil, stored))

	rec, err := l.ledger.ReconcileAccount(ctx, acct.ID)
	assertAppError(t, err, apperror.CodeLedgerInvariantViolation)
	require.NotNil(t, rec)
	assert.Equal(t, int64(10001), rec.Balance)
	assert.Equal(t, int64(10000), rec.FoldedBalance)
}

func TestLedgerService_ListEntries_UnknownAccount(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.ledger.ListEntries(context.Background(), uuid.New())
	assertAppError(t, err, apperror.CodeNotFound)
}
