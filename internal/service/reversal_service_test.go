package service

import (
	"context"
	"testing"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReversalService_CancelDeposit(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	acct := l.open(t, domain.CurrencyHTG, 10000)

	dep, err := l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(2500, domain.CurrencyHTG)})
	require.NoError(t, err)

	res, err := l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: dep.ID, Reason: "keyed twice", Actor: "supervisor"})
	require.NoError(t, err)

	rev := res.Reversal
	assert.Nil(t, res.Counterpart)
	assert.Equal(t, domain.EntryTypeReversal, rev.Type)
	assert.Equal(t, int64(2500), rev.Amount)
	assert.Equal(t, int64(12500), rev.BalanceBefore)
	assert.Equal(t, int64(10000), rev.BalanceAfter)
	require.NotNil(t, rev.RelatedEntryID)
	assert.Equal(t, dep.ID, *rev.RelatedEntryID)
	assert.Equal(t, "keyed twice", rev.Description)
	assert.Equal(t, "supervisor", rev.ProcessedBy)

	original, err := l.entries.GetByID(ctx, nil, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusReversed, original.Status)
	require.NotNil(t, original.RelatedEntryID)
	assert.Equal(t, rev.ID, *original.RelatedEntryID)

	assert.Equal(t, int64(10000), l.reload(t, acct.ID).Balance)
	l.assertFolds(t, acct)
}

func TestReversalService_CancelTwice(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	acct := l.open(t, domain.CurrencyHTG, 10000)

	wd, err := l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(4000, domain.CurrencyHTG)})
	require.NoError(t, err)

	_, err = l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: wd.ID})
	require.NoError(t, err)
	_, err = l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: wd.ID})
	assertAppError(t, err, apperror.CodeAlreadyReversed)

	assert.Equal(t, int64(10000), l.reload(t, acct.ID).Balance)
	l.assertFolds(t, acct)
}

func TestReversalService_CancelDepositAlreadySpent(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	acct := l.open(t, domain.CurrencyHTG, 0)

	dep, err := l.ledger.Deposit(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(5000, domain.CurrencyHTG)})
	require.NoError(t, err)
	_, err = l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: acct.ID, Amount: domain.NewMoney(3000, domain.CurrencyHTG)})
	require.NoError(t, err)

	_, err = l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: dep.ID})
	assertAppError(t, err, apperror.CodeCannotReverseInsufficient)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, int64(3000), appErr.Details["shortfall"])

	original, err := l.entries.GetByID(ctx, nil, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EntryStatusCompleted, original.Status)
	assert.Equal(t, int64(2000), l.reload(t, acct.ID).Balance)
}

func TestReversalService_CancelTransferReversesBothLegs(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	src := l.open(t, domain.CurrencyHTG, 2000000)
	dst := l.open(t, domain.CurrencyUSD, 0)

	tr, err := l.transfers.Transfer(ctx, ports.TransferRequest{
		SourceAccountID:      src.ID,
		DestinationAccountID: dst.ID,
		Amount:               domain.NewMoney(1000000, domain.CurrencyHTG),
	})
	require.NoError(t, err)

	// Cancelling the incoming leg reverses the outgoing one too.
	res, err := l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: tr.In.ID, Reason: "wrong beneficiary"})
	require.NoError(t, err)
	require.NotNil(t, res.Counterpart)
	assert.Equal(t, dst.ID, res.Reversal.AccountID)
	assert.Equal(t, src.ID, res.Counterpart.AccountID)
	assert.Equal(t, int64(7500), res.Reversal.Amount)
	assert.Equal(t, int64(1000000), res.Counterpart.Amount)
	require.NotNil(t, res.Reversal.ExchangeRate)
	assert.Equal(t, "0.0075", res.Reversal.ExchangeRate.String())

	assert.Equal(t, int64(2000000), l.reload(t, src.ID).Balance)
	assert.Equal(t, int64(0), l.reload(t, dst.ID).Balance)
	l.assertFolds(t, src)
	l.assertFolds(t, dst)

	_, err = l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: tr.Out.ID})
	assertAppError(t, err, apperror.CodeAlreadyReversed)
}

func TestReversalService_CancelTransferWhenDestinationSpent(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	src := l.open(t, domain.CurrencyHTG, 10000)
	dst := l.open(t, domain.CurrencyHTG, 0)

	tr, err := l.transfers.Transfer(ctx, ports.TransferRequest{SourceAccountID: src.ID, DestinationAccountID: dst.ID, Amount: domain.NewMoney(6000, domain.CurrencyHTG)})
	require.NoError(t, err)
	_, err = l.ledger.Withdraw(ctx, ports.MovementRequest{AccountID: dst.ID, Amount: domain.NewMoney(5000, domain.CurrencyHTG)})
	require.NoError(t, err)

	_, err = l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: tr.Out.ID})
	assertAppError(t, err, apperror.CodeCannotReverseInsufficient)

	assert.Equal(t, int64(4000), l.reload(t, src.ID).Balance)
	assert.Equal(t, int64(1000), l.reload(t, dst.ID).Balance)
	l.assertFolds(t, src)
	l.assertFolds(t, dst)
}

func TestReversalService_Rejections(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	acct := l.open(t, domain.CurrencyHTG, 10000)

	_, err := l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: uuid.New()})
	assertAppError(t, err, apperror.CodeNotFound)

	_, err = l.guarantees.SetGuarantee(ctx, ports.GuaranteeRequest{
		AccountID:         acct.ID,
		LoanApplicationID: "LA-1",
		LoanType:          domain.LoanTypePersonal,
		RequestedAmount:   domain.NewMoney(10000, domain.CurrencyHTG),
	})
	require.NoError(t, err)
	entries, err := l.ledger.ListEntries(ctx, acct.ID)
	require.NoError(t, err)
	block := entries[len(entries)-1]
	require.Equal(t, domain.EntryTypeGuaranteeBlock, block.Type)

	_, err = l.reversals.Cancel(ctx, ports.CancelRequest{EntryID: block.ID})
	assertAppError(t, err, apperror.CodeNotReversible)
}
