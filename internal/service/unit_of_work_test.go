package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/internal/core/ports/mocks"
	"microfinance-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnitOfWork_Commits(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	tx := &mockTx{}
	ctx := context.Background()

	transactor.EXPECT().Begin(ctx).Return(tx, nil)

	uow := NewUnitOfWork(transactor, 2, 0, zerolog.Nop())
	err := uow.Run(ctx, "op", func(got pgx.Tx) error {
		assert.Same(t, tx, got)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.commits)
}

func TestUnitOfWork_RetriesConcurrentUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	ctx := context.Background()

	first, second := &mockTx{}, &mockTx{}
	gomock.InOrder(
		transactor.EXPECT().Begin(ctx).Return(first, nil),
		transactor.EXPECT().Begin(ctx).Return(second, nil),
	)

	calls := 0
	uow := NewUnitOfWork(transactor, 2, time.Millisecond, zerolog.Nop())
	err := uow.Run(ctx, "op", func(pgx.Tx) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("update account: %w", ports.ErrConcurrentUpdate)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, first.commits)
	assert.Equal(t, 1, first.rollbacks)
	assert.Equal(t, 1, second.commits)
}

func TestUnitOfWork_RetriesCommitConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	ctx := context.Background()

	conflicted := &mockTx{commitErr: fmt.Errorf("40001: %w", ports.ErrConcurrentUpdate)}
	gomock.InOrder(
		transactor.EXPECT().Begin(ctx).Return(conflicted, nil),
		transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil),
	)

	uow := NewUnitOfWork(transactor, 1, 0, zerolog.Nop())
	require.NoError(t, uow.Run(ctx, "op", func(pgx.Tx) error { return nil }))
}

func TestUnitOfWork_RetriesExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	ctx := context.Background()

	transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil).Times(3)

	uow := NewUnitOfWork(transactor, 2, 0, zerolog.Nop())
	err := uow.Run(ctx, "op", func(pgx.Tx) error { return ports.ErrConcurrentUpdate })

	assertAppError(t, err, apperror.CodeConcurrencyConflict)
	assert.True(t, errors.Is(err, ports.ErrConcurrentUpdate))
}

func TestUnitOfWork_BusinessErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	ctx := context.Background()
	tx := &mockTx{}

	transactor.EXPECT().Begin(ctx).Return(tx, nil)

	uow := NewUnitOfWork(transactor, 2, 0, zerolog.Nop())
	err := uow.Run(ctx, "op", func(pgx.Tx) error { return apperror.ErrInsufficientFunds(500, "HTG") })

	assertAppError(t, err, apperror.CodeInsufficientFunds)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestUnitOfWork_InfrastructureErrorIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	ctx := context.Background()

	transactor.EXPECT().Begin(ctx).Return(nil, errors.New("connection refused"))

	uow := NewUnitOfWork(transactor, 2, 0, zerolog.Nop())
	err := uow.Run(ctx, "op", func(pgx.Tx) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})

	assertAppError(t, err, apperror.CodeInternal)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUnitOfWork_StopsRetryingOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	transactor := mocks.NewMockDBTransactor(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	transactor.EXPECT().Begin(ctx).Return(&mockTx{}, nil)

	uow := NewUnitOfWork(transactor, 5, time.Hour, zerolog.Nop())
	err := uow.Run(ctx, "op", func(pgx.Tx) error {
		cancel()
		return ports.ErrConcurrentUpdate
	})

	assertAppError(t, err, apperror.CodeInternal)
	assert.ErrorIs(t, err, context.Canceled)
}
