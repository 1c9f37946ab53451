package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports/mocks"
	"microfinance-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var staticRates = map[string]string{"htg_usd": "0.0075", "USD_HTG": "132.50"}

func TestExchangeService_Rate(t *testing.T) {
	ctx := context.Background()
	published := decimal.RequireFromString("0.0076")

	tests := []struct {
		name  string
		setup func(store *mocks.MockExchangeRateStore)
		from  domain.Currency
		to    domain.Currency
		want  string
		code  string
	}{
		{
			name: "published rate wins",
			setup: func(store *mocks.MockExchangeRateStore) {
				store.EXPECT().Get(ctx, domain.CurrencyHTG, domain.CurrencyUSD).Return(published, true, nil)
			},
			from: domain.CurrencyHTG, to: domain.CurrencyUSD, want: "0.0076",
		},
		{
			name: "cache miss falls back to static table",
			setup: func(store *mocks.MockExchangeRateStore) {
				store.EXPECT().Get(ctx, domain.CurrencyUSD, domain.CurrencyHTG).Return(decimal.Zero, false, nil)
			},
			from: domain.CurrencyUSD, to: domain.CurrencyHTG, want: "132.5",
		},
		{
			name: "cache error falls back to static table",
			setup: func(store *mocks.MockExchangeRateStore) {
				store.EXPECT().Get(ctx, domain.CurrencyHTG, domain.CurrencyUSD).Return(decimal.Zero, false, errors.New("redis down"))
			},
			from: domain.CurrencyHTG, to: domain.CurrencyUSD, want: "0.0075",
		},
		{
			name:  "same currency",
			setup: func(*mocks.MockExchangeRateStore) {},
			from:  domain.CurrencyUSD, to: domain.CurrencyUSD, want: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockExchangeRateStore(ctrl)
			tt.setup(store)

			svc, err := NewExchangeService(store, staticRates, time.Hour, zerolog.Nop())
			require.NoError(t, err)

			rate, err := svc.Rate(ctx, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rate.String())
		})
	}
}

func TestExchangeService_NoRate(t *testing.T) {
	svc, err := NewExchangeService(nil, nil, time.Hour, zerolog.Nop())
	require.NoError(t, err)

	_, err = svc.Rate(context.Background(), domain.CurrencyHTG, domain.CurrencyUSD)
	assertAppError(t, err, apperror.CodeNoExchangeRate)
}

func TestExchangeService_InvalidStaticRate(t *testing.T) {
	_, err := NewExchangeService(nil, map[string]string{"HTG_USD": "abc"}, time.Hour, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewExchangeService(nil, map[string]string{"HTG_USD": "-1"}, time.Hour, zerolog.Nop())
	assert.Error(t, err)
}

func TestExchangeService_PublishRate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockExchangeRateStore(ctrl)
	rate := decimal.RequireFromString("131.75")

	store.EXPECT().Set(ctx, domain.CurrencyUSD, domain.CurrencyHTG, rate, 30*time.Minute).Return(nil)

	svc, err := NewExchangeService(store, nil, 30*time.Minute, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, svc.PublishRate(ctx, domain.CurrencyUSD, domain.CurrencyHTG, rate))

	assertAppError(t, svc.PublishRate(ctx, domain.CurrencyUSD, domain.CurrencyUSD, rate), apperror.CodeValidation)
	assertAppError(t, svc.PublishRate(ctx, domain.CurrencyUSD, domain.CurrencyHTG, decimal.Zero), apperror.CodeValidation)
	assertAppError(t, svc.PublishRate(ctx, "EUR", domain.CurrencyHTG, rate), apperror.CodeValidation)
}

func TestExchangeService_PublishWithoutStore(t *testing.T) {
	ctx := context.Background()
	svc, err := NewExchangeService(nil, nil, time.Hour, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, svc.PublishRate(ctx, domain.CurrencyHTG, domain.CurrencyUSD, decimal.RequireFromString("0.008")))

	rate, err := svc.Rate(ctx, domain.CurrencyHTG, domain.CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, "0.008", rate.String())
}
