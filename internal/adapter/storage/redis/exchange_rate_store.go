package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"microfinance-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// ExchangeRateStore implements ports.ExchangeRateStore. Rates are stored as
// decimal strings under fx:<FROM>:<TO>.
type ExchangeRateStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewExchangeRateStore creates a Redis-backed exchange-rate cache.
func NewExchangeRateStore(client goredis.UniversalClient) *ExchangeRateStore {
	return &ExchangeRateStore{
		client: client,
		prefix: "fx:",
	}
}

func (s *ExchangeRateStore) key(from, to domain.Currency) string {
	return s.prefix + string(from) + ":" + string(to)
}

// Get returns the published rate for the pair; ok is false when none is cached.
func (s *ExchangeRateStore) Get(ctx context.Context, from, to domain.Currency) (decimal.Decimal, bool, error) {
	val, err := s.client.Get(ctx, s.key(from, to)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("redis exchange rate get: %w", err)
	}
	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("redis exchange rate %s: parse %q: %w", s.key(from, to), val, err)
	}
	return rate, true, nil
}

// Set publishes a rate. A zero ttl keeps it until replaced.
func (s *ExchangeRateStore) Set(ctx context.Context, from, to domain.Currency, rate decimal.Decimal, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(from, to), rate.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis exchange rate set: %w", err)
	}
	return nil
}
