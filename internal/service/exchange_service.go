package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ExchangeServiceImpl implements ports.ExchangeService. Rates resolve from the
// published cache first, then from the static table.
type ExchangeServiceImpl struct {
	store ports.ExchangeRateStore // optional
	ttl   time.Duration
	log   zerolog.Logger

	mu     sync.RWMutex
	static map[string]decimal.Decimal
}

// NewExchangeService parses the static table, keyed "FROM_TO" with decimal
// string rates. store may be nil; published rates are then kept in memory.
func NewExchangeService(store ports.ExchangeRateStore, rates map[string]string, ttl time.Duration, log zerolog.Logger) (*ExchangeServiceImpl, error) {
	static := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		rate, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("exchange rate %s: %w", k, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("exchange rate %s must be positive", k)
		}
		static[strings.ToUpper(k)] = rate
	}
	return &ExchangeServiceImpl{store: store, ttl: ttl, log: log, static: static}, nil
}

func pairKey(from, to domain.Currency) string {
	return string(from) + "_" + string(to)
}

// Rate returns units of to per unit of from.
func (s *ExchangeServiceImpl) Rate(ctx context.Context, from, to domain.Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if s.store != nil {
		rate, ok, err := s.store.Get(ctx, from, to)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("pair", pairKey(from, to)).Msg("exchange rate cache unavailable, using static table")
		case ok:
			return rate, nil
		}
	}

	s.mu.RLock()
	rate, ok := s.static[pairKey(from, to)]
	s.mu.RUnlock()
	if !ok {
		return decimal.Zero, apperror.ErrNoExchangeRate(string(from), string(to))
	}
	return rate, nil
}

// PublishRate records a rate from the exchange desk.
func (s *ExchangeServiceImpl) PublishRate(ctx context.Context, from, to domain.Currency, rate decimal.Decimal) error {
	if !from.Valid() || !to.Valid() {
		return apperror.Validation("unsupported currency pair " + pairKey(from, to))
	}
	if from == to {
		return apperror.Validation("currencies must differ")
	}
	if !rate.IsPositive() {
		return apperror.Validation("rate must be positive")
	}

	if s.store != nil {
		if err := s.store.Set(ctx, from, to, rate, s.ttl); err != nil {
			return apperror.InternalError(err)
		}
	} else {
		s.mu.Lock()
		s.static[pairKey(from, to)] = rate
		s.mu.Unlock()
	}

	s.log.Info().Str("pair", pairKey(from, to)).Str("rate", rate.String()).Msg("exchange rate published")
	return nil
}
