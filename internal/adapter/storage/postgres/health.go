package postgres

import (
	"context"
	"errors"
	"fmt"
)

var errSchemaMissing = errors.New("ledger schema not migrated")

// HealthCheck implements ports.HealthChecker for PostgreSQL. Besides
// connectivity it requires the entries table, so an unmigrated database
// reports unhealthy instead of failing on the first posting.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var present bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('entries') IS NOT NULL`).Scan(&present); err != nil {
		return fmt.Errorf("postgres health: %w", err)
	}
	if !present {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
