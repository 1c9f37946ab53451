package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const healthKey = "mfl:health"

// HealthCheck reports Redis as healthy only when it accepts writes, since
// rate-limit counters and published exchange rates are both written there.
// A read-only replica fails the check.
type HealthCheck struct {
	client goredis.UniversalClient
}

func NewHealthCheck(client goredis.UniversalClient) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Set(ctx, healthKey, time.Now().UTC().Unix(), 30*time.Second).Err(); err != nil {
		return fmt.Errorf("redis health: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string { return "redis" }
