package ports

import "context"

// HealthChecker is a storage dependency reported by GET /health. Ping must
// honour ctx cancellation; Name keys the dependency in the response.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
