package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"microfinance-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// healthTimeout bounds each dependency ping.
const healthTimeout = 2 * time.Second

type depStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are pinged concurrently and
// any failure reports the service as degraded with 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps := make(map[string]depStatus, len(checkers))
		var mu sync.Mutex
		var wg sync.WaitGroup

		for _, checker := range checkers {
			wg.Add(1)
			go func(checker ports.HealthChecker) {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
				defer cancel()

				start := time.Now()
				st := depStatus{Status: "healthy"}
				if err := checker.Ping(ctx); err != nil {
					st = depStatus{Status: "unhealthy", Error: err.Error()}
				}
				st.Latency = time.Since(start).Round(time.Microsecond).String()

				mu.Lock()
				deps[checker.Name()] = st
				mu.Unlock()
			}(checker)
		}
		wg.Wait()

		status, code := "healthy", http.StatusOK
		for _, st := range deps {
			if st.Status != "healthy" {
				status, code = "degraded", http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
