package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports the health of a dependency.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

// HealthCheck is the per-dependency health result.
type HealthCheck struct {
	Status         string `json:"status"`
	ResponseTimeMs int64  `json:"responseTimeMs"`
	Error          string `json:"error,omitempty"`
}

// HealthHandler handles GET /health.
type HealthHandler struct {
	service  string
	checkers []HealthChecker
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(service string, checkers ...HealthChecker) *HealthHandler {
	return &HealthHandler{service: service, checkers: checkers}
}

// Check runs every dependency check and reports 200 when all pass, 503
// otherwise.
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	overall := "healthy"
	checks := make(map[string]HealthCheck, len(h.checkers))

	for _, checker := range h.checkers {
		start := time.Now()
		err := checker.Ping(c.Request.Context())
		check := HealthCheck{
			Status:         "healthy",
			ResponseTimeMs: time.Since(start).Milliseconds(),
		}
		if err != nil {
			check.Status = "unhealthy"
			check.Error = err.Error()
			overall = "unhealthy"
			status = http.StatusServiceUnavailable
		}
		checks[checker.Name()] = check
	}

	c.JSON(status, gin.H{
		"status":  overall,
		"service": h.service,
		"checks":  checks,
	})
}
