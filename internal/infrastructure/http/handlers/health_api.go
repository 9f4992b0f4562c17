package handlers

import (
	"net/http"

	"github.com/alchemix/barkeep/pkg/healthcheck"
	"go.uber.org/zap"
)

// HealthHandlers handles health check requests
type HealthHandlers struct {
	checker *healthcheck.Checker
	logger  *zap.Logger
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(checker *healthcheck.Checker, logger *zap.Logger) *HealthHandlers {
	return &HealthHandlers{
		checker: checker,
		logger:  logger,
	}
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := h.checker.Check(r.Context())

	status := http.StatusOK
	if report.Status == healthcheck.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, h.logger, status, report)
}
