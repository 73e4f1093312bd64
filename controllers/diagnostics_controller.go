package controllers

import (
	"context"
	"net/http"

	"github.com/blogem/ptlog/database"
)

// DiagnosticsSource is the read-only view of the database used by diagnostics
type DiagnosticsSource interface {
	PoolStats() database.PoolStats
	Info(ctx context.Context) database.Info
}

// DiagnosticsController exposes pool and backend state
type DiagnosticsController struct {
	db DiagnosticsSource
}

// NewDiagnosticsController creates a new diagnostics controller
func NewDiagnosticsController(db DiagnosticsSource) *DiagnosticsController {
	return &DiagnosticsController{db: db}
}

// Pool handles GET /diagnostics/pool
func (c *DiagnosticsController) Pool(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.db.PoolStats())
}

// Database handles GET /diagnostics/db. An unreachable backend is reported
// with 503 and the same body.
func (c *DiagnosticsController) Database(w http.ResponseWriter, r *http.Request) {
	info := c.db.Info(r.Context())
	status := http.StatusOK
	if !info.Reachable {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, info)
}

// HealthController answers liveness probes
type HealthController struct{}

// NewHealthController creates a new health controller
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Healthcheck handles GET /healthcheck
func (c *HealthController) Healthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "API Health Check"})
}
