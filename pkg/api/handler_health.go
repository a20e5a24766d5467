package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cipherswarm/cipherswarm/pkg/database"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/version"
)

// healthHandler handles GET /health and GET /api/v1/operator/health: the
// read-only system probes (store reachability plus background
// worker liveness).
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]models.HealthCheck{}
	overall := "healthy"

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		overall = "unhealthy"
		checks["database"] = models.HealthCheck{Status: "unhealthy", Message: err.Error()}
	} else {
		checks["database"] = models.HealthCheck{
			Status:  dbHealth.Status,
			Message: fmt.Sprintf("%d/%d connections in use", dbHealth.InUse, dbHealth.MaxOpenConns),
		}
	}

	if s.sweeper != nil {
		scanned, reclaimed, failed, ok := s.sweeper.LastSweep()
		if !ok {
			checks["lease_sweeper"] = models.HealthCheck{Status: "pending", Message: "no sweep completed yet"}
		} else {
			status := "healthy"
			if failed > 0 {
				status = "degraded"
				if overall == "healthy" {
					overall = "degraded"
				}
			}
			checks["lease_sweeper"] = models.HealthCheck{
				Status:  status,
				Message: fmt.Sprintf("scanned=%d reclaimed=%d failed=%d", scanned, reclaimed, failed),
			}
		}
	}

	if s.poller != nil {
		lastScan, updated := s.poller.LastScan()
		if lastScan.IsZero() {
			checks["resource_poller"] = models.HealthCheck{Status: "pending", Message: "no poll completed yet"}
		} else {
			checks["resource_poller"] = models.HealthCheck{
				Status:  "healthy",
				Message: fmt.Sprintf("last pass resolved %d line counts", updated),
			}
		}
	}

	status := http.StatusOK
	if overall == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"status":  overall,
		"version": version.Full(),
		"checks":  checks,
	})
}
