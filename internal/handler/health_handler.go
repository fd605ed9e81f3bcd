package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shelfwise/inventory-api/internal/store"
	"github.com/shelfwise/inventory-api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	store   *store.Store
	backend string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store, backend string) *HealthHandler {
	return &HealthHandler{store: st, backend: backend}
}

// GetHealth responds with service status and storage details.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"storage": gin.H{
			"backend":  h.backend,
			"products": h.store.Count(),
		},
	})
}
