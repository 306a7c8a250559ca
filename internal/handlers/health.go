package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GiulianoD/vports/internal/database"
	apierrors "github.com/GiulianoD/vports/internal/errors"
	"github.com/GiulianoD/vports/internal/middleware"
)

// HealthCheckTimeout bounds the database ping on health checks.
const HealthCheckTimeout = 2 * time.Second

// HealthHandler handles the health and database diagnostics endpoints.
type HealthHandler struct {
	db  *database.Database
	env string
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(db *database.Database, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}

// Health handles GET /api/health.
// Returns 200 when the database answers a ping, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), HealthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Database health check failed", err, map[string]interface{}{
				"timeout": HealthCheckTimeout.String(),
			})
		}

		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:      "unhealthy",
			Database:    "disconnected",
			Environment: h.env,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Database:    "connected",
		Environment: h.env,
	})
}

// DatabaseInfo handles GET /api/database-info.
// Returns the connected database name, server version and per-table row
// counts.
func (h *HealthHandler) DatabaseInfo(c *gin.Context) {
	info, err := h.db.CollectInfo(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Erro ao consultar informações do banco", err)
		return
	}
	ok(c, info)
}
