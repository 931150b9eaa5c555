package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
	"github.com/konskyyy/ewidencja-sprzetu/internal/middleware"
)

const healthCheckTimeout = 2 * time.Second

type homeHandler struct {
	version string
	health  portsrepo.HealthChecker // nil disables the database check
}

// healthCheck godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 503 {object} map[string]any "Database unreachable"
// @Router /health [get]
func (h *homeHandler) healthCheck(c *gin.Context) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.health.Ping(ctx); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// getVersion godoc
// @Summary Build version
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /version [get]
func (h *homeHandler) getVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": h.version, "ts": time.Now().UnixMilli()})
}

// me godoc
// @Summary Current identity
// @Description Echoes the identity carried by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *homeHandler) me(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.IdentityResponse{User: dto.IdentityUser{ID: identity.UserID, Email: identity.Label}})
}

// notFound answers unmatched routes with a JSON body.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not Found", "path": c.Request.URL.Path, "method": c.Request.Method})
}
