package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
	"github.com/konskyyy/ewidencja-sprzetu/internal/middleware"
)

// updatesHandler serves the unread feed and acknowledgements.
type updatesHandler struct {
	feedService      portssvc.FeedSvc
	readStateService portssvc.ReadStateSvc
}

// RegisterUpdatesRoutes registers routes under /updates.
func RegisterUpdatesRoutes(rg *gin.RouterGroup, feedService portssvc.FeedSvc, readStateService portssvc.ReadStateSvc) {
	h := &updatesHandler{feedService: feedService, readStateService: readStateService}

	updates := rg.Group("/updates")
	{
		updates.GET("/recent", h.recent)
		updates.POST("/read", h.markRead)
		updates.POST("/read-all", h.markAllRead)
	}
}

// recent godoc
// @Summary Unread journal activity
// @Description Newest comments across all entity kinds that the caller has not acknowledged
// @Tags updates
// @Produce json
// @Param limit query int false "Max items (1-100, default 30)"
// @Success 200 {array} dto.FeedItemResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to load updates"
// @Security BearerAuth
// @Router /updates/recent [get]
func (h *updatesHandler) recent(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.RecentUpdatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	items, err := h.feedService.RecentUpdates(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to load updates")
		return
	}
	c.JSON(http.StatusOK, dto.ToFeedItemResponses(items))
}

// markRead godoc
// @Summary Acknowledge one comment
// @Description Idempotent; repeated calls refresh read_at
// @Tags updates
// @Accept json
// @Produce json
// @Param mark body dto.MarkReadRequest true "Comment to acknowledge"
// @Success 200 {object} dto.MarkReadResponse
// @Failure 400 {object} map[string]string "Invalid kind or ids"
// @Security BearerAuth
// @Router /updates/read [post]
func (h *updatesHandler) markRead(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "request format", err)
		return
	}

	mark, err := h.readStateService.MarkRead(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to mark comment as read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkReadResponse{OK: true, Row: dto.ToReadMarkResponse(mark)})
}

// markAllRead godoc
// @Summary Acknowledge a batch of unread comments
// @Description Inserts marks for up to limit unread comments, newest first
// @Tags updates
// @Produce json
// @Param limit query int false "Batch size (1-500, default 300)"
// @Success 200 {object} dto.MarkAllReadResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Security BearerAuth
// @Router /updates/read-all [post]
func (h *updatesHandler) markAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.MarkAllReadParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	inserted, err := h.readStateService.MarkAllRead(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to mark updates as read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkAllReadResponse{OK: true, Inserted: inserted})
}
