package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
	"github.com/konskyyy/ewidencja-sprzetu/internal/middleware"
)

// commentHandler serves the journal of one entity kind.
type commentHandler struct {
	kind           domain.EntityKind
	commentService portssvc.CommentSvcFacade
}

// RegisterCommentRoutes registers the journal routes of kind under /<kind>/:id/comments.
func RegisterCommentRoutes(rg *gin.RouterGroup, kind domain.EntityKind, commentService portssvc.CommentSvcFacade) {
	h := &commentHandler{kind: kind, commentService: commentService}

	comments := rg.Group("/" + kind.String() + "/:id/comments")
	{
		comments.GET("", h.listComments)
		comments.POST("", h.createComment)
		comments.PUT("/:commentId", h.updateComment)
		comments.DELETE("/:commentId", h.deleteComment)
	}
}

// listComments godoc
// @Summary List an entity's journal
// @Description Returns the comments of one entity, newest first
// @Tags comments
// @Produce json
// @Param id path int true "Entity ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Entity not found"
// @Failure 500 {object} map[string]string "Failed to list comments"
// @Security BearerAuth
// @Router /points/{id}/comments [get]
func (h *commentHandler) listComments(c *gin.Context) {
	entityID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err, "")
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), h.kind, entityID)
	if err != nil {
		respondError(c, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// createComment godoc
// @Summary Add a journal entry
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Entity ID"
// @Param comment body dto.CommentBodyRequest true "Comment body"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} map[string]string "Empty or too long body"
// @Failure 404 {object} map[string]string "Entity not found"
// @Failure 500 {object} map[string]string "Failed to create comment"
// @Security BearerAuth
// @Router /points/{id}/comments [post]
func (h *commentHandler) createComment(c *gin.Context) {
	entityID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err, "")
		return
	}
	author, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CommentBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "request format", err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), h.kind, entityID, req, author)
	if err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// updateComment godoc
// @Summary Edit a journal entry
// @Description Only the author may edit; the entry is marked as edited
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Entity ID"
// @Param commentId path int true "Comment ID"
// @Param comment body dto.CommentBodyRequest true "New body"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the author"
// @Failure 404 {object} map[string]string "Comment not found"
// @Security BearerAuth
// @Router /points/{id}/comments/{commentId} [put]
func (h *commentHandler) updateComment(c *gin.Context) {
	entityID, commentID, ok := h.commentTarget(c)
	if !ok {
		return
	}
	author, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CommentBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "request format", err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), h.kind, entityID, commentID, req, author)
	if err != nil {
		respondError(c, err, "Failed to update comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// deleteComment godoc
// @Summary Delete a journal entry
// @Tags comments
// @Produce json
// @Param id path int true "Entity ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.DeleteCommentResponse
// @Failure 403 {object} map[string]string "Not the author"
// @Failure 404 {object} map[string]string "Comment not found"
// @Security BearerAuth
// @Router /points/{id}/comments/{commentId} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	entityID, commentID, ok := h.commentTarget(c)
	if !ok {
		return
	}
	author, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), h.kind, entityID, commentID, author); err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Comment deleted", slog.Int64("comment_id", commentID))
	c.JSON(http.StatusOK, dto.DeleteCommentResponse{OK: true, ID: commentID})
}

func (h *commentHandler) commentTarget(c *gin.Context) (int64, int64, bool) {
	entityID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, err, "")
		return 0, 0, false
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		respondError(c, err, "")
		return 0, 0, false
	}
	return entityID, commentID, true
}
