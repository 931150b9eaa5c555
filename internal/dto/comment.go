package dto

import (
	"strings"
	"time"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// CommentBodyRequest is the payload for creating or editing a comment.
// The body is trimmed before validation.
type CommentBodyRequest struct {
	Body string `json:"body" validate:"required,max=5000"`
}

// Normalize trims surrounding whitespace and validates the body.
func (r CommentBodyRequest) Normalize() (CommentBodyRequest, error) {
	r.Body = strings.TrimSpace(r.Body)
	if err := Validate(r); err != nil {
		return r, err
	}
	return r, nil
}

// CommentResponse defines the data returned for a journal comment.
type CommentResponse struct {
	ID          int64      `json:"id"`
	Kind        string     `json:"kind"`
	EntityID    int64      `json:"entity_id"`
	AuthorID    int64      `json:"author_id"`
	AuthorLabel string     `json:"author_label"`
	Body        string     `json:"body"`
	CreatedAt   time.Time  `json:"created_at"`
	Edited      bool       `json:"edited"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// DeleteCommentResponse confirms a deletion.
type DeleteCommentResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// ToCommentResponse converts a domain.Comment to CommentResponse DTO.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		Kind:        c.Kind.String(),
		EntityID:    c.EntityID,
		AuthorID:    c.AuthorID,
		AuthorLabel: c.AuthorLabel,
		Body:        c.Body,
		CreatedAt:   c.CreatedAt,
		Edited:      c.Edited,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCommentResponses converts a slice of domain.Comment; never returns nil.
func ToCommentResponses(comments []domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = ToCommentResponse(&comments[i])
	}
	return responses
}
