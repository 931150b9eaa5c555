package dto

import (
	"time"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// RecentUpdatesParams defines query parameters for the unread feed.
type RecentUpdatesParams struct {
	Limit *int `form:"limit"`
}

// EffectiveLimit applies the default (30) and bounds [1, 100].
func (p RecentUpdatesParams) EffectiveLimit() int {
	return domain.ClampLimit(p.Limit, domain.DefaultFeedLimit, domain.MaxFeedLimit)
}

// MarkAllReadParams defines query parameters for the bulk acknowledgement.
type MarkAllReadParams struct {
	Limit *int `form:"limit"`
}

// EffectiveLimit applies the default (300) and bounds [1, 500].
func (p MarkAllReadParams) EffectiveLimit() int {
	return domain.ClampLimit(p.Limit, domain.DefaultReadAllLimit, domain.MaxReadAllLimit)
}

// MarkReadRequest acknowledges a single comment for the calling user.
type MarkReadRequest struct {
	Kind      string `json:"kind" validate:"required,entitykind"`
	EntityID  int64  `json:"entity_id" validate:"gt=0"`
	CommentID int64  `json:"comment_id" validate:"gt=0"`
}

// FeedItemResponse is one unread comment in the activity feed.
type FeedItemResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	EntityID    int64     `json:"entity_id"`
	EntityTitle string    `json:"entity_title"`
	AuthorID    int64     `json:"author_id"`
	AuthorLabel string    `json:"author_label"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
	Edited      bool      `json:"edited"`
}

// ReadMarkResponse is the stored acknowledgement row.
type ReadMarkResponse struct {
	UserID    int64     `json:"user_id"`
	Kind      string    `json:"kind"`
	EntityID  int64     `json:"entity_id"`
	CommentID int64     `json:"comment_id"`
	ReadAt    time.Time `json:"read_at"`
}

// MarkReadResponse wraps the upserted row.
type MarkReadResponse struct {
	OK  bool             `json:"ok"`
	Row ReadMarkResponse `json:"row"`
}

// MarkAllReadResponse reports how many marks this call inserted.
type MarkAllReadResponse struct {
	OK       bool  `json:"ok"`
	Inserted int64 `json:"inserted"`
}

// ToFeedItemResponses converts feed items; never returns nil.
func ToFeedItemResponses(items []domain.FeedItem) []FeedItemResponse {
	responses := make([]FeedItemResponse, len(items))
	for i, item := range items {
		responses[i] = FeedItemResponse{
			ID:          item.ID,
			Kind:        item.Kind.String(),
			EntityID:    item.EntityID,
			EntityTitle: item.EntityTitle,
			AuthorID:    item.AuthorID,
			AuthorLabel: item.AuthorLabel,
			Body:        item.Body,
			CreatedAt:   item.CreatedAt,
			Edited:      item.Edited,
		}
	}
	return responses
}

// ToReadMarkResponse converts a domain.ReadMark to its DTO.
func ToReadMarkResponse(m *domain.ReadMark) ReadMarkResponse {
	return ReadMarkResponse{
		UserID:    m.UserID,
		Kind:      m.Kind.String(),
		EntityID:  m.EntityID,
		CommentID: m.CommentID,
		ReadAt:    m.ReadAt,
	}
}
