package repositories

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// FeedRepository reads the cross-kind stream of comments a user has not acknowledged.
type FeedRepository interface {
	// ListUnread returns up to limit unread comments, newest first, ties by comment id.
	ListUnread(ctx context.Context, userID int64, limit int) ([]domain.FeedItem, error)
}
