package services

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
)

// FeedSvc aggregates unread journal activity across entity kinds.
type FeedSvc interface {
	// RecentUpdates returns the newest comments the user has not acknowledged.
	RecentUpdates(ctx context.Context, userID int64, params dto.RecentUpdatesParams) ([]domain.FeedItem, error)
}

// ReadStateSvc records acknowledgements. userID must come from the
// authenticated session, never from the request body.
type ReadStateSvc interface {
	// MarkRead acknowledges one comment. Repeated calls succeed and refresh read_at.
	MarkRead(ctx context.Context, userID int64, req dto.MarkReadRequest) (*domain.ReadMark, error)

	// MarkAllRead acknowledges a batch of unread comments and returns how many
	// marks this call inserted.
	MarkAllRead(ctx context.Context, userID int64, params dto.MarkAllReadParams) (int64, error)
}
