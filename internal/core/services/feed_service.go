package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
)

// FeedService builds a user's unread activity feed.
type FeedService struct {
	BaseService
	feedRepo portsrepo.FeedRepository
}

func NewFeedService(feedRepo portsrepo.FeedRepository) *FeedService {
	return &FeedService{feedRepo: feedRepo}
}

var _ portssvc.FeedSvc = (*FeedService)(nil)

func (s *FeedService) RecentUpdates(ctx context.Context, userID int64, params dto.RecentUpdatesParams) ([]domain.FeedItem, error) {
	ctx, span := s.StartSpan(ctx, "FeedService.RecentUpdates")
	defer span.End()

	if err := validatePositiveID("user_id", userID); err != nil {
		return nil, err
	}
	limit := params.EffectiveLimit()

	items, err := s.feedRepo.ListUnread(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unread feed", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list recent updates: %w", err)
	}
	if items == nil {
		return []domain.FeedItem{}, nil
	}

	s.LogDebug(ctx, "Unread feed listed", slog.Int("count", len(items)), slog.Int("limit", limit))
	return items, nil
}
