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

// ReadStateService records acknowledgements. Each call is one conflict-safe
// statement, so nothing here retries or locks.
type ReadStateService struct {
	BaseService
	readMarkRepo portsrepo.ReadMarkRepository
}

func NewReadStateService(readMarkRepo portsrepo.ReadMarkRepository) *ReadStateService {
	return &ReadStateService{readMarkRepo: readMarkRepo}
}

var _ portssvc.ReadStateSvc = (*ReadStateService)(nil)

func (s *ReadStateService) MarkRead(ctx context.Context, userID int64, req dto.MarkReadRequest) (*domain.ReadMark, error) {
	ctx, span := s.StartSpan(ctx, "ReadStateService.MarkRead")
	defer span.End()

	if err := validatePositiveID("user_id", userID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	kind, err := domain.ParseEntityKind(req.Kind)
	if err != nil {
		return nil, err
	}

	mark, err := s.readMarkRepo.UpsertReadMark(ctx, domain.ReadMark{
		UserID:    userID,
		Kind:      kind,
		EntityID:  req.EntityID,
		CommentID: req.CommentID,
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to upsert read mark", slog.Int64("comment_id", req.CommentID))
		return nil, fmt.Errorf("failed to mark comment read: %w", err)
	}
	return mark, nil
}

func (s *ReadStateService) MarkAllRead(ctx context.Context, userID int64, params dto.MarkAllReadParams) (int64, error) {
	ctx, span := s.StartSpan(ctx, "ReadStateService.MarkAllRead")
	defer span.End()

	if err := validatePositiveID("user_id", userID); err != nil {
		return 0, err
	}
	limit := params.EffectiveLimit()

	inserted, err := s.readMarkRepo.InsertUnreadMarks(ctx, userID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert unread marks", slog.Int("limit", limit))
		return 0, fmt.Errorf("failed to mark all read: %w", err)
	}

	s.LogInfo(ctx, "Unread comments acknowledged", slog.Int64("inserted", inserted), slog.Int("limit", limit))
	return inserted, nil
}
