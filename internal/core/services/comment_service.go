package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
)

// CommentService owns the per-entity journal. Authorship is checked here, not
// in storage, so the rule is the same for every entity kind.
type CommentService struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	entities    portsrepo.EntityDirectory
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, entities portsrepo.EntityDirectory) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		entities:    entities,
	}
}

var _ portssvc.CommentSvcFacade = (*CommentService)(nil)

func (s *CommentService) ListComments(ctx context.Context, kind domain.EntityKind, entityID int64) ([]domain.Comment, error) {
	ctx, span := s.StartSpan(ctx, "CommentService.ListComments")
	defer span.End()

	if err := s.ensureEntity(ctx, kind, entityID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListComments(ctx, kind, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list comments", slog.String("kind", kind.String()), slog.Int64("entity_id", entityID))
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		return []domain.Comment{}, nil
	}
	return comments, nil
}

func (s *CommentService) CreateComment(ctx context.Context, kind domain.EntityKind, entityID int64, req dto.CommentBodyRequest, author domain.Author) (*domain.Comment, error) {
	ctx, span := s.StartSpan(ctx, "CommentService.CreateComment")
	defer span.End()

	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	if err := s.ensureEntity(ctx, kind, entityID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.CreateComment(ctx, domain.Comment{
		Kind:        kind,
		EntityID:    entityID,
		AuthorID:    author.UserID,
		AuthorLabel: author.Label,
		Body:        req.Body,
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create comment", slog.String("kind", kind.String()), slog.Int64("entity_id", entityID))
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.LogInfo(ctx, "Comment created", slog.Int64("comment_id", comment.ID), slog.Int64("entity_id", entityID))
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, req dto.CommentBodyRequest, author domain.Author) (*domain.Comment, error) {
	ctx, span := s.StartSpan(ctx, "CommentService.UpdateComment")
	defer span.End()

	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeAuthor(ctx, kind, entityID, commentID, author); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.UpdateCommentBody(ctx, kind, entityID, commentID, req.Body)
	if err != nil {
		s.logFailure(ctx, err, "Failed to update comment", slog.Int64("comment_id", commentID))
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.LogInfo(ctx, "Comment updated", slog.Int64("comment_id", commentID))
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, author domain.Author) error {
	ctx, span := s.StartSpan(ctx, "CommentService.DeleteComment")
	defer span.End()

	if _, err := s.authorizeAuthor(ctx, kind, entityID, commentID, author); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteComment(ctx, kind, entityID, commentID); err != nil {
		s.logFailure(ctx, err, "Failed to delete comment", slog.Int64("comment_id", commentID))
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.LogInfo(ctx, "Comment deleted", slog.Int64("comment_id", commentID))
	return nil
}

// ensureEntity validates the target and checks the entity exists.
func (s *CommentService) ensureEntity(ctx context.Context, kind domain.EntityKind, entityID int64) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	if err := validatePositiveID("entity_id", entityID); err != nil {
		return err
	}

	exists, err := s.entities.EntityExists(ctx, kind, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check entity existence", slog.String("kind", kind.String()), slog.Int64("entity_id", entityID))
		return fmt.Errorf("failed to check entity: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %d", apperrors.ErrNotFound, kind, entityID)
	}
	return nil
}

// authorizeAuthor loads the comment scoped to its entity and requires the
// caller to be its author.
func (s *CommentService) authorizeAuthor(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, author domain.Author) (*domain.Comment, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validatePositiveID("entity_id", entityID); err != nil {
		return nil, err
	}
	if err := validatePositiveID("comment_id", commentID); err != nil {
		return nil, err
	}

	existing, err := s.commentRepo.FindComment(ctx, kind, entityID, commentID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to load comment", slog.Int64("comment_id", commentID), slog.Int64("entity_id", entityID))
		return nil, fmt.Errorf("failed to load comment: %w", err)
	}
	if !existing.IsAuthoredBy(author.UserID) {
		s.LogWarn(ctx, "Comment mutation by non-author rejected",
			slog.Int64("comment_id", commentID),
			slog.Int64("author_id", existing.AuthorID))
		return nil, fmt.Errorf("%w: comment %d belongs to another user", apperrors.ErrForbidden, commentID)
	}
	return existing, nil
}
