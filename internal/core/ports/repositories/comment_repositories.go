package repositories

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// CommentReader defines read operations for journal comments.
type CommentReader interface {
	// ListComments returns the comments of one entity, newest first (ties by id, newest first).
	ListComments(ctx context.Context, kind domain.EntityKind, entityID int64) ([]domain.Comment, error)

	// FindComment returns a comment only if it belongs to the given entity.
	// Returns apperrors.ErrNotFound otherwise.
	FindComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64) (*domain.Comment, error)
}

// CommentWriter defines write operations for journal comments.
type CommentWriter interface {
	// CreateComment persists a new, unedited comment and returns the stored row.
	CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error)

	// UpdateCommentBody replaces the body, marks the comment edited and refreshes updated_at.
	UpdateCommentBody(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, body string) (*domain.Comment, error)

	// DeleteComment removes the comment. Returns apperrors.ErrNotFound when nothing was deleted.
	DeleteComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64) error
}

// CommentRepositoryFacade combines comment read and write operations.
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
