package services

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
)

// CommentReaderSvc defines read operations for an entity's journal.
type CommentReaderSvc interface {
	// ListComments returns the journal of an existing entity, newest first.
	ListComments(ctx context.Context, kind domain.EntityKind, entityID int64) ([]domain.Comment, error)
}

// CommentWriterSvc defines journal mutations. Only the author may edit or
// delete a comment.
type CommentWriterSvc interface {
	CreateComment(ctx context.Context, kind domain.EntityKind, entityID int64, req dto.CommentBodyRequest, author domain.Author) (*domain.Comment, error)
	UpdateComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, req dto.CommentBodyRequest, author domain.Author) (*domain.Comment, error)
	DeleteComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, author domain.Author) error
}

// CommentSvcFacade combines all comment-related service interfaces.
type CommentSvcFacade interface {
	CommentReaderSvc
	CommentWriterSvc
}
