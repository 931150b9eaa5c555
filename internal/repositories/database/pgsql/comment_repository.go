package pgsql

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
	"github.com/konskyyy/ewidencja-sprzetu/internal/utils/mapping"
)

// PgxCommentRepository stores journal comments in the per-kind comment tables.
type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(db Querier) *PgxCommentRepository {
	return &PgxCommentRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func (r *PgxCommentRepository) ListComments(ctx context.Context, kind domain.EntityKind, entityID int64) ([]domain.Comment, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(t.commentColumns()...).
		From(t.commentTable).
		Where(sq.Eq{t.foreignColumn: entityID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, mapError(err, "build list comments query")
	}

	var rows []models.Comment
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, mapError(err, "list comments")
	}
	for i := range rows {
		rows[i].Kind = kind.String()
	}
	return mapping.ToDomainCommentSlice(rows), nil
}

func (r *PgxCommentRepository) FindComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64) (*domain.Comment, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(t.commentColumns()...).
		From(t.commentTable).
		Where(sq.Eq{"id": commentID, t.foreignColumn: entityID}).
		ToSql()
	if err != nil {
		return nil, mapError(err, "build find comment query")
	}

	return scanComment(r.db.QueryRow(ctx, query, args...), kind, "find comment")
}

func (r *PgxCommentRepository) CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	t, err := tablesFor(comment.Kind)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Insert(t.commentTable).
		Columns(t.foreignColumn, "user_id", "user_email", "body").
		Values(comment.EntityID, comment.AuthorID, comment.AuthorLabel, comment.Body).
		Suffix("RETURNING " + strings.Join(t.commentColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, mapError(err, "build create comment query")
	}

	return scanComment(r.db.QueryRow(ctx, query, args...), comment.Kind, "create comment")
}

func (r *PgxCommentRepository) UpdateCommentBody(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, body string) (*domain.Comment, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Update(t.commentTable).
		Set("body", body).
		Set("edited", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": commentID, t.foreignColumn: entityID}).
		Suffix("RETURNING " + strings.Join(t.commentColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, mapError(err, "build update comment query")
	}

	return scanComment(r.db.QueryRow(ctx, query, args...), kind, "update comment")
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64) error {
	t, err := tablesFor(kind)
	if err != nil {
		return err
	}

	query, args, err := psql.Delete(t.commentTable).
		Where(sq.Eq{"id": commentID, t.foreignColumn: entityID}).
		ToSql()
	if err != nil {
		return mapError(err, "build delete comment query")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "delete comment")
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "delete comment")
	}
	return nil
}

func scanComment(row pgx.Row, kind domain.EntityKind, op string) (*domain.Comment, error) {
	m := models.Comment{Kind: kind.String()}
	err := row.Scan(&m.ID, &m.EntityID, &m.UserID, &m.UserEmail, &m.Body, &m.CreatedAt, &m.Edited, &m.UpdatedAt)
	if err != nil {
		return nil, mapError(err, op)
	}
	c := mapping.ToDomainComment(m)
	return &c, nil
}
