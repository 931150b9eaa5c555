package pgsql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
	"github.com/konskyyy/ewidencja-sprzetu/internal/utils/mapping"
)

const readMarkConflictTarget = "ON CONFLICT (user_id, kind, entity_id, comment_id)"

// PgxReadMarkRepository persists acknowledgements in updates_read.
type PgxReadMarkRepository struct {
	BaseRepository
}

func newPgxReadMarkRepository(db Querier) *PgxReadMarkRepository {
	return &PgxReadMarkRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.ReadMarkRepository = (*PgxReadMarkRepository)(nil)

func (r *PgxReadMarkRepository) UpsertReadMark(ctx context.Context, mark domain.ReadMark) (*domain.ReadMark, error) {
	query, args, err := psql.Insert("updates_read").
		Columns("user_id", "kind", "entity_id", "comment_id").
		Values(mark.UserID, mark.Kind.String(), mark.EntityID, mark.CommentID).
		Suffix(readMarkConflictTarget + " DO UPDATE SET read_at = NOW() RETURNING user_id, kind, entity_id, comment_id, read_at").
		ToSql()
	if err != nil {
		return nil, mapError(err, "build upsert read mark query")
	}

	var m models.ReadMark
	err = r.db.QueryRow(ctx, query, args...).Scan(&m.UserID, &m.Kind, &m.EntityID, &m.CommentID, &m.ReadAt)
	if err != nil {
		return nil, mapError(err, "upsert read mark")
	}
	stored := mapping.ToDomainReadMark(m)
	return &stored, nil
}

func (r *PgxReadMarkRepository) InsertUnreadMarks(ctx context.Context, userID int64, limit int) (int64, error) {
	feed, feedArgs, err := feedCTE()
	if err != nil {
		return 0, mapError(err, "build feed")
	}
	unread, unreadArgs, err := unreadFromFeed(userID, "f.kind", "f.entity_id", "f.id AS comment_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return 0, mapError(err, "build unread query")
	}

	query, args, err := psql.Insert("updates_read").
		Prefix("WITH feed AS ("+feed+"), unread AS ("+unread+")", append(feedArgs, unreadArgs...)...).
		Columns("user_id", "kind", "entity_id", "comment_id").
		Select(sq.Select().
			Column(sq.Expr("?::bigint", userID)).
			Columns("kind", "entity_id", "comment_id").
			From("unread")).
		Suffix(readMarkConflictTarget + " DO NOTHING").
		ToSql()
	if err != nil {
		return 0, mapError(err, "build read-all query")
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, "insert unread marks")
	}
	return tag.RowsAffected(), nil
}
