package pgsql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	"github.com/konskyyy/ewidencja-sprzetu/internal/models"
	"github.com/konskyyy/ewidencja-sprzetu/internal/utils/mapping"
)

// PgxFeedRepository reads the unread activity feed.
type PgxFeedRepository struct {
	BaseRepository
}

func newPgxFeedRepository(db Querier) *PgxFeedRepository {
	return &PgxFeedRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.FeedRepository = (*PgxFeedRepository)(nil)

func (r *PgxFeedRepository) ListUnread(ctx context.Context, userID int64, limit int) ([]domain.FeedItem, error) {
	feed, feedArgs, err := feedCTE()
	if err != nil {
		return nil, mapError(err, "build feed")
	}

	query, args, err := unreadFromFeed(userID,
		"f.id", "f.kind", "f.entity_id", "f.entity_title", "f.author_id",
		"f.author_label", "f.body", "f.created_at", "f.edited",
	).
		Prefix("WITH feed AS ("+feed+")", feedArgs...).
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, mapError(err, "build unread feed query")
	}

	var rows []models.FeedItem
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, mapError(err, "list unread feed")
	}
	return mapping.ToDomainFeedItemSlice(rows), nil
}
