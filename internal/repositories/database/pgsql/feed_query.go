package pgsql

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// feedCTE renders the body of the "feed" CTE: every comment of every
// supported kind with its entity's title, one UNION ALL branch per kind.
// Placeholders are left as '?' for the enclosing builder to number.
func feedCTE() (string, []any, error) {
	kinds := domain.SupportedEntityKinds()
	parts := make([]string, 0, len(kinds))
	var args []any

	for _, kind := range kinds {
		t, err := tablesFor(kind)
		if err != nil {
			return "", nil, err
		}
		part, partArgs, err := sq.Select("c.id").
			Column("?::text AS kind", kind.String()).
			Columns(
				"c."+t.foreignColumn+" AS entity_id",
				"e."+t.titleColumn+" AS entity_title",
				"c.user_id AS author_id",
				"c.user_email AS author_label",
				"c.body",
				"c.created_at",
				"c.edited",
			).
			From(t.commentTable + " c").
			Join(t.entityTable + " e ON e.id = c." + t.foreignColumn).
			ToSql()
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, part)
		args = append(args, partArgs...)
	}

	return strings.Join(parts, " UNION ALL "), args, nil
}

// unreadFromFeed selects rows of the feed CTE that the user has not acknowledged.
func unreadFromFeed(userID int64, columns ...string) sq.SelectBuilder {
	return sq.Select(columns...).
		From("feed f").
		Where("NOT EXISTS (SELECT 1 FROM updates_read ur"+
			" WHERE ur.user_id = ? AND ur.kind = f.kind AND ur.entity_id = f.entity_id AND ur.comment_id = f.id)", userID).
		OrderBy("f.created_at DESC", "f.id DESC")
}
