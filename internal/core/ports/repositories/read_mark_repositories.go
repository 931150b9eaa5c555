package repositories

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
)

// ReadMarkRepository persists per-user acknowledgements. Both operations are
// single statements against the (user_id, kind, entity_id, comment_id) key,
// so concurrent callers never create duplicates or fail each other.
type ReadMarkRepository interface {
	// UpsertReadMark inserts the mark, or refreshes read_at if it already exists.
	UpsertReadMark(ctx context.Context, mark domain.ReadMark) (*domain.ReadMark, error)

	// InsertUnreadMarks acknowledges up to limit unread comments of the user,
	// newest first, skipping rows another caller inserted concurrently.
	// Returns the number of rows inserted by this call.
	InsertUnreadMarks(ctx context.Context, userID int64, limit int) (int64, error)
}
