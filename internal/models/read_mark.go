package models

import "time"

// ReadMark is a row of updates_read.
type ReadMark struct {
	UserID    int64     `db:"user_id"`
	Kind      string    `db:"kind"`
	EntityID  int64     `db:"entity_id"`
	CommentID int64     `db:"comment_id"`
	ReadAt    time.Time `db:"read_at"`
}
