package domain

import "time"

// ReadMark records that a user acknowledged one specific comment.
// (UserID, Kind, EntityID, CommentID) is unique; marks are never removed.
type ReadMark struct {
	UserID    int64
	Kind      EntityKind
	EntityID  int64
	CommentID int64
	ReadAt    time.Time
}
