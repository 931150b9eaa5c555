package domain

import "time"

// MaxCommentLength is the maximum number of characters in a comment body.
const MaxCommentLength = 5000

// Author identifies the authenticated user acting on the journal.
// Label is the display string stored with the comment (the user's email).
type Author struct {
	UserID int64
	Label  string
}

// Comment is a single journal entry attached to one entity.
type Comment struct {
	ID          int64
	Kind        EntityKind
	EntityID    int64
	AuthorID    int64
	AuthorLabel string
	Body        string
	CreatedAt   time.Time
	Edited      bool
	UpdatedAt   *time.Time
}

// IsAuthoredBy reports whether the comment belongs to the given user.
func (c Comment) IsAuthoredBy(userID int64) bool {
	return c.AuthorID == userID
}
