package models

import "time"

// FeedItem is one row of the unread feed query.
type FeedItem struct {
	ID          int64     `db:"id"`
	Kind        string    `db:"kind"`
	EntityID    int64     `db:"entity_id"`
	EntityTitle string    `db:"entity_title"`
	AuthorID    int64     `db:"author_id"`
	AuthorLabel string    `db:"author_label"`
	Body        string    `db:"body"`
	CreatedAt   time.Time `db:"created_at"`
	Edited      bool      `db:"edited"`
}
