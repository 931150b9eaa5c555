package domain

import "time"

// FeedItem is one unread comment in a user's activity feed, tagged with the
// kind and title of the entity it belongs to.
type FeedItem struct {
	ID          int64
	Kind        EntityKind
	EntityID    int64
	EntityTitle string
	AuthorID    int64
	AuthorLabel string
	Body        string
	CreatedAt   time.Time
	Edited      bool
}

// Default and maximum page sizes for the feed and the bulk acknowledgement.
const (
	DefaultFeedLimit    = 30
	MaxFeedLimit        = 100
	DefaultReadAllLimit = 300
	MaxReadAllLimit     = 500
)

// ClampLimit returns def when requested is nil, otherwise requested bounded
// to [1, max].
func ClampLimit(requested *int, def, max int) int {
	if requested == nil {
		return def
	}
	switch {
	case *requested < 1:
		return 1
	case *requested > max:
		return max
	default:
		return *requested
	}
}
