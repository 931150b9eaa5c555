package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CommentRepo  CommentRepositoryFacade
	ReadMarkRepo ReadMarkRepository
	FeedRepo     FeedRepository
	EntityRepo   EntityRepositoryFacade
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
