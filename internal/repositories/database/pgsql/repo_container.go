package pgsql

import (
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the same querier, normally a *pgxpool.Pool.
func NewRepositoryProvider(db Querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CommentRepo:  newPgxCommentRepository(db),
		ReadMarkRepo: newPgxReadMarkRepository(db),
		FeedRepo:     newPgxFeedRepository(db),
		EntityRepo:   newPgxEntityRepository(db),
	}
}
