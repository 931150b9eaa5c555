package services

import (
	"time"

	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, now func() time.Time) *portssvc.ServiceContainer {
	if now == nil {
		now = time.Now
	}
	return &portssvc.ServiceContainer{
		Comment:     NewCommentService(repos.CommentRepo, repos.EntityRepo),
		Feed:        NewFeedService(repos.FeedRepo),
		ReadState:   NewReadStateService(repos.ReadMarkRepo),
		Calibration: NewCalibrationService(repos.EntityRepo, WithClock(now)),
	}
}
