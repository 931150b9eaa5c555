package handlers_test

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portsrepo "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/repositories"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CommentService ---
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context, kind domain.EntityKind, entityID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, kind, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}
func (m *MockCommentService) CreateComment(ctx context.Context, kind domain.EntityKind, entityID int64, req dto.CommentBodyRequest, author domain.Author) (*domain.Comment, error) {
	args := m.Called(ctx, kind, entityID, req, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}
func (m *MockCommentService) UpdateComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, req dto.CommentBodyRequest, author domain.Author) (*domain.Comment, error) {
	args := m.Called(ctx, kind, entityID, commentID, req, author)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}
func (m *MockCommentService) DeleteComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, author domain.Author) error {
	args := m.Called(ctx, kind, entityID, commentID, author)
	return args.Error(0)
}

var _ portssvc.CommentSvcFacade = (*MockCommentService)(nil)

// --- Mock FeedService ---
type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) RecentUpdates(ctx context.Context, userID int64, params dto.RecentUpdatesParams) ([]domain.FeedItem, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedItem), args.Error(1)
}

var _ portssvc.FeedSvc = (*MockFeedService)(nil)

// --- Mock ReadStateService ---
type MockReadStateService struct {
	mock.Mock
}

func (m *MockReadStateService) MarkRead(ctx context.Context, userID int64, req dto.MarkReadRequest) (*domain.ReadMark, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReadMark), args.Error(1)
}
func (m *MockReadStateService) MarkAllRead(ctx context.Context, userID int64, params dto.MarkAllReadParams) (int64, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.ReadStateSvc = (*MockReadStateService)(nil)

// --- Mock CalibrationService ---
type MockCalibrationService struct {
	mock.Mock
}

func (m *MockCalibrationService) GetDeviceCalibration(ctx context.Context, deviceID int64) (*domain.DeviceCalibration, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceCalibration), args.Error(1)
}
func (m *MockCalibrationService) ListDeviceCalibrations(ctx context.Context, params dto.ListCalibrationsParams) ([]domain.DeviceCalibration, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeviceCalibration), args.Error(1)
}

var _ portssvc.CalibrationSvc = (*MockCalibrationService)(nil)

// --- Mock HealthChecker ---
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portsrepo.HealthChecker = (*MockHealthChecker)(nil)
