package services_test

import (
	"context"

	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListComments(ctx context.Context, kind domain.EntityKind, entityID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, kind, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64) (*domain.Comment, error) {
	args := m.Called(ctx, kind, entityID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateCommentBody(ctx context.Context, kind domain.EntityKind, entityID, commentID int64, body string) (*domain.Comment, error) {
	args := m.Called(ctx, kind, entityID, commentID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, kind domain.EntityKind, entityID, commentID int64) error {
	args := m.Called(ctx, kind, entityID, commentID)
	return args.Error(0)
}

// --- Mock EntityRepository ---
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) EntityExists(ctx context.Context, kind domain.EntityKind, entityID int64) (bool, error) {
	args := m.Called(ctx, kind, entityID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntityRepository) FindDeviceByID(ctx context.Context, deviceID int64) (*domain.Device, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}

func (m *MockEntityRepository) ListDevices(ctx context.Context) ([]domain.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Device), args.Error(1)
}

// --- Mock FeedRepository ---
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) ListUnread(ctx context.Context, userID int64, limit int) ([]domain.FeedItem, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedItem), args.Error(1)
}

// --- Mock ReadMarkRepository ---
type MockReadMarkRepository struct {
	mock.Mock
}

func (m *MockReadMarkRepository) UpsertReadMark(ctx context.Context, mark domain.ReadMark) (*domain.ReadMark, error) {
	args := m.Called(ctx, mark)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReadMark), args.Error(1)
}

func (m *MockReadMarkRepository) InsertUnreadMarks(ctx context.Context, userID int64, limit int) (int64, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).(int64), args.Error(1)
}
