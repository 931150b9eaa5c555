package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func intPtr(v int) *int { return &v }

type UpdatesServiceTestSuite struct {
	suite.Suite
	feedRepo     *MockFeedRepository
	readMarkRepo *MockReadMarkRepository
	feed         *services.FeedService
	readState    *services.ReadStateService
	ctx          context.Context
}

func (suite *UpdatesServiceTestSuite) SetupTest() {
	suite.feedRepo = new(MockFeedRepository)
	suite.readMarkRepo = new(MockReadMarkRepository)
	suite.feed = services.NewFeedService(suite.feedRepo)
	suite.readState = services.NewReadStateService(suite.readMarkRepo)
	suite.ctx = context.Background()
}

func (suite *UpdatesServiceTestSuite) TestRecentUpdates_LimitClamping() {
	tests := []struct {
		name  string
		limit *int
		want  int
	}{
		{"default", nil, 30},
		{"in range", intPtr(5), 5},
		{"below range", intPtr(0), 1},
		{"negative", intPtr(-7), 1},
		{"above range", intPtr(1000), 100},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			suite.feedRepo.On("ListUnread", mock.Anything, int64(9), tt.want).Return([]domain.FeedItem{}, nil).Once()

			_, err := suite.feed.RecentUpdates(suite.ctx, 9, dto.RecentUpdatesParams{Limit: tt.limit})

			suite.NoError(err)
			suite.feedRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *UpdatesServiceTestSuite) TestRecentUpdates_ColdStartReturnsEverything() {
	items := []domain.FeedItem{
		{ID: 3, Kind: domain.KindPoints, EntityID: 42, EntityTitle: "Niwelator", Body: "ping", CreatedAt: time.Now()},
		{ID: 2, Kind: domain.KindPoints, EntityID: 41, EntityTitle: "GPS", Body: "pong", CreatedAt: time.Now()},
	}
	suite.feedRepo.On("ListUnread", mock.Anything, int64(9), 30).Return(items, nil).Once()

	got, err := suite.feed.RecentUpdates(suite.ctx, 9, dto.RecentUpdatesParams{})

	suite.Require().NoError(err)
	suite.Equal(items, got)
}

func (suite *UpdatesServiceTestSuite) TestRecentUpdates_NilBecomesEmpty() {
	suite.feedRepo.On("ListUnread", mock.Anything, int64(9), 30).Return(nil, nil).Once()

	got, err := suite.feed.RecentUpdates(suite.ctx, 9, dto.RecentUpdatesParams{})

	suite.Require().NoError(err)
	suite.NotNil(got)
}

func (suite *UpdatesServiceTestSuite) TestRecentUpdates_StorageFailure() {
	suite.feedRepo.On("ListUnread", mock.Anything, int64(9), 30).Return(nil, apperrors.ErrStorage).Once()

	_, err := suite.feed.RecentUpdates(suite.ctx, 9, dto.RecentUpdatesParams{})

	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *UpdatesServiceTestSuite) TestRecentUpdates_RequiresUser() {
	_, err := suite.feed.RecentUpdates(suite.ctx, 0, dto.RecentUpdatesParams{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UpdatesServiceTestSuite) TestMarkRead_UpsertsForCaller() {
	readAt := time.Now()
	expected := domain.ReadMark{UserID: 9, Kind: domain.KindPoints, EntityID: 42, CommentID: 7}
	stored := expected
	stored.ReadAt = readAt
	suite.readMarkRepo.On("UpsertReadMark", mock.Anything, expected).Return(&stored, nil).Twice()

	req := dto.MarkReadRequest{Kind: "points", EntityID: 42, CommentID: 7}
	first, err := suite.readState.MarkRead(suite.ctx, 9, req)
	suite.Require().NoError(err)
	second, err := suite.readState.MarkRead(suite.ctx, 9, req)
	suite.Require().NoError(err)

	suite.Equal(first.UserID, second.UserID)
	suite.Equal(first.CommentID, second.CommentID)
	suite.readMarkRepo.AssertExpectations(suite.T())
}

func (suite *UpdatesServiceTestSuite) TestMarkRead_Validation() {
	tests := []struct {
		name string
		req  dto.MarkReadRequest
	}{
		{"unknown kind", dto.MarkReadRequest{Kind: "tunnels", EntityID: 1, CommentID: 1}},
		{"missing kind", dto.MarkReadRequest{EntityID: 1, CommentID: 1}},
		{"zero entity", dto.MarkReadRequest{Kind: "points", EntityID: 0, CommentID: 1}},
		{"negative comment", dto.MarkReadRequest{Kind: "points", EntityID: 1, CommentID: -3}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.readState.MarkRead(suite.ctx, 9, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.readMarkRepo.AssertNotCalled(suite.T(), "UpsertReadMark", mock.Anything, mock.Anything)
}

func (suite *UpdatesServiceTestSuite) TestMarkAllRead_SecondCallInsertsNothing() {
	suite.readMarkRepo.On("InsertUnreadMarks", mock.Anything, int64(9), 300).Return(int64(12), nil).Once()
	suite.readMarkRepo.On("InsertUnreadMarks", mock.Anything, int64(9), 300).Return(int64(0), nil).Once()

	first, err := suite.readState.MarkAllRead(suite.ctx, 9, dto.MarkAllReadParams{})
	suite.Require().NoError(err)
	second, err := suite.readState.MarkAllRead(suite.ctx, 9, dto.MarkAllReadParams{})
	suite.Require().NoError(err)

	suite.Equal(int64(12), first)
	suite.Equal(int64(0), second)
}

func (suite *UpdatesServiceTestSuite) TestMarkAllRead_ClampsLimit() {
	suite.readMarkRepo.On("InsertUnreadMarks", mock.Anything, int64(9), 500).Return(int64(0), nil).Once()

	_, err := suite.readState.MarkAllRead(suite.ctx, 9, dto.MarkAllReadParams{Limit: intPtr(10_000)})

	suite.NoError(err)
	suite.readMarkRepo.AssertExpectations(suite.T())
}

func (suite *UpdatesServiceTestSuite) TestMarkAllRead_StorageFailureNotRetried() {
	suite.readMarkRepo.On("InsertUnreadMarks", mock.Anything, int64(9), 300).Return(int64(0), apperrors.ErrStorage).Once()

	_, err := suite.readState.MarkAllRead(suite.ctx, 9, dto.MarkAllReadParams{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStorage)
	suite.readMarkRepo.AssertNumberOfCalls(suite.T(), "InsertUnreadMarks", 1)
}

func TestUpdatesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UpdatesServiceTestSuite))
}
