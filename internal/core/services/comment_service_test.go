package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/konskyyy/ewidencja-sprzetu/internal/apperrors"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/domain"
	portssvc "github.com/konskyyy/ewidencja-sprzetu/internal/core/ports/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CommentServiceTestSuite struct {
	suite.Suite
	commentRepo *MockCommentRepository
	entityRepo  *MockEntityRepository
	service     portssvc.CommentSvcFacade

	ctx    context.Context
	author domain.Author
	other  domain.Author
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.commentRepo = new(MockCommentRepository)
	suite.entityRepo = new(MockEntityRepository)
	suite.service = services.NewCommentService(suite.commentRepo, suite.entityRepo)

	suite.ctx = context.Background()
	suite.author = domain.Author{UserID: 1, Label: "anna@firma.pl"}
	suite.other = domain.Author{UserID: 2, Label: "jan@firma.pl"}
}

func (suite *CommentServiceTestSuite) storedComment(id int64) *domain.Comment {
	return &domain.Comment{
		ID:          id,
		Kind:        domain.KindPoints,
		EntityID:    42,
		AuthorID:    suite.author.UserID,
		AuthorLabel: suite.author.Label,
		Body:        "ping",
		CreatedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// --- List ---

func (suite *CommentServiceTestSuite) TestListComments_Success() {
	comments := []domain.Comment{*suite.storedComment(2), *suite.storedComment(1)}
	suite.entityRepo.On("EntityExists", mock.Anything, domain.KindPoints, int64(42)).Return(true, nil).Once()
	suite.commentRepo.On("ListComments", mock.Anything, domain.KindPoints, int64(42)).Return(comments, nil).Once()

	got, err := suite.service.ListComments(suite.ctx, domain.KindPoints, 42)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.commentRepo.AssertExpectations(suite.T())
	suite.entityRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestListComments_EmptyIsNotNil() {
	suite.entityRepo.On("EntityExists", mock.Anything, domain.KindPoints, int64(42)).Return(true, nil).Once()
	suite.commentRepo.On("ListComments", mock.Anything, domain.KindPoints, int64(42)).Return(nil, nil).Once()

	got, err := suite.service.ListComments(suite.ctx, domain.KindPoints, 42)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *CommentServiceTestSuite) TestListComments_EntityMissing() {
	suite.entityRepo.On("EntityExists", mock.Anything, domain.KindPoints, int64(404)).Return(false, nil).Once()

	_, err := suite.service.ListComments(suite.ctx, domain.KindPoints, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.commentRepo.AssertNotCalled(suite.T(), "ListComments", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestListComments_UnknownKind() {
	_, err := suite.service.ListComments(suite.ctx, domain.EntityKind("tunnels"), 1)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entityRepo.AssertNotCalled(suite.T(), "EntityExists", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestListComments_NonPositiveEntityID() {
	_, err := suite.service.ListComments(suite.ctx, domain.KindPoints, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CommentServiceTestSuite) TestListComments_StorageFailure() {
	suite.entityRepo.On("EntityExists", mock.Anything, domain.KindPoints, int64(42)).Return(false, apperrors.ErrStorage).Once()

	_, err := suite.service.ListComments(suite.ctx, domain.KindPoints, 42)
	suite.ErrorIs(err, apperrors.ErrStorage)
}

// --- Create ---

func (suite *CommentServiceTestSuite) TestCreateComment_TrimsAndStoresAuthor() {
	suite.entityRepo.On("EntityExists", mock.Anything, domain.KindPoints, int64(42)).Return(true, nil).Once()
	suite.commentRepo.On("CreateComment", mock.Anything, mock.MatchedBy(func(c domain.Comment) bool {
		return c.Body == "ping" && c.AuthorID == 1 && c.AuthorLabel == "anna@firma.pl" &&
			c.Kind == domain.KindPoints && c.EntityID == 42 && !c.Edited
	})).Return(suite.storedComment(7), nil).Once()

	got, err := suite.service.CreateComment(suite.ctx, domain.KindPoints, 42, dto.CommentBodyRequest{Body: "  ping \n"}, suite.author)

	suite.Require().NoError(err)
	suite.Equal(int64(7), got.ID)
	suite.False(got.Edited)
	suite.commentRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestCreateComment_BodyValidation() {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"too long", strings.Repeat("a", domain.MaxCommentLength+1), true},
		{"too long in runes", strings.Repeat("ż", domain.MaxCommentLength+1), true},
		{"exactly max", strings.Repeat("a", domain.MaxCommentLength), false},
		{"exactly max in runes", strings.Repeat("ż", domain.MaxCommentLength), false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			if !tt.wantErr {
				suite.entityRepo.On("EntityExists", mock.Anything, domain.KindPoints, int64(42)).Return(true, nil).Once()
				suite.commentRepo.On("CreateComment", mock.Anything, mock.AnythingOfType("domain.Comment")).
					Return(suite.storedComment(1), nil).Once()
			}

			_, err := suite.service.CreateComment(suite.ctx, domain.KindPoints, 42, dto.CommentBodyRequest{Body: tt.body}, suite.author)

			if tt.wantErr {
				suite.ErrorIs(err, apperrors.ErrValidation)
				suite.commentRepo.AssertNotCalled(suite.T(), "CreateComment", mock.Anything, mock.Anything)
				return
			}
			suite.NoError(err)
		})
	}
}

func (suite *CommentServiceTestSuite) TestCreateComment_EntityMissing() {
	suite.entityRepo.On("EntityExists", mock.Anything, domain.KindPoints, int64(42)).Return(false, nil).Once()

	_, err := suite.service.CreateComment(suite.ctx, domain.KindPoints, 42, dto.CommentBodyRequest{Body: "ping"}, suite.author)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Update / Delete ownership ---

func (suite *CommentServiceTestSuite) TestUpdateComment_ByAuthor() {
	updated := suite.storedComment(7)
	updated.Body = "pong"
	updated.Edited = true
	now := time.Now()
	updated.UpdatedAt = &now

	suite.commentRepo.On("FindComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(suite.storedComment(7), nil).Once()
	suite.commentRepo.On("UpdateCommentBody", mock.Anything, domain.KindPoints, int64(42), int64(7), "pong").Return(updated, nil).Once()

	got, err := suite.service.UpdateComment(suite.ctx, domain.KindPoints, 42, 7, dto.CommentBodyRequest{Body: " pong "}, suite.author)

	suite.Require().NoError(err)
	suite.True(got.Edited)
	suite.NotNil(got.UpdatedAt)
	suite.commentRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestUpdateComment_ByOtherUserIsForbidden() {
	suite.commentRepo.On("FindComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(suite.storedComment(7), nil).Once()

	_, err := suite.service.UpdateComment(suite.ctx, domain.KindPoints, 42, 7, dto.CommentBodyRequest{Body: "hijack"}, suite.other)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.commentRepo.AssertNotCalled(suite.T(), "UpdateCommentBody", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestUpdateComment_InvalidBodyCheckedFirst() {
	_, err := suite.service.UpdateComment(suite.ctx, domain.KindPoints, 42, 7, dto.CommentBodyRequest{Body: " "}, suite.author)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.commentRepo.AssertNotCalled(suite.T(), "FindComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestUpdateComment_WrongEntity() {
	suite.commentRepo.On("FindComment", mock.Anything, domain.KindPoints, int64(43), int64(7)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateComment(suite.ctx, domain.KindPoints, 43, 7, dto.CommentBodyRequest{Body: "x"}, suite.author)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CommentServiceTestSuite) TestDeleteComment_ByAuthor() {
	suite.commentRepo.On("FindComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(suite.storedComment(7), nil).Once()
	suite.commentRepo.On("DeleteComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(nil).Once()

	err := suite.service.DeleteComment(suite.ctx, domain.KindPoints, 42, 7, suite.author)

	suite.NoError(err)
	suite.commentRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestDeleteComment_ByOtherUserIsForbidden() {
	suite.commentRepo.On("FindComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(suite.storedComment(7), nil).Once()

	err := suite.service.DeleteComment(suite.ctx, domain.KindPoints, 42, 7, suite.other)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.commentRepo.AssertNotCalled(suite.T(), "DeleteComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestDeleteComment_SecondCallIsNotFound() {
	suite.commentRepo.On("FindComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(suite.storedComment(7), nil).Once()
	suite.commentRepo.On("DeleteComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(nil).Once()
	suite.commentRepo.On("FindComment", mock.Anything, domain.KindPoints, int64(42), int64(7)).Return(nil, apperrors.ErrNotFound).Once()

	suite.Require().NoError(suite.service.DeleteComment(suite.ctx, domain.KindPoints, 42, 7, suite.author))
	err := suite.service.DeleteComment(suite.ctx, domain.KindPoints, 42, 7, suite.author)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CommentServiceTestSuite) TestDeleteComment_NonPositiveCommentID() {
	err := suite.service.DeleteComment(suite.ctx, domain.KindPoints, 42, -1, suite.author)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
