package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
	"github.com/Yashkhope01/Blog/internal/repository/mocks"
	"github.com/Yashkhope01/Blog/internal/service"
)

var regularActor = domain.Identity{UserID: 2, Username: "reader", Role: domain.RoleUser}

func newCommentService() (*service.CommentService, *mocks.CommentRepository, *mocks.BlogRepository) {
	mockCommentRepo := new(mocks.CommentRepository)
	mockBlogRepo := new(mocks.BlogRepository)
	return service.NewCommentService(mockCommentRepo, mockBlogRepo), mockCommentRepo, mockBlogRepo
}

func TestCommentService_Create_Success(t *testing.T) {
	// Arrange
	commentService, mockCommentRepo, mockBlogRepo := newCommentService()
	ctx := context.Background()

	mockBlogRepo.On("FindByID", ctx, uint(9)).Return(&domain.Blog{ID: 9}, nil).Once()
	mockCommentRepo.On("Save", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
		assert.Equal(t, uint(9), c.BlogID)
		assert.Equal(t, regularActor.UserID, c.UserID)
		assert.Equal(t, "reader", c.UserName, "byline is snapshotted at creation")
		assert.Equal(t, "nice post", c.Content)
		assert.Nil(t, c.ParentCommentID)
		return true
	})).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Comment).ID = 31 }).
		Return(nil).
		Once()

	// Act
	comment, err := commentService.Create(ctx, regularActor, service.CreateCommentInput{
		BlogID:  9,
		Content: "  nice post  ",
	})

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, uint(31), comment.ID)
	mockCommentRepo.AssertExpectations(t)
	mockBlogRepo.AssertExpectations(t)
}

func TestCommentService_Create_BlogNotFound(t *testing.T) {
	commentService, mockCommentRepo, mockBlogRepo := newCommentService()
	ctx := context.Background()

	mockBlogRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrBlogNotFound).Once()

	_, err := commentService.Create(ctx, regularActor, service.CreateCommentInput{
		BlogID:  404,
		Content: "hello",
	})

	assert.ErrorIs(t, err, service.ErrBlogNotFound)
	mockCommentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCommentService_Create_ReplyParentMustExist(t *testing.T) {
	commentService, mockCommentRepo, mockBlogRepo := newCommentService()
	ctx := context.Background()
	parentID := uint(77)

	mockBlogRepo.On("FindByID", ctx, uint(9)).Return(&domain.Blog{ID: 9}, nil).Once()
	mockCommentRepo.On("FindByID", ctx, parentID).Return(nil, repository.ErrCommentNotFound).Once()

	_, err := commentService.Create(ctx, regularActor, service.CreateCommentInput{
		BlogID:          9,
		Content:         "replying",
		ParentCommentID: &parentID,
	})

	assert.ErrorIs(t, err, service.ErrCommentNotFound)
	mockCommentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCommentService_Create_EmptyContent(t *testing.T) {
	commentService, _, mockBlogRepo := newCommentService()

	_, err := commentService.Create(context.Background(), regularActor, service.CreateCommentInput{
		BlogID:  9,
		Content: "   ",
	})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
	mockBlogRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCommentService_Create_TooLong(t *testing.T) {
	commentService, _, _ := newCommentService()

	_, err := commentService.Create(context.Background(), regularActor, service.CreateCommentInput{
		BlogID:  9,
		Content: strings.Repeat("x", 1001),
	})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCommentService_Update_NonOwnerForbidden(t *testing.T) {
	commentService, mockCommentRepo, _ := newCommentService()
	ctx := context.Background()

	owned := &domain.Comment{ID: 5, UserID: 99, Content: "original"}
	mockCommentRepo.On("FindByID", ctx, uint(5)).Return(owned, nil).Once()

	_, err := commentService.Update(ctx, regularActor, 5, "hijacked")

	assert.ErrorIs(t, err, service.ErrForbidden)
	mockCommentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCommentService_Update_OwnerSucceeds(t *testing.T) {
	commentService, mockCommentRepo, _ := newCommentService()
	ctx := context.Background()

	owned := &domain.Comment{ID: 5, UserID: regularActor.UserID, Content: "original"}
	mockCommentRepo.On("FindByID", ctx, uint(5)).Return(owned, nil).Once()
	mockCommentRepo.On("Save", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.ID == 5 && c.Content == "edited"
	})).Return(nil).Once()

	comment, err := commentService.Update(ctx, regularActor, 5, "edited")

	assert.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, "edited", comment.Content)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentService_Delete_AdminMayDeleteAnyComment(t *testing.T) {
	commentService, mockCommentRepo, _ := newCommentService()
	ctx := context.Background()
	admin := domain.Identity{UserID: 1, Username: "admin", Role: domain.RoleAdmin}

	someoneElses := &domain.Comment{ID: 6, UserID: 42, Content: "spam"}
	mockCommentRepo.On("FindByID", ctx, uint(6)).Return(someoneElses, nil).Once()
	mockCommentRepo.On("Delete", ctx, uint(6)).Return(nil).Once()

	err := commentService.Delete(ctx, admin, 6)

	assert.NoError(t, err)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentService_Delete_NonOwnerForbidden(t *testing.T) {
	commentService, mockCommentRepo, _ := newCommentService()
	ctx := context.Background()

	someoneElses := &domain.Comment{ID: 6, UserID: 42}
	mockCommentRepo.On("FindByID", ctx, uint(6)).Return(someoneElses, nil).Once()

	err := commentService.Delete(ctx, regularActor, 6)

	assert.ErrorIs(t, err, service.ErrForbidden)
	mockCommentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCommentService_ToggleLike(t *testing.T) {
	commentService, mockCommentRepo, _ := newCommentService()
	ctx := context.Background()

	mockCommentRepo.On("ToggleLike", ctx, uint(5), regularActor.UserID).
		Return(false, int64(3), nil).
		Once()

	likes, isLiked, err := commentService.ToggleLike(ctx, regularActor, 5)

	assert.NoError(t, err)
	assert.False(t, isLiked)
	assert.Equal(t, int64(3), likes)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentService_ListByBlog_EmptyIsNotAnError(t *testing.T) {
	commentService, mockCommentRepo, _ := newCommentService()
	ctx := context.Background()

	mockCommentRepo.On("ListByBlog", ctx, uint(12345)).Return([]domain.Comment{}, nil).Once()

	comments, err := commentService.ListByBlog(ctx, 12345)

	assert.NoError(t, err)
	assert.Empty(t, comments)
	mockCommentRepo.AssertExpectations(t)
}
