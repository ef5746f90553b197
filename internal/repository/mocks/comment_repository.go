package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yashkhope01/Blog/internal/domain"
)

// CommentRepository is a mock implementation of repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if comment, ok := args.Get(0).(*domain.Comment); ok {
		return comment, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) ListByBlog(ctx context.Context, blogID uint) ([]domain.Comment, error) {
	args := m.Called(ctx, blogID)
	if comments, ok := args.Get(0).([]domain.Comment); ok {
		return comments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) ToggleLike(ctx context.Context, commentID, userID uint) (bool, int64, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
