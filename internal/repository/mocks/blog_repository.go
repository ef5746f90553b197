package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
)

// BlogRepository is a mock implementation of repository.BlogRepository.
type BlogRepository struct {
	mock.Mock
}

func (m *BlogRepository) FindByID(ctx context.Context, id uint) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if blog, ok := args.Get(0).(*domain.Blog); ok {
		return blog, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlogRepository) FindBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	args := m.Called(ctx, slug)
	if blog, ok := args.Get(0).(*domain.Blog); ok {
		return blog, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlogRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *BlogRepository) List(ctx context.Context, q repository.BlogQuery) ([]domain.Blog, int64, error) {
	args := m.Called(ctx, q)
	var blogs []domain.Blog
	if v, ok := args.Get(0).([]domain.Blog); ok {
		blogs = v
	}
	return blogs, args.Get(1).(int64), args.Error(2)
}

func (m *BlogRepository) Featured(ctx context.Context, limit int) ([]domain.Blog, error) {
	args := m.Called(ctx, limit)
	if blogs, ok := args.Get(0).([]domain.Blog); ok {
		return blogs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BlogRepository) Save(ctx context.Context, blog *domain.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *BlogRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BlogRepository) ToggleLike(ctx context.Context, blogID, userID uint) (bool, int64, error) {
	args := m.Called(ctx, blogID, userID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *BlogRepository) DeleteWithComments(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
