package repository

import (
	"context"

	"github.com/Yashkhope01/Blog/internal/domain"
)

// CommentRepository stores and retrieves comments and their like sets.
type CommentRepository interface {
	// FindByID loads a comment (like set included). Returns
	// ErrCommentNotFound when it does not exist.
	FindByID(ctx context.Context, id uint) (*domain.Comment, error)

	// ListByBlog returns every comment of a post, newest first, with the
	// author record resolved so callers can perform permission checks.
	ListByBlog(ctx context.Context, blogID uint) ([]domain.Comment, error)

	// Save creates the comment when its ID is zero and updates it otherwise.
	Save(ctx context.Context, comment *domain.Comment) error

	// Delete removes a single comment and its like set.
	Delete(ctx context.Context, id uint) error

	// ToggleLike atomically flips userID's membership in the comment's like
	// set and returns the resulting membership plus the new set size.
	ToggleLike(ctx context.Context, commentID, userID uint) (liked bool, likes int64, err error)
}
