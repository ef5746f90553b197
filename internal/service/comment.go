package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
)

const maxCommentLength = 1000

// CommentService owns the comment/reply rules: creation against an existing
// post, the author-or-admin mutation gate, and the comment-scoped like set.
type CommentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
}

// NewCommentService creates a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, blogRepo repository.BlogRepository) *CommentService {
	if commentRepo == nil {
		panic("CommentRepository cannot be nil for CommentService")
	}
	if blogRepo == nil {
		panic("BlogRepository cannot be nil for CommentService")
	}
	return &CommentService{commentRepo: commentRepo, blogRepo: blogRepo}
}

// CreateCommentInput carries a new comment. ParentCommentID, when set, makes
// it a reply; the parent only has to exist (nesting depth and same-blog
// parentage are deliberately not enforced).
type CreateCommentInput struct {
	BlogID          uint
	Content         string
	ParentCommentID *uint
}

// Create stores a comment with a creation-time snapshot of the caller's
// username as the byline; later renames do not rewrite it.
func (s *CommentService) Create(ctx context.Context, actor domain.Identity, in CreateCommentInput) (*domain.Comment, error) {
	logCtx := logrus.WithFields(logrus.Fields{"actor_id": actor.UserID, "blog_id": in.BlogID})

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", ErrInvalidInput)
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment cannot be more than %d characters", ErrInvalidInput, maxCommentLength)
	}

	if _, err := s.blogRepo.FindByID(ctx, in.BlogID); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			logCtx.Warn("Comment creation rejected: blog not found")
			return nil, ErrBlogNotFound
		}
		logCtx.WithError(err).Error("Failed to verify blog for comment")
		return nil, ErrInternalServer
	}

	if in.ParentCommentID != nil {
		if _, err := s.commentRepo.FindByID(ctx, *in.ParentCommentID); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				logCtx.WithField("parent_id", *in.ParentCommentID).Warn("Comment creation rejected: parent not found")
				return nil, ErrCommentNotFound
			}
			logCtx.WithError(err).Error("Failed to verify parent comment")
			return nil, ErrInternalServer
		}
	}

	comment := &domain.Comment{
		BlogID:          in.BlogID,
		UserID:          actor.UserID,
		UserName:        actor.Username,
		Content:         content,
		ParentCommentID: in.ParentCommentID,
	}
	if err := s.commentRepo.Save(ctx, comment); err != nil {
		logCtx.WithError(err).Error("Database error during comment creation")
		return nil, ErrInternalServer
	}

	logCtx.WithField("comment_id", comment.ID).Info("Comment created successfully")
	return comment, nil
}

// ListByBlog returns a post's comments, newest first, with the author record
// resolved so clients can run their own permission checks. A post with no
// comments (or no post at all) yields an empty list.
func (s *CommentService) ListByBlog(ctx context.Context, blogID uint) ([]domain.Comment, error) {
	comments, err := s.commentRepo.ListByBlog(ctx, blogID)
	if err != nil {
		logrus.WithError(err).WithField("blog_id", blogID).Error("Failed to list comments")
		return nil, ErrInternalServer
	}
	return comments, nil
}

// Update rewrites a comment's content. Only the author or an admin may do
// this; anyone else gets ErrForbidden.
func (s *CommentService) Update(ctx context.Context, actor domain.Identity, id uint, content string) (*domain.Comment, error) {
	logCtx := logrus.WithFields(logrus.Fields{"actor_id": actor.UserID, "comment_id": id})

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", ErrInvalidInput)
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment cannot be more than %d characters", ErrInvalidInput, maxCommentLength)
	}

	comment, err := s.loadOwned(ctx, actor, id, logCtx)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.commentRepo.Save(ctx, comment); err != nil {
		logCtx.WithError(err).Error("Database error during comment update")
		return nil, ErrInternalServer
	}

	logCtx.Info("Comment updated successfully")
	return comment, nil
}

// Delete removes a comment under the same author-or-admin gate as Update.
func (s *CommentService) Delete(ctx context.Context, actor domain.Identity, id uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"actor_id": actor.UserID, "comment_id": id})

	if _, err := s.loadOwned(ctx, actor, id, logCtx); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		logCtx.WithError(err).Error("Database error during comment delete")
		return ErrInternalServer
	}

	logCtx.Info("Comment deleted successfully")
	return nil
}

// ToggleLike flips the caller's membership in the comment's like set,
// independent of the blog's like set.
func (s *CommentService) ToggleLike(ctx context.Context, actor domain.Identity, id uint) (likes int64, isLiked bool, err error) {
	liked, count, err := s.commentRepo.ToggleLike(ctx, id, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return 0, false, ErrCommentNotFound
		}
		logrus.WithError(err).WithFields(logrus.Fields{"actor_id": actor.UserID, "comment_id": id}).
			Error("Failed to toggle comment like")
		return 0, false, ErrInternalServer
	}
	return count, liked, nil
}

// loadOwned loads a comment and enforces the author-or-admin ownership rule.
func (s *CommentService) loadOwned(ctx context.Context, actor domain.Identity, id uint, logCtx *logrus.Entry) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}
		logCtx.WithError(err).Error("Failed to load comment")
		return nil, ErrInternalServer
	}

	if comment.UserID != actor.UserID && !actor.IsAdmin() {
		logCtx.WithField("owner_id", comment.UserID).Warn("Comment mutation rejected: caller is neither author nor admin")
		return nil, ErrForbidden
	}
	return comment, nil
}
