package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
)

// GormCommentRepository is the GORM implementation of
// repository.CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	if db == nil {
		panic("database connection cannot be nil for GormCommentRepository")
	}
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.WithContext(ctx).Preload("Likes").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("gorm: find comment by id %d: %w", id, err)
	}
	return &comment, nil
}

func (r *GormCommentRepository) ListByBlog(ctx context.Context, blogID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "role")
		}).
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list comments for blog %d: %w", blogID, err)
	}
	return comments, nil
}

func (r *GormCommentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	err := r.db.WithContext(ctx).Omit("Likes", "User").Save(comment).Error
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save comment (id: %d): %w", comment.ID, err)
	}
	return nil
}

func (r *GormCommentRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&domain.CommentLike{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Comment{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrCommentNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return err
		}
		return fmt.Errorf("gorm: delete comment %d: %w", id, err)
	}
	return nil
}

// ToggleLike mirrors the blog-side toggle, scoped to the comment's own like
// set.
func (r *GormCommentRepository) ToggleLike(ctx context.Context, commentID, userID uint) (bool, int64, error) {
	var liked bool
	var likes int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&domain.Comment{}).Where("id = ?", commentID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return repository.ErrCommentNotFound
		}

		res := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&domain.CommentLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&domain.CommentLike{CommentID: commentID, UserID: userID}).Error; err != nil {
				if !isDuplicateEntryError(err) {
					return err
				}
			}
			liked = true
		}

		return tx.Model(&domain.CommentLike{}).Where("comment_id = ?", commentID).Count(&likes).Error
	})
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return false, 0, err
		}
		return false, 0, fmt.Errorf("gorm: toggle like (comment %d, user %d): %w", commentID, userID, err)
	}
	return liked, likes, nil
}
