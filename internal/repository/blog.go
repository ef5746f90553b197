package repository

import (
	"context"

	"github.com/Yashkhope01/Blog/internal/domain"
)

// BlogQuery narrows and pages a blog listing. Zero values mean "no filter";
// Page and Limit are normalized by the caller.
type BlogQuery struct {
	Search        string
	Category      string
	PublishedOnly bool
	Page          int
	Limit         int
}

// BlogRepository stores and retrieves posts together with their like sets.
type BlogRepository interface {
	// FindByID loads a post (like set included). Returns ErrBlogNotFound
	// when it does not exist.
	FindByID(ctx context.Context, id uint) (*domain.Blog, error)

	// FindBySlug loads a post by its slug (like set included). Returns
	// ErrBlogNotFound when it does not exist.
	FindBySlug(ctx context.Context, slug string) (*domain.Blog, error)

	// SlugExists reports whether any post other than excludeID already holds
	// the slug. Pass excludeID zero when creating.
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)

	// List returns a page of posts, newest first, plus the total match count.
	List(ctx context.Context, q BlogQuery) ([]domain.Blog, int64, error)

	// Featured returns published posts ordered by views then like count,
	// descending, capped at limit.
	Featured(ctx context.Context, limit int) ([]domain.Blog, error)

	// Save creates the post when its ID is zero and updates it otherwise.
	// Returns ErrDuplicateEntry on a slug collision.
	Save(ctx context.Context, blog *domain.Blog) error

	// IncrementViews adds exactly one to the post's view counter with an
	// additive update, safe under concurrent reads.
	IncrementViews(ctx context.Context, id uint) error

	// ToggleLike atomically flips userID's membership in the post's like set
	// and returns the resulting membership plus the new set size.
	ToggleLike(ctx context.Context, blogID, userID uint) (liked bool, likes int64, err error)

	// DeleteWithComments removes the post, its like set, and every comment
	// referencing it (reply likes included) in a single transaction. Either
	// everything is gone or nothing is.
	DeleteWithComments(ctx context.Context, id uint) error
}
