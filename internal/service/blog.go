package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
	"github.com/Yashkhope01/Blog/internal/storage"
)

// FeaturedLimit caps the featured listing.
const FeaturedLimit = 6

const (
	defaultPage  = 1
	defaultLimit = 10
)

// BlogService owns the post mutation rules: slug uniqueness, like toggling,
// view counting, and the comment cascade on delete.
type BlogService struct {
	blogRepo repository.BlogRepository
	uploader storage.ImageUploader
}

// NewBlogService creates a BlogService. uploader may be nil when no blob
// store is configured; uploads then fail with a validation error while URL
// images keep working.
func NewBlogService(blogRepo repository.BlogRepository, uploader storage.ImageUploader) *BlogService {
	if blogRepo == nil {
		panic("BlogRepository cannot be nil for BlogService")
	}
	return &BlogService{blogRepo: blogRepo, uploader: uploader}
}

// ImageFile is an uploaded multipart file on its way to the blob store.
type ImageFile struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// CreateBlogInput carries the fields of a new post. Slug is optional and
// derived from Title when empty. Published defaults to true.
type CreateBlogInput struct {
	Title       string
	Description string
	Content     string
	Slug        string
	Category    string
	Tags        []string
	Published   *bool
	ImageURL    string
}

// Create validates the input, settles the slug, resolves the image, and
// stores the post with the caller's byline snapshot.
func (s *BlogService) Create(ctx context.Context, actor domain.Identity, in CreateBlogInput, file *ImageFile) (*domain.Blog, error) {
	logCtx := logrus.WithFields(logrus.Fields{"actor_id": actor.UserID, "title": in.Title})

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: title, description and content are required", ErrInvalidInput)
	}

	category := in.Category
	if category == "" {
		category = "Other"
	}
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	slug := strings.ToLower(strings.TrimSpace(in.Slug))
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: title does not yield a usable slug", ErrInvalidInput)
	}
	logCtx = logCtx.WithField("slug", slug)

	taken, err := s.blogRepo.SlugExists(ctx, slug, 0)
	if err != nil {
		logCtx.WithError(err).Error("Failed to check slug uniqueness")
		return nil, ErrInternalServer
	}
	if taken {
		logCtx.Warn("Blog creation rejected: slug already exists")
		return nil, ErrSlugTaken
	}

	image, err := s.resolveImage(ctx, file, in.ImageURL)
	if err != nil {
		return nil, err
	}
	if image == "" {
		image = domain.DefaultBlogImage
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	blog := &domain.Blog{
		Slug:        slug,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		AuthorID:    actor.UserID,
		AuthorName:  actor.Username,
		Image:       image,
		Category:    category,
		Tags:        in.Tags,
		Published:   published,
	}
	if err := s.blogRepo.Save(ctx, blog); err != nil {
		// A concurrent create can slip past the SlugExists check; the unique
		// index reports it here.
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Blog creation rejected: slug conflict on save")
			return nil, ErrSlugTaken
		}
		logCtx.WithError(err).Error("Database error during blog creation")
		return nil, ErrInternalServer
	}

	logCtx.WithField("blog_id", blog.ID).Info("Blog created successfully")
	return blog, nil
}

// UpdateBlogInput carries optional replacement fields; empty strings and nil
// pointers leave the stored value unchanged.
type UpdateBlogInput struct {
	Title       string
	Description string
	Content     string
	Slug        string
	Category    string
	Tags        []string
	Published   *bool
	ImageURL    string
}

// Update applies the provided fields. A changed slug is re-validated for
// uniqueness against every other post before it is stored.
func (s *BlogService) Update(ctx context.Context, actor domain.Identity, id uint, in UpdateBlogInput, file *ImageFile) (*domain.Blog, error) {
	logCtx := logrus.WithFields(logrus.Fields{"actor_id": actor.UserID, "blog_id": id})

	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, ErrBlogNotFound
		}
		logCtx.WithError(err).Error("Failed to load blog for update")
		return nil, ErrInternalServer
	}

	if slug := strings.ToLower(strings.TrimSpace(in.Slug)); slug != "" && slug != blog.Slug {
		taken, err := s.blogRepo.SlugExists(ctx, slug, blog.ID)
		if err != nil {
			logCtx.WithError(err).Error("Failed to check slug uniqueness")
			return nil, ErrInternalServer
		}
		if taken {
			logCtx.WithField("slug", slug).Warn("Blog update rejected: slug already exists")
			return nil, ErrSlugTaken
		}
		blog.Slug = slug
	}

	if v := strings.TrimSpace(in.Title); v != "" {
		blog.Title = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		blog.Description = v
	}
	if v := strings.TrimSpace(in.Content); v != "" {
		blog.Content = v
	}
	if in.Category != "" {
		if !domain.ValidCategory(in.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
		}
		blog.Category = in.Category
	}
	if in.Tags != nil {
		blog.Tags = in.Tags
	}
	if in.Published != nil {
		blog.Published = *in.Published
	}

	if file != nil {
		image, err := s.resolveImage(ctx, file, "")
		if err != nil {
			return nil, err
		}
		blog.Image = image
	} else if in.ImageURL != "" {
		blog.Image = in.ImageURL
	}

	if err := s.blogRepo.Save(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrSlugTaken
		}
		logCtx.WithError(err).Error("Database error during blog update")
		return nil, ErrInternalServer
	}

	logCtx.Info("Blog updated successfully")
	return blog, nil
}

// BlogListQuery narrows and pages the public listing. IncludeDrafts is only
// honored for the admin console (published=false query).
type BlogListQuery struct {
	Page          int
	Limit         int
	Search        string
	Category      string
	IncludeDrafts bool
}

// PageInfo describes one page of a listing.
type PageInfo struct {
	Count int
	Total int64
	Page  int
	Pages int
}

// List returns a page of posts, newest first.
func (s *BlogService) List(ctx context.Context, q BlogListQuery) ([]domain.Blog, PageInfo, error) {
	if q.Page <= 0 {
		q.Page = defaultPage
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}

	blogs, total, err := s.blogRepo.List(ctx, repository.BlogQuery{
		Search:        q.Search,
		Category:      q.Category,
		PublishedOnly: !q.IncludeDrafts,
		Page:          q.Page,
		Limit:         q.Limit,
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to list blogs")
		return nil, PageInfo{}, ErrInternalServer
	}

	return blogs, PageInfo{
		Count: len(blogs),
		Total: total,
		Page:  q.Page,
		Pages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}, nil
}

// GetBySlug loads a post and, as a deliberate side effect, adds exactly one
// view. Repeated fetches keep incrementing; the returned post reflects the
// increment.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	blog, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, ErrBlogNotFound
		}
		logrus.WithError(err).WithField("slug", slug).Error("Failed to load blog by slug")
		return nil, ErrInternalServer
	}

	if err := s.blogRepo.IncrementViews(ctx, blog.ID); err != nil {
		logrus.WithError(err).WithField("blog_id", blog.ID).Error("Failed to increment view counter")
		return nil, ErrInternalServer
	}
	blog.Views++
	return blog, nil
}

// Delete removes the post and cascades to its comments; the repository
// transaction guarantees no orphans survive a reported success.
func (s *BlogService) Delete(ctx context.Context, actor domain.Identity, id uint) error {
	logCtx := logrus.WithFields(logrus.Fields{"actor_id": actor.UserID, "blog_id": id})

	if err := s.blogRepo.DeleteWithComments(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return ErrBlogNotFound
		}
		logCtx.WithError(err).Error("Database error during blog delete")
		return ErrInternalServer
	}

	logCtx.Info("Blog and associated comments deleted")
	return nil
}

// ToggleLike flips the caller's membership in the post's like set and
// returns the new count with the resulting membership flag. Two consecutive
// calls by the same caller restore the original state.
func (s *BlogService) ToggleLike(ctx context.Context, actor domain.Identity, id uint) (likes int64, isLiked bool, err error) {
	liked, count, err := s.blogRepo.ToggleLike(ctx, id, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return 0, false, ErrBlogNotFound
		}
		logrus.WithError(err).WithFields(logrus.Fields{"actor_id": actor.UserID, "blog_id": id}).
			Error("Failed to toggle blog like")
		return 0, false, ErrInternalServer
	}
	return count, liked, nil
}

// Featured returns the published posts with the most views, likes breaking
// ties, capped at FeaturedLimit.
func (s *BlogService) Featured(ctx context.Context) ([]domain.Blog, error) {
	blogs, err := s.blogRepo.Featured(ctx, FeaturedLimit)
	if err != nil {
		logrus.WithError(err).Error("Failed to load featured blogs")
		return nil, ErrInternalServer
	}
	return blogs, nil
}

// resolveImage validates and uploads a file when one is present, otherwise
// falls back to the provided URL.
func (s *BlogService) resolveImage(ctx context.Context, file *ImageFile, imageURL string) (string, error) {
	if file == nil {
		return imageURL, nil
	}
	if err := storage.ValidateImage(file.Filename, file.ContentType, file.Size); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if s.uploader == nil {
		return "", fmt.Errorf("%w: image uploads are not configured", ErrInvalidInput)
	}
	url, err := s.uploader.Upload(ctx, file.Reader, file.Filename)
	if err != nil {
		logrus.WithError(err).WithField("filename", file.Filename).Error("Image upload failed")
		return "", ErrInternalServer
	}
	return url, nil
}
