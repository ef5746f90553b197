package gormpersistence_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Yashkhope01/Blog/internal/domain"
)

// openTestDB opens a fresh in-memory database per test so cases cannot leak
// state into each other.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "opening in-memory sqlite should not fail")

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Blog{},
		&domain.BlogLike{},
		&domain.Comment{},
		&domain.CommentLike{},
		&domain.Contact{},
	)
	require.NoError(t, err, "migrating the schema should not fail")

	return db
}

func seedBlog(t *testing.T, db *gorm.DB, slug string, published bool) *domain.Blog {
	t.Helper()
	blog := &domain.Blog{
		Slug:        slug,
		Title:       "Title " + slug,
		Description: "Description",
		Content:     "Content body",
		AuthorID:    1,
		AuthorName:  "author",
		Image:       domain.DefaultBlogImage,
		Category:    "Other",
		Published:   published,
	}
	require.NoError(t, db.Create(blog).Error)
	return blog
}
