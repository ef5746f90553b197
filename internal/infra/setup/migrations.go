package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Yashkhope01/Blog/internal/domain"
)

// MigrateDB runs all schema migrations on the provided GORM DB instance.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	err := db.AutoMigrate(
		&domain.User{},
		&domain.Blog{},
		&domain.BlogLike{},
		&domain.Comment{},
		&domain.CommentLike{},
		&domain.Contact{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}

	if err := ensureBlogFulltextIndex(db); err != nil {
		return err
	}

	logrus.Info("Database migration completed successfully")
	return nil
}

// ensureBlogFulltextIndex creates the FULLTEXT index that backs the blog
// search. AutoMigrate cannot express FULLTEXT, so the DDL is raw SQL; other
// dialects (the test harness) skip it and search via LIKE instead.
func ensureBlogFulltextIndex(db *gorm.DB) error {
	if db.Dialector.Name() != "mysql" {
		return nil
	}

	var count int64
	db.Raw(`SELECT COUNT(*) FROM information_schema.statistics
		WHERE table_schema = DATABASE() AND table_name = 'blogs' AND index_name = 'idx_blog_fulltext'`).
		Scan(&count)
	if count > 0 {
		return nil
	}

	sql := `CREATE FULLTEXT INDEX idx_blog_fulltext ON blogs (title, description, content)`
	if err := db.Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to create blog fulltext index: %w", err)
	}
	logrus.Info("Blog fulltext index created")
	return nil
}
