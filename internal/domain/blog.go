package domain

import "time"

// Blog categories form a closed enum; anything else is rejected at the edge.
var BlogCategories = []string{"Programming", "Web Development", "Mobile", "AI/ML", "Tutorial", "Other"}

// DefaultBlogImage is the placeholder stored when a post has neither an
// uploaded file nor an image URL.
const DefaultBlogImage = "/typescript.webp"

// Blog is a slug-addressed post. AuthorName is a snapshot of the author's
// username taken at creation time; later profile renames do not rewrite
// historical bylines. Views only ever grows and is incremented with an
// additive SQL update, never read-modify-write.
type Blog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Slug        string     `gorm:"type:varchar(191);uniqueIndex:idx_slug;not null" json:"slug"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:varchar(500);not null" json:"description"`
	Content     string     `gorm:"type:longtext;not null" json:"content"`
	AuthorID    uint       `gorm:"index;not null" json:"author"`
	AuthorName  string     `gorm:"type:varchar(191);not null" json:"authorName"`
	Image       string     `gorm:"type:varchar(500)" json:"image"`
	Category    string     `gorm:"type:varchar(50);index;not null;default:Other" json:"category"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	// No column default here: gorm drops zero-value fields that carry a
	// default tag on insert, which would flip drafts to published.
	Published   bool       `gorm:"index;not null" json:"published"`
	Views       uint64     `gorm:"not null;default:0" json:"views"`
	Likes       []BlogLike `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BlogLike is one row of a post's like set. The composite primary key makes
// membership structurally unique: a user appears at most once per post.
type BlogLike struct {
	BlogID    uint      `gorm:"primaryKey;autoIncrement:false" json:"blog"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// LikeUserIDs returns the like set as a list of user ids for API responses.
func (b *Blog) LikeUserIDs() []uint {
	ids := make([]uint, 0, len(b.Likes))
	for _, l := range b.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}

// ValidCategory reports whether c is a member of the category enum.
func ValidCategory(c string) bool {
	for _, v := range BlogCategories {
		if v == c {
			return true
		}
	}
	return false
}
