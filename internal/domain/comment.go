package domain

import "time"

// Comment is attached to a blog post. UserName is a creation-time snapshot of
// the author's username, kept alongside the live UserID reference so that
// bylines stay historically accurate. ParentCommentID, when set, makes the
// comment a reply; the reference is deliberately permissive (any existing
// comment qualifies, nesting depth is not enforced server-side).
type Comment struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	BlogID          uint          `gorm:"index:idx_comment_blog;not null" json:"blog"`
	UserID          uint          `gorm:"index;not null" json:"-"`
	UserName        string        `gorm:"type:varchar(191);not null" json:"userName"`
	Content         string        `gorm:"type:varchar(1000);not null" json:"content"`
	ParentCommentID *uint         `gorm:"index" json:"parentComment,omitempty"`
	Likes           []CommentLike `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
	User            *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt       time.Time     `gorm:"autoCreateTime;index:idx_comment_blog" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CommentLike is one row of a comment's like set, independent of the like set
// of the blog the comment belongs to.
type CommentLike struct {
	CommentID uint      `gorm:"primaryKey;autoIncrement:false" json:"comment"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// LikeUserIDs returns the like set as a list of user ids for API responses.
func (c *Comment) LikeUserIDs() []uint {
	ids := make([]uint, 0, len(c.Likes))
	for _, l := range c.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}
