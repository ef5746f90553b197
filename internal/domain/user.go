// Package domain holds the persistent data models of the application.
package domain

import "time"

// Role values a user account can carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. The Password field stores a bcrypt
// hash and is never serialized into API responses.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(191);uniqueIndex:idx_username;not null" json:"username"`
	Email     string    `gorm:"type:varchar(191);uniqueIndex:idx_email;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:user" json:"role"`
	Bio       string    `gorm:"type:varchar(500)" json:"bio"`
	Avatar    string    `gorm:"type:varchar(500)" json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
