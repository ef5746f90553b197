package domain

import "time"

// Contact message lifecycle states. Creation always starts at unread; the
// first admin detail view moves unread to read, and an admin update may set
// any of the three values directly.
const (
	ContactStatusUnread  = "unread"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact is a public contact-form submission. Response holds optional
// free-text written by an admin; it carries no enforced relationship to
// Status.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(191);not null" json:"name"`
	Email     string    `gorm:"type:varchar(191);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message   string    `gorm:"type:varchar(2000);not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);index;not null;default:unread" json:"status"`
	Response  string    `gorm:"type:text" json:"response,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ValidContactStatus reports whether s is a member of the status enum.
func ValidContactStatus(s string) bool {
	return s == ContactStatusUnread || s == ContactStatusRead || s == ContactStatusReplied
}
