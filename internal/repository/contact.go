package repository

import (
	"context"

	"github.com/Yashkhope01/Blog/internal/domain"
)

// ContactQuery narrows and pages an inbox listing. An empty Status means no
// status filter.
type ContactQuery struct {
	Status string
	Page   int
	Limit  int
}

// ContactRepository stores and retrieves contact-form submissions.
type ContactRepository interface {
	// FindByID loads a message. Returns ErrContactNotFound when it does not
	// exist.
	FindByID(ctx context.Context, id uint) (*domain.Contact, error)

	// List returns a page of messages, newest first, plus the total match
	// count.
	List(ctx context.Context, q ContactQuery) ([]domain.Contact, int64, error)

	// Save creates the message when its ID is zero and updates it otherwise.
	Save(ctx context.Context, contact *domain.Contact) error

	// Delete removes a message.
	Delete(ctx context.Context, id uint) error
}
