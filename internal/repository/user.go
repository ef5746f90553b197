// Package repository defines the storage interfaces the services depend on.
package repository

import (
	"context"

	"github.com/Yashkhope01/Blog/internal/domain"
)

// UserRepository stores and retrieves user accounts.
type UserRepository interface {
	// FindByEmail looks a user up by email. Returns ErrUserNotFound when the
	// account does not exist.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID looks a user up by primary key. Returns ErrUserNotFound when
	// the account does not exist.
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// FindAll returns every account, newest first.
	FindAll(ctx context.Context) ([]domain.User, error)

	// Save creates the user when its ID is zero and updates it otherwise.
	// Returns ErrDuplicateEntry when username or email is already taken.
	Save(ctx context.Context, user *domain.User) error
}
