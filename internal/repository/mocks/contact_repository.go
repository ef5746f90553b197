package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
)

// ContactRepository is a mock implementation of repository.ContactRepository.
type ContactRepository struct {
	mock.Mock
}

func (m *ContactRepository) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if contact, ok := args.Get(0).(*domain.Contact); ok {
		return contact, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ContactRepository) List(ctx context.Context, q repository.ContactQuery) ([]domain.Contact, int64, error) {
	args := m.Called(ctx, q)
	var contacts []domain.Contact
	if v, ok := args.Get(0).([]domain.Contact); ok {
		contacts = v
	}
	return contacts, args.Get(1).(int64), args.Error(2)
}

func (m *ContactRepository) Save(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *ContactRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
