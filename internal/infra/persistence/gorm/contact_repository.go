package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Yashkhope01/Blog/internal/domain"
	"github.com/Yashkhope01/Blog/internal/repository"
)

// GormContactRepository is the GORM implementation of
// repository.ContactRepository.
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a GormContactRepository.
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	if db == nil {
		panic("database connection cannot be nil for GormContactRepository")
	}
	return &GormContactRepository{db: db}
}

func (r *GormContactRepository) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).First(&contact, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}
		return nil, fmt.Errorf("gorm: find contact by id %d: %w", id, err)
	}
	return &contact, nil
}

func (r *GormContactRepository) List(ctx context.Context, q repository.ContactQuery) ([]domain.Contact, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Contact{})
	if q.Status != "" {
		base = base.Where("status = ?", q.Status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("gorm: count contacts: %w", err)
	}

	var contacts []domain.Contact
	err := base.Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("gorm: list contacts: %w", err)
	}
	return contacts, total, nil
}

func (r *GormContactRepository) Save(ctx context.Context, contact *domain.Contact) error {
	err := r.db.WithContext(ctx).Save(contact).Error
	if err != nil {
		return fmt.Errorf("gorm: save contact (id: %d): %w", contact.ID, err)
	}
	return nil
}

func (r *GormContactRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Contact{}, id)
	if res.Error != nil {
		return fmt.Errorf("gorm: delete contact %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}
	return nil
}
