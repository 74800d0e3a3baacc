package repository

import (
	"context"

	"gorm.io/gorm"

	"openeye/internal/model"
)

// AuthorityRepository defines authority persistence operations.
type AuthorityRepository interface {
	Create(ctx context.Context, authority *model.Authority) error
	ListActive(ctx context.Context) ([]model.Authority, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type authorityRepository struct {
	db *gorm.DB
}

// NewAuthorityRepository creates a new authority repository.
func NewAuthorityRepository(db *gorm.DB) AuthorityRepository {
	return &authorityRepository{db: db}
}

func (r *authorityRepository) Create(ctx context.Context, authority *model.Authority) error {
	return r.db.WithContext(ctx).Create(authority).Error
}

func (r *authorityRepository) ListActive(ctx context.Context) ([]model.Authority, error) {
	var authorities []model.Authority
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&authorities).Error; err != nil {
		return nil, err
	}
	return authorities, nil
}

func (r *authorityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Authority{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *authorityRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Authority{}).
		Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
