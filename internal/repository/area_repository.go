package repository

import (
	"context"

	"gorm.io/gorm"

	"openeye/internal/model"
)

// AreaRepository defines area persistence operations.
type AreaRepository interface {
	Create(ctx context.Context, area *model.Area) error
	ListActive(ctx context.Context) ([]model.Area, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository creates a new area repository.
func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

func (r *areaRepository) Create(ctx context.Context, area *model.Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *areaRepository) ListActive(ctx context.Context) ([]model.Area, error) {
	var areas []model.Area
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *areaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Area{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *areaRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Area{}).
		Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
