package repository

import (
	"context"

	"gorm.io/gorm"

	"openeye/internal/model"
)

// ComplaintRepository defines complaint persistence operations.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	List(ctx context.Context) ([]model.Complaint, error)
	ListByStatus(ctx context.Context, status string) ([]model.Complaint, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository.
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) List(ctx context.Context) ([]model.Complaint, error) {
	var complaints []model.Complaint
	if err := r.db.WithContext(ctx).Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) ListByStatus(ctx context.Context, status string) ([]model.Complaint, error) {
	var complaints []model.Complaint
	if err := r.db.WithContext(ctx).Where("status = ?", status).Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Complaint{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *complaintRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
