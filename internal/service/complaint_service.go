package service

import (
	"context"
	"fmt"

	"openeye/internal/model"
	"openeye/internal/repository"
)

// ComplaintService handles complaint submission and listing.
type ComplaintService interface {
	Submit(ctx context.Context, domain, description string) (*model.Complaint, error)
	List(ctx context.Context) ([]model.Complaint, error)
	ListPending(ctx context.Context) ([]model.Complaint, error)
}

type complaintService struct {
	complaints repository.ComplaintRepository
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(complaints repository.ComplaintRepository) ComplaintService {
	return &complaintService{complaints: complaints}
}

// Submit stores a new complaint with a freshly generated public id and
// status "pending". The API carries no authenticated caller, so the owner
// reference stays empty.
func (s *complaintService) Submit(ctx context.Context, domain, description string) (*model.Complaint, error) {
	id, err := GenerateComplaintID()
	if err != nil {
		return nil, err
	}

	complaint := &model.Complaint{
		ComplaintID: id,
		Domain:      domain,
		Description: description,
		Status:      model.StatusPending,
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}

	return complaint, nil
}

// List returns every complaint, unfiltered and unpaginated.
func (s *complaintService) List(ctx context.Context) ([]model.Complaint, error) {
	return s.complaints.List(ctx)
}

// ListPending returns complaints still awaiting review.
func (s *complaintService) ListPending(ctx context.Context) ([]model.Complaint, error) {
	return s.complaints.ListByStatus(ctx, model.StatusPending)
}
