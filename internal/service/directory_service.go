package service

import (
	"context"

	"openeye/internal/model"
	"openeye/internal/repository"
)

// DirectoryService serves the public directory of authorities and areas.
type DirectoryService interface {
	ListAuthorities(ctx context.Context) ([]model.Authority, error)
	ListAreas(ctx context.Context) ([]model.Area, error)
}

type directoryService struct {
	authorities repository.AuthorityRepository
	areas       repository.AreaRepository
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(authorities repository.AuthorityRepository, areas repository.AreaRepository) DirectoryService {
	return &directoryService{
		authorities: authorities,
		areas:       areas,
	}
}

// ListAuthorities returns active authorities only.
func (s *directoryService) ListAuthorities(ctx context.Context) ([]model.Authority, error) {
	return s.authorities.ListActive(ctx)
}

// ListAreas returns active areas only.
func (s *directoryService) ListAreas(ctx context.Context) ([]model.Area, error) {
	return s.areas.ListActive(ctx)
}
