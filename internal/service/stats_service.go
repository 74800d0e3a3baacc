package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"openeye/internal/cache"
	"openeye/internal/model"
	"openeye/internal/repository"
)

const (
	statsCacheKey = "stats:overview"
	statsCacheTTL = 30 * time.Second
)

// Stats is the aggregate snapshot served by /api/stats. The counts come
// from independent queries, so they are not a single consistent snapshot.
type Stats struct {
	TotalComplaints    int64 `json:"total_complaints"`
	PendingComplaints  int64 `json:"pending_complaints"`
	ResolvedComplaints int64 `json:"resolved_complaints"`
	TotalAuthorities   int64 `json:"total_authorities"`
	TotalAreas         int64 `json:"total_areas"`
}

// StatsService computes the aggregate counts.
type StatsService interface {
	Overview(ctx context.Context) (*Stats, error)
}

type statsService struct {
	complaints  repository.ComplaintRepository
	authorities repository.AuthorityRepository
	areas       repository.AreaRepository
	cache       *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(
	complaints repository.ComplaintRepository,
	authorities repository.AuthorityRepository,
	areas repository.AreaRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		complaints:  complaints,
		authorities: authorities,
		areas:       areas,
		cache:       cache,
	}
}

// Overview returns the counts, served from cache within the TTL.
func (s *statsService) Overview(ctx context.Context) (*Stats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached Stats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &Stats{}
	var err error

	if stats.TotalComplaints, err = s.complaints.Count(ctx); err != nil {
		return nil, fmt.Errorf("count complaints: %w", err)
	}
	if stats.PendingComplaints, err = s.complaints.CountByStatus(ctx, model.StatusPending); err != nil {
		return nil, fmt.Errorf("count pending complaints: %w", err)
	}
	if stats.ResolvedComplaints, err = s.complaints.CountByStatus(ctx, model.StatusResolved); err != nil {
		return nil, fmt.Errorf("count resolved complaints: %w", err)
	}
	if stats.TotalAuthorities, err = s.authorities.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count authorities: %w", err)
	}
	if stats.TotalAreas, err = s.areas.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("count areas: %w", err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}

	return stats, nil
}
