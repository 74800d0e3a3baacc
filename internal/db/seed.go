package db

import (
	"context"
	"fmt"

	"openeye/internal/model"
	"openeye/internal/repository"
)

// Seed populates the default areas and authorities on first startup. Each
// table is only seeded while it is empty, so restarts never duplicate rows.
func Seed(ctx context.Context, areas repository.AreaRepository, authorities repository.AuthorityRepository) error {
	count, err := areas.Count(ctx)
	if err != nil {
		return fmt.Errorf("count areas: %w", err)
	}
	if count == 0 {
		defaults := []model.Area{
			{Name: "VV Puram", Description: "Historical market area with food street", IsActive: true},
			{Name: "Chamarajapet", Description: "Commercial and residential locality", IsActive: true},
			{Name: "KR Market", Description: "Major wholesale vegetable and flower market", IsActive: true},
		}
		for i := range defaults {
			if err := areas.Create(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("seed area %q: %w", defaults[i].Name, err)
			}
		}
	}

	count, err = authorities.Count(ctx)
	if err != nil {
		return fmt.Errorf("count authorities: %w", err)
	}
	if count == 0 {
		defaults := []model.Authority{
			{
				Name:         "BBMP Commissioner",
				Department:   "Bruhat Bengaluru Mahanagara Palike",
				ContactEmail: "commissioner@bbmp.gov.in",
				ContactPhone: "080-22221188",
				Jurisdiction: "Entire Bengaluru City",
				IsActive:     true,
			},
			{
				Name:         "Traffic Police Commissioner",
				Department:   "Bengaluru Traffic Police",
				ContactEmail: "tp@ksp.gov.in",
				ContactPhone: "080-22942222",
				Jurisdiction: "Bengaluru Traffic Management",
				IsActive:     true,
			},
		}
		for i := range defaults {
			if err := authorities.Create(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("seed authority %q: %w", defaults[i].Name, err)
			}
		}
	}

	return nil
}
