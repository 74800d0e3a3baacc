package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openeye/internal/model"
	"openeye/internal/repository"
)

func newTestDB(t *testing.T) (repository.AreaRepository, repository.AuthorityRepository) {
	t.Helper()

	gormDB, err := NewSQLite(filepath.Join(t.TempDir(), "openeye_test.db"))
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(
		&model.User{},
		&model.Complaint{},
		&model.Authority{},
		&model.Area{},
	))

	return repository.NewAreaRepository(gormDB), repository.NewAuthorityRepository(gormDB)
}

func TestSeed_FirstRun(t *testing.T) {
	areas, authorities := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, areas, authorities))

	areaCount, err := areas.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), areaCount)

	authorityCount, err := authorities.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), authorityCount)

	seeded, err := areas.ListActive(ctx)
	assert.NoError(t, err)
	names := make([]string, 0, len(seeded))
	for _, area := range seeded {
		names = append(names, area.Name)
	}
	assert.ElementsMatch(t, []string{"VV Puram", "Chamarajapet", "KR Market"}, names)

	active, err := authorities.ListActive(ctx)
	assert.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestSeed_SecondRunIsIdempotent(t *testing.T) {
	areas, authorities := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, areas, authorities))
	require.NoError(t, Seed(ctx, areas, authorities))

	areaCount, err := areas.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), areaCount)

	authorityCount, err := authorities.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), authorityCount)
}

func TestSeed_DoesNotRefillPartiallyEmptiedTables(t *testing.T) {
	areas, authorities := newTestDB(t)
	ctx := context.Background()

	// A non-empty table is left alone even when the other one gets seeded.
	require.NoError(t, areas.Create(ctx, &model.Area{Name: "Basavanagudi", IsActive: true}))
	require.NoError(t, Seed(ctx, areas, authorities))

	areaCount, err := areas.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), areaCount)

	authorityCount, err := authorities.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), authorityCount)
}
