package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretmap/fretmap/pkg/errors"
	"github.com/fretmap/fretmap/pkg/guitars"
	"github.com/fretmap/fretmap/pkg/registry"
)

func TestMemoryCommitAndCandidates(t *testing.T) {
	reg, err := registry.NewMemory()
	require.NoError(t, err)

	id, err := reg.Commit(guitars.KindManufacturer, guitars.Manufacturer{Name: "Gibson"}, "", "")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	candidates, err := reg.Candidates(guitars.KindManufacturer, "")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, id, candidates[0].ID)
	assert.Equal(t, "Gibson", candidates[0].Entity.(guitars.Manufacturer).Name)
}

func TestMemoryHintFiltersParent(t *testing.T) {
	reg, err := registry.NewMemory()
	require.NoError(t, err)

	mfrA, err := reg.Commit(guitars.KindManufacturer, guitars.Manufacturer{Name: "Gibson"}, "", "")
	require.NoError(t, err)
	mfrB, err := reg.Commit(guitars.KindManufacturer, guitars.Manufacturer{Name: "Fender"}, "", "")
	require.NoError(t, err)

	_, err = reg.Commit(guitars.KindModel, guitars.Model{ManufacturerName: "Gibson", Name: "Les Paul"}, mfrA, "")
	require.NoError(t, err)
	_, err = reg.Commit(guitars.KindModel, guitars.Model{ManufacturerName: "Fender", Name: "Stratocaster"}, mfrB, "")
	require.NoError(t, err)

	models, err := reg.Candidates(guitars.KindModel, mfrA)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Les Paul", models[0].Entity.(guitars.Model).Name)

	all, err := reg.Candidates(guitars.KindModel, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemoryCommitUpsert(t *testing.T) {
	reg, err := registry.NewMemory()
	require.NoError(t, err)

	id, err := reg.Commit(guitars.KindManufacturer, guitars.Manufacturer{Name: "Gibson"}, "", "")
	require.NoError(t, err)

	created, err := reg.Get(guitars.KindManufacturer, id)
	require.NoError(t, err)

	// Recommitting under the existing id updates in place.
	same, err := reg.Commit(guitars.KindManufacturer, guitars.Manufacturer{Name: "Gibson Guitar Corp."}, "", id)
	require.NoError(t, err)
	assert.Equal(t, id, same)
	assert.Equal(t, 1, reg.Len(guitars.KindManufacturer))

	updated, err := reg.Get(guitars.KindManufacturer, id)
	require.NoError(t, err)
	assert.Equal(t, "Gibson Guitar Corp.", updated.Entity.(guitars.Manufacturer).Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryReadOnly(t *testing.T) {
	reg, err := registry.NewMemory(registry.WithReadOnly(true))
	require.NoError(t, err)

	_, err = reg.Commit(guitars.KindManufacturer, guitars.Manufacturer{Name: "Gibson"}, "", "")
	assert.ErrorIs(t, err, errors.ErrReadOnly)
}

func TestMemorySeed(t *testing.T) {
	reg, err := registry.NewMemory(
		registry.WithSeed(guitars.KindManufacturer, "mfr-1", "", guitars.Manufacturer{Name: "Gretsch"}),
	)
	require.NoError(t, err)

	rec, err := reg.Get(guitars.KindManufacturer, "mfr-1")
	require.NoError(t, err)
	assert.Equal(t, "Gretsch", rec.Entity.(guitars.Manufacturer).Name)
}

func TestMemoryCandidatesOrderedByID(t *testing.T) {
	reg, err := registry.NewMemory(
		registry.WithSeed(guitars.KindManufacturer, "b", "", guitars.Manufacturer{Name: "B"}),
		registry.WithSeed(guitars.KindManufacturer, "a", "", guitars.Manufacturer{Name: "A"}),
		registry.WithSeed(guitars.KindManufacturer, "c", "", guitars.Manufacturer{Name: "C"}),
	)
	require.NoError(t, err)

	candidates, err := reg.Candidates(guitars.KindManufacturer, "")
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "a", candidates[0].ID)
	assert.Equal(t, "b", candidates[1].ID)
	assert.Equal(t, "c", candidates[2].ID)
}
