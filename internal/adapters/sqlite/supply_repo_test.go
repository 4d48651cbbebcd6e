package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/portfolio/internal/adapters/sqlite"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

func TestSupplierRepository_Probes(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewSupplierRepository(testDB)
	ctx := context.Background()

	sup := &models.Supplier{Name: "Bosch", Code: "BSH-01", Email: "parts@bosch.example"}
	require.NoError(t, repo.Create(ctx, sup))

	found, err := repo.NameExists(ctx, "bosch")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.CodeExists(ctx, "bsh-01 ")
	require.NoError(t, err)
	assert.True(t, found)

	has, err := repo.HasPartNumbers(ctx, sup.ID)
	require.NoError(t, err)
	assert.False(t, has)

	parts := sqlite.NewPartNumberRepository(testDB)
	require.NoError(t, parts.Create(ctx, &models.PartNumber{Code: "PN-1", Description: "Brake pad", Type: models.PartExternal, SupplierID: sup.ID}))

	has, err = repo.HasPartNumbers(ctx, sup.ID)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Error(t, repo.Delete(ctx, sup.ID), "foreign key keeps referenced suppliers")
}

func TestVehicleRepository_ChassisIgnoresCase(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewVehicleRepository(testDB)
	ctx := context.Background()

	v := &models.Vehicle{Chassis: "9BWZZZ377VT004251", Model: "Gol", Year: 2020}
	require.NoError(t, repo.Create(ctx, v))

	found, err := repo.ChassisExists(ctx, "9bwzzz377vt004251")
	require.NoError(t, err)
	assert.True(t, found)

	v.Year = 2021
	require.NoError(t, repo.Update(ctx, v))
	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 2021, got.Year)

	page, err := repo.List(ctx, secondary.VehicleFilters{Model: "go"}, secondary.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestPartNumberRepository_OptionalSupplier(t *testing.T) {
	testDB := setupTestDB(t)
	supID := seedSupplier(t, testDB, "Bosch", "BSH-01")
	repo := sqlite.NewPartNumberRepository(testDB)
	ctx := context.Background()

	internal := &models.PartNumber{Code: "PN-INT", Description: "Bracket", Type: models.PartInternal}
	require.NoError(t, repo.Create(ctx, internal))
	require.NoError(t, repo.Create(ctx, &models.PartNumber{Code: "PN-EXT", Description: "Filter", Type: models.PartExternal, SupplierID: supID}))

	got, err := repo.GetByID(ctx, internal.ID)
	require.NoError(t, err)
	assert.Zero(t, got.SupplierID)
	assert.Equal(t, models.PartInternal, got.Type)

	page, err := repo.List(ctx, secondary.PartNumberFilters{SupplierID: supID}, secondary.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "PN-EXT", page.Items[0].Code)

	page, err = repo.List(ctx, secondary.PartNumberFilters{Type: models.PartInternal}, secondary.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	found, err := repo.CodeExists(ctx, "pn-int")
	require.NoError(t, err)
	assert.True(t, found)
}
