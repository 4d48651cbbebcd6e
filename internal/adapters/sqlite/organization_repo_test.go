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

func TestAreaRepository_CRUD(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	repo := sqlite.NewAreaRepository(testDB)
	ctx := context.Background()

	area := &models.Area{Name: "Logistics", ManagerID: f.leaderID}
	require.NoError(t, repo.Create(ctx, area))
	require.NotZero(t, area.ID)

	got, err := repo.GetByID(ctx, area.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Logistics", got.Name)
	assert.Equal(t, f.leaderID, got.ManagerID)

	got.Name = "Logistics & Fleet"
	got.ManagerID = 0
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, area.ID)
	require.NoError(t, err)
	assert.Equal(t, "Logistics & Fleet", got.Name)
	assert.Zero(t, got.ManagerID)

	require.NoError(t, repo.Delete(ctx, area.ID))
	got, err = repo.GetByID(ctx, area.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAreaRepository_MissingRows(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewAreaRepository(testDB)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, repo.Update(ctx, &models.Area{ID: 99, Name: "Ghost"}))
	assert.Error(t, repo.Delete(ctx, 99))
}

func TestAreaRepository_Probes(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	empty := seedArea(t, testDB, "Empty")
	repo := sqlite.NewAreaRepository(testDB)
	ctx := context.Background()

	found, err := repo.NameExists(ctx, "  fINANCE ")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.NameExists(ctx, "Marketing")
	require.NoError(t, err)
	assert.False(t, found)

	has, err := repo.HasApplications(ctx, f.areaID)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasApplications(ctx, empty)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestAreaRepository_ManagerDeletedSetsNull(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	repo := sqlite.NewAreaRepository(testDB)
	ctx := context.Background()

	area := &models.Area{Name: "Operations", ManagerID: f.devID}
	require.NoError(t, repo.Create(ctx, area))
	require.NoError(t, sqlite.NewMemberRepository(testDB).Delete(ctx, f.devID))

	got, err := repo.GetByID(ctx, area.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ManagerID)
}

func TestSquadRepository_ListPaging(t *testing.T) {
	testDB := setupTestDB(t)
	for _, name := range []string{"delta", "Alpha", "charlie", "Bravo", "echo"} {
		seedSquad(t, testDB, name)
	}
	repo := sqlite.NewSquadRepository(testDB)
	ctx := context.Background()

	page, err := repo.List(ctx, secondary.SquadFilters{}, secondary.Page{Number: 2, Size: 2, SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "charlie", page.Items[0].Name)
	assert.Equal(t, "delta", page.Items[1].Name)

	page, err = repo.List(ctx, secondary.SquadFilters{Name: "a"}, secondary.Page{Number: 1, Size: 10, SortBy: "name", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, "delta", page.Items[0].Name)

	// Unknown sort keys fall back to insertion order.
	page, err = repo.List(ctx, secondary.SquadFilters{}, secondary.Page{Number: 1, Size: 1, SortBy: "nope"})
	require.NoError(t, err)
	assert.Equal(t, "delta", page.Items[0].Name)
}

func TestSquadRepository_Probes(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	lonely := seedSquad(t, testDB, "Lonely")
	repo := sqlite.NewSquadRepository(testDB)
	ctx := context.Background()

	has, err := repo.HasMembers(ctx, f.squadID)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasMembers(ctx, lonely)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = repo.HasApplications(ctx, f.squadID)
	require.NoError(t, err)
	assert.True(t, has)

	found, err := repo.NameExists(ctx, "payments")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestMemberRepository_Lookups(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	other := seedSquad(t, testDB, "Identity")
	outsider := seedMember(t, testDB, "Caio Melo", "caio@example.com", "developer", other)
	repo := sqlite.NewMemberRepository(testDB)
	ctx := context.Background()

	squad, err := repo.ListBySquad(ctx, f.squadID)
	require.NoError(t, err)
	require.Len(t, squad, 2)
	assert.Equal(t, f.leaderID, squad[0].ID)
	assert.Equal(t, models.RoleSquadLeader, squad[0].Role)
	assert.True(t, squad[0].IsSquadLeader())

	byIDs, err := repo.GetByIDs(ctx, []int64{outsider, 999, f.devID})
	require.NoError(t, err)
	require.Len(t, byIDs, 2)
	assert.Equal(t, f.devID, byIDs[0].ID)
	assert.Equal(t, outsider, byIDs[1].ID)

	none, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	found, err := repo.EmailExists(ctx, " ANA@example.com")
	require.NoError(t, err)
	assert.True(t, found)

	page, err := repo.List(ctx, secondary.MemberFilters{Role: models.RoleDeveloper}, secondary.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestMemberRepository_UniqueEmailIndex(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	repo := sqlite.NewMemberRepository(testDB)

	dup := &models.Member{Name: "Ana Clone", Email: "ANA@example.com", Role: models.RoleDeveloper, SquadID: f.squadID}
	assert.Error(t, repo.Create(context.Background(), dup))
}
