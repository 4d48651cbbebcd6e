package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/portfolio/internal/adapters/sqlite"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

func TestApplicationRepository_CRUD(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	repo := sqlite.NewApplicationRepository(testDB)
	ctx := context.Background()

	app := &models.Application{Name: "Ledger", Description: "General ledger", AreaID: f.areaID, External: true}
	require.NoError(t, repo.Create(ctx, app))

	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "General ledger", got.Description)
	assert.Zero(t, got.SquadID)
	assert.True(t, got.External)

	got.SquadID = f.squadID
	got.External = false
	require.NoError(t, repo.Update(ctx, got))

	page, err := repo.List(ctx, secondary.ApplicationFilters{SquadID: f.squadID}, secondary.Page{Number: 1, Size: 10, SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Checkout", page.Items[0].Name)
	assert.Equal(t, "Ledger", page.Items[1].Name)
	assert.False(t, page.Items[1].External)
}

func TestApplicationRepository_HasDependents(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		seed func(t *testing.T, f fixture, run func(string, ...any))
		want bool
	}{
		{"none", func(*testing.T, fixture, func(string, ...any)) {}, false},
		{"document", func(_ *testing.T, f fixture, run func(string, ...any)) {
			run("INSERT INTO documents (application_id, name, url) VALUES (?, 'Runbook', 'https://docs.example.com/rb')", f.appID)
		}, true},
		{"knowledge", func(_ *testing.T, f fixture, run func(string, ...any)) {
			run("INSERT INTO knowledge (member_id, application_id, squad_id_at_association, status, created_at) VALUES (?, ?, ?, 'past', ?)",
				f.devID, f.appID, f.squadID, time.Now())
		}, true},
		{"feedback", func(_ *testing.T, f fixture, run func(string, ...any)) {
			run("INSERT INTO feedbacks (title, description, application_id, created_at) VALUES ('t', 'd', ?, ?)", f.appID, time.Now())
		}, true},
		{"incident", func(_ *testing.T, f fixture, run func(string, ...any)) {
			run("INSERT INTO incidents (title, description, application_id, created_at) VALUES ('t', 'd', ?, ?)", f.appID, time.Now())
		}, true},
		{"improvement", func(_ *testing.T, f fixture, run func(string, ...any)) {
			run("INSERT INTO improvements (title, description, application_id, created_at) VALUES ('t', 'd', ?, ?)", f.appID, time.Now())
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB := setupTestDB(t)
			f := seedFixture(t, testDB)
			tt.seed(t, f, func(query string, args ...any) {
				_, err := testDB.Exec(query, args...)
				require.NoError(t, err)
			})

			got, err := sqlite.NewApplicationRepository(testDB).HasDependents(ctx, f.appID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentRepository_ScopedProbes(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	otherApp := seedApplication(t, testDB, "Billing", f.areaID, 0)
	repo := sqlite.NewDocumentRepository(testDB)
	ctx := context.Background()

	doc := &models.Document{ApplicationID: f.appID, Name: "Runbook", URL: "https://docs.example.com/runbook"}
	require.NoError(t, repo.Create(ctx, doc))

	found, err := repo.NameExists(ctx, "RUNBOOK", f.appID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.NameExists(ctx, "Runbook", otherApp)
	require.NoError(t, err)
	assert.False(t, found, "names are unique per application only")

	found, err = repo.URLExists(ctx, "https://docs.example.com/runbook", f.appID)
	require.NoError(t, err)
	assert.True(t, found)

	// The same document may live under another application.
	require.NoError(t, repo.Create(ctx, &models.Document{ApplicationID: otherApp, Name: "Runbook", URL: doc.URL}))

	page, err := repo.List(ctx, secondary.DocumentFilters{ApplicationID: f.appID}, secondary.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestKnowledgeRepository_CreateAndRead(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	repo := sqlite.NewKnowledgeRepository(testDB)
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	k := &models.Knowledge{
		MemberID:             f.devID,
		ApplicationID:        f.appID,
		SquadIDAtAssociation: f.squadID,
		Status:               models.KnowledgeCurrent,
		CreatedAt:            created,
	}
	require.NoError(t, repo.Create(ctx, k))

	got, err := repo.GetByID(ctx, k.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, f.squadID, got.SquadIDAtAssociation)
	assert.Equal(t, models.KnowledgeCurrent, got.Status)
	assert.True(t, created.Equal(got.CreatedAt), "CreatedAt = %v, want %v", got.CreatedAt, created)
}

func TestKnowledgeRepository_RequiresStatus(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)

	err := sqlite.NewKnowledgeRepository(testDB).Create(context.Background(), &models.Knowledge{
		MemberID: f.devID, ApplicationID: f.appID, SquadIDAtAssociation: f.squadID,
	})
	assert.Error(t, err)
}

func TestKnowledgeRepository_CurrentOnly(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	billing := seedApplication(t, testDB, "Billing", f.areaID, f.squadID)
	past := seedKnowledge(t, testDB, f.devID, f.appID, f.squadID, "past")
	current := seedKnowledge(t, testDB, f.devID, billing, f.squadID, "current")
	repo := sqlite.NewKnowledgeRepository(testDB)
	ctx := context.Background()

	found, err := repo.AssociationExists(ctx, f.devID, f.appID)
	require.NoError(t, err)
	assert.False(t, found, "past associations do not block a new one")

	found, err = repo.AssociationExists(ctx, f.devID, billing)
	require.NoError(t, err)
	assert.True(t, found)

	list, err := repo.ListCurrentByMember(ctx, f.devID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, current, list[0].ID)

	k, err := repo.GetByID(ctx, past)
	require.NoError(t, err)
	k.Status = models.KnowledgeCurrent
	require.NoError(t, repo.Update(ctx, k))

	page, err := repo.List(ctx, secondary.KnowledgeFilters{MemberID: f.devID, Status: models.KnowledgeCurrent}, secondary.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestKnowledgeRepository_MemberDeleteCascades(t *testing.T) {
	testDB := setupTestDB(t)
	f := seedFixture(t, testDB)
	id := seedKnowledge(t, testDB, f.devID, f.appID, f.squadID, "current")
	ctx := context.Background()

	require.NoError(t, sqlite.NewMemberRepository(testDB).Delete(ctx, f.devID))

	got, err := sqlite.NewKnowledgeRepository(testDB).GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}
