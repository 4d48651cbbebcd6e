package app

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/models"
)

func assertStatus(t *testing.T, res *result.Result, err error, want result.Status) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected a %s result, got nil", want)
	}
	if res.Status != want {
		t.Fatalf("expected status %s, got %s (%s %v)", want, res.Status, res.Message, res.Errors)
	}
}

func assertErrors(t *testing.T, res *result.Result, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("errors = %q, want %q", res.Errors, want)
	}
}

// ============================================================================
// Area
// ============================================================================

type areaFixture struct {
	service *AreaServiceImpl
	areas   *mockAreaRepository
	members *mockMemberRepository
}

func newAreaFixture() *areaFixture {
	f := &areaFixture{areas: newMockAreaRepository(), members: newMockMemberRepository()}
	f.service = NewAreaService(f.areas, f.members, newTestEnv().deps())
	return f
}

func TestAreaService_CreateNil(t *testing.T) {
	f := newAreaFixture()

	res, err := f.service.Create(context.Background(), nil)

	if !errors.Is(err, result.ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
	if res != nil {
		t.Errorf("expected nil result, got %+v", res)
	}
}

func TestAreaService_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		area models.Area
		want []string
	}{
		{"empty name", models.Area{}, []string{"name is required"}},
		{"blank name", models.Area{Name: "   "}, []string{"name is required"}},
		{"short name", models.Area{Name: "AB"}, []string{"name length must be between 3 and 255"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAreaFixture()
			area := tt.area

			res, err := f.service.Create(context.Background(), &area)

			assertStatus(t, res, err, result.StatusInvalidData)
			assertErrors(t, res, tt.want...)
			if res.Message != "Invalid data." {
				t.Errorf("unexpected message %q", res.Message)
			}
			if f.areas.creates != 0 {
				t.Error("invalid data must not be written")
			}
		})
	}
}

func TestAreaService_CreateUniqueName(t *testing.T) {
	f := newAreaFixture()
	f.areas.seed(&models.Area{ID: 1, Name: "Payments"})

	res, err := f.service.Create(context.Background(), &models.Area{Name: " payments "})
	assertStatus(t, res, err, result.StatusConflict)
	if res.Message != "name is already in use." {
		t.Errorf("unexpected message %q", res.Message)
	}

	res, err = f.service.Create(context.Background(), &models.Area{Name: "Logistics"})
	assertStatus(t, res, err, result.StatusSuccess)
}

func TestAreaService_CreateManagerMustExist(t *testing.T) {
	f := newAreaFixture()

	res, err := f.service.Create(context.Background(), &models.Area{Name: "Payments", ManagerID: 9})
	assertStatus(t, res, err, result.StatusNotFound)
	if res.Message != "Member not found." {
		t.Errorf("unexpected message %q", res.Message)
	}

	f.members.seed(&models.Member{ID: 9, Name: "Ana"})
	res, err = f.service.Create(context.Background(), &models.Area{Name: "Payments", ManagerID: 9})
	assertStatus(t, res, err, result.StatusSuccess)
}

func TestAreaService_UniquenessCheckedBeforeExistence(t *testing.T) {
	f := newAreaFixture()
	f.areas.seed(&models.Area{ID: 1, Name: "Payments"})

	res, err := f.service.Create(context.Background(), &models.Area{Name: "Payments", ManagerID: 404})

	assertStatus(t, res, err, result.StatusConflict)
}

func TestAreaService_UpdateSelfMatch(t *testing.T) {
	f := newAreaFixture()
	f.areas.seed(&models.Area{ID: 1, Name: "Payments"})
	f.areas.seed(&models.Area{ID: 2, Name: "Logistics"})

	res, err := f.service.Update(context.Background(), &models.Area{ID: 1, Name: "PAYMENTS"})
	assertStatus(t, res, err, result.StatusSuccess)
	if res.Message != "Area updated successfully." {
		t.Errorf("unexpected message %q", res.Message)
	}

	res, err = f.service.Update(context.Background(), &models.Area{ID: 1, Name: "Logistics"})
	assertStatus(t, res, err, result.StatusConflict)
}

func TestAreaService_Delete(t *testing.T) {
	f := newAreaFixture()
	f.areas.seed(&models.Area{ID: 1, Name: "Payments"})
	f.areas.seed(&models.Area{ID: 2, Name: "Logistics"})
	f.areas.withApplications[2] = true

	res, err := f.service.Delete(context.Background(), 2)
	assertStatus(t, res, err, result.StatusConflict)
	if res.Message != "Area cannot be deleted while it has linked records." {
		t.Errorf("unexpected message %q", res.Message)
	}

	res, err = f.service.Delete(context.Background(), 1)
	assertStatus(t, res, err, result.StatusSuccess)

	res, err = f.service.Delete(context.Background(), 77)
	assertStatus(t, res, err, result.StatusNotFound)
}

func TestAreaService_RoundTrip(t *testing.T) {
	f := newAreaFixture()
	f.members.seed(&models.Member{ID: 4, Name: "Ana"})
	want := models.Area{Name: "Payments", ManagerID: 4}

	in := want
	res, err := f.service.Create(context.Background(), &in)
	assertStatus(t, res, err, result.StatusSuccess)

	got, err := f.service.Get(context.Background(), in.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want.ID = in.ID
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

// ============================================================================
// Squad
// ============================================================================

func TestSquadService(t *testing.T) {
	squads := newMockSquadRepository()
	service := NewSquadService(squads, newTestEnv().deps())
	ctx := context.Background()

	if _, err := service.Create(ctx, nil); !errors.Is(err, result.ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}

	alpha := &models.Squad{Name: "Alpha", Description: "Checkout"}
	res, err := service.Create(ctx, alpha)
	assertStatus(t, res, err, result.StatusSuccess)

	res, err = service.Create(ctx, &models.Squad{Name: "alpha"})
	assertStatus(t, res, err, result.StatusConflict)

	res, err = service.Update(ctx, &models.Squad{ID: alpha.ID, Name: "Alpha", Description: "Checkout and refunds"})
	assertStatus(t, res, err, result.StatusSuccess)

	squads.withMembers[alpha.ID] = true
	res, err = service.Delete(ctx, alpha.ID)
	assertStatus(t, res, err, result.StatusConflict)

	squads.withMembers[alpha.ID] = false
	squads.withApplications[alpha.ID] = true
	res, err = service.Delete(ctx, alpha.ID)
	assertStatus(t, res, err, result.StatusConflict)

	squads.withApplications[alpha.ID] = false
	res, err = service.Delete(ctx, alpha.ID)
	assertStatus(t, res, err, result.StatusSuccess)
}

// ============================================================================
// Member
// ============================================================================

type memberFixture struct {
	service   *MemberServiceImpl
	members   *mockMemberRepository
	squads    *mockSquadRepository
	knowledge *mockKnowledgeRepository
}

func newMemberFixture() *memberFixture {
	f := &memberFixture{
		members:   newMockMemberRepository(),
		squads:    newMockSquadRepository(),
		knowledge: newMockKnowledgeRepository(),
	}
	f.squads.seed(&models.Squad{ID: 1, Name: "Alpha"})
	f.squads.seed(&models.Squad{ID: 2, Name: "Beta"})
	f.service = NewMemberService(f.members, f.squads, f.knowledge, newTestEnv().deps())
	return f
}

func validMember() *models.Member {
	return &models.Member{Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 1}
}

func TestMemberService_CreateValidation(t *testing.T) {
	f := newMemberFixture()

	res, err := f.service.Create(context.Background(), &models.Member{Name: "An", Email: "not-an-email"})

	assertStatus(t, res, err, result.StatusInvalidData)
	assertErrors(t, res,
		"name length must be between 3 and 255",
		"email must be a valid email address",
		"role must be one of: developer, squad_leader, product_owner, service_manager",
		"squad is required",
	)
}

func TestMemberService_CreateNormalizesEmail(t *testing.T) {
	f := newMemberFixture()
	m := validMember()
	m.Email = "  Ana@Example.com "

	res, err := f.service.Create(context.Background(), m)
	assertStatus(t, res, err, result.StatusSuccess)
	if m.Email != "ana@example.com" {
		t.Errorf("expected normalized email, got %q", m.Email)
	}

	res, err = f.service.Create(context.Background(), validMember())
	assertStatus(t, res, err, result.StatusConflict)
	if res.Message != "email is already in use." {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestMemberService_CreateSquadMustExist(t *testing.T) {
	f := newMemberFixture()
	m := validMember()
	m.SquadID = 99

	res, err := f.service.Create(context.Background(), m)

	assertStatus(t, res, err, result.StatusNotFound)
	if res.Message != "Squad not found." {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestMemberService_UpdateSkipsUniquenessForOwnEmail(t *testing.T) {
	f := newMemberFixture()
	f.members.seed(&models.Member{ID: 1, Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 1})

	res, err := f.service.Update(context.Background(), &models.Member{
		ID: 1, Name: "Ana L.", Email: "ANA@example.com", Role: models.RoleSquadLeader, SquadID: 1,
	})

	assertStatus(t, res, err, result.StatusSuccess)
	if f.members.emailProbes != 0 {
		t.Errorf("unchanged email should not be probed, got %d probes", f.members.emailProbes)
	}
}

func TestMemberService_UpdateEmailTakenByOther(t *testing.T) {
	f := newMemberFixture()
	f.members.seed(&models.Member{ID: 1, Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 1})
	f.members.seed(&models.Member{ID: 2, Name: "Bruno Reis", Email: "bruno@example.com", Role: models.RoleDeveloper, SquadID: 1})

	res, err := f.service.Update(context.Background(), &models.Member{
		ID: 2, Name: "Bruno Reis", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 1,
	})

	assertStatus(t, res, err, result.StatusConflict)
}

func TestMemberService_SquadChangeRetiresKnowledge(t *testing.T) {
	f := newMemberFixture()
	f.members.seed(&models.Member{ID: 1, Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 1})
	f.knowledge.seed(&models.Knowledge{ID: 10, MemberID: 1, ApplicationID: 100, SquadIDAtAssociation: 1, Status: models.KnowledgeCurrent})
	f.knowledge.seed(&models.Knowledge{ID: 11, MemberID: 1, ApplicationID: 200, SquadIDAtAssociation: 2, Status: models.KnowledgeCurrent})

	res, err := f.service.Update(context.Background(), &models.Member{
		ID: 1, Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 2,
	})
	assertStatus(t, res, err, result.StatusSuccess)

	if got := f.knowledge.items[10].Status; got != models.KnowledgePast {
		t.Errorf("association from the old squad should be past, got %s", got)
	}
	if got := f.knowledge.items[11].Status; got != models.KnowledgeCurrent {
		t.Errorf("association recorded under the new squad should stay current, got %s", got)
	}
}

func TestMemberService_SameSquadKeepsKnowledge(t *testing.T) {
	f := newMemberFixture()
	f.members.seed(&models.Member{ID: 1, Name: "Ana Lima", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 1})
	f.knowledge.seed(&models.Knowledge{ID: 10, MemberID: 1, ApplicationID: 100, SquadIDAtAssociation: 1, Status: models.KnowledgeCurrent})

	res, err := f.service.Update(context.Background(), &models.Member{
		ID: 1, Name: "Ana Lima Souza", Email: "ana@example.com", Role: models.RoleDeveloper, SquadID: 1,
	})
	assertStatus(t, res, err, result.StatusSuccess)

	if f.knowledge.updates != 0 {
		t.Errorf("no association should be touched, got %d updates", f.knowledge.updates)
	}
}

func TestMemberService_DeleteMissing(t *testing.T) {
	f := newMemberFixture()

	res, err := f.service.Delete(context.Background(), 5)

	assertStatus(t, res, err, result.StatusNotFound)
	if res.Message != "Member not found." {
		t.Errorf("unexpected message %q", res.Message)
	}
}
