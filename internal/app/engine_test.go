package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/ctxutil"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/metrics"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

var testCatalog = i18n.MustCatalog("en")

// testEnv bundles the shared collaborators handed to services under test.
type testEnv struct {
	tx      *mockTransactor
	audit   *mockAuditLog
	metrics *metrics.Recorder
}

func newTestEnv() *testEnv {
	return &testEnv{
		tx:      &mockTransactor{},
		audit:   &mockAuditLog{},
		metrics: metrics.NewRecorder(),
	}
}

func (e *testEnv) deps() EngineDeps {
	return EngineDeps{
		Tx:      e.tx,
		Catalog: testCatalog,
		Audit:   e.audit,
		Metrics: e.metrics,
	}
}

func newAreaEngine(repo *mockAreaRepository, env *testEnv) *Engine[models.Area, *models.Area, secondary.AreaFilters] {
	return NewEngine[models.Area, *models.Area](models.KindArea, i18n.EntityArea, repo, env.deps())
}

func TestEngine_CreateNil(t *testing.T) {
	engine := newAreaEngine(newMockAreaRepository(), newTestEnv())

	res, err := engine.Create(context.Background(), nil)

	if !errors.Is(err, result.ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
}

func TestEngine_Create(t *testing.T) {
	repo := newMockAreaRepository()
	env := newTestEnv()
	engine := newAreaEngine(repo, env)
	ctx := ctxutil.WithRequester(context.Background(), 7)

	area := &models.Area{Name: "Payments"}
	res, err := engine.Create(ctx, area)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != result.StatusSuccess {
		t.Fatalf("expected success, got %s (%s)", res.Status, res.Message)
	}
	if res.Message != "Area registered successfully." {
		t.Errorf("unexpected message %q", res.Message)
	}
	if area.ID == 0 {
		t.Error("expected storage to assign an ID")
	}
	if env.tx.calls != 1 {
		t.Errorf("expected 1 transaction, got %d", env.tx.calls)
	}
	if len(env.audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(env.audit.entries))
	}
	entry := env.audit.entries[0]
	if entry.Action != "create" || entry.EntityID != area.ID || entry.RequesterID != 7 {
		t.Errorf("unexpected audit entry %+v", entry)
	}
}

func TestEngine_CreateRepositoryFailure(t *testing.T) {
	repo := newMockAreaRepository()
	repo.createErr = errBoom
	env := newTestEnv()
	engine := newAreaEngine(repo, env)

	res, err := engine.Create(context.Background(), &models.Area{Name: "Payments"})

	if err != nil {
		t.Fatalf("repository failures must not surface as errors: %v", err)
	}
	if res.Status != result.StatusError {
		t.Fatalf("expected error status, got %s", res.Status)
	}
	if !errors.Is(res.Cause, errBoom) {
		t.Errorf("expected cause to wrap errBoom, got %v", res.Cause)
	}
	if len(env.audit.entries) != 0 {
		t.Error("failed writes must not be audited")
	}
}

func TestEngine_AuditFailureFailsWrite(t *testing.T) {
	env := newTestEnv()
	env.audit.err = errBoom
	engine := newAreaEngine(newMockAreaRepository(), env)

	res, _ := engine.Create(context.Background(), &models.Area{Name: "Payments"})

	if res.Status != result.StatusError {
		t.Errorf("expected error status, got %s", res.Status)
	}
}

func TestEngine_UpdateMissing(t *testing.T) {
	repo := newMockAreaRepository()
	engine := newAreaEngine(repo, newTestEnv())

	res, err := engine.Update(context.Background(), &models.Area{ID: 42, Name: "Ghost"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != result.StatusNotFound {
		t.Errorf("expected not found, got %s", res.Status)
	}
	if res.Message != "Area not found." {
		t.Errorf("unexpected message %q", res.Message)
	}
	if repo.updates != 0 {
		t.Error("nothing should be written")
	}
}

func TestEngine_UpdateWithAbort(t *testing.T) {
	repo := newMockAreaRepository()
	repo.seed(&models.Area{ID: 1, Name: "Payments"})
	engine := newAreaEngine(repo, newTestEnv())

	var seen string
	res, _ := engine.UpdateWith(context.Background(), &models.Area{ID: 1, Name: "Billing"},
		func(ctx context.Context, old *models.Area) (*result.Result, error) {
			seen = old.Name
			return result.Conflict("stop"), nil
		})

	if seen != "Payments" {
		t.Errorf("prepare should see the stored record, saw %q", seen)
	}
	if res.Status != result.StatusConflict || res.Message != "stop" {
		t.Errorf("expected the prepare result back, got %+v", res)
	}
	if repo.updates != 0 {
		t.Error("aborted update must not write")
	}
}

func TestEngine_Delete(t *testing.T) {
	repo := newMockAreaRepository()
	repo.seed(&models.Area{ID: 3, Name: "Payments"})
	env := newTestEnv()
	engine := newAreaEngine(repo, env)

	res, _ := engine.Delete(context.Background(), 3)
	if res.Status != result.StatusSuccess || res.Message != "Area deleted successfully." {
		t.Fatalf("unexpected result %+v", res)
	}
	if got, _ := engine.Get(context.Background(), 3); got != nil {
		t.Error("record should be gone")
	}

	res, _ = engine.Delete(context.Background(), 3)
	if res.Status != result.StatusNotFound {
		t.Errorf("second delete should report not found, got %s", res.Status)
	}
}

func TestEngine_ListDefaultsPaging(t *testing.T) {
	repo := newMockAreaRepository()
	for i := 1; i <= 12; i++ {
		repo.seed(&models.Area{ID: int64(i), Name: fmt.Sprintf("Area %02d", i)})
	}
	engine := newAreaEngine(repo, newTestEnv())

	page, err := engine.List(context.Background(), secondary.AreaFilters{}, secondary.Page{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 1 || page.PageSize != 10 {
		t.Errorf("expected page 1 of size 10, got %d/%d", page.Page, page.PageSize)
	}
	if len(page.Items) != 10 || page.Total != 12 {
		t.Errorf("expected 10 of 12 items, got %d of %d", len(page.Items), page.Total)
	}

	page, _ = engine.List(context.Background(), secondary.AreaFilters{}, secondary.Page{Number: 2})
	if len(page.Items) != 2 {
		t.Errorf("expected 2 items on page 2, got %d", len(page.Items))
	}
}

func TestEngine_GetError(t *testing.T) {
	repo := newMockAreaRepository()
	repo.getErr = errBoom
	engine := newAreaEngine(repo, newTestEnv())

	if _, err := engine.Get(context.Background(), 1); !errors.Is(err, errBoom) {
		t.Errorf("expected errBoom, got %v", err)
	}
}

func TestEngine_TrackRecordsMetrics(t *testing.T) {
	env := newTestEnv()
	engine := newAreaEngine(newMockAreaRepository(), env)
	ctx := context.Background()

	_, _ = engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		return engine.Create(ctx, &models.Area{Name: "Payments"})
	})
	_, _ = engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return engine.Delete(ctx, 99)
	})
	_, err := engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		return nil, result.NilArgument("area")
	})
	if !errors.Is(err, result.ErrNilArgument) {
		t.Fatalf("expected argument error to pass through, got %v", err)
	}

	samples, err := env.metrics.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	want := map[string]float64{
		"area/create/success":   1,
		"area/delete/not_found": 1,
	}
	if len(samples) != len(want) {
		t.Fatalf("expected %d samples, got %+v", len(want), samples)
	}
	for _, s := range samples {
		key := s.Entity + "/" + s.Operation + "/" + s.Status
		if want[key] != s.Count {
			t.Errorf("%s: got %v, want %v", key, s.Count, want[key])
		}
	}
}

func TestEngine_WithoutOptionalDeps(t *testing.T) {
	repo := newMockAreaRepository()
	engine := NewEngine[models.Area, *models.Area](models.KindArea, i18n.EntityArea, repo, EngineDeps{})

	res, err := engine.Create(context.Background(), &models.Area{Name: "Payments"})
	if err != nil || !res.OK() {
		t.Fatalf("expected success, got %+v, %v", res, err)
	}
	if res.Message != string(i18n.Registered) {
		t.Errorf("without a catalog the key is returned, got %q", res.Message)
	}
}
