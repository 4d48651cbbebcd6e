package app

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/example/portfolio/internal/ctxutil"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

var errBoom = errors.New("database unavailable")

// mockStore is an in-memory Repository. Records are copied on the way in and
// out so callers never share memory with stored state.
type mockStore[T any] struct {
	items     map[int64]*T
	order     []int64
	nextID    int64
	setID     func(*T, int64)
	idOf      func(*T) int64
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
	creates   int
	updates   int
	deletes   int
}

func newMockStore[T any](setID func(*T, int64), idOf func(*T) int64) *mockStore[T] {
	return &mockStore[T]{items: make(map[int64]*T), setID: setID, idOf: idOf}
}

func (m *mockStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	rec, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockStore[T]) List(ctx context.Context, filter any, page secondary.Page) (*secondary.PagedResult[T], error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := &secondary.PagedResult[T]{Page: page.Number, PageSize: page.Size, Total: len(m.order)}
	for i, id := range m.order {
		if i < page.Offset() || len(out.Items) >= page.Size {
			continue
		}
		cp := *m.items[id]
		out.Items = append(out.Items, &cp)
	}
	return out, nil
}

func (m *mockStore[T]) Create(ctx context.Context, item *T) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	m.setID(item, m.nextID)
	m.put(item)
	m.creates++
	return nil
}

func (m *mockStore[T]) Update(ctx context.Context, item *T) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.put(item)
	m.updates++
	return nil
}

func (m *mockStore[T]) Delete(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.items, id)
	m.order = slices.DeleteFunc(m.order, func(v int64) bool { return v == id })
	m.deletes++
	return nil
}

// seed stores item under its own ID without counting a create.
func (m *mockStore[T]) seed(item *T) {
	id := m.idOf(item)
	if id > m.nextID {
		m.nextID = id
	}
	m.put(item)
}

func (m *mockStore[T]) put(item *T) {
	id := m.idOf(item)
	if _, ok := m.items[id]; !ok {
		m.order = append(m.order, id)
	}
	cp := *item
	m.items[id] = &cp
}

func (m *mockStore[T]) matches(match func(*T) bool) bool {
	for _, rec := range m.items {
		if match(rec) {
			return true
		}
	}
	return false
}

func fold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// typedStore adapts mockStore to a filter-specific Repository.
type typedStore[T any, F any] struct {
	*mockStore[T]
}

func (s typedStore[T, F]) List(ctx context.Context, filter F, page secondary.Page) (*secondary.PagedResult[T], error) {
	return s.mockStore.List(ctx, filter, page)
}

// mockAreaRepository implements secondary.AreaRepository for testing.
type mockAreaRepository struct {
	typedStore[models.Area, secondary.AreaFilters]
	withApplications map[int64]bool
}

func newMockAreaRepository() *mockAreaRepository {
	return &mockAreaRepository{
		typedStore: typedStore[models.Area, secondary.AreaFilters]{newMockStore(
			func(a *models.Area, id int64) { a.ID = id }, func(a *models.Area) int64 { return a.ID })},
		withApplications: make(map[int64]bool),
	}
}

func (m *mockAreaRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return m.matches(func(a *models.Area) bool { return fold(a.Name, name) }), nil
}

func (m *mockAreaRepository) HasApplications(ctx context.Context, areaID int64) (bool, error) {
	return m.withApplications[areaID], nil
}

// mockSquadRepository implements secondary.SquadRepository for testing.
type mockSquadRepository struct {
	typedStore[models.Squad, secondary.SquadFilters]
	withMembers      map[int64]bool
	withApplications map[int64]bool
}

func newMockSquadRepository() *mockSquadRepository {
	return &mockSquadRepository{
		typedStore: typedStore[models.Squad, secondary.SquadFilters]{newMockStore(
			func(s *models.Squad, id int64) { s.ID = id }, func(s *models.Squad) int64 { return s.ID })},
		withMembers:      make(map[int64]bool),
		withApplications: make(map[int64]bool),
	}
}

func (m *mockSquadRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return m.matches(func(s *models.Squad) bool { return fold(s.Name, name) }), nil
}

func (m *mockSquadRepository) HasMembers(ctx context.Context, squadID int64) (bool, error) {
	return m.withMembers[squadID], nil
}

func (m *mockSquadRepository) HasApplications(ctx context.Context, squadID int64) (bool, error) {
	return m.withApplications[squadID], nil
}

// mockMemberRepository implements secondary.MemberRepository for testing.
type mockMemberRepository struct {
	typedStore[models.Member, secondary.MemberFilters]
	emailProbes int
}

func newMockMemberRepository() *mockMemberRepository {
	return &mockMemberRepository{
		typedStore: typedStore[models.Member, secondary.MemberFilters]{newMockStore(
			func(m *models.Member, id int64) { m.ID = id }, func(m *models.Member) int64 { return m.ID })},
	}
}

func (m *mockMemberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	m.emailProbes++
	return m.matches(func(rec *models.Member) bool { return fold(rec.Email, email) }), nil
}

func (m *mockMemberRepository) ListBySquad(ctx context.Context, squadID int64) ([]*models.Member, error) {
	var out []*models.Member
	for _, id := range m.order {
		if rec := m.items[id]; rec.SquadID == squadID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockMemberRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Member, error) {
	var out []*models.Member
	for _, id := range ids {
		if rec, ok := m.items[id]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// mockApplicationRepository implements secondary.ApplicationRepository for testing.
type mockApplicationRepository struct {
	typedStore[models.Application, secondary.ApplicationFilters]
	withDependents map[int64]bool
}

func newMockApplicationRepository() *mockApplicationRepository {
	return &mockApplicationRepository{
		typedStore: typedStore[models.Application, secondary.ApplicationFilters]{newMockStore(
			func(a *models.Application, id int64) { a.ID = id }, func(a *models.Application) int64 { return a.ID })},
		withDependents: make(map[int64]bool),
	}
}

func (m *mockApplicationRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return m.matches(func(a *models.Application) bool { return fold(a.Name, name) }), nil
}

func (m *mockApplicationRepository) HasDependents(ctx context.Context, applicationID int64) (bool, error) {
	return m.withDependents[applicationID], nil
}

// mockDocumentRepository implements secondary.DocumentRepository for testing.
type mockDocumentRepository struct {
	typedStore[models.Document, secondary.DocumentFilters]
}

func newMockDocumentRepository() *mockDocumentRepository {
	return &mockDocumentRepository{
		typedStore: typedStore[models.Document, secondary.DocumentFilters]{newMockStore(
			func(d *models.Document, id int64) { d.ID = id }, func(d *models.Document) int64 { return d.ID })},
	}
}

func (m *mockDocumentRepository) NameExists(ctx context.Context, name string, applicationID int64) (bool, error) {
	return m.matches(func(d *models.Document) bool { return d.ApplicationID == applicationID && fold(d.Name, name) }), nil
}

func (m *mockDocumentRepository) URLExists(ctx context.Context, url string, applicationID int64) (bool, error) {
	return m.matches(func(d *models.Document) bool { return d.ApplicationID == applicationID && fold(d.URL, url) }), nil
}

// mockKnowledgeRepository implements secondary.KnowledgeRepository for testing.
type mockKnowledgeRepository struct {
	typedStore[models.Knowledge, secondary.KnowledgeFilters]
}

func newMockKnowledgeRepository() *mockKnowledgeRepository {
	return &mockKnowledgeRepository{
		typedStore: typedStore[models.Knowledge, secondary.KnowledgeFilters]{newMockStore(
			func(k *models.Knowledge, id int64) { k.ID = id }, func(k *models.Knowledge) int64 { return k.ID })},
	}
}

func (m *mockKnowledgeRepository) AssociationExists(ctx context.Context, memberID, applicationID int64) (bool, error) {
	return m.matches(func(k *models.Knowledge) bool {
		return k.MemberID == memberID && k.ApplicationID == applicationID && k.Status == models.KnowledgeCurrent
	}), nil
}

func (m *mockKnowledgeRepository) ListCurrentByMember(ctx context.Context, memberID int64) ([]*models.Knowledge, error) {
	var out []*models.Knowledge
	for _, id := range m.order {
		if rec := m.items[id]; rec.MemberID == memberID && rec.Status == models.KnowledgeCurrent {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// mockTrackedRepository implements the feedback, incident and improvement repositories.
type mockTrackedRepository[T any, P trackedPtr[T]] struct {
	typedStore[T, secondary.TrackedFilters]
}

func newMockTrackedRepository[T any, P trackedPtr[T]]() *mockTrackedRepository[T, P] {
	return &mockTrackedRepository[T, P]{
		typedStore: typedStore[T, secondary.TrackedFilters]{newMockStore(
			func(t *T, id int64) { P(t).Base().ID = id }, func(t *T) int64 { return P(t).EntityID() })},
	}
}

// mockSupplierRepository implements secondary.SupplierRepository for testing.
type mockSupplierRepository struct {
	typedStore[models.Supplier, secondary.SupplierFilters]
	withParts map[int64]bool
}

func newMockSupplierRepository() *mockSupplierRepository {
	return &mockSupplierRepository{
		typedStore: typedStore[models.Supplier, secondary.SupplierFilters]{newMockStore(
			func(s *models.Supplier, id int64) { s.ID = id }, func(s *models.Supplier) int64 { return s.ID })},
		withParts: make(map[int64]bool),
	}
}

func (m *mockSupplierRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return m.matches(func(s *models.Supplier) bool { return fold(s.Name, name) }), nil
}

func (m *mockSupplierRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return m.matches(func(s *models.Supplier) bool { return fold(s.Code, code) }), nil
}

func (m *mockSupplierRepository) HasPartNumbers(ctx context.Context, supplierID int64) (bool, error) {
	return m.withParts[supplierID], nil
}

// mockVehicleRepository implements secondary.VehicleRepository for testing.
type mockVehicleRepository struct {
	typedStore[models.Vehicle, secondary.VehicleFilters]
}

func newMockVehicleRepository() *mockVehicleRepository {
	return &mockVehicleRepository{
		typedStore: typedStore[models.Vehicle, secondary.VehicleFilters]{newMockStore(
			func(v *models.Vehicle, id int64) { v.ID = id }, func(v *models.Vehicle) int64 { return v.ID })},
	}
}

func (m *mockVehicleRepository) ChassisExists(ctx context.Context, chassis string) (bool, error) {
	return m.matches(func(v *models.Vehicle) bool { return fold(v.Chassis, chassis) }), nil
}

// mockPartNumberRepository implements secondary.PartNumberRepository for testing.
type mockPartNumberRepository struct {
	typedStore[models.PartNumber, secondary.PartNumberFilters]
}

func newMockPartNumberRepository() *mockPartNumberRepository {
	return &mockPartNumberRepository{
		typedStore: typedStore[models.PartNumber, secondary.PartNumberFilters]{newMockStore(
			func(p *models.PartNumber, id int64) { p.ID = id }, func(p *models.PartNumber) int64 { return p.ID })},
	}
}

func (m *mockPartNumberRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return m.matches(func(p *models.PartNumber) bool { return fold(p.Code, code) }), nil
}

// mockTransactor implements secondary.Transactor and counts transactions.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// mockNotifier implements secondary.Notifier and records every call.
type mockNotifier struct {
	mu            sync.Mutex
	created       []int64
	statusChanges []string
	memberNotes   []memberNote
	err           error
}

type memberNote struct {
	MemberID int64
	Message  string
}

func (m *mockNotifier) NotifyCreated(ctx context.Context, kind models.Kind, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, id)
	return m.err
}

func (m *mockNotifier) NotifyStatusChanged(ctx context.Context, kind models.Kind, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusChanges = append(m.statusChanges, status)
	return m.err
}

func (m *mockNotifier) NotifyMembers(ctx context.Context, members []*models.Member, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mem := range members {
		m.memberNotes = append(m.memberNotes, memberNote{MemberID: mem.ID, Message: message})
	}
	return m.err
}

// mockAuditLog implements secondary.AuditLogRepository for testing.
type mockAuditLog struct {
	entries []*secondary.AuditRecord
	err     error
}

func (m *mockAuditLog) record(ctx context.Context, action string, kind models.Kind, id int64) error {
	if m.err != nil {
		return m.err
	}
	requester, _ := ctxutil.RequesterFromContext(ctx)
	m.entries = append(m.entries, &secondary.AuditRecord{
		ID:          int64(len(m.entries) + 1),
		RequesterID: requester,
		Kind:        kind,
		EntityID:    id,
		Action:      action,
	})
	return nil
}

func (m *mockAuditLog) LogCreate(ctx context.Context, kind models.Kind, id int64) error {
	return m.record(ctx, "create", kind, id)
}

func (m *mockAuditLog) LogUpdate(ctx context.Context, kind models.Kind, id int64) error {
	return m.record(ctx, "update", kind, id)
}

func (m *mockAuditLog) LogDelete(ctx context.Context, kind models.Kind, id int64) error {
	return m.record(ctx, "delete", kind, id)
}

func (m *mockAuditLog) List(ctx context.Context, filters secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*secondary.AuditRecord
	for i := len(m.entries) - 1; i >= 0 && len(out) < filters.Limit; i-- {
		e := m.entries[i]
		if filters.Kind != "" && e.Kind != filters.Kind {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
