package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// ============================================================================
// Areas
// ============================================================================

var areaTable = table{
	name:     "areas",
	columns:  "id, name, manager_id",
	sortable: map[string]string{"name": "name COLLATE NOCASE"},
}

func scanArea(s scanner) (*models.Area, error) {
	var (
		area      models.Area
		managerID sql.NullInt64
	)
	if err := s.Scan(&area.ID, &area.Name, &managerID); err != nil {
		return nil, err
	}
	area.ManagerID = managerID.Int64
	return &area, nil
}

// AreaRepository implements secondary.AreaRepository with SQLite.
type AreaRepository struct {
	db *sql.DB
}

// NewAreaRepository creates a new SQLite area repository.
func NewAreaRepository(db *sql.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// GetByID retrieves an area by its ID; nil when absent.
func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*models.Area, error) {
	area, err := getOne(ctx, conn(ctx, r.db), "SELECT "+areaTable.columns+" FROM areas WHERE id = ?", id, scanArea)
	if err != nil {
		return nil, fmt.Errorf("failed to get area: %w", err)
	}
	return area, nil
}

// List retrieves a page of areas matching the filters.
func (r *AreaRepository) List(ctx context.Context, f secondary.AreaFilters, page secondary.Page) (*secondary.PagedResult[models.Area], error) {
	var where filters
	where.contains("name", f.Name)
	where.equals("manager_id", f.ManagerID)
	return listPage(ctx, conn(ctx, r.db), areaTable, where, page, scanArea)
}

// Create persists a new area and sets its ID.
func (r *AreaRepository) Create(ctx context.Context, area *models.Area) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO areas (name, manager_id) VALUES (?, ?)",
		area.Name, nullInt(area.ManagerID),
	)
	if err != nil {
		return fmt.Errorf("failed to create area: %w", err)
	}
	area.ID = id
	return nil
}

// Update replaces an area's fields.
func (r *AreaRepository) Update(ctx context.Context, area *models.Area) error {
	err := execOne(ctx, conn(ctx, r.db), "area", area.ID,
		"UPDATE areas SET name = ?, manager_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		area.Name, nullInt(area.ManagerID), area.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update area: %w", err)
	}
	return nil
}

// Delete removes an area.
func (r *AreaRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "area", id, "DELETE FROM areas WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}
	return nil
}

// NameExists checks whether an area already uses the name, ignoring case.
func (r *AreaRepository) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM areas WHERE lower(trim(name)) = lower(trim(?))", name)
	if err != nil {
		return false, fmt.Errorf("failed to check area name: %w", err)
	}
	return found, nil
}

// HasApplications checks whether applications reference the area.
func (r *AreaRepository) HasApplications(ctx context.Context, areaID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM applications WHERE area_id = ?", areaID)
	if err != nil {
		return false, fmt.Errorf("failed to check area applications: %w", err)
	}
	return found, nil
}

// ============================================================================
// Squads
// ============================================================================

var squadTable = table{
	name:     "squads",
	columns:  "id, name, description",
	sortable: map[string]string{"name": "name COLLATE NOCASE"},
}

func scanSquad(s scanner) (*models.Squad, error) {
	var (
		squad models.Squad
		desc  sql.NullString
	)
	if err := s.Scan(&squad.ID, &squad.Name, &desc); err != nil {
		return nil, err
	}
	squad.Description = desc.String
	return &squad, nil
}

// SquadRepository implements secondary.SquadRepository with SQLite.
type SquadRepository struct {
	db *sql.DB
}

// NewSquadRepository creates a new SQLite squad repository.
func NewSquadRepository(db *sql.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

// GetByID retrieves a squad by its ID; nil when absent.
func (r *SquadRepository) GetByID(ctx context.Context, id int64) (*models.Squad, error) {
	squad, err := getOne(ctx, conn(ctx, r.db), "SELECT "+squadTable.columns+" FROM squads WHERE id = ?", id, scanSquad)
	if err != nil {
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}
	return squad, nil
}

// List retrieves a page of squads matching the filters.
func (r *SquadRepository) List(ctx context.Context, f secondary.SquadFilters, page secondary.Page) (*secondary.PagedResult[models.Squad], error) {
	var where filters
	where.contains("name", f.Name)
	return listPage(ctx, conn(ctx, r.db), squadTable, where, page, scanSquad)
}

// Create persists a new squad and sets its ID.
func (r *SquadRepository) Create(ctx context.Context, squad *models.Squad) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO squads (name, description) VALUES (?, ?)",
		squad.Name, nullString(squad.Description),
	)
	if err != nil {
		return fmt.Errorf("failed to create squad: %w", err)
	}
	squad.ID = id
	return nil
}

// Update replaces a squad's fields.
func (r *SquadRepository) Update(ctx context.Context, squad *models.Squad) error {
	err := execOne(ctx, conn(ctx, r.db), "squad", squad.ID,
		"UPDATE squads SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		squad.Name, nullString(squad.Description), squad.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update squad: %w", err)
	}
	return nil
}

// Delete removes a squad.
func (r *SquadRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "squad", id, "DELETE FROM squads WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete squad: %w", err)
	}
	return nil
}

// NameExists checks whether a squad already uses the name, ignoring case.
func (r *SquadRepository) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM squads WHERE lower(trim(name)) = lower(trim(?))", name)
	if err != nil {
		return false, fmt.Errorf("failed to check squad name: %w", err)
	}
	return found, nil
}

// HasMembers checks whether members belong to the squad.
func (r *SquadRepository) HasMembers(ctx context.Context, squadID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM members WHERE squad_id = ?", squadID)
	if err != nil {
		return false, fmt.Errorf("failed to check squad members: %w", err)
	}
	return found, nil
}

// HasApplications checks whether applications are assigned to the squad.
func (r *SquadRepository) HasApplications(ctx context.Context, squadID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM applications WHERE squad_id = ?", squadID)
	if err != nil {
		return false, fmt.Errorf("failed to check squad applications: %w", err)
	}
	return found, nil
}

// ============================================================================
// Members
// ============================================================================

var memberTable = table{
	name:    "members",
	columns: "id, name, email, role, squad_id",
	sortable: map[string]string{
		"name":  "name COLLATE NOCASE",
		"email": "email",
		"role":  "role",
	},
}

func scanMember(s scanner) (*models.Member, error) {
	var m models.Member
	if err := s.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.SquadID); err != nil {
		return nil, err
	}
	return &m, nil
}

// MemberRepository implements secondary.MemberRepository with SQLite.
type MemberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new SQLite member repository.
func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// GetByID retrieves a member by its ID; nil when absent.
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	m, err := getOne(ctx, conn(ctx, r.db), "SELECT "+memberTable.columns+" FROM members WHERE id = ?", id, scanMember)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

// List retrieves a page of members matching the filters.
func (r *MemberRepository) List(ctx context.Context, f secondary.MemberFilters, page secondary.Page) (*secondary.PagedResult[models.Member], error) {
	var where filters
	where.contains("name", f.Name)
	where.equals("squad_id", f.SquadID)
	if f.Role != "" {
		where.add("role = ?", f.Role)
	}
	return listPage(ctx, conn(ctx, r.db), memberTable, where, page, scanMember)
}

// Create persists a new member and sets its ID.
func (r *MemberRepository) Create(ctx context.Context, m *models.Member) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO members (name, email, role, squad_id) VALUES (?, ?, ?, ?)",
		m.Name, m.Email, m.Role, m.SquadID,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	m.ID = id
	return nil
}

// Update replaces a member's fields.
func (r *MemberRepository) Update(ctx context.Context, m *models.Member) error {
	err := execOne(ctx, conn(ctx, r.db), "member", m.ID,
		"UPDATE members SET name = ?, email = ?, role = ?, squad_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		m.Name, m.Email, m.Role, m.SquadID, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return nil
}

// Delete removes a member.
func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "member", id, "DELETE FROM members WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// EmailExists checks whether a member already uses the email, ignoring case.
func (r *MemberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM members WHERE lower(trim(email)) = lower(trim(?))", email)
	if err != nil {
		return false, fmt.Errorf("failed to check member email: %w", err)
	}
	return found, nil
}

// ListBySquad retrieves every member of a squad ordered by ID.
func (r *MemberRepository) ListBySquad(ctx context.Context, squadID int64) ([]*models.Member, error) {
	return r.query(ctx, "SELECT "+memberTable.columns+" FROM members WHERE squad_id = ? ORDER BY id", squadID)
}

// GetByIDs retrieves the members with the given IDs ordered by ID; unknown IDs are skipped.
func (r *MemberRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return r.query(ctx, "SELECT "+memberTable.columns+" FROM members WHERE id IN ("+placeholders(len(ids))+") ORDER BY id", args...)
}

func (r *MemberRepository) query(ctx context.Context, query string, args ...any) ([]*models.Member, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// Ensure the repositories implement their interfaces.
var (
	_ secondary.AreaRepository   = (*AreaRepository)(nil)
	_ secondary.SquadRepository  = (*SquadRepository)(nil)
	_ secondary.MemberRepository = (*MemberRepository)(nil)
)
