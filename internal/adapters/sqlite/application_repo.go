package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// ============================================================================
// Applications
// ============================================================================

var applicationTable = table{
	name:     "applications",
	columns:  "id, name, description, area_id, squad_id, external",
	sortable: map[string]string{"name": "name COLLATE NOCASE"},
}

func scanApplication(s scanner) (*models.Application, error) {
	var (
		app     models.Application
		desc    sql.NullString
		squadID sql.NullInt64
	)
	if err := s.Scan(&app.ID, &app.Name, &desc, &app.AreaID, &squadID, &app.External); err != nil {
		return nil, err
	}
	app.Description = desc.String
	app.SquadID = squadID.Int64
	return &app, nil
}

// ApplicationRepository implements secondary.ApplicationRepository with SQLite.
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new SQLite application repository.
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// GetByID retrieves an application by its ID; nil when absent.
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app, err := getOne(ctx, conn(ctx, r.db), "SELECT "+applicationTable.columns+" FROM applications WHERE id = ?", id, scanApplication)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// List retrieves a page of applications matching the filters.
func (r *ApplicationRepository) List(ctx context.Context, f secondary.ApplicationFilters, page secondary.Page) (*secondary.PagedResult[models.Application], error) {
	var where filters
	where.contains("name", f.Name)
	where.equals("area_id", f.AreaID)
	where.equals("squad_id", f.SquadID)
	return listPage(ctx, conn(ctx, r.db), applicationTable, where, page, scanApplication)
}

// Create persists a new application and sets its ID.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO applications (name, description, area_id, squad_id, external) VALUES (?, ?, ?, ?, ?)",
		app.Name, nullString(app.Description), app.AreaID, nullInt(app.SquadID), app.External,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	app.ID = id
	return nil
}

// Update replaces an application's fields.
func (r *ApplicationRepository) Update(ctx context.Context, app *models.Application) error {
	err := execOne(ctx, conn(ctx, r.db), "application", app.ID,
		`UPDATE applications SET name = ?, description = ?, area_id = ?, squad_id = ?, external = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		app.Name, nullString(app.Description), app.AreaID, nullInt(app.SquadID), app.External, app.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// Delete removes an application.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "application", id, "DELETE FROM applications WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}

// NameExists checks whether an application already uses the name, ignoring case.
func (r *ApplicationRepository) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM applications WHERE lower(trim(name)) = lower(trim(?))", name)
	if err != nil {
		return false, fmt.Errorf("failed to check application name: %w", err)
	}
	return found, nil
}

// HasDependents checks whether documents, knowledge or lifecycle records reference the application.
func (r *ApplicationRepository) HasDependents(ctx context.Context, applicationID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), `
		SELECT 1 FROM documents WHERE application_id = ?
		UNION ALL SELECT 1 FROM knowledge WHERE application_id = ?
		UNION ALL SELECT 1 FROM feedbacks WHERE application_id = ?
		UNION ALL SELECT 1 FROM incidents WHERE application_id = ?
		UNION ALL SELECT 1 FROM improvements WHERE application_id = ?`,
		applicationID, applicationID, applicationID, applicationID, applicationID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check application dependents: %w", err)
	}
	return found, nil
}

// ============================================================================
// Documents
// ============================================================================

var documentTable = table{
	name:     "documents",
	columns:  "id, application_id, name, url",
	sortable: map[string]string{"name": "name COLLATE NOCASE", "url": "url"},
}

func scanDocument(s scanner) (*models.Document, error) {
	var d models.Document
	if err := s.Scan(&d.ID, &d.ApplicationID, &d.Name, &d.URL); err != nil {
		return nil, err
	}
	return &d, nil
}

// DocumentRepository implements secondary.DocumentRepository with SQLite.
type DocumentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new SQLite document repository.
func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// GetByID retrieves a document by its ID; nil when absent.
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	d, err := getOne(ctx, conn(ctx, r.db), "SELECT "+documentTable.columns+" FROM documents WHERE id = ?", id, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return d, nil
}

// List retrieves a page of documents matching the filters.
func (r *DocumentRepository) List(ctx context.Context, f secondary.DocumentFilters, page secondary.Page) (*secondary.PagedResult[models.Document], error) {
	var where filters
	where.equals("application_id", f.ApplicationID)
	where.contains("name", f.Name)
	return listPage(ctx, conn(ctx, r.db), documentTable, where, page, scanDocument)
}

// Create persists a new document and sets its ID.
func (r *DocumentRepository) Create(ctx context.Context, d *models.Document) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO documents (application_id, name, url) VALUES (?, ?, ?)",
		d.ApplicationID, d.Name, d.URL,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	d.ID = id
	return nil
}

// Update replaces a document's fields.
func (r *DocumentRepository) Update(ctx context.Context, d *models.Document) error {
	err := execOne(ctx, conn(ctx, r.db), "document", d.ID,
		"UPDATE documents SET application_id = ?, name = ?, url = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		d.ApplicationID, d.Name, d.URL, d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

// Delete removes a document.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "document", id, "DELETE FROM documents WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// NameExists checks whether the application already has a document with the name.
func (r *DocumentRepository) NameExists(ctx context.Context, name string, applicationID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db),
		"SELECT 1 FROM documents WHERE application_id = ? AND lower(trim(name)) = lower(trim(?))",
		applicationID, name,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check document name: %w", err)
	}
	return found, nil
}

// URLExists checks whether the application already has a document with the url.
func (r *DocumentRepository) URLExists(ctx context.Context, url string, applicationID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db),
		"SELECT 1 FROM documents WHERE application_id = ? AND lower(trim(url)) = lower(trim(?))",
		applicationID, url,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check document url: %w", err)
	}
	return found, nil
}

// ============================================================================
// Knowledge
// ============================================================================

var knowledgeTable = table{
	name:    "knowledge",
	columns: "id, member_id, application_id, squad_id_at_association, status, created_at",
	sortable: map[string]string{
		"created_at": "created_at",
		"status":     "status",
	},
}

func scanKnowledge(s scanner) (*models.Knowledge, error) {
	var k models.Knowledge
	if err := s.Scan(&k.ID, &k.MemberID, &k.ApplicationID, &k.SquadIDAtAssociation, &k.Status, &k.CreatedAt); err != nil {
		return nil, err
	}
	return &k, nil
}

// KnowledgeRepository implements secondary.KnowledgeRepository with SQLite.
type KnowledgeRepository struct {
	db *sql.DB
}

// NewKnowledgeRepository creates a new SQLite knowledge repository.
func NewKnowledgeRepository(db *sql.DB) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

// GetByID retrieves an association by its ID; nil when absent.
func (r *KnowledgeRepository) GetByID(ctx context.Context, id int64) (*models.Knowledge, error) {
	k, err := getOne(ctx, conn(ctx, r.db), "SELECT "+knowledgeTable.columns+" FROM knowledge WHERE id = ?", id, scanKnowledge)
	if err != nil {
		return nil, fmt.Errorf("failed to get knowledge: %w", err)
	}
	return k, nil
}

// List retrieves a page of associations matching the filters.
func (r *KnowledgeRepository) List(ctx context.Context, f secondary.KnowledgeFilters, page secondary.Page) (*secondary.PagedResult[models.Knowledge], error) {
	var where filters
	where.equals("member_id", f.MemberID)
	where.equals("application_id", f.ApplicationID)
	if f.Status != "" {
		where.add("status = ?", f.Status)
	}
	return listPage(ctx, conn(ctx, r.db), knowledgeTable, where, page, scanKnowledge)
}

// Create persists a new association and sets its ID.
// Status and CreatedAt must be populated by the service layer.
func (r *KnowledgeRepository) Create(ctx context.Context, k *models.Knowledge) error {
	if k.Status == "" {
		return fmt.Errorf("knowledge Status must be pre-populated by service layer")
	}
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO knowledge (member_id, application_id, squad_id_at_association, status, created_at) VALUES (?, ?, ?, ?, ?)",
		k.MemberID, k.ApplicationID, k.SquadIDAtAssociation, k.Status, k.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create knowledge: %w", err)
	}
	k.ID = id
	return nil
}

// Update replaces an association's target, snapshot and status.
func (r *KnowledgeRepository) Update(ctx context.Context, k *models.Knowledge) error {
	err := execOne(ctx, conn(ctx, r.db), "knowledge", k.ID,
		"UPDATE knowledge SET application_id = ?, squad_id_at_association = ?, status = ? WHERE id = ?",
		k.ApplicationID, k.SquadIDAtAssociation, k.Status, k.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update knowledge: %w", err)
	}
	return nil
}

// Delete removes an association.
func (r *KnowledgeRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "knowledge", id, "DELETE FROM knowledge WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete knowledge: %w", err)
	}
	return nil
}

// AssociationExists checks for a current association between member and application.
func (r *KnowledgeRepository) AssociationExists(ctx context.Context, memberID, applicationID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db),
		"SELECT 1 FROM knowledge WHERE member_id = ? AND application_id = ? AND status = ?",
		memberID, applicationID, models.KnowledgeCurrent,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check knowledge association: %w", err)
	}
	return found, nil
}

// ListCurrentByMember retrieves the member's current associations ordered by ID.
func (r *KnowledgeRepository) ListCurrentByMember(ctx context.Context, memberID int64) ([]*models.Knowledge, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx,
		"SELECT "+knowledgeTable.columns+" FROM knowledge WHERE member_id = ? AND status = ? ORDER BY id",
		memberID, models.KnowledgeCurrent,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list member knowledge: %w", err)
	}
	defer rows.Close()

	var out []*models.Knowledge
	for rows.Next() {
		k, err := scanKnowledge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan knowledge: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// Ensure the repositories implement their interfaces.
var (
	_ secondary.ApplicationRepository = (*ApplicationRepository)(nil)
	_ secondary.DocumentRepository    = (*DocumentRepository)(nil)
	_ secondary.KnowledgeRepository   = (*KnowledgeRepository)(nil)
)
