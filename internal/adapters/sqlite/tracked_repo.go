package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// trackedRecord constrains P to a pointer to a record embedding models.Tracked.
type trackedRecord[T any] interface {
	*T
	models.Entity
	Base() *models.Tracked
}

// trackedRepository stores one lifecycle record type and its member join table.
type trackedRepository[T any, P trackedRecord[T]] struct {
	db          *sql.DB
	what        string
	table       table
	memberTable string
	foreignKey  string
}

func newTrackedRepository[T any, P trackedRecord[T]](db *sql.DB, what, tableName, memberTable, foreignKey string) *trackedRepository[T, P] {
	return &trackedRepository[T, P]{
		db:   db,
		what: what,
		table: table{
			name:    tableName,
			columns: "id, title, description, application_id, status, created_at, closed_at",
			sortable: map[string]string{
				"title":      "title COLLATE NOCASE",
				"status":     "status",
				"created_at": "created_at",
			},
		},
		memberTable: memberTable,
		foreignKey:  foreignKey,
	}
}

func (r *trackedRepository[T, P]) scan(s scanner) (*T, error) {
	var (
		item     T
		closedAt sql.NullTime
	)
	base := P(&item).Base()
	if err := s.Scan(&base.ID, &base.Title, &base.Description, &base.ApplicationID, &base.Status, &base.CreatedAt, &closedAt); err != nil {
		return nil, err
	}
	if closedAt.Valid {
		t := closedAt.Time
		base.ClosedAt = &t
	}
	return &item, nil
}

// GetByID retrieves a record and its members; nil when absent.
func (r *trackedRepository[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	q := conn(ctx, r.db)
	item, err := getOne(ctx, q, "SELECT "+r.table.columns+" FROM "+r.table.name+" WHERE id = ?", id, r.scan)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.what, err)
	}
	if item == nil {
		return nil, nil
	}
	if err := r.loadMembers(ctx, q, P(item).Base()); err != nil {
		return nil, err
	}
	return item, nil
}

// List retrieves a page of records matching the filters.
func (r *trackedRepository[T, P]) List(ctx context.Context, f secondary.TrackedFilters, page secondary.Page) (*secondary.PagedResult[T], error) {
	var where filters
	where.equals("application_id", f.ApplicationID)
	where.contains("title", f.Title)
	if f.Status != "" {
		where.add("status = ?", f.Status)
	}
	if f.MemberID > 0 {
		where.add("EXISTS (SELECT 1 FROM "+r.memberTable+" m WHERE m."+r.foreignKey+" = "+r.table.name+".id AND m.member_id = ?)", f.MemberID)
	}

	q := conn(ctx, r.db)
	result, err := listPage(ctx, q, r.table, where, page, r.scan)
	if err != nil {
		return nil, err
	}
	for _, item := range result.Items {
		if err := r.loadMembers(ctx, q, P(item).Base()); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Create persists a new record with its members and sets its ID.
// Status and CreatedAt must be populated by the service layer.
func (r *trackedRepository[T, P]) Create(ctx context.Context, item *T) error {
	base := P(item).Base()
	if base.Status == "" {
		return fmt.Errorf("%s Status must be pre-populated by service layer", r.what)
	}

	q := conn(ctx, r.db)
	id, err := insert(ctx, q,
		"INSERT INTO "+r.table.name+" (title, description, application_id, status, created_at, closed_at) VALUES (?, ?, ?, ?, ?, ?)",
		base.Title, base.Description, base.ApplicationID, base.Status, base.CreatedAt.UTC(), nullTime(base.ClosedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.what, err)
	}
	base.ID = id
	return r.saveMembers(ctx, q, base)
}

// Update replaces a record's fields and its member set.
func (r *trackedRepository[T, P]) Update(ctx context.Context, item *T) error {
	base := P(item).Base()
	q := conn(ctx, r.db)
	err := execOne(ctx, q, r.what, base.ID,
		"UPDATE "+r.table.name+" SET title = ?, description = ?, application_id = ?, status = ?, closed_at = ? WHERE id = ?",
		base.Title, base.Description, base.ApplicationID, base.Status, nullTime(base.ClosedAt), base.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.what, err)
	}
	if _, err := q.ExecContext(ctx, "DELETE FROM "+r.memberTable+" WHERE "+r.foreignKey+" = ?", base.ID); err != nil {
		return fmt.Errorf("failed to clear %s members: %w", r.what, err)
	}
	return r.saveMembers(ctx, q, base)
}

// Delete removes a record; its member rows cascade.
func (r *trackedRepository[T, P]) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), r.what, id, "DELETE FROM "+r.table.name+" WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.what, err)
	}
	return nil
}

func (r *trackedRepository[T, P]) saveMembers(ctx context.Context, q querier, base *models.Tracked) error {
	for _, memberID := range base.MemberIDs {
		_, err := q.ExecContext(ctx,
			"INSERT OR IGNORE INTO "+r.memberTable+" ("+r.foreignKey+", member_id) VALUES (?, ?)",
			base.ID, memberID,
		)
		if err != nil {
			return fmt.Errorf("failed to add %s member %d: %w", r.what, memberID, err)
		}
	}
	return nil
}

func (r *trackedRepository[T, P]) loadMembers(ctx context.Context, q querier, base *models.Tracked) error {
	rows, err := q.QueryContext(ctx,
		"SELECT member_id FROM "+r.memberTable+" WHERE "+r.foreignKey+" = ? ORDER BY member_id",
		base.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load %s members: %w", r.what, err)
	}
	defer rows.Close()

	base.MemberIDs = nil
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan %s member: %w", r.what, err)
		}
		base.MemberIDs = append(base.MemberIDs, id)
	}
	return rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// FeedbackRepository implements secondary.FeedbackRepository with SQLite.
type FeedbackRepository struct {
	*trackedRepository[models.Feedback, *models.Feedback]
}

// NewFeedbackRepository creates a new SQLite feedback repository.
func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{newTrackedRepository[models.Feedback, *models.Feedback](db, "feedback", "feedbacks", "feedback_members", "feedback_id")}
}

// IncidentRepository implements secondary.IncidentRepository with SQLite.
type IncidentRepository struct {
	*trackedRepository[models.Incident, *models.Incident]
}

// NewIncidentRepository creates a new SQLite incident repository.
func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{newTrackedRepository[models.Incident, *models.Incident](db, "incident", "incidents", "incident_members", "incident_id")}
}

// ImprovementRepository implements secondary.ImprovementRepository with SQLite.
type ImprovementRepository struct {
	*trackedRepository[models.Improvement, *models.Improvement]
}

// NewImprovementRepository creates a new SQLite improvement repository.
func NewImprovementRepository(db *sql.DB) *ImprovementRepository {
	return &ImprovementRepository{newTrackedRepository[models.Improvement, *models.Improvement](db, "improvement", "improvements", "improvement_members", "improvement_id")}
}

// Ensure the repositories implement their interfaces.
var (
	_ secondary.FeedbackRepository    = (*FeedbackRepository)(nil)
	_ secondary.IncidentRepository    = (*IncidentRepository)(nil)
	_ secondary.ImprovementRepository = (*ImprovementRepository)(nil)
)
