package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/portfolio/internal/ctxutil"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// AuditLogRepository implements secondary.AuditLogRepository with SQLite.
// Entries are written through conn so they commit or roll back with the change they record.
type AuditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new SQLite audit log repository.
func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// LogCreate logs a create operation for an entity.
func (r *AuditLogRepository) LogCreate(ctx context.Context, kind models.Kind, id int64) error {
	return r.write(ctx, kind, id, "create")
}

// LogUpdate logs an update operation for an entity.
func (r *AuditLogRepository) LogUpdate(ctx context.Context, kind models.Kind, id int64) error {
	return r.write(ctx, kind, id, "update")
}

// LogDelete logs a delete operation for an entity.
func (r *AuditLogRepository) LogDelete(ctx context.Context, kind models.Kind, id int64) error {
	return r.write(ctx, kind, id, "delete")
}

func (r *AuditLogRepository) write(ctx context.Context, kind models.Kind, id int64, action string) error {
	requesterID, _ := ctxutil.RequesterFromContext(ctx)
	_, err := conn(ctx, r.db).ExecContext(ctx,
		"INSERT INTO audit_log (requester_id, kind, entity_id, action) VALUES (?, ?, ?, ?)",
		nullInt(requesterID), kind, id, action,
	)
	if err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// List retrieves entries matching the filters, newest first.
func (r *AuditLogRepository) List(ctx context.Context, f secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	var where filters
	if f.Kind != "" {
		where.add("kind = ?", f.Kind)
	}
	where.equals("entity_id", f.EntityID)

	query := "SELECT id, requester_id, kind, entity_id, action, created_at FROM audit_log" + where.where() + " ORDER BY id DESC"
	args := where.args
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	defer rows.Close()

	var records []*secondary.AuditRecord
	for rows.Next() {
		var (
			rec         secondary.AuditRecord
			requesterID sql.NullInt64
			createdAt   sql.NullTime
		)
		if err := rows.Scan(&rec.ID, &requesterID, &rec.Kind, &rec.EntityID, &rec.Action, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		rec.RequesterID = requesterID.Int64
		rec.CreatedAt = createdAt.Time
		records = append(records, &rec)
	}
	return records, rows.Err()
}

var _ secondary.AuditLogRepository = (*AuditLogRepository)(nil)
