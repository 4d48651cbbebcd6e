package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/portfolio/internal/ports/secondary"
)

// NotificationRepository implements secondary.NotificationRepository with SQLite.
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new SQLite notification outbox.
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create persists a notification. ID and CreatedAt must be set by the caller.
func (r *NotificationRepository) Create(ctx context.Context, n *secondary.NotificationRecord) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		"INSERT INTO notifications (id, event, kind, entity_id, member_id, message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		n.ID, n.Event, n.Kind, nullInt(n.EntityID), nullInt(n.MemberID), nullString(n.Message), n.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// List retrieves the most recent notifications, newest first.
func (r *NotificationRepository) List(ctx context.Context, limit int) ([]*secondary.NotificationRecord, error) {
	query := "SELECT id, event, kind, entity_id, member_id, message, created_at FROM notifications ORDER BY created_at DESC, rowid DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var records []*secondary.NotificationRecord
	for rows.Next() {
		var (
			n        secondary.NotificationRecord
			entityID sql.NullInt64
			memberID sql.NullInt64
			message  sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.Event, &n.Kind, &entityID, &memberID, &message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.EntityID = entityID.Int64
		n.MemberID = memberID.Int64
		n.Message = message.String
		records = append(records, &n)
	}
	return records, rows.Err()
}

var _ secondary.NotificationRepository = (*NotificationRepository)(nil)
