package secondary

import (
	"context"
	"time"

	"github.com/example/portfolio/internal/models"
)

// LogWriter defines the interface for writing audit log entries.
// Implementations extract the requester from context.
type LogWriter interface {
	// LogCreate logs a create operation for an entity.
	LogCreate(ctx context.Context, kind models.Kind, id int64) error

	// LogUpdate logs an update operation for an entity.
	LogUpdate(ctx context.Context, kind models.Kind, id int64) error

	// LogDelete logs a delete operation for an entity.
	LogDelete(ctx context.Context, kind models.Kind, id int64) error
}

// AuditRecord represents an audit log entry as stored in persistence.
type AuditRecord struct {
	ID          int64
	RequesterID int64 // 0 when the call carried no requester
	Kind        models.Kind
	EntityID    int64
	Action      string // create, update, delete
	CreatedAt   time.Time
}

// AuditFilters contains filter options for querying the audit log.
type AuditFilters struct {
	Kind     models.Kind
	EntityID int64
	Limit    int
}

// AuditLogRepository defines the secondary port for audit log persistence.
type AuditLogRepository interface {
	LogWriter

	// List retrieves entries matching the filters, newest first.
	List(ctx context.Context, filters AuditFilters) ([]*AuditRecord, error)
}
