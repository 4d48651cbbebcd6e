package primary

import (
	"context"

	"github.com/example/portfolio/internal/ports/secondary"
)

// NotificationService defines the primary port for reading delivered notifications.
type NotificationService interface {
	// ListNotifications retrieves the most recent notifications, newest first.
	ListNotifications(ctx context.Context, limit int) ([]*secondary.NotificationRecord, error)
}

// AuditService defines the primary port for reading the audit trail.
type AuditService interface {
	// ListAudit retrieves audit entries matching the filters, newest first.
	ListAudit(ctx context.Context, filters secondary.AuditFilters) ([]*secondary.AuditRecord, error)
}
