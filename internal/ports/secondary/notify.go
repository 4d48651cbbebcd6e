package secondary

import (
	"context"
	"time"

	"github.com/example/portfolio/internal/models"
)

// Notifier delivers domain events. Callers treat delivery as best-effort:
// a failed notification never undoes a persisted change.
type Notifier interface {
	// NotifyCreated announces a newly created record.
	NotifyCreated(ctx context.Context, kind models.Kind, id int64) error

	// NotifyStatusChanged announces a lifecycle status change.
	NotifyStatusChanged(ctx context.Context, kind models.Kind, id int64, status string) error

	// NotifyMembers sends message to each member.
	NotifyMembers(ctx context.Context, members []*models.Member, message string) error
}

// NotificationRecord represents a notification stored in the outbox.
type NotificationRecord struct {
	ID        string // uuid
	Event     string // created, status_changed, member_message
	Kind      models.Kind
	EntityID  int64 // 0 for member messages
	MemberID  int64 // 0 for entity events
	Message   string
	CreatedAt time.Time
}

// NotificationRepository defines the secondary port for the notification outbox.
type NotificationRepository interface {
	// Create persists a notification.
	Create(ctx context.Context, record *NotificationRecord) error

	// List retrieves the most recent notifications, newest first.
	List(ctx context.Context, limit int) ([]*NotificationRecord, error)
}
