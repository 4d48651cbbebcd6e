// Package notify contains secondary.Notifier implementations.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// Event names stored with each notification.
const (
	EventCreated       = "created"
	EventStatusChanged = "status_changed"
	EventMemberMessage = "member_message"
)

// LogNotifier writes every event to a structured logger.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that logs at info level.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.With("component", "notifier")}
}

// NotifyCreated announces a newly created record.
func (n *LogNotifier) NotifyCreated(ctx context.Context, kind models.Kind, id int64) error {
	n.log.InfoContext(ctx, "entity created", "event", EventCreated, "kind", string(kind), "id", id)
	return nil
}

// NotifyStatusChanged announces a lifecycle status change.
func (n *LogNotifier) NotifyStatusChanged(ctx context.Context, kind models.Kind, id int64, status string) error {
	n.log.InfoContext(ctx, "status changed", "event", EventStatusChanged, "kind", string(kind), "id", id, "status", status)
	return nil
}

// NotifyMembers sends message to each member.
func (n *LogNotifier) NotifyMembers(ctx context.Context, members []*models.Member, message string) error {
	for _, m := range members {
		n.log.InfoContext(ctx, "member notified", "event", EventMemberMessage, "member", m.ID, "email", m.Email, "message", message)
	}
	return nil
}

// Outbox stores events in the notification repository for later delivery.
// Each event gets a time-ordered UUID so the outbox sorts by id as well as by time.
type Outbox struct {
	repo secondary.NotificationRepository
	now  func() time.Time
}

// NewOutbox creates a notifier backed by repo.
func NewOutbox(repo secondary.NotificationRepository) *Outbox {
	return &Outbox{repo: repo, now: time.Now}
}

// NotifyCreated records a created event.
func (o *Outbox) NotifyCreated(ctx context.Context, kind models.Kind, id int64) error {
	return o.store(ctx, &secondary.NotificationRecord{Event: EventCreated, Kind: kind, EntityID: id})
}

// NotifyStatusChanged records a status change; the new status is the message.
func (o *Outbox) NotifyStatusChanged(ctx context.Context, kind models.Kind, id int64, status string) error {
	return o.store(ctx, &secondary.NotificationRecord{Event: EventStatusChanged, Kind: kind, EntityID: id, Message: status})
}

// NotifyMembers records one message per member. It stops at the first failure.
func (o *Outbox) NotifyMembers(ctx context.Context, members []*models.Member, message string) error {
	for _, m := range members {
		err := o.store(ctx, &secondary.NotificationRecord{
			Event:    EventMemberMessage,
			Kind:     models.KindMember,
			MemberID: m.ID,
			Message:  message,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Outbox) store(ctx context.Context, rec *secondary.NotificationRecord) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate notification id: %w", err)
	}
	rec.ID = id.String()
	rec.CreatedAt = o.now().UTC()
	if err := o.repo.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to store %s notification: %w", rec.Event, err)
	}
	return nil
}

// Ensure both notifiers implement the interface.
var (
	_ secondary.Notifier = (*LogNotifier)(nil)
	_ secondary.Notifier = (*Outbox)(nil)
)
