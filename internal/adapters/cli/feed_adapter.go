package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// FeedAdapter prints the audit trail and the notification outbox.
type FeedAdapter struct {
	audit         primary.AuditService
	notifications primary.NotificationService
	out           io.Writer
}

// NewFeedAdapter creates a new FeedAdapter.
func NewFeedAdapter(audit primary.AuditService, notifications primary.NotificationService, out io.Writer) *FeedAdapter {
	return &FeedAdapter{audit: audit, notifications: notifications, out: out}
}

// Audit lists audit entries, newest first.
func (a *FeedAdapter) Audit(ctx context.Context, filters secondary.AuditFilters) error {
	entries, err := a.audit.ListAudit(ctx, filters)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No audit entries found")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		requester := id(e.RequesterID)
		if requester == "" {
			requester = "-"
		}
		rows = append(rows, []string{e.CreatedAt.Local().Format(timeLayout), string(e.Kind), id(e.EntityID), e.Action, requester})
	}
	printTable(a.out, []string{"WHEN", "KIND", "ID", "ACTION", "BY"}, rows)
	fmt.Fprintln(a.out)
	return nil
}

// Notifications lists stored notifications, newest first.
func (a *FeedAdapter) Notifications(ctx context.Context, limit int) error {
	records, err := a.notifications.ListNotifications(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No notifications found")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, n := range records {
		target := fmt.Sprintf("%s %d", n.Kind, n.EntityID)
		if n.MemberID != 0 {
			target = fmt.Sprintf("member %d", n.MemberID)
		}
		rows = append(rows, []string{n.CreatedAt.Local().Format(timeLayout), n.Event, target, n.Message})
	}
	printTable(a.out, []string{"WHEN", "EVENT", "TARGET", "MESSAGE"}, rows)
	fmt.Fprintln(a.out)
	return nil
}
