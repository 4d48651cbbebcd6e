package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

type mockFeeds struct {
	audit         []*secondary.AuditRecord
	notifications []*secondary.NotificationRecord
	err           error
	lastFilters   secondary.AuditFilters
}

func (m *mockFeeds) ListAudit(_ context.Context, f secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	m.lastFilters = f
	return m.audit, m.err
}

func (m *mockFeeds) ListNotifications(_ context.Context, _ int) ([]*secondary.NotificationRecord, error) {
	return m.notifications, m.err
}

func TestFeedAdapter_Audit(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	feeds := &mockFeeds{audit: []*secondary.AuditRecord{
		{ID: 2, Kind: models.KindArea, EntityID: 1, Action: "update", CreatedAt: at},
		{ID: 1, RequesterID: 7, Kind: models.KindArea, EntityID: 1, Action: "create", CreatedAt: at},
	}}
	var out bytes.Buffer
	adapter := NewFeedAdapter(feeds, feeds, &out)

	if err := adapter.Audit(context.Background(), secondary.AuditFilters{Kind: models.KindArea}); err != nil {
		t.Fatalf("Audit() error = %v", err)
	}
	if feeds.lastFilters.Kind != models.KindArea {
		t.Errorf("filters = %+v", feeds.lastFilters)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasSuffix(lines[2], "area  1   update  -") {
		t.Errorf("anonymous row = %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "create  7") {
		t.Errorf("requester row = %q", lines[3])
	}
}

func TestFeedAdapter_Notifications(t *testing.T) {
	feeds := &mockFeeds{notifications: []*secondary.NotificationRecord{
		{ID: "b", Event: "member_message", Kind: models.KindMember, MemberID: 2, Message: "You were removed", CreatedAt: time.Now()},
		{ID: "a", Event: "created", Kind: models.KindFeedback, EntityID: 4, CreatedAt: time.Now()},
	}}
	var out bytes.Buffer
	adapter := NewFeedAdapter(feeds, feeds, &out)

	if err := adapter.Notifications(context.Background(), 10); err != nil {
		t.Fatalf("Notifications() error = %v", err)
	}
	for _, want := range []string{"member 2", "You were removed", "feedback 4"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestFeedAdapter_Empty(t *testing.T) {
	var out bytes.Buffer
	adapter := NewFeedAdapter(&mockFeeds{}, &mockFeeds{}, &out)

	if err := adapter.Notifications(context.Background(), 0); err != nil {
		t.Fatalf("Notifications() error = %v", err)
	}
	if out.String() != "No notifications found\n" {
		t.Errorf("output = %q", out.String())
	}

	boom := errors.New("boom")
	if err := NewFeedAdapter(&mockFeeds{err: boom}, nil, &out).Audit(context.Background(), secondary.AuditFilters{}); !errors.Is(err, boom) {
		t.Errorf("Audit() error = %v, want boom", err)
	}
}
