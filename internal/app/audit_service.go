package app

import (
	"context"
	"fmt"

	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// defaultFeedLimit caps notification and audit listings when the caller passes no limit.
const defaultFeedLimit = 50

// AuditServiceImpl implements the AuditService interface.
type AuditServiceImpl struct {
	auditRepo secondary.AuditLogRepository
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(auditRepo secondary.AuditLogRepository) *AuditServiceImpl {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// ListAudit retrieves audit entries matching the filters, newest first.
func (s *AuditServiceImpl) ListAudit(ctx context.Context, filters secondary.AuditFilters) ([]*secondary.AuditRecord, error) {
	if filters.Limit <= 0 {
		filters.Limit = defaultFeedLimit
	}
	entries, err := s.auditRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	notificationRepo secondary.NotificationRepository
}

// NewNotificationService creates a new NotificationService with injected dependencies.
func NewNotificationService(notificationRepo secondary.NotificationRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

// ListNotifications retrieves the most recent notifications, newest first.
func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, limit int) ([]*secondary.NotificationRecord, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	records, err := s.notificationRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return records, nil
}

// Ensure the read services implement their interfaces.
var (
	_ primary.AuditService        = (*AuditServiceImpl)(nil)
	_ primary.NotificationService = (*NotificationServiceImpl)(nil)
)
