package app

import (
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// FeedbackServiceImpl implements the FeedbackService interface.
// It announces new feedback and tells each member dropped from a feedback.
type FeedbackServiceImpl struct {
	*trackedCoordinator[models.Feedback, *models.Feedback]
}

// NewFeedbackService creates a new FeedbackService with injected dependencies.
func NewFeedbackService(
	feedbackRepo secondary.FeedbackRepository,
	appRepo secondary.ApplicationRepository,
	memberRepo secondary.MemberRepository,
	notifier secondary.Notifier,
	deps EngineDeps,
) *FeedbackServiceImpl {
	events := trackedEvents{created: true, removedMember: i18n.RemovedFromFeedback}
	return &FeedbackServiceImpl{
		newTrackedCoordinator[models.Feedback, *models.Feedback](models.KindFeedback, i18n.EntityFeedback, feedbackRepo, appRepo, memberRepo, notifier, events, deps),
	}
}

// IncidentServiceImpl implements the IncidentService interface.
type IncidentServiceImpl struct {
	*trackedCoordinator[models.Incident, *models.Incident]
}

// NewIncidentService creates a new IncidentService with injected dependencies.
func NewIncidentService(
	incidentRepo secondary.IncidentRepository,
	appRepo secondary.ApplicationRepository,
	memberRepo secondary.MemberRepository,
	notifier secondary.Notifier,
	deps EngineDeps,
) *IncidentServiceImpl {
	events := trackedEvents{created: true, statusChanged: true, removedMember: i18n.RemovedFromIncident}
	return &IncidentServiceImpl{
		newTrackedCoordinator[models.Incident, *models.Incident](models.KindIncident, i18n.EntityIncident, incidentRepo, appRepo, memberRepo, notifier, events, deps),
	}
}

// ImprovementServiceImpl implements the ImprovementService interface.
// Only status changes are announced.
type ImprovementServiceImpl struct {
	*trackedCoordinator[models.Improvement, *models.Improvement]
}

// NewImprovementService creates a new ImprovementService with injected dependencies.
func NewImprovementService(
	improvementRepo secondary.ImprovementRepository,
	appRepo secondary.ApplicationRepository,
	memberRepo secondary.MemberRepository,
	notifier secondary.Notifier,
	deps EngineDeps,
) *ImprovementServiceImpl {
	events := trackedEvents{statusChanged: true}
	return &ImprovementServiceImpl{
		newTrackedCoordinator[models.Improvement, *models.Improvement](models.KindImprovement, i18n.EntityImprovement, improvementRepo, appRepo, memberRepo, notifier, events, deps),
	}
}

// Ensure the lifecycle services implement their interfaces.
var (
	_ primary.FeedbackService    = (*FeedbackServiceImpl)(nil)
	_ primary.IncidentService    = (*IncidentServiceImpl)(nil)
	_ primary.ImprovementService = (*ImprovementServiceImpl)(nil)
)
