package secondary

import (
	"context"

	"github.com/example/portfolio/internal/models"
)

// ApplicationFilters contains filter options for querying applications.
type ApplicationFilters struct {
	Name    string
	AreaID  int64
	SquadID int64
}

// ApplicationRepository defines the secondary port for application persistence.
type ApplicationRepository interface {
	Repository[models.Application, ApplicationFilters]

	// NameExists checks whether an application already uses the name.
	NameExists(ctx context.Context, name string) (bool, error)

	// HasDependents checks whether documents, knowledge or lifecycle records reference the application.
	HasDependents(ctx context.Context, applicationID int64) (bool, error)
}

// DocumentFilters contains filter options for querying documents.
type DocumentFilters struct {
	ApplicationID int64
	Name          string
}

// DocumentRepository defines the secondary port for document persistence.
type DocumentRepository interface {
	Repository[models.Document, DocumentFilters]

	// NameExists checks whether the application already has a document with the name.
	NameExists(ctx context.Context, name string, applicationID int64) (bool, error)

	// URLExists checks whether the application already has a document with the url.
	URLExists(ctx context.Context, url string, applicationID int64) (bool, error)
}

// KnowledgeFilters contains filter options for querying knowledge associations.
type KnowledgeFilters struct {
	MemberID      int64
	ApplicationID int64
	Status        models.KnowledgeStatus
}

// KnowledgeRepository defines the secondary port for knowledge persistence.
type KnowledgeRepository interface {
	Repository[models.Knowledge, KnowledgeFilters]

	// AssociationExists checks for a current association between member and application.
	AssociationExists(ctx context.Context, memberID, applicationID int64) (bool, error)

	// ListCurrentByMember retrieves the member's current associations.
	ListCurrentByMember(ctx context.Context, memberID int64) ([]*models.Knowledge, error)
}

// TrackedFilters contains filter options for feedback, incidents and improvements.
type TrackedFilters struct {
	ApplicationID int64
	MemberID      int64
	Status        models.TrackedStatus
	Title         string
}

// FeedbackRepository defines the secondary port for feedback persistence.
type FeedbackRepository interface {
	Repository[models.Feedback, TrackedFilters]
}

// IncidentRepository defines the secondary port for incident persistence.
type IncidentRepository interface {
	Repository[models.Incident, TrackedFilters]
}

// ImprovementRepository defines the secondary port for improvement persistence.
type ImprovementRepository interface {
	Repository[models.Improvement, TrackedFilters]
}
