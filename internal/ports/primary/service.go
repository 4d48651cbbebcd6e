// Package primary defines the primary ports (driving adapters) for the application.
// CLI commands and any other front end depend only on these interfaces.
package primary

import (
	"context"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// EntityService is the lifecycle surface every entity exposes.
// Create and Update return result.ErrNilArgument (and a nil Result) for a nil item;
// every other outcome, including "not found", is reported through the Result.
type EntityService[T any, F any] interface {
	// Create validates and persists a new record; its ID is set on success.
	Create(ctx context.Context, item *T) (*result.Result, error)

	// Update validates item against the stored record and replaces it.
	Update(ctx context.Context, item *T) (*result.Result, error)

	// Delete removes the record with the given ID.
	Delete(ctx context.Context, id int64) (*result.Result, error)

	// Get retrieves a record; nil when it does not exist.
	Get(ctx context.Context, id int64) (*T, error)

	// List retrieves one page of records matching the filters.
	List(ctx context.Context, filters F, page secondary.Page) (*secondary.PagedResult[T], error)
}

// AreaService defines the primary port for area operations.
type AreaService interface {
	EntityService[models.Area, secondary.AreaFilters]
}

// SquadService defines the primary port for squad operations.
type SquadService interface {
	EntityService[models.Squad, secondary.SquadFilters]
}

// MemberService defines the primary port for member operations.
type MemberService interface {
	EntityService[models.Member, secondary.MemberFilters]
}

// ApplicationService defines the primary port for application operations.
type ApplicationService interface {
	EntityService[models.Application, secondary.ApplicationFilters]
}

// DocumentService defines the primary port for document operations.
type DocumentService interface {
	EntityService[models.Document, secondary.DocumentFilters]
}

// KnowledgeService defines the primary port for knowledge associations.
// Delete requires a requester in the context (see ctxutil.WithRequester).
type KnowledgeService interface {
	EntityService[models.Knowledge, secondary.KnowledgeFilters]
}

// FeedbackService defines the primary port for feedback operations.
type FeedbackService interface {
	EntityService[models.Feedback, secondary.TrackedFilters]
}

// IncidentService defines the primary port for incident operations.
type IncidentService interface {
	EntityService[models.Incident, secondary.TrackedFilters]
}

// ImprovementService defines the primary port for improvement operations.
type ImprovementService interface {
	EntityService[models.Improvement, secondary.TrackedFilters]
}

// SupplierService defines the primary port for supplier operations.
type SupplierService interface {
	EntityService[models.Supplier, secondary.SupplierFilters]
}

// VehicleService defines the primary port for vehicle operations.
type VehicleService interface {
	EntityService[models.Vehicle, secondary.VehicleFilters]
}

// PartNumberService defines the primary port for part number operations.
type PartNumberService interface {
	EntityService[models.PartNumber, secondary.PartNumberFilters]
}
