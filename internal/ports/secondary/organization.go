package secondary

import (
	"context"

	"github.com/example/portfolio/internal/models"
)

// AreaFilters contains filter options for querying areas.
type AreaFilters struct {
	Name      string // substring match
	ManagerID int64
}

// AreaRepository defines the secondary port for area persistence.
type AreaRepository interface {
	Repository[models.Area, AreaFilters]

	// NameExists checks whether an area already uses the name.
	NameExists(ctx context.Context, name string) (bool, error)

	// HasApplications checks whether applications reference the area.
	HasApplications(ctx context.Context, areaID int64) (bool, error)
}

// SquadFilters contains filter options for querying squads.
type SquadFilters struct {
	Name string
}

// SquadRepository defines the secondary port for squad persistence.
type SquadRepository interface {
	Repository[models.Squad, SquadFilters]

	// NameExists checks whether a squad already uses the name.
	NameExists(ctx context.Context, name string) (bool, error)

	// HasMembers checks whether members belong to the squad.
	HasMembers(ctx context.Context, squadID int64) (bool, error)

	// HasApplications checks whether applications are assigned to the squad.
	HasApplications(ctx context.Context, squadID int64) (bool, error)
}

// MemberFilters contains filter options for querying members.
type MemberFilters struct {
	Name    string
	SquadID int64
	Role    models.Role
}

// MemberRepository defines the secondary port for member persistence.
type MemberRepository interface {
	Repository[models.Member, MemberFilters]

	// EmailExists checks whether a member already uses the email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// ListBySquad retrieves every member of a squad.
	ListBySquad(ctx context.Context, squadID int64) ([]*models.Member, error)

	// GetByIDs retrieves the members with the given IDs; unknown IDs are skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Member, error)
}
