package app

import (
	"context"
	"strings"

	"github.com/example/portfolio/internal/core/result"
	"github.com/example/portfolio/internal/core/validation"
	"github.com/example/portfolio/internal/i18n"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// SquadServiceImpl implements the SquadService interface.
type SquadServiceImpl struct {
	engine    *Engine[models.Squad, *models.Squad, secondary.SquadFilters]
	squadRepo secondary.SquadRepository
}

// NewSquadService creates a new SquadService with injected dependencies.
func NewSquadService(squadRepo secondary.SquadRepository, deps EngineDeps) *SquadServiceImpl {
	return &SquadServiceImpl{
		engine:    NewEngine[models.Squad, *models.Squad](models.KindSquad, i18n.EntitySquad, squadRepo, deps),
		squadRepo: squadRepo,
	}
}

// Create validates and registers a new squad.
func (s *SquadServiceImpl) Create(ctx context.Context, squad *models.Squad) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if squad == nil {
			return nil, result.NilArgument("squad")
		}
		squad.Name = strings.TrimSpace(squad.Name)
		if res := s.engine.Invalid(ctx, validation.Squad(squad)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, squad, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.uniqueName(squad, false))
		})
	})
}

// Update validates squad against the stored record and saves it.
func (s *SquadServiceImpl) Update(ctx context.Context, squad *models.Squad) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if squad == nil {
			return nil, result.NilArgument("squad")
		}
		squad.Name = strings.TrimSpace(squad.Name)
		if res := s.engine.Invalid(ctx, validation.Squad(squad)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, squad, func(ctx context.Context, old *models.Squad) (*result.Result, error) {
			return firstFailure(ctx, s.uniqueName(squad, sameKey(squad.Name, old.Name)))
		})
	})
}

// Delete removes a squad that has no members and owns no applications.
func (s *SquadServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.DeleteWith(ctx, id, func(ctx context.Context, _ *models.Squad) (*result.Result, error) {
			return firstFailure(ctx,
				s.engine.noDependents(func(ctx context.Context) (bool, error) {
					return s.squadRepo.HasMembers(ctx, id)
				}),
				s.engine.noDependents(func(ctx context.Context) (bool, error) {
					return s.squadRepo.HasApplications(ctx, id)
				}),
			)
		})
	})
}

// Get retrieves a squad by ID; nil when absent.
func (s *SquadServiceImpl) Get(ctx context.Context, id int64) (*models.Squad, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of squads.
func (s *SquadServiceImpl) List(ctx context.Context, filters secondary.SquadFilters, page secondary.Page) (*secondary.PagedResult[models.Squad], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *SquadServiceImpl) uniqueName(squad *models.Squad, unchanged bool) check {
	return s.engine.unique(i18n.FieldName, unchanged, func(ctx context.Context) (bool, error) {
		return s.squadRepo.NameExists(ctx, squad.Name)
	})
}

// Ensure SquadServiceImpl implements the interface.
var _ primary.SquadService = (*SquadServiceImpl)(nil)
