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

// ApplicationServiceImpl implements the ApplicationService interface.
type ApplicationServiceImpl struct {
	engine    *Engine[models.Application, *models.Application, secondary.ApplicationFilters]
	appRepo   secondary.ApplicationRepository
	areaRepo  secondary.AreaRepository
	squadRepo secondary.SquadRepository
}

// NewApplicationService creates a new ApplicationService with injected dependencies.
func NewApplicationService(
	appRepo secondary.ApplicationRepository,
	areaRepo secondary.AreaRepository,
	squadRepo secondary.SquadRepository,
	deps EngineDeps,
) *ApplicationServiceImpl {
	return &ApplicationServiceImpl{
		engine:    NewEngine[models.Application, *models.Application](models.KindApplication, i18n.EntityApplication, appRepo, deps),
		appRepo:   appRepo,
		areaRepo:  areaRepo,
		squadRepo: squadRepo,
	}
}

// Create validates and registers a new application.
func (s *ApplicationServiceImpl) Create(ctx context.Context, app *models.Application) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if app == nil {
			return nil, result.NilArgument("application")
		}
		app.Name = strings.TrimSpace(app.Name)
		if res := s.engine.Invalid(ctx, validation.Application(app)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, app, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(app, false)...)
		})
	})
}

// Update validates app against the stored record and saves it.
// Changing the squad leaves existing knowledge associations untouched.
func (s *ApplicationServiceImpl) Update(ctx context.Context, app *models.Application) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if app == nil {
			return nil, result.NilArgument("application")
		}
		app.Name = strings.TrimSpace(app.Name)
		if res := s.engine.Invalid(ctx, validation.Application(app)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, app, func(ctx context.Context, old *models.Application) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(app, sameKey(app.Name, old.Name))...)
		})
	})
}

// Delete removes an application that nothing references.
func (s *ApplicationServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.DeleteWith(ctx, id, func(ctx context.Context, _ *models.Application) (*result.Result, error) {
			return firstFailure(ctx, s.engine.noDependents(func(ctx context.Context) (bool, error) {
				return s.appRepo.HasDependents(ctx, id)
			}))
		})
	})
}

// Get retrieves an application by ID; nil when absent.
func (s *ApplicationServiceImpl) Get(ctx context.Context, id int64) (*models.Application, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of applications.
func (s *ApplicationServiceImpl) List(ctx context.Context, filters secondary.ApplicationFilters, page secondary.Page) (*secondary.PagedResult[models.Application], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *ApplicationServiceImpl) relationalChecks(app *models.Application, nameUnchanged bool) []check {
	return []check{
		s.engine.unique(i18n.FieldName, nameUnchanged, func(ctx context.Context) (bool, error) {
			return s.appRepo.NameExists(ctx, app.Name)
		}),
		s.engine.exists(i18n.EntityArea, func(ctx context.Context) (bool, error) {
			a, err := s.areaRepo.GetByID(ctx, app.AreaID)
			return a != nil, err
		}),
		optional(app.SquadID, s.engine.exists(i18n.EntitySquad, func(ctx context.Context) (bool, error) {
			sq, err := s.squadRepo.GetByID(ctx, app.SquadID)
			return sq != nil, err
		})),
	}
}

// Ensure ApplicationServiceImpl implements the interface.
var _ primary.ApplicationService = (*ApplicationServiceImpl)(nil)
