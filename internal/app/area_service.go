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

// AreaServiceImpl implements the AreaService interface.
type AreaServiceImpl struct {
	engine     *Engine[models.Area, *models.Area, secondary.AreaFilters]
	areaRepo   secondary.AreaRepository
	memberRepo secondary.MemberRepository
}

// NewAreaService creates a new AreaService with injected dependencies.
func NewAreaService(areaRepo secondary.AreaRepository, memberRepo secondary.MemberRepository, deps EngineDeps) *AreaServiceImpl {
	return &AreaServiceImpl{
		engine:     NewEngine[models.Area, *models.Area](models.KindArea, i18n.EntityArea, areaRepo, deps),
		areaRepo:   areaRepo,
		memberRepo: memberRepo,
	}
}

// Create validates and registers a new area.
func (s *AreaServiceImpl) Create(ctx context.Context, area *models.Area) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if area == nil {
			return nil, result.NilArgument("area")
		}
		area.Name = strings.TrimSpace(area.Name)
		if res := s.engine.Invalid(ctx, validation.Area(area)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, area, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(area, false)...)
		})
	})
}

// Update validates area against the stored record and saves it.
func (s *AreaServiceImpl) Update(ctx context.Context, area *models.Area) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if area == nil {
			return nil, result.NilArgument("area")
		}
		area.Name = strings.TrimSpace(area.Name)
		if res := s.engine.Invalid(ctx, validation.Area(area)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, area, func(ctx context.Context, old *models.Area) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(area, sameKey(area.Name, old.Name))...)
		})
	})
}

// Delete removes an area that no application references.
func (s *AreaServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.DeleteWith(ctx, id, func(ctx context.Context, _ *models.Area) (*result.Result, error) {
			return firstFailure(ctx, s.engine.noDependents(func(ctx context.Context) (bool, error) {
				return s.areaRepo.HasApplications(ctx, id)
			}))
		})
	})
}

// Get retrieves an area by ID; nil when absent.
func (s *AreaServiceImpl) Get(ctx context.Context, id int64) (*models.Area, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of areas.
func (s *AreaServiceImpl) List(ctx context.Context, filters secondary.AreaFilters, page secondary.Page) (*secondary.PagedResult[models.Area], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *AreaServiceImpl) relationalChecks(area *models.Area, nameUnchanged bool) []check {
	return []check{
		s.engine.unique(i18n.FieldName, nameUnchanged, func(ctx context.Context) (bool, error) {
			return s.areaRepo.NameExists(ctx, area.Name)
		}),
		optional(area.ManagerID, s.engine.exists(i18n.EntityMember, func(ctx context.Context) (bool, error) {
			m, err := s.memberRepo.GetByID(ctx, area.ManagerID)
			return m != nil, err
		})),
	}
}

// Ensure AreaServiceImpl implements the interface.
var _ primary.AreaService = (*AreaServiceImpl)(nil)
