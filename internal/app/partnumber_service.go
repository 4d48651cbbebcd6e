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

// PartNumberServiceImpl implements the PartNumberService interface.
type PartNumberServiceImpl struct {
	engine       *Engine[models.PartNumber, *models.PartNumber, secondary.PartNumberFilters]
	partRepo     secondary.PartNumberRepository
	supplierRepo secondary.SupplierRepository
}

// NewPartNumberService creates a new PartNumberService with injected dependencies.
func NewPartNumberService(partRepo secondary.PartNumberRepository, supplierRepo secondary.SupplierRepository, deps EngineDeps) *PartNumberServiceImpl {
	return &PartNumberServiceImpl{
		engine:       NewEngine[models.PartNumber, *models.PartNumber](models.KindPartNumber, i18n.EntityPartNumber, partRepo, deps),
		partRepo:     partRepo,
		supplierRepo: supplierRepo,
	}
}

// Create validates and registers a new part number.
func (s *PartNumberServiceImpl) Create(ctx context.Context, part *models.PartNumber) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if part == nil {
			return nil, result.NilArgument("part number")
		}
		normalizePartNumber(part)
		if res := s.engine.Invalid(ctx, validation.PartNumber(part)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, part, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(part, false)...)
		})
	})
}

// Update validates part against the stored record and saves it.
func (s *PartNumberServiceImpl) Update(ctx context.Context, part *models.PartNumber) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if part == nil {
			return nil, result.NilArgument("part number")
		}
		normalizePartNumber(part)
		if res := s.engine.Invalid(ctx, validation.PartNumber(part)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, part, func(ctx context.Context, old *models.PartNumber) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(part, sameKey(part.Code, old.Code))...)
		})
	})
}

// Delete removes a part number.
func (s *PartNumberServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.Delete(ctx, id)
	})
}

// Get retrieves a part number by ID; nil when absent.
func (s *PartNumberServiceImpl) Get(ctx context.Context, id int64) (*models.PartNumber, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of part numbers.
func (s *PartNumberServiceImpl) List(ctx context.Context, filters secondary.PartNumberFilters, page secondary.Page) (*secondary.PagedResult[models.PartNumber], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *PartNumberServiceImpl) relationalChecks(part *models.PartNumber, codeUnchanged bool) []check {
	return []check{
		s.engine.unique(i18n.FieldCode, codeUnchanged, func(ctx context.Context) (bool, error) {
			return s.partRepo.CodeExists(ctx, part.Code)
		}),
		optional(part.SupplierID, s.engine.exists(i18n.EntitySupplier, func(ctx context.Context) (bool, error) {
			sup, err := s.supplierRepo.GetByID(ctx, part.SupplierID)
			return sup != nil, err
		})),
	}
}

func normalizePartNumber(p *models.PartNumber) {
	p.Code = strings.TrimSpace(p.Code)
	p.Description = strings.TrimSpace(p.Description)
	p.Type = models.PartNumberType(strings.ToLower(strings.TrimSpace(string(p.Type))))
}

// Ensure PartNumberServiceImpl implements the interface.
var _ primary.PartNumberService = (*PartNumberServiceImpl)(nil)
