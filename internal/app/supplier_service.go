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

// SupplierServiceImpl implements the SupplierService interface.
type SupplierServiceImpl struct {
	engine       *Engine[models.Supplier, *models.Supplier, secondary.SupplierFilters]
	supplierRepo secondary.SupplierRepository
}

// NewSupplierService creates a new SupplierService with injected dependencies.
func NewSupplierService(supplierRepo secondary.SupplierRepository, deps EngineDeps) *SupplierServiceImpl {
	return &SupplierServiceImpl{
		engine:       NewEngine[models.Supplier, *models.Supplier](models.KindSupplier, i18n.EntitySupplier, supplierRepo, deps),
		supplierRepo: supplierRepo,
	}
}

// Create validates and registers a new supplier.
func (s *SupplierServiceImpl) Create(ctx context.Context, supplier *models.Supplier) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if supplier == nil {
			return nil, result.NilArgument("supplier")
		}
		normalizeSupplier(supplier)
		if res := s.engine.Invalid(ctx, validation.Supplier(supplier)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, supplier, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(supplier, false, false)...)
		})
	})
}

// Update validates supplier against the stored record and saves it.
func (s *SupplierServiceImpl) Update(ctx context.Context, supplier *models.Supplier) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if supplier == nil {
			return nil, result.NilArgument("supplier")
		}
		normalizeSupplier(supplier)
		if res := s.engine.Invalid(ctx, validation.Supplier(supplier)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, supplier, func(ctx context.Context, old *models.Supplier) (*result.Result, error) {
			return firstFailure(ctx, s.relationalChecks(supplier,
				sameKey(supplier.Name, old.Name),
				sameKey(supplier.Code, old.Code),
			)...)
		})
	})
}

// Delete removes a supplier no part number references.
func (s *SupplierServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.DeleteWith(ctx, id, func(ctx context.Context, _ *models.Supplier) (*result.Result, error) {
			return firstFailure(ctx, s.engine.noDependents(func(ctx context.Context) (bool, error) {
				return s.supplierRepo.HasPartNumbers(ctx, id)
			}))
		})
	})
}

// Get retrieves a supplier by ID; nil when absent.
func (s *SupplierServiceImpl) Get(ctx context.Context, id int64) (*models.Supplier, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of suppliers.
func (s *SupplierServiceImpl) List(ctx context.Context, filters secondary.SupplierFilters, page secondary.Page) (*secondary.PagedResult[models.Supplier], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *SupplierServiceImpl) relationalChecks(supplier *models.Supplier, nameUnchanged, codeUnchanged bool) []check {
	return []check{
		s.engine.unique(i18n.FieldName, nameUnchanged, func(ctx context.Context) (bool, error) {
			return s.supplierRepo.NameExists(ctx, supplier.Name)
		}),
		s.engine.unique(i18n.FieldCode, codeUnchanged, func(ctx context.Context) (bool, error) {
			return s.supplierRepo.CodeExists(ctx, supplier.Code)
		}),
	}
}

func normalizeSupplier(s *models.Supplier) {
	s.Name = strings.TrimSpace(s.Name)
	s.Code = strings.TrimSpace(s.Code)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
}

// Ensure SupplierServiceImpl implements the interface.
var _ primary.SupplierService = (*SupplierServiceImpl)(nil)
