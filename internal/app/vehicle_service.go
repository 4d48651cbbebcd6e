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

// VehicleServiceImpl implements the VehicleService interface.
type VehicleServiceImpl struct {
	engine      *Engine[models.Vehicle, *models.Vehicle, secondary.VehicleFilters]
	vehicleRepo secondary.VehicleRepository
}

// NewVehicleService creates a new VehicleService with injected dependencies.
func NewVehicleService(vehicleRepo secondary.VehicleRepository, deps EngineDeps) *VehicleServiceImpl {
	return &VehicleServiceImpl{
		engine:      NewEngine[models.Vehicle, *models.Vehicle](models.KindVehicle, i18n.EntityVehicle, vehicleRepo, deps),
		vehicleRepo: vehicleRepo,
	}
}

// Create validates and registers a new vehicle. The chassis is stored upper case.
func (s *VehicleServiceImpl) Create(ctx context.Context, vehicle *models.Vehicle) (*result.Result, error) {
	return s.engine.Track(ctx, opCreate, func(ctx context.Context) (*result.Result, error) {
		if vehicle == nil {
			return nil, result.NilArgument("vehicle")
		}
		normalizeVehicle(vehicle)
		if res := s.engine.Invalid(ctx, validation.Vehicle(vehicle)); res != nil {
			return res, nil
		}
		return s.engine.CreateWith(ctx, vehicle, func(ctx context.Context) (*result.Result, error) {
			return firstFailure(ctx, s.uniqueChassis(vehicle, false))
		})
	})
}

// Update validates vehicle against the stored record and saves it.
func (s *VehicleServiceImpl) Update(ctx context.Context, vehicle *models.Vehicle) (*result.Result, error) {
	return s.engine.Track(ctx, opUpdate, func(ctx context.Context) (*result.Result, error) {
		if vehicle == nil {
			return nil, result.NilArgument("vehicle")
		}
		normalizeVehicle(vehicle)
		if res := s.engine.Invalid(ctx, validation.Vehicle(vehicle)); res != nil {
			return res, nil
		}
		return s.engine.UpdateWith(ctx, vehicle, func(ctx context.Context, old *models.Vehicle) (*result.Result, error) {
			return firstFailure(ctx, s.uniqueChassis(vehicle, sameKey(vehicle.Chassis, old.Chassis)))
		})
	})
}

// Delete removes a vehicle.
func (s *VehicleServiceImpl) Delete(ctx context.Context, id int64) (*result.Result, error) {
	return s.engine.Track(ctx, opDelete, func(ctx context.Context) (*result.Result, error) {
		return s.engine.Delete(ctx, id)
	})
}

// Get retrieves a vehicle by ID; nil when absent.
func (s *VehicleServiceImpl) Get(ctx context.Context, id int64) (*models.Vehicle, error) {
	return s.engine.Get(ctx, id)
}

// List retrieves a page of vehicles.
func (s *VehicleServiceImpl) List(ctx context.Context, filters secondary.VehicleFilters, page secondary.Page) (*secondary.PagedResult[models.Vehicle], error) {
	return s.engine.List(ctx, filters, page)
}

func (s *VehicleServiceImpl) uniqueChassis(vehicle *models.Vehicle, unchanged bool) check {
	return s.engine.unique(i18n.FieldChassis, unchanged, func(ctx context.Context) (bool, error) {
		return s.vehicleRepo.ChassisExists(ctx, vehicle.Chassis)
	})
}

func normalizeVehicle(v *models.Vehicle) {
	v.Chassis = strings.ToUpper(strings.TrimSpace(v.Chassis))
	v.Model = strings.TrimSpace(v.Model)
}

// Ensure VehicleServiceImpl implements the interface.
var _ primary.VehicleService = (*VehicleServiceImpl)(nil)
