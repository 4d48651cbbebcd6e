package secondary

import (
	"context"

	"github.com/example/portfolio/internal/models"
)

// SupplierFilters contains filter options for querying suppliers.
type SupplierFilters struct {
	Name string
	Code string
}

// SupplierRepository defines the secondary port for supplier persistence.
type SupplierRepository interface {
	Repository[models.Supplier, SupplierFilters]

	// NameExists checks whether a supplier already uses the name.
	NameExists(ctx context.Context, name string) (bool, error)

	// CodeExists checks whether a supplier already uses the code.
	CodeExists(ctx context.Context, code string) (bool, error)

	// HasPartNumbers checks whether part numbers reference the supplier.
	HasPartNumbers(ctx context.Context, supplierID int64) (bool, error)
}

// VehicleFilters contains filter options for querying vehicles.
type VehicleFilters struct {
	Model   string
	Chassis string
}

// VehicleRepository defines the secondary port for vehicle persistence.
type VehicleRepository interface {
	Repository[models.Vehicle, VehicleFilters]

	// ChassisExists checks whether a vehicle already uses the chassis number.
	ChassisExists(ctx context.Context, chassis string) (bool, error)
}

// PartNumberFilters contains filter options for querying part numbers.
type PartNumberFilters struct {
	Code       string
	Type       models.PartNumberType
	SupplierID int64
}

// PartNumberRepository defines the secondary port for part number persistence.
type PartNumberRepository interface {
	Repository[models.PartNumber, PartNumberFilters]

	// CodeExists checks whether a part number already uses the code.
	CodeExists(ctx context.Context, code string) (bool, error)
}
