package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
)

// ============================================================================
// Suppliers
// ============================================================================

var supplierTable = table{
	name:    "suppliers",
	columns: "id, name, code, email",
	sortable: map[string]string{
		"name": "name COLLATE NOCASE",
		"code": "code COLLATE NOCASE",
	},
}

func scanSupplier(s scanner) (*models.Supplier, error) {
	var (
		sup   models.Supplier
		email sql.NullString
	)
	if err := s.Scan(&sup.ID, &sup.Name, &sup.Code, &email); err != nil {
		return nil, err
	}
	sup.Email = email.String
	return &sup, nil
}

// SupplierRepository implements secondary.SupplierRepository with SQLite.
type SupplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository creates a new SQLite supplier repository.
func NewSupplierRepository(db *sql.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// GetByID retrieves a supplier by its ID; nil when absent.
func (r *SupplierRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	sup, err := getOne(ctx, conn(ctx, r.db), "SELECT "+supplierTable.columns+" FROM suppliers WHERE id = ?", id, scanSupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return sup, nil
}

// List retrieves a page of suppliers matching the filters.
func (r *SupplierRepository) List(ctx context.Context, f secondary.SupplierFilters, page secondary.Page) (*secondary.PagedResult[models.Supplier], error) {
	var where filters
	where.contains("name", f.Name)
	where.contains("code", f.Code)
	return listPage(ctx, conn(ctx, r.db), supplierTable, where, page, scanSupplier)
}

// Create persists a new supplier and sets its ID.
func (r *SupplierRepository) Create(ctx context.Context, sup *models.Supplier) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO suppliers (name, code, email) VALUES (?, ?, ?)",
		sup.Name, sup.Code, nullString(sup.Email),
	)
	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	sup.ID = id
	return nil
}

// Update replaces a supplier's fields.
func (r *SupplierRepository) Update(ctx context.Context, sup *models.Supplier) error {
	err := execOne(ctx, conn(ctx, r.db), "supplier", sup.ID,
		"UPDATE suppliers SET name = ?, code = ?, email = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		sup.Name, sup.Code, nullString(sup.Email), sup.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

// Delete removes a supplier.
func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "supplier", id, "DELETE FROM suppliers WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}

// NameExists checks whether a supplier already uses the name, ignoring case.
func (r *SupplierRepository) NameExists(ctx context.Context, name string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM suppliers WHERE lower(trim(name)) = lower(trim(?))", name)
	if err != nil {
		return false, fmt.Errorf("failed to check supplier name: %w", err)
	}
	return found, nil
}

// CodeExists checks whether a supplier already uses the code, ignoring case.
func (r *SupplierRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM suppliers WHERE lower(trim(code)) = lower(trim(?))", code)
	if err != nil {
		return false, fmt.Errorf("failed to check supplier code: %w", err)
	}
	return found, nil
}

// HasPartNumbers checks whether part numbers reference the supplier.
func (r *SupplierRepository) HasPartNumbers(ctx context.Context, supplierID int64) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM part_numbers WHERE supplier_id = ?", supplierID)
	if err != nil {
		return false, fmt.Errorf("failed to check supplier part numbers: %w", err)
	}
	return found, nil
}

// ============================================================================
// Vehicles
// ============================================================================

var vehicleTable = table{
	name:    "vehicles",
	columns: "id, chassis, model, year",
	sortable: map[string]string{
		"chassis": "chassis",
		"model":   "model COLLATE NOCASE",
		"year":    "year",
	},
}

func scanVehicle(s scanner) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.Scan(&v.ID, &v.Chassis, &v.Model, &v.Year); err != nil {
		return nil, err
	}
	return &v, nil
}

// VehicleRepository implements secondary.VehicleRepository with SQLite.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new SQLite vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// GetByID retrieves a vehicle by its ID; nil when absent.
func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	v, err := getOne(ctx, conn(ctx, r.db), "SELECT "+vehicleTable.columns+" FROM vehicles WHERE id = ?", id, scanVehicle)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return v, nil
}

// List retrieves a page of vehicles matching the filters.
func (r *VehicleRepository) List(ctx context.Context, f secondary.VehicleFilters, page secondary.Page) (*secondary.PagedResult[models.Vehicle], error) {
	var where filters
	where.contains("model", f.Model)
	where.contains("chassis", f.Chassis)
	return listPage(ctx, conn(ctx, r.db), vehicleTable, where, page, scanVehicle)
}

// Create persists a new vehicle and sets its ID.
func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO vehicles (chassis, model, year) VALUES (?, ?, ?)",
		v.Chassis, v.Model, v.Year,
	)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	v.ID = id
	return nil
}

// Update replaces a vehicle's fields.
func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	err := execOne(ctx, conn(ctx, r.db), "vehicle", v.ID,
		"UPDATE vehicles SET chassis = ?, model = ?, year = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		v.Chassis, v.Model, v.Year, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// Delete removes a vehicle.
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "vehicle", id, "DELETE FROM vehicles WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

// ChassisExists checks whether a vehicle already uses the chassis number, ignoring case.
func (r *VehicleRepository) ChassisExists(ctx context.Context, chassis string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM vehicles WHERE upper(trim(chassis)) = upper(trim(?))", chassis)
	if err != nil {
		return false, fmt.Errorf("failed to check vehicle chassis: %w", err)
	}
	return found, nil
}

// ============================================================================
// Part numbers
// ============================================================================

var partNumberTable = table{
	name:    "part_numbers",
	columns: "id, code, description, type, supplier_id",
	sortable: map[string]string{
		"code": "code COLLATE NOCASE",
		"type": "type",
	},
}

func scanPartNumber(s scanner) (*models.PartNumber, error) {
	var (
		p          models.PartNumber
		supplierID sql.NullInt64
	)
	if err := s.Scan(&p.ID, &p.Code, &p.Description, &p.Type, &supplierID); err != nil {
		return nil, err
	}
	p.SupplierID = supplierID.Int64
	return &p, nil
}

// PartNumberRepository implements secondary.PartNumberRepository with SQLite.
type PartNumberRepository struct {
	db *sql.DB
}

// NewPartNumberRepository creates a new SQLite part number repository.
func NewPartNumberRepository(db *sql.DB) *PartNumberRepository {
	return &PartNumberRepository{db: db}
}

// GetByID retrieves a part number by its ID; nil when absent.
func (r *PartNumberRepository) GetByID(ctx context.Context, id int64) (*models.PartNumber, error) {
	p, err := getOne(ctx, conn(ctx, r.db), "SELECT "+partNumberTable.columns+" FROM part_numbers WHERE id = ?", id, scanPartNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get part number: %w", err)
	}
	return p, nil
}

// List retrieves a page of part numbers matching the filters.
func (r *PartNumberRepository) List(ctx context.Context, f secondary.PartNumberFilters, page secondary.Page) (*secondary.PagedResult[models.PartNumber], error) {
	var where filters
	where.contains("code", f.Code)
	where.equals("supplier_id", f.SupplierID)
	if f.Type != "" {
		where.add("type = ?", f.Type)
	}
	return listPage(ctx, conn(ctx, r.db), partNumberTable, where, page, scanPartNumber)
}

// Create persists a new part number and sets its ID.
func (r *PartNumberRepository) Create(ctx context.Context, p *models.PartNumber) error {
	id, err := insert(ctx, conn(ctx, r.db),
		"INSERT INTO part_numbers (code, description, type, supplier_id) VALUES (?, ?, ?, ?)",
		p.Code, p.Description, p.Type, nullInt(p.SupplierID),
	)
	if err != nil {
		return fmt.Errorf("failed to create part number: %w", err)
	}
	p.ID = id
	return nil
}

// Update replaces a part number's fields.
func (r *PartNumberRepository) Update(ctx context.Context, p *models.PartNumber) error {
	err := execOne(ctx, conn(ctx, r.db), "part number", p.ID,
		"UPDATE part_numbers SET code = ?, description = ?, type = ?, supplier_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		p.Code, p.Description, p.Type, nullInt(p.SupplierID), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update part number: %w", err)
	}
	return nil
}

// Delete removes a part number.
func (r *PartNumberRepository) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, conn(ctx, r.db), "part number", id, "DELETE FROM part_numbers WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete part number: %w", err)
	}
	return nil
}

// CodeExists checks whether a part number already uses the code, ignoring case.
func (r *PartNumberRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	found, err := exists(ctx, conn(ctx, r.db), "SELECT 1 FROM part_numbers WHERE lower(trim(code)) = lower(trim(?))", code)
	if err != nil {
		return false, fmt.Errorf("failed to check part number code: %w", err)
	}
	return found, nil
}

// Ensure the repositories implement their interfaces.
var (
	_ secondary.SupplierRepository   = (*SupplierRepository)(nil)
	_ secondary.VehicleRepository    = (*VehicleRepository)(nil)
	_ secondary.PartNumberRepository = (*PartNumberRepository)(nil)
)
