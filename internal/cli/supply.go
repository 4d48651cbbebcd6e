package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
	"github.com/example/portfolio/internal/wire"
)

// SupplierCmd returns the supplier command
func SupplierCmd() *cobra.Command {
	return entityCommands[models.Supplier, *models.Supplier, secondary.SupplierFilters]{
		name:    "supplier",
		short:   "Manage part suppliers",
		adapter: wire.SupplierAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Supplier name")
			cmd.Flags().String("code", "", "Supplier code")
			cmd.Flags().String("email", "", "Contact email")
		},
		fieldNames: []string{"name", "code", "email"},
		apply: func(cmd *cobra.Command, s *models.Supplier) error {
			return errors.Join(
				stringFlag(cmd, "name", &s.Name),
				stringFlag(cmd, "code", &s.Code),
				stringFlag(cmd, "email", &s.Email),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Filter by name substring")
			cmd.Flags().String("code", "", "Filter by code substring")
		},
		filters: func(cmd *cobra.Command) (f secondary.SupplierFilters, err error) {
			err = errors.Join(
				stringFlag(cmd, "name", &f.Name),
				stringFlag(cmd, "code", &f.Code),
			)
			return f, err
		},
	}.command()
}

// VehicleCmd returns the vehicle command
func VehicleCmd() *cobra.Command {
	return entityCommands[models.Vehicle, *models.Vehicle, secondary.VehicleFilters]{
		name:    "vehicle",
		short:   "Manage vehicles",
		adapter: wire.VehicleAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("chassis", "", "17-character chassis number")
			cmd.Flags().String("model", "", "Vehicle model")
			cmd.Flags().Int("year", 0, "Model year")
		},
		fieldNames: []string{"chassis", "model", "year"},
		apply: func(cmd *cobra.Command, v *models.Vehicle) error {
			return errors.Join(
				stringFlag(cmd, "chassis", &v.Chassis),
				stringFlag(cmd, "model", &v.Model),
				intFlag(cmd, "year", &v.Year),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("model", "", "Filter by model substring")
			cmd.Flags().String("chassis", "", "Filter by chassis substring")
		},
		filters: func(cmd *cobra.Command) (f secondary.VehicleFilters, err error) {
			err = errors.Join(
				stringFlag(cmd, "model", &f.Model),
				stringFlag(cmd, "chassis", &f.Chassis),
			)
			return f, err
		},
	}.command()
}

// PartNumberCmd returns the part-number command
func PartNumberCmd() *cobra.Command {
	return entityCommands[models.PartNumber, *models.PartNumber, secondary.PartNumberFilters]{
		name:    "part-number",
		short:   "Manage catalogued part numbers",
		adapter: wire.PartNumberAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("code", "", "Part number code")
			cmd.Flags().StringP("description", "d", "", "Part description")
			cmd.Flags().String("type", "", "Type: "+choices(models.PartNumberTypes))
			cmd.Flags().Int64("supplier", 0, "Supplier ID (0 for none)")
		},
		fieldNames: []string{"code", "description", "type", "supplier"},
		apply: func(cmd *cobra.Command, p *models.PartNumber) error {
			return errors.Join(
				stringFlag(cmd, "code", &p.Code),
				stringFlag(cmd, "description", &p.Description),
				enumFlag(cmd, "type", &p.Type),
				int64Flag(cmd, "supplier", &p.SupplierID),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("code", "", "Filter by code substring")
			cmd.Flags().String("type", "", "Filter by type")
			cmd.Flags().Int64("supplier", 0, "Filter by supplier ID")
		},
		filters: func(cmd *cobra.Command) (f secondary.PartNumberFilters, err error) {
			err = errors.Join(
				stringFlag(cmd, "code", &f.Code),
				enumFlag(cmd, "type", &f.Type),
				int64Flag(cmd, "supplier", &f.SupplierID),
			)
			return f, err
		},
	}.command()
}
