package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
	"github.com/example/portfolio/internal/wire"
)

// AreaCmd returns the area command
func AreaCmd() *cobra.Command {
	return entityCommands[models.Area, *models.Area, secondary.AreaFilters]{
		name:    "area",
		short:   "Manage business areas",
		adapter: wire.AreaAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Area name")
			cmd.Flags().Int64("manager", 0, "Managing member ID (0 for none)")
		},
		fieldNames: []string{"name", "manager"},
		apply: func(cmd *cobra.Command, a *models.Area) error {
			return errors.Join(
				stringFlag(cmd, "name", &a.Name),
				int64Flag(cmd, "manager", &a.ManagerID),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Filter by name substring")
			cmd.Flags().Int64("manager", 0, "Filter by manager ID")
		},
		filters: func(cmd *cobra.Command) (f secondary.AreaFilters, err error) {
			err = errors.Join(
				stringFlag(cmd, "name", &f.Name),
				int64Flag(cmd, "manager", &f.ManagerID),
			)
			return f, err
		},
	}.command()
}

// SquadCmd returns the squad command
func SquadCmd() *cobra.Command {
	return entityCommands[models.Squad, *models.Squad, secondary.SquadFilters]{
		name:    "squad",
		short:   "Manage squads",
		adapter: wire.SquadAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Squad name")
			cmd.Flags().StringP("description", "d", "", "Squad description")
		},
		fieldNames: []string{"name", "description"},
		apply: func(cmd *cobra.Command, s *models.Squad) error {
			return errors.Join(
				stringFlag(cmd, "name", &s.Name),
				stringFlag(cmd, "description", &s.Description),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Filter by name substring")
		},
		filters: func(cmd *cobra.Command) (f secondary.SquadFilters, err error) {
			err = stringFlag(cmd, "name", &f.Name)
			return f, err
		},
	}.command()
}

// MemberCmd returns the member command
func MemberCmd() *cobra.Command {
	return entityCommands[models.Member, *models.Member, secondary.MemberFilters]{
		name:    "member",
		short:   "Manage squad members",
		adapter: wire.MemberAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Member name")
			cmd.Flags().String("email", "", "Member email")
			cmd.Flags().String("role", "", "Role: "+choices(models.Roles))
			cmd.Flags().Int64("squad", 0, "Squad ID")
		},
		fieldNames: []string{"name", "email", "role", "squad"},
		apply: func(cmd *cobra.Command, m *models.Member) error {
			return errors.Join(
				stringFlag(cmd, "name", &m.Name),
				stringFlag(cmd, "email", &m.Email),
				enumFlag(cmd, "role", &m.Role),
				int64Flag(cmd, "squad", &m.SquadID),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Filter by name substring")
			cmd.Flags().Int64("squad", 0, "Filter by squad ID")
			cmd.Flags().String("role", "", "Filter by role")
		},
		filters: func(cmd *cobra.Command) (f secondary.MemberFilters, err error) {
			err = errors.Join(
				stringFlag(cmd, "name", &f.Name),
				int64Flag(cmd, "squad", &f.SquadID),
				enumFlag(cmd, "role", &f.Role),
			)
			return f, err
		},
	}.command()
}
