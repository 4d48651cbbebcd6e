package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
	"github.com/example/portfolio/internal/wire"
)

// ApplicationCmd returns the application command
func ApplicationCmd() *cobra.Command {
	cmd := entityCommands[models.Application, *models.Application, secondary.ApplicationFilters]{
		name:    "application",
		short:   "Manage applications",
		adapter: wire.ApplicationAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Application name")
			cmd.Flags().StringP("description", "d", "", "Application description")
			cmd.Flags().Int64("area", 0, "Area ID")
			cmd.Flags().Int64("squad", 0, "Owning squad ID (0 for none)")
			cmd.Flags().Bool("external", false, "Application is provided by a third party")
		},
		fieldNames: []string{"name", "description", "area", "squad", "external"},
		apply: func(cmd *cobra.Command, a *models.Application) error {
			return errors.Join(
				stringFlag(cmd, "name", &a.Name),
				stringFlag(cmd, "description", &a.Description),
				int64Flag(cmd, "area", &a.AreaID),
				int64Flag(cmd, "squad", &a.SquadID),
				boolFlag(cmd, "external", &a.External),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().String("name", "", "Filter by name substring")
			cmd.Flags().Int64("area", 0, "Filter by area ID")
			cmd.Flags().Int64("squad", 0, "Filter by squad ID")
		},
		filters: func(cmd *cobra.Command) (f secondary.ApplicationFilters, err error) {
			err = errors.Join(
				stringFlag(cmd, "name", &f.Name),
				int64Flag(cmd, "area", &f.AreaID),
				int64Flag(cmd, "squad", &f.SquadID),
			)
			return f, err
		},
	}.command()
	cmd.Aliases = []string{"app"}
	return cmd
}

// DocumentCmd returns the document command
func DocumentCmd() *cobra.Command {
	return entityCommands[models.Document, *models.Document, secondary.DocumentFilters]{
		name:    "document",
		short:   "Manage application documents",
		adapter: wire.DocumentAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().Int64("app", 0, "Application ID")
			cmd.Flags().String("name", "", "Document name")
			cmd.Flags().String("url", "", "Document URL")
		},
		fieldNames: []string{"app", "name", "url"},
		apply: func(cmd *cobra.Command, d *models.Document) error {
			return errors.Join(
				int64Flag(cmd, "app", &d.ApplicationID),
				stringFlag(cmd, "name", &d.Name),
				stringFlag(cmd, "url", &d.URL),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().Int64("app", 0, "Filter by application ID")
			cmd.Flags().String("name", "", "Filter by name substring")
		},
		filters: func(cmd *cobra.Command) (f secondary.DocumentFilters, err error) {
			err = errors.Join(
				int64Flag(cmd, "app", &f.ApplicationID),
				stringFlag(cmd, "name", &f.Name),
			)
			return f, err
		},
	}.command()
}

// KnowledgeCmd returns the knowledge command.
// Deleting an association requires --as with the ID of a squad leader.
func KnowledgeCmd() *cobra.Command {
	return entityCommands[models.Knowledge, *models.Knowledge, secondary.KnowledgeFilters]{
		name:    "knowledge",
		short:   "Manage which members know which applications",
		adapter: wire.KnowledgeAdapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().Int64("member", 0, "Member ID (fixed after creation)")
			cmd.Flags().Int64("app", 0, "Application ID")
		},
		fieldNames: []string{"app"},
		apply: func(cmd *cobra.Command, k *models.Knowledge) error {
			if k.ID != 0 && cmd.Flags().Changed("member") {
				return errors.New("the member of a knowledge association cannot be changed")
			}
			return errors.Join(
				int64Flag(cmd, "member", &k.MemberID),
				int64Flag(cmd, "app", &k.ApplicationID),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().Int64("member", 0, "Filter by member ID")
			cmd.Flags().Int64("app", 0, "Filter by application ID")
			cmd.Flags().String("status", "", "Filter by status: "+choices([]models.KnowledgeStatus{models.KnowledgeCurrent, models.KnowledgePast}))
		},
		filters: func(cmd *cobra.Command) (f secondary.KnowledgeFilters, err error) {
			err = errors.Join(
				int64Flag(cmd, "member", &f.MemberID),
				int64Flag(cmd, "app", &f.ApplicationID),
				enumFlag(cmd, "status", &f.Status),
			)
			return f, err
		},
	}.command()
}
