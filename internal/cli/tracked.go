package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/portfolio/internal/adapters/cli"
	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
	"github.com/example/portfolio/internal/wire"
)

// trackedCommands builds the command tree shared by feedback, incidents and improvements.
func trackedCommands[T any, P interface {
	models.EntityPtr[T]
	Base() *models.Tracked
}](name, short string, adapter func(io.Writer) *cliadapter.EntityAdapter[T, P, secondary.TrackedFilters]) *cobra.Command {
	return entityCommands[T, P, secondary.TrackedFilters]{
		name:    name,
		short:   short,
		adapter: adapter,
		fields: func(cmd *cobra.Command) {
			cmd.Flags().String("title", "", "Title")
			cmd.Flags().StringP("description", "d", "", "Description")
			cmd.Flags().Int64("app", 0, "Application ID")
			cmd.Flags().Int64Slice("members", nil, "Involved member IDs (comma separated)")
			cmd.Flags().String("status", "", "Status: "+choices(models.TrackedStatuses))
		},
		fieldNames: []string{"title", "description", "app", "members", "status"},
		apply: func(cmd *cobra.Command, item P) error {
			t := item.Base()
			return errors.Join(
				stringFlag(cmd, "title", &t.Title),
				stringFlag(cmd, "description", &t.Description),
				int64Flag(cmd, "app", &t.ApplicationID),
				idsFlag(cmd, "members", &t.MemberIDs),
				enumFlag(cmd, "status", &t.Status),
			)
		},
		filterFlags: func(cmd *cobra.Command) {
			cmd.Flags().Int64("app", 0, "Filter by application ID")
			cmd.Flags().Int64("member", 0, "Filter by involved member ID")
			cmd.Flags().String("status", "", "Filter by status")
			cmd.Flags().String("title", "", "Filter by title substring")
		},
		filters: func(cmd *cobra.Command) (f secondary.TrackedFilters, err error) {
			err = errors.Join(
				int64Flag(cmd, "app", &f.ApplicationID),
				int64Flag(cmd, "member", &f.MemberID),
				enumFlag(cmd, "status", &f.Status),
				stringFlag(cmd, "title", &f.Title),
			)
			return f, err
		},
	}.command()
}

// FeedbackCmd returns the feedback command
func FeedbackCmd() *cobra.Command {
	return trackedCommands("feedback", "Manage feedback raised against applications", wire.FeedbackAdapter)
}

// IncidentCmd returns the incident command
func IncidentCmd() *cobra.Command {
	return trackedCommands("incident", "Manage application incidents", wire.IncidentAdapter)
}

// ImprovementCmd returns the improvement command
func ImprovementCmd() *cobra.Command {
	return trackedCommands("improvement", "Manage planned application improvements", wire.ImprovementAdapter)
}
