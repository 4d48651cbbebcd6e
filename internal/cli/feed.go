package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/secondary"
	"github.com/example/portfolio/internal/wire"
)

// AuditCmd returns the audit command
func AuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the audit trail of changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filters secondary.AuditFilters
			kind, _ := cmd.Flags().GetString("kind")
			filters.Kind = models.Kind(kind)
			filters.EntityID, _ = cmd.Flags().GetInt64("id")
			filters.Limit, _ = cmd.Flags().GetInt("limit")
			return wire.FeedAdapter(cmd.OutOrStdout()).Audit(cmd.Context(), filters)
		},
	}
	cmd.Flags().String("kind", "", "Filter by entity kind (e.g. member, part_number)")
	cmd.Flags().Int64("id", 0, "Filter by entity ID")
	cmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 for all)")
	return cmd
}

// NotificationsCmd returns the notifications command
func NotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Read notifications delivered to the outbox",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return wire.FeedAdapter(cmd.OutOrStdout()).Notifications(cmd.Context(), limit)
		},
	}
	listCmd.Flags().IntP("limit", "n", 20, "Maximum notifications to show")

	cmd.AddCommand(listCmd)
	return cmd
}
