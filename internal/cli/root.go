// Package cli implements the portfolio command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/portfolio/internal/config"
	"github.com/example/portfolio/internal/ctxutil"
	"github.com/example/portfolio/internal/version"
	"github.com/example/portfolio/internal/wire"
)

// NewRootCmd builds the portfolio command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "portfolio",
		Short:   "Portfolio - application, squad and supply catalogue",
		Version: version.String(),
		Long: `Portfolio keeps track of business areas, squads and their members,
the applications they own and know, and the feedback, incidents and
improvements raised against those applications.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: prepare,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			dumpMetrics()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.portfolio/config.yaml)")
	rootCmd.PersistentFlags().String("locale", "", "Locale for messages (overrides config)")
	rootCmd.PersistentFlags().Int64("as", 0, "ID of the member performing the command")

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(AreaCmd())
	rootCmd.AddCommand(SquadCmd())
	rootCmd.AddCommand(MemberCmd())
	rootCmd.AddCommand(ApplicationCmd())
	rootCmd.AddCommand(DocumentCmd())
	rootCmd.AddCommand(KnowledgeCmd())
	rootCmd.AddCommand(FeedbackCmd())
	rootCmd.AddCommand(IncidentCmd())
	rootCmd.AddCommand(ImprovementCmd())
	rootCmd.AddCommand(SupplierCmd())
	rootCmd.AddCommand(VehicleCmd())
	rootCmd.AddCommand(PartNumberCmd())
	rootCmd.AddCommand(AuditCmd())
	rootCmd.AddCommand(NotificationsCmd())

	return rootCmd
}

// prepare loads the configuration and puts the caller's locale and identity on the context.
func prepare(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	wire.Configure(cfg)

	locale, _ := cmd.Flags().GetString("locale")
	if locale == "" {
		locale = cfg.Locale
	}
	ctx := ctxutil.WithLocale(cmd.Context(), locale)

	if as, _ := cmd.Flags().GetInt64("as"); as > 0 {
		ctx = ctxutil.WithRequester(ctx, as)
	}
	cmd.SetContext(ctx)
	return nil
}

func dumpMetrics() {
	if !wire.Config().Metrics.Enabled {
		return
	}
	samples, err := wire.Metrics().Snapshot()
	if err != nil {
		wire.Logger().Warn("failed to read metrics", "error", err)
		return
	}
	for _, s := range samples {
		wire.Logger().Debug("operations",
			"entity", s.Entity,
			"operation", s.Operation,
			"status", s.Status,
			"count", s.Count)
	}
}
