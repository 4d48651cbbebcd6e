package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/portfolio/internal/config"
	"github.com/example/portfolio/internal/db"
	"github.com/example/portfolio/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the portfolio database",
		Long: `Write the default config file if none exists and create the database
with the current schema. --seed adds demonstration data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := config.SaveConfig(path, wire.Config()); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Fprintf(out, "✓ Config written to %s\n", path)
			}

			fmt.Fprintf(out, "Initializing portfolio database at %s\n", wire.Config().Database.Path)
			database := wire.DB()
			fmt.Fprintln(out, "✓ Database initialized successfully")

			if seed, _ := cmd.Flags().GetBool("seed"); seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed database: %w", err)
				}
				fmt.Fprintln(out, "✓ Demonstration data loaded")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  portfolio squad create --name \"My Squad\"")
			fmt.Fprintln(out, "  portfolio application list")
			return nil
		},
	}
	cmd.Flags().Bool("seed", false, "Load demonstration data")
	return cmd
}
