package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_audit_log",
		Up:      execMigration(auditLogSQL),
	},
	{
		Version: 2,
		Name:    "add_notifications_outbox",
		Up:      execMigration(notificationsSQL),
	},
	{
		Version: 3,
		Name:    "add_part_number_supplier_index",
		Up:      execMigration("CREATE INDEX IF NOT EXISTS idx_part_numbers_supplier ON part_numbers(supplier_id)"),
	},
}

// LatestVersion returns the version a fully migrated database reports.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// CurrentVersion returns the highest applied migration.
func CurrentVersion(database *sql.DB) (int, error) {
	var v int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return v, nil
}

// RunMigrations executes all pending migrations
func RunMigrations(database *sql.DB) error {
	if err := createVersionTable(database); err != nil {
		return err
	}

	currentVersion, err := CurrentVersion(database)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		slog.Info("running migration", "version", migration.Version, "name", migration.Name)

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

func createVersionTable(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

func execMigration(stmt string) func(*sql.Tx) error {
	return func(tx *sql.Tx) error {
		_, err := tx.Exec(stmt)
		return err
	}
}
