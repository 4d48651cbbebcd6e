package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository tests
// load it through GetSchemaSQL() so a column referenced by repository code but
// missing here fails immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
//  3. Bump the version recorded for fresh installs (LatestVersion)
const SchemaSQL = `
-- Organization
CREATE TABLE IF NOT EXISTS squads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_squads_name ON squads(lower(trim(name)));

CREATE TABLE IF NOT EXISTS members (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('developer', 'squad_leader', 'product_owner', 'service_manager')),
	squad_id INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (squad_id) REFERENCES squads(id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_members_email ON members(lower(trim(email)));
CREATE INDEX IF NOT EXISTS idx_members_squad ON members(squad_id);

CREATE TABLE IF NOT EXISTS areas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	manager_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (manager_id) REFERENCES members(id) ON DELETE SET NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_areas_name ON areas(lower(trim(name)));

-- Applications
CREATE TABLE IF NOT EXISTS applications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	area_id INTEGER NOT NULL,
	squad_id INTEGER,
	external INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (area_id) REFERENCES areas(id),
	FOREIGN KEY (squad_id) REFERENCES squads(id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_name ON applications(lower(trim(name)));
CREATE INDEX IF NOT EXISTS idx_applications_area ON applications(area_id);
CREATE INDEX IF NOT EXISTS idx_applications_squad ON applications(squad_id);

CREATE TABLE IF NOT EXISTS documents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	application_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	url TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (application_id) REFERENCES applications(id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_name ON documents(application_id, lower(trim(name)));
CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_url ON documents(application_id, lower(trim(url)));

-- Knowledge: squad_id_at_association is a snapshot, not a reference.
CREATE TABLE IF NOT EXISTS knowledge (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	member_id INTEGER NOT NULL,
	application_id INTEGER NOT NULL,
	squad_id_at_association INTEGER NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('current', 'past')) DEFAULT 'current',
	created_at DATETIME NOT NULL,
	FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
	FOREIGN KEY (application_id) REFERENCES applications(id)
);

CREATE INDEX IF NOT EXISTS idx_knowledge_member ON knowledge(member_id, status);
CREATE INDEX IF NOT EXISTS idx_knowledge_application ON knowledge(application_id);

-- Lifecycle records
CREATE TABLE IF NOT EXISTS feedbacks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	application_id INTEGER NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('open', 'closed', 'reopened')) DEFAULT 'open',
	created_at DATETIME NOT NULL,
	closed_at DATETIME,
	FOREIGN KEY (application_id) REFERENCES applications(id)
);

CREATE TABLE IF NOT EXISTS feedback_members (
	feedback_id INTEGER NOT NULL,
	member_id INTEGER NOT NULL,
	PRIMARY KEY (feedback_id, member_id),
	FOREIGN KEY (feedback_id) REFERENCES feedbacks(id) ON DELETE CASCADE,
	FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS incidents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	application_id INTEGER NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('open', 'closed', 'reopened')) DEFAULT 'open',
	created_at DATETIME NOT NULL,
	closed_at DATETIME,
	FOREIGN KEY (application_id) REFERENCES applications(id)
);

CREATE TABLE IF NOT EXISTS incident_members (
	incident_id INTEGER NOT NULL,
	member_id INTEGER NOT NULL,
	PRIMARY KEY (incident_id, member_id),
	FOREIGN KEY (incident_id) REFERENCES incidents(id) ON DELETE CASCADE,
	FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS improvements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	application_id INTEGER NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('open', 'closed', 'reopened')) DEFAULT 'open',
	created_at DATETIME NOT NULL,
	closed_at DATETIME,
	FOREIGN KEY (application_id) REFERENCES applications(id)
);

CREATE TABLE IF NOT EXISTS improvement_members (
	improvement_id INTEGER NOT NULL,
	member_id INTEGER NOT NULL,
	PRIMARY KEY (improvement_id, member_id),
	FOREIGN KEY (improvement_id) REFERENCES improvements(id) ON DELETE CASCADE,
	FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE
);

-- Supply chain
CREATE TABLE IF NOT EXISTS suppliers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	code TEXT NOT NULL,
	email TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_suppliers_name ON suppliers(lower(trim(name)));
CREATE UNIQUE INDEX IF NOT EXISTS idx_suppliers_code ON suppliers(lower(trim(code)));

CREATE TABLE IF NOT EXISTS vehicles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	chassis TEXT NOT NULL,
	model TEXT NOT NULL,
	year INTEGER NOT NULL CHECK(year > 0),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_vehicles_chassis ON vehicles(upper(trim(chassis)));

CREATE TABLE IF NOT EXISTS part_numbers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code TEXT NOT NULL,
	description TEXT NOT NULL,
	type TEXT NOT NULL CHECK(type IN ('internal', 'external')),
	supplier_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (supplier_id) REFERENCES suppliers(id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_part_numbers_code ON part_numbers(lower(trim(code)));
CREATE INDEX IF NOT EXISTS idx_part_numbers_supplier ON part_numbers(supplier_id);
` + auditLogSQL + notificationsSQL

// auditLogSQL was introduced by migration 1.
const auditLogSQL = `
CREATE TABLE IF NOT EXISTS audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	requester_id INTEGER,
	kind TEXT NOT NULL,
	entity_id INTEGER NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_audit_log_entity ON audit_log(kind, entity_id);
`

// notificationsSQL was introduced by migration 2.
const notificationsSQL = `
CREATE TABLE IF NOT EXISTS notifications (
	id TEXT PRIMARY KEY,
	event TEXT NOT NULL,
	kind TEXT NOT NULL,
	entity_id INTEGER,
	member_id INTEGER,
	message TEXT,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at);
`

// InitSchema brings database up to date. A fresh database gets the modern
// schema directly; an existing one runs its pending migrations.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if tableCount > 0 {
		return RunMigrations(database)
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := createVersionTable(database); err != nil {
		return err
	}
	// Mark all migrations as applied for fresh installs
	for v := 1; v <= LatestVersion(); v++ {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", v); err != nil {
			return fmt.Errorf("failed to record schema version %d: %w", v, err)
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
