// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test files;
// use setupTestDB() and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/portfolio/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// Each connection to :memory: is its own database, so the pool is pinned to one.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func seedExec(t *testing.T, testDB *sql.DB, what, query string, args ...any) int64 {
	t.Helper()
	res, err := testDB.Exec(query, args...)
	if err != nil {
		t.Fatalf("failed to seed %s: %v", what, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read %s id: %v", what, err)
	}
	return id
}

// seedSquad inserts a squad and returns its ID.
func seedSquad(t *testing.T, testDB *sql.DB, name string) int64 {
	t.Helper()
	return seedExec(t, testDB, "squad", "INSERT INTO squads (name) VALUES (?)", name)
}

// seedMember inserts a member and returns its ID.
func seedMember(t *testing.T, testDB *sql.DB, name, email, role string, squadID int64) int64 {
	t.Helper()
	return seedExec(t, testDB, "member",
		"INSERT INTO members (name, email, role, squad_id) VALUES (?, ?, ?, ?)",
		name, email, role, squadID)
}

// seedArea inserts an area without a manager and returns its ID.
func seedArea(t *testing.T, testDB *sql.DB, name string) int64 {
	t.Helper()
	return seedExec(t, testDB, "area", "INSERT INTO areas (name) VALUES (?)", name)
}

// seedApplication inserts an application and returns its ID. squadID 0 leaves it unassigned.
func seedApplication(t *testing.T, testDB *sql.DB, name string, areaID, squadID int64) int64 {
	t.Helper()
	var squad any
	if squadID > 0 {
		squad = squadID
	}
	return seedExec(t, testDB, "application",
		"INSERT INTO applications (name, area_id, squad_id) VALUES (?, ?, ?)",
		name, areaID, squad)
}

// seedKnowledge inserts an association and returns its ID.
func seedKnowledge(t *testing.T, testDB *sql.DB, memberID, appID, squadID int64, status string) int64 {
	t.Helper()
	return seedExec(t, testDB, "knowledge",
		"INSERT INTO knowledge (member_id, application_id, squad_id_at_association, status, created_at) VALUES (?, ?, ?, ?, ?)",
		memberID, appID, squadID, status, time.Now().UTC())
}

// seedSupplier inserts a supplier and returns its ID.
func seedSupplier(t *testing.T, testDB *sql.DB, name, code string) int64 {
	t.Helper()
	return seedExec(t, testDB, "supplier", "INSERT INTO suppliers (name, code) VALUES (?, ?)", name, code)
}

// fixture is a small organization shared by several tests.
type fixture struct {
	squadID  int64
	leaderID int64
	devID    int64
	areaID   int64
	appID    int64
}

func seedFixture(t *testing.T, testDB *sql.DB) fixture {
	t.Helper()
	var f fixture
	f.squadID = seedSquad(t, testDB, "Payments")
	f.leaderID = seedMember(t, testDB, "Ana Lima", "ana@example.com", "squad_leader", f.squadID)
	f.devID = seedMember(t, testDB, "Bruno Reis", "bruno@example.com", "developer", f.squadID)
	f.areaID = seedArea(t, testDB, "Finance")
	f.appID = seedApplication(t, testDB, "Checkout", f.areaID, f.squadID)
	return f
}
