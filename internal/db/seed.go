package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with demonstration data: two squads,
// their members, the applications they own and a few lifecycle records.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC()

	squads := []struct {
		id         int64
		name, desc string
	}{
		{1, "Payments", "Checkout, refunds and the ledger"},
		{2, "Logistics", "Routing and fleet"},
	}
	for _, s := range squads {
		if _, err := database.Exec(
			"INSERT INTO squads (id, name, description) VALUES (?, ?, ?)",
			s.id, s.name, s.desc,
		); err != nil {
			return fmt.Errorf("seed squads: %w", err)
		}
	}

	members := []struct {
		id                int64
		name, email, role string
		squadID           int64
	}{
		{1, "Lia Prado", "lia@example.com", "squad_leader", 1},
		{2, "Davi Costa", "davi@example.com", "developer", 1},
		{3, "Rui Alves", "rui@example.com", "squad_leader", 2},
		{4, "Eva Nunes", "eva@example.com", "product_owner", 2},
	}
	for _, m := range members {
		if _, err := database.Exec(
			"INSERT INTO members (id, name, email, role, squad_id) VALUES (?, ?, ?, ?, ?)",
			m.id, m.name, m.email, m.role, m.squadID,
		); err != nil {
			return fmt.Errorf("seed members: %w", err)
		}
	}

	if _, err := database.Exec("INSERT INTO areas (id, name, manager_id) VALUES (1, 'Digital Commerce', 1)"); err != nil {
		return fmt.Errorf("seed areas: %w", err)
	}

	apps := []struct {
		id       int64
		name     string
		squadID  int64
		external bool
	}{
		{1, "Checkout", 1, false},
		{2, "Ledger", 1, false},
		{3, "Fleet Tracker", 2, true},
	}
	for _, a := range apps {
		if _, err := database.Exec(
			"INSERT INTO applications (id, name, area_id, squad_id, external) VALUES (?, ?, 1, ?, ?)",
			a.id, a.name, a.squadID, a.external,
		); err != nil {
			return fmt.Errorf("seed applications: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO documents (application_id, name, url) VALUES (1, 'Runbook', 'https://wiki.example.com/checkout/runbook')",
	); err != nil {
		return fmt.Errorf("seed documents: %w", err)
	}

	knowledge := []struct{ memberID, appID, squadID int64 }{
		{1, 1, 1},
		{2, 1, 1},
		{2, 2, 1},
		{3, 3, 2},
	}
	for _, k := range knowledge {
		if _, err := database.Exec(
			"INSERT INTO knowledge (member_id, application_id, squad_id_at_association, status, created_at) VALUES (?, ?, ?, 'current', ?)",
			k.memberID, k.appID, k.squadID, now,
		); err != nil {
			return fmt.Errorf("seed knowledge: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO feedbacks (id, title, description, application_id, status, created_at) VALUES (1, 'Slow checkout', 'Payment step takes ten seconds', 1, 'open', ?)",
		now,
	); err != nil {
		return fmt.Errorf("seed feedbacks: %w", err)
	}
	if _, err := database.Exec("INSERT INTO feedback_members (feedback_id, member_id) VALUES (1, 1), (1, 2)"); err != nil {
		return fmt.Errorf("seed feedback members: %w", err)
	}

	if _, err := database.Exec("INSERT INTO suppliers (id, name, code, email) VALUES (1, 'Bosch', 'BSH', 'parts@bosch.example')"); err != nil {
		return fmt.Errorf("seed suppliers: %w", err)
	}
	if _, err := database.Exec(
		"INSERT INTO part_numbers (code, description, type, supplier_id) VALUES ('PN-1000', 'Brake pad', 'external', 1)",
	); err != nil {
		return fmt.Errorf("seed part numbers: %w", err)
	}
	if _, err := database.Exec("INSERT INTO vehicles (chassis, model, year) VALUES ('9BWZZZ377VT004251', 'Delivery Van', 2022)"); err != nil {
		return fmt.Errorf("seed vehicles: %w", err)
	}

	return nil
}
