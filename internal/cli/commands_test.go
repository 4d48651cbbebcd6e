package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes one command line against a fresh command tree.
func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", cfgPath))
	err := root.Execute()
	return out.String(), err
}

// The wire container is built once per process, so every scenario shares
// the database configured here.
func TestCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "database:\n  path: " + filepath.Join(dir, "portfolio.db") + `
locale: en
log:
  level: error
metrics:
  enabled: true
notifications:
  sink: outbox
paging:
  default_page_size: 5
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Run("create squad", func(t *testing.T) {
		out, err := run(t, cfgPath, "squad", "create", "--name", "Payments", "-d", "Checkout and refunds")
		if err != nil {
			t.Fatalf("squad create failed: %v\n%s", err, out)
		}
		if !strings.Contains(out, "id: 1") {
			t.Errorf("expected assigned id in output, got:\n%s", out)
		}
	})

	t.Run("create member", func(t *testing.T) {
		out, err := run(t, cfgPath, "member", "create",
			"--name", "Ana Lima", "--email", "ana@example.com", "--role", "Squad_Leader", "--squad", "1")
		if err != nil {
			t.Fatalf("member create failed: %v\n%s", err, out)
		}
	})

	t.Run("duplicate squad is rejected", func(t *testing.T) {
		out, err := run(t, cfgPath, "squad", "create", "--name", "  payments ")
		if err == nil {
			t.Fatalf("expected duplicate squad to fail, got:\n%s", out)
		}
		if !strings.Contains(out, "✗") {
			t.Errorf("expected failure mark in output, got:\n%s", out)
		}
	})

	t.Run("list squads", func(t *testing.T) {
		out, err := run(t, cfgPath, "squad", "list")
		if err != nil {
			t.Fatalf("squad list failed: %v", err)
		}
		if !strings.Contains(out, "Payments") {
			t.Errorf("expected Payments in list, got:\n%s", out)
		}
		if !strings.Contains(out, "page 1 of 1 (1 total)") {
			t.Errorf("expected page footer, got:\n%s", out)
		}
	})

	t.Run("update without fields", func(t *testing.T) {
		_, err := run(t, cfgPath, "squad", "update", "1")
		if !errors.Is(err, errNoChanges) {
			t.Errorf("expected errNoChanges, got %v", err)
		}
	})

	t.Run("update squad", func(t *testing.T) {
		out, err := run(t, cfgPath, "squad", "update", "1", "-d", "Payments platform")
		if err != nil {
			t.Fatalf("squad update failed: %v\n%s", err, out)
		}
		out, err = run(t, cfgPath, "squad", "show", "1")
		if err != nil {
			t.Fatalf("squad show failed: %v", err)
		}
		if !strings.Contains(out, "Payments platform") || !strings.Contains(out, "Payments") {
			t.Errorf("expected updated description and kept name, got:\n%s", out)
		}
	})

	t.Run("show rejects prefixed id", func(t *testing.T) {
		_, err := run(t, cfgPath, "squad", "show", "SQD-1")
		if err == nil || !strings.Contains(err.Error(), "bare number") {
			t.Errorf("expected prefixed id error, got %v", err)
		}
	})

	t.Run("show missing record", func(t *testing.T) {
		_, err := run(t, cfgPath, "squad", "show", "99")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("audit trail", func(t *testing.T) {
		out, err := run(t, cfgPath, "audit", "--kind", "squad")
		if err != nil {
			t.Fatalf("audit failed: %v", err)
		}
		if !strings.Contains(out, "create") || !strings.Contains(out, "update") {
			t.Errorf("expected create and update entries, got:\n%s", out)
		}
	})

	t.Run("empty notifications", func(t *testing.T) {
		out, err := run(t, cfgPath, "notifications", "list")
		if err != nil {
			t.Fatalf("notifications failed: %v", err)
		}
		if !strings.Contains(out, "No notifications found") {
			t.Errorf("expected empty outbox, got:\n%s", out)
		}
	})
}
