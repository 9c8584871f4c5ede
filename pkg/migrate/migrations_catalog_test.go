package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mobimart/mobimart-backend/pkg/migrate"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration file matching %q found", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestProductsMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"original_price DOUBLE PRECISION",
		"review_count BIGINT",
		"in_stock BOOLEAN",
		"CREATE INDEX IF NOT EXISTS idx_products_category",
		"CREATE INDEX IF NOT EXISTS idx_products_rating",
		"CREATE INDEX IF NOT EXISTS idx_products_review_count",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestOffersMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_offers_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS offers",
		"discount_percentage DOUBLE PRECISION",
		"start_date TIMESTAMPTZ",
		"end_date TIMESTAMPTZ",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_offers_code",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestOrdersMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_orders_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS orders",
		"order_date TIMESTAMPTZ NOT NULL",
		"order_status TEXT NOT NULL DEFAULT 'Pending'",
		"CREATE INDEX IF NOT EXISTS idx_orders_order_date",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestCreateSQLMigrationSanitizesName(t *testing.T) {
	dir := t.TempDir()

	path, err := migrate.CreateSQLMigration(dir, "Add Offer Codes!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_offer_codes.sql") {
		t.Fatalf("unexpected migration filename %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created migration: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "-- +goose Up") || !strings.Contains(content, "-- +goose Down") {
		t.Fatalf("created migration missing goose markers:\n%s", content)
	}

	if err := migrate.ValidateDir(dir); err != nil {
		t.Fatalf("created migration failed validation: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "create_stuff.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := migrate.ValidateDir(dir); err == nil {
		t.Fatal("expected validation error for unversioned filename")
	}
}
