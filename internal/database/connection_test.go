package database

import (
	"context"
	"testing"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	ctx, err := CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("CreateDatabase error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func TestCreateDatabaseAppliesMigrations(t *testing.T) {
	dbCtx := setupTestDB(t)

	tables := []string{
		"catalogs", "search_logs", "saved_queries", "part_requests",
		"access_logs", "catalog_click_logs", "parts_stock",
	}
	for _, table := range tables {
		var name string
		err := dbCtx.DB.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing after migrations: %v", table, err)
		}
	}
}

func TestClearDatabase(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()

	repo := NewCatalogRepository(dbCtx)
	if _, err := repo.ReplaceAll(ctx, []CatalogRecord{
		{URL: "https://parts.example.com/a"},
		{URL: "https://parts.example.com/b"},
	}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	if err := ClearDatabase(dbCtx); err != nil {
		t.Fatalf("ClearDatabase failed: %v", err)
	}

	total, _, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected empty store after clear, got %d rows", total)
	}
}

func TestCloseDatabaseNilSafe(t *testing.T) {
	if err := CloseDatabase(nil); err != nil {
		t.Fatalf("CloseDatabase(nil) returned %v", err)
	}
	if err := ClearDatabase(nil); err != nil {
		t.Fatalf("ClearDatabase(nil) returned %v", err)
	}
}
