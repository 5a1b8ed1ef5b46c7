package database

import (
	"context"
	"errors"
	"testing"

	"github.com/partsdir/partsdir/internal/catalog"
)

func testCatalogs() []CatalogRecord {
	return []CatalogRecord{
		{
			GroupName:   "Hydraulics",
			Models:      "EX200",
			CatalogType: "PDF",
			Description: "Pump assemblies",
			URL:         "https://parts.example.com/ex200",
			Domain:      "parts.example.com",
			Country:     "COM",
			PartNumbers: "4181700",
		},
		{
			GroupName:   "Engine",
			Models:      "6BG1",
			CatalogType: "Online",
			Description: "Engine parts book",
			URL:         "https://engine.example.de/6bg1",
			Domain:      "engine.example.de",
			Country:     "DE",
		},
	}
}

func TestCatalogRepositoryFindByIDMissing(t *testing.T) {
	dbCtx := setupTestDB(t)
	repo := NewCatalogRepository(dbCtx)

	record, err := repo.FindByID(context.Background(), 12345)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil for missing id, got %#v", record)
	}
}

func TestCatalogRepositoryReplaceAll(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(dbCtx)

	count, err := repo.ReplaceAll(ctx, testCatalogs())
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows stored, got %d", count)
	}

	total, _, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}

	// Status defaults to current when the import leaves it blank.
	search := NewCatalogSearchQuery(dbCtx)
	all, err := search.Search(ctx, catalog.Filters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	for _, r := range all {
		if r.Status != "current" {
			t.Fatalf("expected default status current, got %q", r.Status)
		}
	}

	// Replacing with fewer rows fully swaps the set.
	if _, err := repo.ReplaceAll(ctx, testCatalogs()[:1]); err != nil {
		t.Fatalf("second ReplaceAll failed: %v", err)
	}
	total, _, err = repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected total 1 after swap, got %d", total)
	}
}

func TestCatalogRepositoryReplaceAllRejectsInvalidURL(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(dbCtx)

	if _, err := repo.ReplaceAll(ctx, testCatalogs()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	bad := []CatalogRecord{
		{URL: "https://ok.example.com/a"},
		{URL: "ftp://bad.example.com/b"},
	}
	if _, err := repo.ReplaceAll(ctx, bad); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}

	// The previous set must be fully intact after the rejected refresh.
	total, _, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("rejected refresh mutated the store: %d rows", total)
	}
}

func TestCatalogRepositoryToggleFavorite(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(dbCtx)

	if _, err := repo.ReplaceAll(ctx, testCatalogs()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	search := NewCatalogSearchQuery(dbCtx)
	all, err := search.Search(ctx, catalog.Filters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	id := all[0].ID

	on, err := repo.ToggleFavorite(ctx, id)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !on {
		t.Fatalf("expected favorite on after first toggle")
	}

	_, favorites, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if favorites != 1 {
		t.Fatalf("expected 1 favorite, got %d", favorites)
	}

	if _, err := repo.ToggleFavorite(ctx, 99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogRepositoryFacetsFromLiveData(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(dbCtx)

	if _, err := repo.ReplaceAll(ctx, testCatalogs()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	facets, err := repo.Facets(ctx)
	if err != nil {
		t.Fatalf("Facets failed: %v", err)
	}
	if len(facets.Groups) != 2 || len(facets.Types) != 2 {
		t.Fatalf("unexpected facets: %#v", facets)
	}
	if len(facets.Countries) != 2 || facets.Countries[0] != "COM" || facets.Countries[1] != "DE" {
		t.Fatalf("countries must come from domains, sorted: %v", facets.Countries)
	}

	// Facets follow the data: shrink the set, the options shrink too.
	if _, err := repo.ReplaceAll(ctx, testCatalogs()[:1]); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	facets, err = repo.Facets(ctx)
	if err != nil {
		t.Fatalf("Facets failed: %v", err)
	}
	if len(facets.Groups) != 1 || len(facets.Countries) != 1 {
		t.Fatalf("facets not recomputed from live data: %#v", facets)
	}
}

func TestCatalogSearchFilterCombinations(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(dbCtx)
	search := NewCatalogSearchQuery(dbCtx)

	if _, err := repo.ReplaceAll(ctx, testCatalogs()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	cases := []struct {
		name    string
		filters catalog.Filters
		want    int
	}{
		{"no filters", catalog.Filters{}, 2},
		{"group", catalog.Filters{Group: "Hydraulics"}, 1},
		{"group and type mismatch", catalog.Filters{Group: "Hydraulics", Type: "Online"}, 0},
		{"country lowercase input", catalog.Filters{Country: "de"}, 1},
		{"model fragment", catalog.Filters{Model: "6bg"}, 1},
		{"text in url", catalog.Filters{Query: "ex200"}, 1},
		{"text no match", catalog.Filters{Query: "ex200 engine"}, 0},
	}

	for _, tc := range cases {
		results, err := search.Search(ctx, tc.filters)
		if err != nil {
			t.Fatalf("%s: Search failed: %v", tc.name, err)
		}
		if len(results) != tc.want {
			t.Fatalf("%s: expected %d results, got %d", tc.name, tc.want, len(results))
		}
	}
}

func TestCatalogRepositoryUpdateNote(t *testing.T) {
	dbCtx := setupTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(dbCtx)

	if _, err := repo.ReplaceAll(ctx, testCatalogs()); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	search := NewCatalogSearchQuery(dbCtx)
	all, err := search.Search(ctx, catalog.Filters{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	id := all[0].ID

	updated, err := repo.UpdateNote(ctx, id, "order two")
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if !updated {
		t.Fatalf("expected update to hit a row")
	}

	record, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if record.EngineerNote != "order two" {
		t.Fatalf("note not stored: %q", record.EngineerNote)
	}

	updated, err = repo.UpdateNote(ctx, 99999, "x")
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if updated {
		t.Fatalf("expected no rows for missing id")
	}
}
