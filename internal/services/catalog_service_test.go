package services

import (
	"context"
	"errors"
	"testing"

	"github.com/partsdir/partsdir/internal/catalog"
	"github.com/partsdir/partsdir/internal/database"
)

func setupServiceDB(t *testing.T) *database.Context {
	t.Helper()
	ctx, err := database.CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("CreateDatabase error: %v", err)
	}

	t.Cleanup(func() {
		if err := database.CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func seedCatalogs(t *testing.T, svc *CatalogService) []database.CatalogRecord {
	t.Helper()

	records := []database.CatalogRecord{
		{
			GroupName:   "Hydraulics",
			Models:      "EX200 EX300",
			CatalogType: "PDF",
			Description: "Hydraulic pump and valve assemblies",
			URL:         "https://parts.example.com/hydraulics/ex200",
			Domain:      "parts.example.com",
			Country:     "COM",
			PartNumbers: "4181700 9101532",
		},
		{
			GroupName:   "Hydraulics",
			Models:      "ZX330",
			CatalogType: "Online",
			Description: "Control valve spares listing",
			URL:         "https://katalog.example.de/zx330",
			Domain:      "katalog.example.de",
			Country:     "DE",
			PartNumbers: "9195238",
		},
		{
			GroupName:   "Engine",
			Models:      "6BG1",
			CatalogType: "PDF",
			Description: "Engine overhaul parts book",
			URL:         "https://engine.example.jp/6bg1",
			Domain:      "engine.example.jp",
			Country:     "JP",
			PartNumbers: "1123456789",
		},
	}

	if _, err := svc.Replace(context.Background(), records); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	return records
}

func TestCatalogServiceSearchTermsAreANDed(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	results, err := svc.Search(ctx, catalog.Filters{Query: "hydraulic valve"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Models != "EX200 EX300" {
		t.Fatalf("unexpected match: %#v", results[0])
	}

	// Term order must not matter.
	swapped, err := svc.Search(ctx, catalog.Filters{Query: "valve hydraulic"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(swapped) != 1 || swapped[0].ID != results[0].ID {
		t.Fatalf("term order changed the result set: %#v", swapped)
	}
}

func TestCatalogServiceSearchMatchesAnyField(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	// Part number only lives in part_numbers; model fragment only in models.
	byPart, err := svc.Search(ctx, catalog.Filters{Query: "9195238"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byPart) != 1 || byPart[0].Models != "ZX330" {
		t.Fatalf("part number search failed: %#v", byPart)
	}

	byModel, err := svc.Search(ctx, catalog.Filters{Model: "ex2"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Models != "EX200 EX300" {
		t.Fatalf("model fragment search failed: %#v", byModel)
	}
}

func TestCatalogServiceSearchCaseInsensitive(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	upper, err := svc.Search(ctx, catalog.Filters{Query: "HYDRAULIC"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	lower, err := svc.Search(ctx, catalog.Filters{Query: "hydraulic"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(upper) != len(lower) || len(upper) == 0 {
		t.Fatalf("case changed the result set: %d vs %d", len(upper), len(lower))
	}
}

func TestCatalogServiceFavoritesPinnedFirst(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	all, err := svc.Search(ctx, catalog.Filters{}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// Mark the last row favorite; it must surface to the top.
	last := all[len(all)-1]
	if _, err := svc.ToggleFavorite(ctx, last.ID); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}

	reordered, err := svc.Search(ctx, catalog.Filters{}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if reordered[0].ID != last.ID || !reordered[0].IsFavorite {
		t.Fatalf("favorite not pinned first: %#v", reordered[0])
	}
}

func TestCatalogServiceToggleFavoritePairRestores(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	all, err := svc.Search(ctx, catalog.Filters{}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	id := all[0].ID

	first, err := svc.ToggleFavorite(ctx, id)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !first {
		t.Fatalf("expected first toggle to set the flag")
	}
	second, err := svc.ToggleFavorite(ctx, id)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if second {
		t.Fatalf("expected second toggle to clear the flag")
	}

	if _, err := svc.ToggleFavorite(ctx, 99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestCatalogServiceSetNote(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	all, err := svc.Search(ctx, catalog.Filters{}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	id := all[0].ID

	if err := svc.SetNote(ctx, id, "  check seal kit availability  "); err != nil {
		t.Fatalf("SetNote failed: %v", err)
	}
	got, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.EngineerNote != "check seal kit availability" {
		t.Fatalf("note not trimmed and stored: %q", got.EngineerNote)
	}

	if err := svc.SetNote(ctx, id, "   "); err != nil {
		t.Fatalf("SetNote clear failed: %v", err)
	}
	got, err = svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.EngineerNote != "" {
		t.Fatalf("blank note should clear the field, got %q", got.EngineerNote)
	}

	if err := svc.SetNote(ctx, 99999, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestCatalogServiceFacets(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	facets, err := svc.Facets(ctx)
	if err != nil {
		t.Fatalf("Facets failed: %v", err)
	}
	if len(facets.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %v", facets.Groups)
	}
	if len(facets.Types) != 2 {
		t.Fatalf("expected 2 types, got %v", facets.Types)
	}
	// Countries derive from the stored domains, uppercased.
	want := map[string]bool{"COM": true, "DE": true, "JP": true}
	for _, c := range facets.Countries {
		if !want[c] {
			t.Fatalf("unexpected country facet %q", c)
		}
	}
	if len(facets.Countries) != len(want) {
		t.Fatalf("expected %d countries, got %v", len(want), facets.Countries)
	}
}

func TestCatalogServiceReplacePreservesAnnotations(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	records := seedCatalogs(t, svc)

	all, err := svc.Search(ctx, catalog.Filters{}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	var target database.CatalogRecord
	for _, r := range all {
		if r.URL == records[0].URL {
			target = r
		}
	}
	if _, err := svc.ToggleFavorite(ctx, target.ID); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if err := svc.SetNote(ctx, target.ID, "good source"); err != nil {
		t.Fatalf("SetNote failed: %v", err)
	}

	// Re-import the same set; ids change but annotations must survive by URL.
	if _, err := svc.Replace(ctx, records); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	refreshed, err := svc.Search(ctx, catalog.Filters{FavoritesOnly: true}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(refreshed) != 1 {
		t.Fatalf("expected 1 favorite after refresh, got %d", len(refreshed))
	}
	if refreshed[0].URL != records[0].URL || refreshed[0].EngineerNote != "good source" {
		t.Fatalf("annotations lost across refresh: %#v", refreshed[0])
	}
}

func TestCatalogServiceReplaceRejectsBadURL(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	seedCatalogs(t, svc)

	_, err := svc.Replace(ctx, []database.CatalogRecord{{URL: "not-a-url"}})
	if !errors.Is(err, database.ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}

	// A failed replace must leave the previous set intact.
	all, err := svc.Search(ctx, catalog.Filters{}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("failed replace mutated the store: %d rows", len(all))
	}
}

func TestCatalogServiceSearchLogging(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewCatalogService(dbCtx, nil)
	analytics := NewAnalyticsService(dbCtx, nil, nil)
	seedCatalogs(t, svc)

	// An empty filter set is not logged.
	if _, err := svc.Search(ctx, catalog.Filters{}, RequestMeta{}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// A non-empty one is.
	if _, err := svc.Search(ctx, catalog.Filters{Query: "valve"}, RequestMeta{ClientID: "c1"}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	recent, err := analytics.RecentSearches(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSearches failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 logged search, got %d", len(recent))
	}
	if recent[0].Filters.Query != "valve" || recent[0].ClientID != "c1" {
		t.Fatalf("unexpected search log: %#v", recent[0])
	}
	if recent[0].ResultsCount != 2 {
		t.Fatalf("expected results_count 2, got %d", recent[0].ResultsCount)
	}
}
