package services

import (
	"context"
	"testing"

	"github.com/partsdir/partsdir/internal/catalog"
)

type staticResolver struct {
	country, city string
	calls         int
}

func (r *staticResolver) Lookup(string) (string, string) {
	r.calls++
	return r.country, r.city
}

func TestAnalyticsServiceRecordAccess(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	resolver := &staticResolver{country: "DE", city: "Berlin"}
	svc := NewAnalyticsService(dbCtx, resolver, nil)

	svc.RecordAccess(ctx, Visit{Path: "/catalogs", Method: "GET"}, RequestMeta{IP: "203.0.113.9", UserAgent: "cli"})
	svc.RecordAccess(ctx, Visit{Path: "/static/app.css", Method: "GET"}, RequestMeta{IP: "203.0.113.9"})
	svc.RecordAccess(ctx, Visit{Path: "/favicon.ico", Method: "GET"}, RequestMeta{IP: "203.0.113.9"})

	stats, err := svc.Access(ctx, 10)
	if err != nil {
		t.Fatalf("Access failed: %v", err)
	}
	if stats.TotalRequests != 1 {
		t.Fatalf("static and favicon paths must be skipped, got %d rows", stats.TotalRequests)
	}
	if len(stats.Recent) != 1 || stats.Recent[0].Country != "DE" || stats.Recent[0].City != "Berlin" {
		t.Fatalf("geo enrichment missing: %#v", stats.Recent)
	}
}

func TestAnalyticsServicePrivateIPSkipsResolver(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	resolver := &staticResolver{country: "DE"}
	svc := NewAnalyticsService(dbCtx, resolver, nil)

	for _, ip := range []string{"192.168.1.10", "127.0.0.1", "not-an-ip", ""} {
		svc.RecordAccess(ctx, Visit{Path: "/catalogs", Method: "GET"}, RequestMeta{IP: ip})
	}
	if resolver.calls != 0 {
		t.Fatalf("resolver called %d times for private addresses", resolver.calls)
	}

	stats, err := svc.Access(ctx, 10)
	if err != nil {
		t.Fatalf("Access failed: %v", err)
	}
	if stats.TotalRequests != 4 {
		t.Fatalf("expected 4 rows without geo data, got %d", stats.TotalRequests)
	}
	for _, rec := range stats.Recent {
		if rec.Country != "" || rec.City != "" {
			t.Fatalf("private address got geo data: %#v", rec)
		}
	}
}

func TestAnalyticsServiceClickAggregation(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	catalogSvc := NewCatalogService(dbCtx, nil)
	svc := NewAnalyticsService(dbCtx, nil, nil)
	seedCatalogs(t, catalogSvc)

	all, err := catalogSvc.Search(ctx, catalog.Filters{}, RequestMeta{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	svc.RecordClick(ctx, all[0].ID, "", RequestMeta{ClientID: "c1"})
	svc.RecordClick(ctx, all[0].ID, "", RequestMeta{ClientID: "c2"})
	svc.RecordClick(ctx, all[1].ID, "", RequestMeta{ClientID: "c1"})
	svc.RecordClick(ctx, 0, "", RequestMeta{}) // ignored

	stats, err := svc.Usage(ctx, 10)
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if stats.TotalClicks != 3 {
		t.Fatalf("expected 3 clicks, got %d", stats.TotalClicks)
	}
	if len(stats.TopCatalogs) != 2 {
		t.Fatalf("expected 2 clicked catalogs, got %d", len(stats.TopCatalogs))
	}
	if stats.TopCatalogs[0].CatalogID != all[0].ID || stats.TopCatalogs[0].Count != 2 {
		t.Fatalf("unexpected top clicked catalog: %#v", stats.TopCatalogs[0])
	}
	if stats.TotalCatalogs != 3 {
		t.Fatalf("expected 3 catalogs in usage stats, got %d", stats.TotalCatalogs)
	}
}

func TestAnalyticsServiceUsageCountsSearches(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	catalogSvc := NewCatalogService(dbCtx, nil)
	svc := NewAnalyticsService(dbCtx, nil, nil)
	seedCatalogs(t, catalogSvc)

	queries := []catalog.Filters{
		{Group: "Hydraulics"},
		{Group: "Hydraulics", Query: "valve"},
		{Group: "Engine"},
	}
	for _, f := range queries {
		if _, err := catalogSvc.Search(ctx, f, RequestMeta{}); err != nil {
			t.Fatalf("Search failed: %v", err)
		}
	}

	stats, err := svc.Usage(ctx, 10)
	if err != nil {
		t.Fatalf("Usage failed: %v", err)
	}
	if stats.TotalSearches != 3 {
		t.Fatalf("expected 3 logged searches, got %d", stats.TotalSearches)
	}
	if len(stats.TopGroups) == 0 || stats.TopGroups[0].Value != "Hydraulics" || stats.TopGroups[0].Count != 2 {
		t.Fatalf("unexpected top groups: %#v", stats.TopGroups)
	}
}
