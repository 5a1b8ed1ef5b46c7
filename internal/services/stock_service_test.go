package services

import (
	"context"
	"errors"
	"testing"

	"github.com/partsdir/partsdir/internal/database"
)

func TestStockServiceAddAndSearch(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewStockService(dbCtx)

	rows := []database.StockRecord{
		{PartNumber: "4181700", Name: "Pump seal kit", GroupName: "Hydraulics", Quantity: 4, Status: "in_stock"},
		{PartNumber: "9195238", Name: "Control valve", GroupName: "Hydraulics", Quantity: 1, Status: "low"},
		{PartNumber: "1123456789", Name: "Piston ring set", GroupName: "Engine", Quantity: 12, Status: "in_stock"},
	}
	for _, r := range rows {
		if _, err := svc.Add(ctx, r); err != nil {
			t.Fatalf("Add %q failed: %v", r.PartNumber, err)
		}
	}

	if _, err := svc.Add(ctx, database.StockRecord{Name: "no number"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation without part number, got %v", err)
	}

	hydraulics, err := svc.Search(ctx, database.StockFilters{Group: "Hydraulics"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hydraulics) != 2 {
		t.Fatalf("expected 2 hydraulics rows, got %d", len(hydraulics))
	}

	byName, err := svc.Search(ctx, database.StockFilters{Name: "VALVE"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byName) != 1 || byName[0].PartNumber != "9195238" {
		t.Fatalf("name substring search failed: %#v", byName)
	}

	groups, statuses, err := svc.FilterOptions(ctx)
	if err != nil {
		t.Fatalf("FilterOptions failed: %v", err)
	}
	if len(groups) != 2 || len(statuses) != 2 {
		t.Fatalf("unexpected filter options: %v %v", groups, statuses)
	}
}
