package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/partsdir/partsdir/internal/database"
)

// StockService exposes warehouse stock lookups alongside the catalog search.
type StockService struct {
	repo *database.StockRepository
}

// NewStockService creates a new StockService.
func NewStockService(ctx *database.Context) *StockService {
	return &StockService{repo: database.NewStockRepository(ctx)}
}

// Add stores a stock row. The part number is required.
func (s *StockService) Add(ctx context.Context, rec database.StockRecord) (int64, error) {
	if strings.TrimSpace(rec.PartNumber) == "" {
		return 0, fmt.Errorf("%w: stock part number is required", ErrValidation)
	}
	return s.repo.Insert(ctx, rec)
}

// Search returns stock rows matching the filters.
func (s *StockService) Search(ctx context.Context, f database.StockFilters) ([]database.StockRecord, error) {
	return s.repo.Search(ctx, f)
}

// FilterOptions returns the distinct groups and statuses present in stock.
func (s *StockService) FilterOptions(ctx context.Context) (groups, statuses []string, err error) {
	return s.repo.FilterOptions(ctx)
}
