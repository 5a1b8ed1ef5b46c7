package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/partsdir/partsdir/internal/catalog"
	"github.com/partsdir/partsdir/internal/database"
	sqldb "github.com/partsdir/partsdir/internal/database/sqlc"
)

// RequestMeta carries the caller identity attached to logged operations.
type RequestMeta struct {
	ClientID  string
	IP        string
	UserAgent string
}

// CatalogService exposes search and annotation operations over the catalog
// store. Search logging is best-effort: a failed log write is reported to the
// operational logger and never fails the search itself.
type CatalogService struct {
	ctx    *database.Context
	repo   *database.CatalogRepository
	search *database.CatalogSearchQuery
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(ctx *database.Context, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		ctx:    ctx,
		repo:   database.NewCatalogRepository(ctx),
		search: database.NewCatalogSearchQuery(ctx),
		logger: logger,
	}
}

// Search evaluates the filters against the catalog store and records the
// search in the log unless the filter set is empty.
func (s *CatalogService) Search(ctx context.Context, f catalog.Filters, meta RequestMeta) ([]database.CatalogRecord, error) {
	results, err := s.search.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	if !f.IsEmpty() {
		s.logSearch(ctx, f, int64(len(results)), meta)
	}

	return results, nil
}

func (s *CatalogService) logSearch(ctx context.Context, f catalog.Filters, resultsCount int64, meta RequestMeta) {
	q, err := s.queries()
	if err != nil {
		s.logger.Warn("search log skipped", zap.Error(err))
		return
	}

	err = q.InsertSearchLog(ctx, sqldb.InsertSearchLogParams{
		GroupFilter:   nullString(f.Group),
		ModelFilter:   nullString(f.Model),
		TypeFilter:    nullString(f.Type),
		CountryFilter: nullString(f.Country),
		Query:         nullString(f.Query),
		FavoritesOnly: boolToInt64(f.FavoritesOnly),
		ResultsCount:  resultsCount,
		ClientID:      nullString(meta.ClientID),
		Ip:            nullString(meta.IP),
		UserAgent:     nullString(meta.UserAgent),
	})
	if err != nil {
		s.logger.Warn("search log write failed", zap.Error(err))
	}
}

// GetByID retrieves a single catalog entry. Returns ErrNotFound when the id
// does not exist.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (*database.CatalogRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// ToggleFavorite flips the favorite flag of a catalog entry and returns the
// new value. Returns ErrNotFound when the id does not exist.
func (s *CatalogService) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	favorite, err := s.repo.ToggleFavorite(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return favorite, nil
}

// SetNote overwrites the engineer note of a catalog entry. An all-whitespace
// note clears the field. Returns ErrNotFound when the id does not exist.
func (s *CatalogService) SetNote(ctx context.Context, id int64, note string) error {
	updated, err := s.repo.UpdateNote(ctx, id, strings.TrimSpace(note))
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Facets returns the distinct filter values currently present in the store.
func (s *CatalogService) Facets(ctx context.Context) (database.FacetOptions, error) {
	return s.repo.Facets(ctx)
}

// Replace atomically swaps the full catalog set for the supplied records,
// carrying favorites and notes across by URL. Returns the stored count.
func (s *CatalogService) Replace(ctx context.Context, records []database.CatalogRecord) (int, error) {
	count, err := s.repo.ReplaceAll(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("replace catalogs: %w", err)
	}
	return count, nil
}

// Counts returns the catalog total and favorite total.
func (s *CatalogService) Counts(ctx context.Context) (total, favorites int64, err error) {
	return s.repo.Counts(ctx)
}

func (s *CatalogService) queries() (*sqldb.Queries, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("catalog service: missing database context")
	}
	if s.ctx.Queries == nil {
		if s.ctx.DB == nil {
			return nil, fmt.Errorf("catalog service: database handle not initialised")
		}
		s.ctx.Queries = sqldb.New(s.ctx.DB)
	}
	return s.ctx.Queries, nil
}
