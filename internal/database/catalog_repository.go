package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/partsdir/partsdir/internal/catalog"
	sqldb "github.com/partsdir/partsdir/internal/database/sqlc"
)

// CatalogRepository persists catalog entries and their per-entry annotations.
type CatalogRepository struct {
	ctx *Context
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(dbCtx *Context) *CatalogRepository {
	return &CatalogRepository{ctx: dbCtx}
}

// FindByID returns the catalog entry with the given id, or nil when missing.
func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*CatalogRecord, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("catalog repository: missing database context")
	}

	row, err := queries.FindCatalogByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	record := mapCatalogRow(row)
	return &record, nil
}

// ReplaceAll swaps the full catalog table for the supplied records inside a
// single transaction, so concurrent readers observe either the old or the new
// set. Favorite flags and engineer notes are carried across the swap by
// matching on the URL natural key, since row ids change on every refresh.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, records []CatalogRecord) (int, error) {
	if r.ctx == nil || r.ctx.DB == nil {
		return 0, fmt.Errorf("catalog repository: missing database context")
	}

	for _, rec := range records {
		if !catalog.HasScheme(rec.URL) {
			return 0, fmt.Errorf("%w: url %q", ErrInvalidCatalog, rec.URL)
		}
	}

	tx, err := r.ctx.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	queries := sqldb.New(tx)

	annotations, err := queries.ListCatalogAnnotations(ctx)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	type annotation struct {
		favorite bool
		note     string
	}
	kept := make(map[string]annotation, len(annotations))
	for _, a := range annotations {
		kept[a.Url] = annotation{favorite: a.IsFavorite != 0, note: optionalString(a.EngineerNote)}
	}

	if err := queries.DeleteAllCatalogs(ctx); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	for _, rec := range records {
		status := rec.Status
		if status == "" {
			status = "current"
		}
		favorite := rec.IsFavorite
		note := rec.EngineerNote
		if prev, ok := kept[rec.URL]; ok {
			favorite = favorite || prev.favorite
			if note == "" {
				note = prev.note
			}
		}
		if _, err := queries.InsertCatalog(ctx, sqldb.InsertCatalogParams{
			GroupName:     nullString(rec.GroupName),
			Models:        nullString(rec.Models),
			CatalogType:   nullString(rec.CatalogType),
			Description:   nullString(rec.Description),
			Url:           rec.URL,
			Domain:        nullString(rec.Domain),
			Country:       nullString(rec.Country),
			CatalogNumber: nullString(rec.CatalogNumber),
			PartNumbers:   nullString(rec.PartNumbers),
			Status:        status,
			IsFavorite:    boolToInt64(favorite),
			EngineerNote:  nullString(note),
		}); err != nil {
			_ = tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return 0, err
	}

	return len(records), nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
// Returns ErrNotFound when the id does not exist.
func (r *CatalogRepository) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	if r.ctx == nil || r.ctx.DB == nil {
		return false, fmt.Errorf("catalog repository: missing database context")
	}

	tx, err := r.ctx.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}

	queries := sqldb.New(tx)

	affected, err := queries.ToggleCatalogFavorite(ctx, id)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	if affected == 0 {
		_ = tx.Rollback()
		return false, ErrNotFound
	}

	row, err := queries.FindCatalogByID(ctx, id)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return false, err
	}

	return row.IsFavorite != 0, nil
}

// UpdateNote overwrites the engineer note. Returns false when the id does not
// exist.
func (r *CatalogRepository) UpdateNote(ctx context.Context, id int64, note string) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("catalog repository: missing database context")
	}

	affected, err := queries.UpdateCatalogNote(ctx, sqldb.UpdateCatalogNoteParams{
		EngineerNote: nullString(note),
		ID:           id,
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Facets returns the distinct non-empty filter values currently in the store,
// recomputed from live data on every call.
func (r *CatalogRepository) Facets(ctx context.Context) (FacetOptions, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return FacetOptions{}, fmt.Errorf("catalog repository: missing database context")
	}

	groups, err := queries.ListCatalogGroups(ctx)
	if err != nil {
		return FacetOptions{}, err
	}
	types, err := queries.ListCatalogTypes(ctx)
	if err != nil {
		return FacetOptions{}, err
	}
	domains, err := queries.ListCatalogDomains(ctx)
	if err != nil {
		return FacetOptions{}, err
	}

	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for _, domain := range domains {
		code := catalog.CountryFromDomain(domain)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		countries = append(countries, code)
	}
	sort.Strings(countries)

	return FacetOptions{Groups: groups, Types: types, Countries: countries}, nil
}

// Counts returns the catalog total and favorite total.
func (r *CatalogRepository) Counts(ctx context.Context) (total, favorites int64, err error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, 0, fmt.Errorf("catalog repository: missing database context")
	}

	total, err = queries.CountCatalogs(ctx)
	if err != nil {
		return 0, 0, err
	}
	favorites, err = queries.CountCatalogFavorites(ctx)
	if err != nil {
		return 0, 0, err
	}
	return total, favorites, nil
}
