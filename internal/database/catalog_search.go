package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/partsdir/partsdir/internal/catalog"
	sqldb "github.com/partsdir/partsdir/internal/database/sqlc"
)

// CatalogSearchQuery evaluates filter + free-text searches against the
// catalogs table. The free-text term list is variable length, so the WHERE
// clause is assembled here instead of living as a fixed sqlc statement.
type CatalogSearchQuery struct {
	ctx *Context
}

// NewCatalogSearchQuery creates a new CatalogSearchQuery.
func NewCatalogSearchQuery(dbCtx *Context) *CatalogSearchQuery {
	return &CatalogSearchQuery{ctx: dbCtx}
}

const searchCatalogColumns = `SELECT id, group_name, models, catalog_type, description, url, domain, country, catalog_number, part_numbers, status, is_favorite, engineer_note, created_at, updated_at
FROM catalogs`

// searchableFields are the columns a free-text term may match. Each term must
// match at least one of them; all terms must match (AND of terms, OR of
// fields per term).
var searchableFields = []string{"models", "description", "url", "catalog_number", "part_numbers"}

// Search returns the full matching set ordered with favorites pinned first,
// then by group name, models, and catalog type ascending.
func (q *CatalogSearchQuery) Search(ctx context.Context, f catalog.Filters) ([]CatalogRecord, error) {
	if q.ctx == nil || q.ctx.DB == nil {
		return nil, fmt.Errorf("catalog search: missing database context")
	}

	var (
		conds []string
		args  []any
	)

	if group := strings.TrimSpace(f.Group); group != "" {
		conds = append(conds, "group_name = ?")
		args = append(args, group)
	}
	if typ := strings.TrimSpace(f.Type); typ != "" {
		conds = append(conds, "catalog_type = ?")
		args = append(args, typ)
	}
	if country := strings.TrimSpace(f.Country); country != "" {
		conds = append(conds, "country = ?")
		args = append(args, strings.ToUpper(country))
	}
	if model := strings.TrimSpace(f.Model); model != "" {
		conds = append(conds, "LOWER(models) LIKE ?")
		args = append(args, likePattern(model))
	}
	if f.FavoritesOnly {
		conds = append(conds, "is_favorite != 0")
	}

	for _, term := range f.Terms() {
		fields := make([]string, 0, len(searchableFields))
		for _, col := range searchableFields {
			fields = append(fields, "LOWER("+col+") LIKE ?")
			args = append(args, likePattern(term))
		}
		conds = append(conds, "("+strings.Join(fields, " OR ")+")")
	}

	query := searchCatalogColumns
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY is_favorite DESC, group_name, models, catalog_type"

	rows, err := q.ctx.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CatalogRecord
	for rows.Next() {
		var c sqldb.Catalog
		if err := rows.Scan(
			&c.ID, &c.GroupName, &c.Models, &c.CatalogType, &c.Description,
			&c.Url, &c.Domain, &c.Country, &c.CatalogNumber, &c.PartNumbers,
			&c.Status, &c.IsFavorite, &c.EngineerNote, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, mapCatalogRow(c))
	}
	return result, rows.Err()
}

func likePattern(value string) string {
	return "%" + strings.ToLower(strings.TrimSpace(value)) + "%"
}
