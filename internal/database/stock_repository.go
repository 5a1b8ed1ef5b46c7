package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sqldb "github.com/partsdir/partsdir/internal/database/sqlc"
)

// StockFilters narrows a warehouse stock search. Part number and name match
// as case-insensitive substrings; group and status match exactly.
type StockFilters struct {
	PartNumber string
	Name       string
	Group      string
	Status     string
}

// StockRepository persists warehouse stock rows.
type StockRepository struct {
	ctx *Context
}

// NewStockRepository creates a new StockRepository.
func NewStockRepository(dbCtx *Context) *StockRepository {
	return &StockRepository{ctx: dbCtx}
}

// Insert adds a stock row and returns its id.
func (r *StockRepository) Insert(ctx context.Context, rec StockRecord) (int64, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return 0, fmt.Errorf("stock repository: missing database context")
	}

	res, err := queries.InsertStock(ctx, sqldb.InsertStockParams{
		PartNumber:   nullString(rec.PartNumber),
		Name:         nullString(rec.Name),
		GroupName:    nullString(rec.GroupName),
		Models:       nullString(rec.Models),
		Quantity:     nullFloat64(rec.Quantity),
		MinQuantity:  nullFloat64(rec.MinQuantity),
		Location:     nullString(rec.Location),
		Status:       nullString(rec.Status),
		EngineerNote: nullString(rec.EngineerNote),
	})
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const searchStockColumns = `SELECT id, part_number, name, group_name, models, quantity, min_quantity, location, status, engineer_note, created_at
FROM parts_stock`

// Search returns stock rows matching the filters, ordered by group name and
// part number.
func (r *StockRepository) Search(ctx context.Context, f StockFilters) ([]StockRecord, error) {
	if r.ctx == nil || r.ctx.DB == nil {
		return nil, fmt.Errorf("stock repository: missing database context")
	}

	var (
		conds []string
		args  []any
	)
	if part := strings.TrimSpace(f.PartNumber); part != "" {
		conds = append(conds, "LOWER(part_number) LIKE ?")
		args = append(args, likePattern(part))
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, likePattern(name))
	}
	if group := strings.TrimSpace(f.Group); group != "" {
		conds = append(conds, "group_name = ?")
		args = append(args, group)
	}
	if status := strings.TrimSpace(f.Status); status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}

	query := searchStockColumns
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY group_name, part_number"

	rows, err := r.ctx.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []StockRecord
	for rows.Next() {
		var s sqldb.PartsStock
		if err := rows.Scan(&s.ID, &s.PartNumber, &s.Name, &s.GroupName, &s.Models, &s.Quantity, &s.MinQuantity, &s.Location, &s.Status, &s.EngineerNote, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, mapStockRow(s))
	}
	return result, rows.Err()
}

// FilterOptions returns the distinct groups and statuses present in stock.
func (r *StockRepository) FilterOptions(ctx context.Context) (groups, statuses []string, err error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, nil, fmt.Errorf("stock repository: missing database context")
	}

	groups, err = queries.ListStockGroups(ctx)
	if err != nil {
		return nil, nil, err
	}
	statuses, err = queries.ListStockStatuses(ctx)
	if err != nil {
		return nil, nil, err
	}
	return groups, statuses, nil
}

func mapStockRow(row sqldb.PartsStock) StockRecord {
	return StockRecord{
		ID:           row.ID,
		PartNumber:   optionalString(row.PartNumber),
		Name:         optionalString(row.Name),
		GroupName:    optionalString(row.GroupName),
		Models:       optionalString(row.Models),
		Quantity:     optionalFloat64(row.Quantity),
		MinQuantity:  optionalFloat64(row.MinQuantity),
		Location:     optionalString(row.Location),
		Status:       optionalString(row.Status),
		EngineerNote: optionalString(row.EngineerNote),
		CreatedAt:    optionalTime(row.CreatedAt),
	}
}

func nullFloat64(value float64) sql.NullFloat64 {
	if value == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: value, Valid: true}
}

func optionalFloat64(nf sql.NullFloat64) float64 {
	if !nf.Valid {
		return 0
	}
	return nf.Float64
}
