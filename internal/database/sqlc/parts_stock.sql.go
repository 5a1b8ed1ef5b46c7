package sqldb

import (
	"context"
	"database/sql"
)

const insertStock = `INSERT INTO parts_stock (part_number, name, group_name, models, quantity, min_quantity, location, status, engineer_note)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

type InsertStockParams struct {
	PartNumber   sql.NullString
	Name         sql.NullString
	GroupName    sql.NullString
	Models       sql.NullString
	Quantity     sql.NullFloat64
	MinQuantity  sql.NullFloat64
	Location     sql.NullString
	Status       sql.NullString
	EngineerNote sql.NullString
}

func (q *Queries) InsertStock(ctx context.Context, arg InsertStockParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertStock,
		arg.PartNumber, arg.Name, arg.GroupName, arg.Models,
		arg.Quantity, arg.MinQuantity, arg.Location, arg.Status, arg.EngineerNote,
	)
}

const listStockGroups = `SELECT DISTINCT group_name FROM parts_stock
WHERE group_name IS NOT NULL AND group_name != ''
ORDER BY group_name`

func (q *Queries) ListStockGroups(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listStockGroups)
}

const listStockStatuses = `SELECT DISTINCT status FROM parts_stock
WHERE status IS NOT NULL AND status != ''
ORDER BY status`

func (q *Queries) ListStockStatuses(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listStockStatuses)
}
