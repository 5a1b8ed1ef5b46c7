package sqldb

import (
	"context"
	"database/sql"
)

const insertPartRequest = `INSERT INTO part_requests (part_number, name, model, group_name, catalog_id, source_url, requester_ip, requester_ua, status, note)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type InsertPartRequestParams struct {
	PartNumber  sql.NullString
	Name        sql.NullString
	Model       sql.NullString
	GroupName   sql.NullString
	CatalogID   sql.NullInt64
	SourceUrl   sql.NullString
	RequesterIp sql.NullString
	RequesterUa sql.NullString
	Status      string
	Note        sql.NullString
}

func (q *Queries) InsertPartRequest(ctx context.Context, arg InsertPartRequestParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertPartRequest,
		arg.PartNumber, arg.Name, arg.Model, arg.GroupName,
		arg.CatalogID, arg.SourceUrl, arg.RequesterIp, arg.RequesterUa,
		arg.Status, arg.Note,
	)
}

const findPartRequestByID = `SELECT id, part_number, name, model, group_name, catalog_id, source_url, requester_ip, requester_ua, status, note, created_at
FROM part_requests WHERE id = ?`

func (q *Queries) FindPartRequestByID(ctx context.Context, id int64) (PartRequest, error) {
	row := q.db.QueryRowContext(ctx, findPartRequestByID, id)
	var r PartRequest
	err := row.Scan(&r.ID, &r.PartNumber, &r.Name, &r.Model, &r.GroupName, &r.CatalogID, &r.SourceUrl, &r.RequesterIp, &r.RequesterUa, &r.Status, &r.Note, &r.CreatedAt)
	return r, err
}

const listPartRequests = `SELECT id, part_number, name, model, group_name, catalog_id, source_url, requester_ip, requester_ua, status, note, created_at
FROM part_requests ORDER BY created_at DESC, id DESC`

func (q *Queries) ListPartRequests(ctx context.Context) ([]PartRequest, error) {
	rows, err := q.db.QueryContext(ctx, listPartRequests)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartRequests(rows)
}

const listPartRequestsByStatus = `SELECT id, part_number, name, model, group_name, catalog_id, source_url, requester_ip, requester_ua, status, note, created_at
FROM part_requests WHERE status = ? ORDER BY created_at DESC, id DESC`

func (q *Queries) ListPartRequestsByStatus(ctx context.Context, status string) ([]PartRequest, error) {
	rows, err := q.db.QueryContext(ctx, listPartRequestsByStatus, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartRequests(rows)
}

const updatePartRequestStatus = `UPDATE part_requests SET status = ? WHERE id = ?`

type UpdatePartRequestStatusParams struct {
	Status string
	ID     int64
}

func (q *Queries) UpdatePartRequestStatus(ctx context.Context, arg UpdatePartRequestStatusParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updatePartRequestStatus, arg.Status, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanPartRequests(rows *sql.Rows) ([]PartRequest, error) {
	var items []PartRequest
	for rows.Next() {
		var r PartRequest
		if err := rows.Scan(&r.ID, &r.PartNumber, &r.Name, &r.Model, &r.GroupName, &r.CatalogID, &r.SourceUrl, &r.RequesterIp, &r.RequesterUa, &r.Status, &r.Note, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
