package sqldb

import (
	"context"
	"database/sql"
)

const insertClickLog = `INSERT INTO catalog_click_logs (catalog_id, client_id, ip, user_agent, referrer)
VALUES (?, ?, ?, ?, ?)`

type InsertClickLogParams struct {
	CatalogID int64
	ClientID  sql.NullString
	Ip        sql.NullString
	UserAgent sql.NullString
	Referrer  sql.NullString
}

func (q *Queries) InsertClickLog(ctx context.Context, arg InsertClickLogParams) error {
	_, err := q.db.ExecContext(ctx, insertClickLog,
		arg.CatalogID, arg.ClientID, arg.Ip, arg.UserAgent, arg.Referrer,
	)
	return err
}

const countClickLogs = `SELECT COUNT(id) FROM catalog_click_logs`

func (q *Queries) CountClickLogs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countClickLogs).Scan(&count)
	return count, err
}

const topClickedCatalogs = `SELECT l.catalog_id, COALESCE(c.group_name, ''), COALESCE(c.models, ''), COUNT(l.id) AS cnt
FROM catalog_click_logs l
LEFT JOIN catalogs c ON c.id = l.catalog_id
GROUP BY l.catalog_id ORDER BY cnt DESC LIMIT ?`

type TopClickedCatalogsRow struct {
	CatalogID int64
	GroupName string
	Models    string
	Cnt       int64
}

func (q *Queries) TopClickedCatalogs(ctx context.Context, limit int64) ([]TopClickedCatalogsRow, error) {
	rows, err := q.db.QueryContext(ctx, topClickedCatalogs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TopClickedCatalogsRow
	for rows.Next() {
		var r TopClickedCatalogsRow
		if err := rows.Scan(&r.CatalogID, &r.GroupName, &r.Models, &r.Cnt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const topClickedDomains = `SELECT c.domain, COUNT(l.id) AS cnt
FROM catalog_click_logs l
JOIN catalogs c ON c.id = l.catalog_id
WHERE c.domain IS NOT NULL AND c.domain != ''
GROUP BY c.domain ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopClickedDomains(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topClickedDomains, limit)
}
