package sqldb

import (
	"context"
	"database/sql"
)

const insertAccessLog = `INSERT INTO access_logs (path, method, ip, user_agent, referrer, client_id, catalog_id, country, city)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

type InsertAccessLogParams struct {
	Path      string
	Method    string
	Ip        sql.NullString
	UserAgent sql.NullString
	Referrer  sql.NullString
	ClientID  sql.NullString
	CatalogID sql.NullInt64
	Country   sql.NullString
	City      sql.NullString
}

func (q *Queries) InsertAccessLog(ctx context.Context, arg InsertAccessLogParams) error {
	_, err := q.db.ExecContext(ctx, insertAccessLog,
		arg.Path, arg.Method, arg.Ip, arg.UserAgent, arg.Referrer,
		arg.ClientID, arg.CatalogID, arg.Country, arg.City,
	)
	return err
}

const countAccessLogs = `SELECT COUNT(id) FROM access_logs`

func (q *Queries) CountAccessLogs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countAccessLogs).Scan(&count)
	return count, err
}

const topAccessPaths = `SELECT path, COUNT(id) AS cnt FROM access_logs
GROUP BY path ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopAccessPaths(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topAccessPaths, limit)
}

const topAccessCountries = `SELECT country, COUNT(id) AS cnt FROM access_logs
WHERE country IS NOT NULL AND country != ''
GROUP BY country ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopAccessCountries(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topAccessCountries, limit)
}

const topAccessCities = `SELECT city, COUNT(id) AS cnt FROM access_logs
WHERE city IS NOT NULL AND city != ''
GROUP BY city ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopAccessCities(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topAccessCities, limit)
}

const topAccessUserAgents = `SELECT user_agent, COUNT(id) AS cnt FROM access_logs
WHERE user_agent IS NOT NULL AND user_agent != ''
GROUP BY user_agent ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopAccessUserAgents(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topAccessUserAgents, limit)
}

const listRecentAccessLogs = `SELECT id, path, method, ip, user_agent, referrer, client_id, catalog_id, country, city, created_at
FROM access_logs ORDER BY created_at DESC, id DESC LIMIT ?`

func (q *Queries) ListRecentAccessLogs(ctx context.Context, limit int64) ([]AccessLog, error) {
	rows, err := q.db.QueryContext(ctx, listRecentAccessLogs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AccessLog
	for rows.Next() {
		var l AccessLog
		if err := rows.Scan(&l.ID, &l.Path, &l.Method, &l.Ip, &l.UserAgent, &l.Referrer, &l.ClientID, &l.CatalogID, &l.Country, &l.City, &l.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
