package sqldb

import (
	"context"
	"database/sql"
)

const insertSearchLog = `INSERT INTO search_logs (group_filter, model_filter, type_filter, country_filter, query, favorites_only, results_count, client_id, ip, user_agent)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type InsertSearchLogParams struct {
	GroupFilter   sql.NullString
	ModelFilter   sql.NullString
	TypeFilter    sql.NullString
	CountryFilter sql.NullString
	Query         sql.NullString
	FavoritesOnly int64
	ResultsCount  int64
	ClientID      sql.NullString
	Ip            sql.NullString
	UserAgent     sql.NullString
}

func (q *Queries) InsertSearchLog(ctx context.Context, arg InsertSearchLogParams) error {
	_, err := q.db.ExecContext(ctx, insertSearchLog,
		arg.GroupFilter, arg.ModelFilter, arg.TypeFilter, arg.CountryFilter,
		arg.Query, arg.FavoritesOnly, arg.ResultsCount,
		arg.ClientID, arg.Ip, arg.UserAgent,
	)
	return err
}

const countSearchLogs = `SELECT COUNT(id) FROM search_logs`

func (q *Queries) CountSearchLogs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countSearchLogs).Scan(&count)
	return count, err
}

// TopCountRow is the shape shared by the group-by/count aggregations.
type TopCountRow struct {
	Value string
	Cnt   int64
}

const topSearchGroups = `SELECT group_filter, COUNT(id) AS cnt FROM search_logs
WHERE group_filter IS NOT NULL AND group_filter != ''
GROUP BY group_filter ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopSearchGroups(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topSearchGroups, limit)
}

const topSearchModels = `SELECT model_filter, COUNT(id) AS cnt FROM search_logs
WHERE model_filter IS NOT NULL AND model_filter != ''
GROUP BY model_filter ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopSearchModels(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topSearchModels, limit)
}

const topSearchQueries = `SELECT query, COUNT(id) AS cnt FROM search_logs
WHERE query IS NOT NULL AND query != ''
GROUP BY query ORDER BY cnt DESC LIMIT ?`

func (q *Queries) TopSearchQueries(ctx context.Context, limit int64) ([]TopCountRow, error) {
	return q.listTopCounts(ctx, topSearchQueries, limit)
}

const listRecentSearchLogs = `SELECT id, group_filter, model_filter, type_filter, country_filter, query, favorites_only, results_count, client_id, ip, user_agent, created_at
FROM search_logs ORDER BY created_at DESC, id DESC LIMIT ?`

func (q *Queries) ListRecentSearchLogs(ctx context.Context, limit int64) ([]SearchLog, error) {
	rows, err := q.db.QueryContext(ctx, listRecentSearchLogs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SearchLog
	for rows.Next() {
		var l SearchLog
		if err := rows.Scan(
			&l.ID, &l.GroupFilter, &l.ModelFilter, &l.TypeFilter, &l.CountryFilter,
			&l.Query, &l.FavoritesOnly, &l.ResultsCount,
			&l.ClientID, &l.Ip, &l.UserAgent, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (q *Queries) listTopCounts(ctx context.Context, query string, limit int64) ([]TopCountRow, error) {
	rows, err := q.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TopCountRow
	for rows.Next() {
		var r TopCountRow
		if err := rows.Scan(&r.Value, &r.Cnt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
