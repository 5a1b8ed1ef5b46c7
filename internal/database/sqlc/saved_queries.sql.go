package sqldb

import (
	"context"
	"database/sql"
)

const insertSavedQuery = `INSERT INTO saved_queries (title, group_filter, model_filter, type_filter, country_filter, query)
VALUES (?, ?, ?, ?, ?, ?)`

type InsertSavedQueryParams struct {
	Title         string
	GroupFilter   sql.NullString
	ModelFilter   sql.NullString
	TypeFilter    sql.NullString
	CountryFilter sql.NullString
	Query         sql.NullString
}

func (q *Queries) InsertSavedQuery(ctx context.Context, arg InsertSavedQueryParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertSavedQuery,
		arg.Title, arg.GroupFilter, arg.ModelFilter, arg.TypeFilter, arg.CountryFilter, arg.Query,
	)
}

const findSavedQueryByID = `SELECT id, title, group_filter, model_filter, type_filter, country_filter, query, created_at
FROM saved_queries WHERE id = ?`

func (q *Queries) FindSavedQueryByID(ctx context.Context, id int64) (SavedQuery, error) {
	row := q.db.QueryRowContext(ctx, findSavedQueryByID, id)
	var s SavedQuery
	err := row.Scan(&s.ID, &s.Title, &s.GroupFilter, &s.ModelFilter, &s.TypeFilter, &s.CountryFilter, &s.Query, &s.CreatedAt)
	return s, err
}

const listSavedQueries = `SELECT id, title, group_filter, model_filter, type_filter, country_filter, query, created_at
FROM saved_queries ORDER BY created_at DESC, id DESC LIMIT ?`

func (q *Queries) ListSavedQueries(ctx context.Context, limit int64) ([]SavedQuery, error) {
	rows, err := q.db.QueryContext(ctx, listSavedQueries, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SavedQuery
	for rows.Next() {
		var s SavedQuery
		if err := rows.Scan(&s.ID, &s.Title, &s.GroupFilter, &s.ModelFilter, &s.TypeFilter, &s.CountryFilter, &s.Query, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const deleteSavedQueryByID = `DELETE FROM saved_queries WHERE id = ?`

func (q *Queries) DeleteSavedQueryByID(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteSavedQueryByID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
