package sqldb

import "context"

const deleteAllCatalogs = `DELETE FROM catalogs`

func (q *Queries) DeleteAllCatalogs(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllCatalogs)
	return err
}

const deleteAllSearchLogs = `DELETE FROM search_logs`

func (q *Queries) DeleteAllSearchLogs(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllSearchLogs)
	return err
}

const deleteAllSavedQueries = `DELETE FROM saved_queries`

func (q *Queries) DeleteAllSavedQueries(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllSavedQueries)
	return err
}

const deleteAllPartRequests = `DELETE FROM part_requests`

func (q *Queries) DeleteAllPartRequests(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllPartRequests)
	return err
}

const deleteAllAccessLogs = `DELETE FROM access_logs`

func (q *Queries) DeleteAllAccessLogs(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllAccessLogs)
	return err
}

const deleteAllClickLogs = `DELETE FROM catalog_click_logs`

func (q *Queries) DeleteAllClickLogs(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllClickLogs)
	return err
}

const deleteAllStock = `DELETE FROM parts_stock`

func (q *Queries) DeleteAllStock(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllStock)
	return err
}
