package sqldb

import (
	"context"
	"database/sql"
)

const findCatalogByID = `SELECT id, group_name, models, catalog_type, description, url, domain, country, catalog_number, part_numbers, status, is_favorite, engineer_note, created_at, updated_at
FROM catalogs WHERE id = ?`

func (q *Queries) FindCatalogByID(ctx context.Context, id int64) (Catalog, error) {
	row := q.db.QueryRowContext(ctx, findCatalogByID, id)
	var c Catalog
	err := row.Scan(
		&c.ID, &c.GroupName, &c.Models, &c.CatalogType, &c.Description,
		&c.Url, &c.Domain, &c.Country, &c.CatalogNumber, &c.PartNumbers,
		&c.Status, &c.IsFavorite, &c.EngineerNote, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

const insertCatalog = `INSERT INTO catalogs (group_name, models, catalog_type, description, url, domain, country, catalog_number, part_numbers, status, is_favorite, engineer_note)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type InsertCatalogParams struct {
	GroupName     sql.NullString
	Models        sql.NullString
	CatalogType   sql.NullString
	Description   sql.NullString
	Url           string
	Domain        sql.NullString
	Country       sql.NullString
	CatalogNumber sql.NullString
	PartNumbers   sql.NullString
	Status        string
	IsFavorite    int64
	EngineerNote  sql.NullString
}

func (q *Queries) InsertCatalog(ctx context.Context, arg InsertCatalogParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, insertCatalog,
		arg.GroupName, arg.Models, arg.CatalogType, arg.Description,
		arg.Url, arg.Domain, arg.Country, arg.CatalogNumber, arg.PartNumbers,
		arg.Status, arg.IsFavorite, arg.EngineerNote,
	)
}

const toggleCatalogFavorite = `UPDATE catalogs
SET is_favorite = CASE is_favorite WHEN 0 THEN 1 ELSE 0 END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?`

func (q *Queries) ToggleCatalogFavorite(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, toggleCatalogFavorite, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const updateCatalogNote = `UPDATE catalogs
SET engineer_note = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?`

type UpdateCatalogNoteParams struct {
	EngineerNote sql.NullString
	ID           int64
}

func (q *Queries) UpdateCatalogNote(ctx context.Context, arg UpdateCatalogNoteParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateCatalogNote, arg.EngineerNote, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listCatalogGroups = `SELECT DISTINCT group_name FROM catalogs
WHERE group_name IS NOT NULL AND group_name != ''
ORDER BY group_name`

func (q *Queries) ListCatalogGroups(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listCatalogGroups)
}

const listCatalogTypes = `SELECT DISTINCT catalog_type FROM catalogs
WHERE catalog_type IS NOT NULL AND catalog_type != ''
ORDER BY catalog_type`

func (q *Queries) ListCatalogTypes(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listCatalogTypes)
}

const listCatalogDomains = `SELECT DISTINCT domain FROM catalogs
WHERE domain IS NOT NULL AND domain != ''
ORDER BY domain`

func (q *Queries) ListCatalogDomains(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listCatalogDomains)
}

const listCatalogAnnotations = `SELECT url, is_favorite, engineer_note FROM catalogs
WHERE is_favorite != 0 OR (engineer_note IS NOT NULL AND engineer_note != '')`

type ListCatalogAnnotationsRow struct {
	Url          string
	IsFavorite   int64
	EngineerNote sql.NullString
}

func (q *Queries) ListCatalogAnnotations(ctx context.Context) ([]ListCatalogAnnotationsRow, error) {
	rows, err := q.db.QueryContext(ctx, listCatalogAnnotations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListCatalogAnnotationsRow
	for rows.Next() {
		var r ListCatalogAnnotationsRow
		if err := rows.Scan(&r.Url, &r.IsFavorite, &r.EngineerNote); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const countCatalogs = `SELECT COUNT(id) FROM catalogs`

func (q *Queries) CountCatalogs(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countCatalogs).Scan(&count)
	return count, err
}

const countCatalogFavorites = `SELECT COUNT(id) FROM catalogs WHERE is_favorite != 0`

func (q *Queries) CountCatalogFavorites(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countCatalogFavorites).Scan(&count)
	return count, err
}

func (q *Queries) listStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
