package sqldb

import "database/sql"

// Catalog mirrors a row of the catalogs table.
type Catalog struct {
	ID            int64
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
	CreatedAt     sql.NullTime
	UpdatedAt     sql.NullTime
}

// SearchLog mirrors a row of the search_logs table.
type SearchLog struct {
	ID            int64
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
	CreatedAt     sql.NullTime
}

// SavedQuery mirrors a row of the saved_queries table.
type SavedQuery struct {
	ID            int64
	Title         string
	GroupFilter   sql.NullString
	ModelFilter   sql.NullString
	TypeFilter    sql.NullString
	CountryFilter sql.NullString
	Query         sql.NullString
	CreatedAt     sql.NullTime
}

// PartRequest mirrors a row of the part_requests table.
type PartRequest struct {
	ID          int64
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
	CreatedAt   sql.NullTime
}

// AccessLog mirrors a row of the access_logs table.
type AccessLog struct {
	ID        int64
	Path      string
	Method    string
	Ip        sql.NullString
	UserAgent sql.NullString
	Referrer  sql.NullString
	ClientID  sql.NullString
	CatalogID sql.NullInt64
	Country   sql.NullString
	City      sql.NullString
	CreatedAt sql.NullTime
}

// CatalogClickLog mirrors a row of the catalog_click_logs table.
type CatalogClickLog struct {
	ID        int64
	CatalogID int64
	ClientID  sql.NullString
	Ip        sql.NullString
	UserAgent sql.NullString
	Referrer  sql.NullString
	CreatedAt sql.NullTime
}

// PartsStock mirrors a row of the parts_stock table.
type PartsStock struct {
	ID           int64
	PartNumber   sql.NullString
	Name         sql.NullString
	GroupName    sql.NullString
	Models       sql.NullString
	Quantity     sql.NullFloat64
	MinQuantity  sql.NullFloat64
	Location     sql.NullString
	Status       sql.NullString
	EngineerNote sql.NullString
	CreatedAt    sql.NullTime
}
