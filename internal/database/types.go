package database

import (
	"time"

	"github.com/partsdir/partsdir/internal/catalog"
)

// CatalogRecord represents a row in the catalogs table: one external
// reference link of the parts directory.
type CatalogRecord struct {
	ID            int64
	GroupName     string
	Models        string
	CatalogType   string
	Description   string
	URL           string
	Domain        string
	Country       string
	CatalogNumber string
	PartNumbers   string
	Status        string
	IsFavorite    bool
	EngineerNote  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SearchLogRecord is one logged search request with the filter values used.
type SearchLogRecord struct {
	ID           int64
	Filters      catalog.Filters
	ResultsCount int64
	ClientID     string
	IP           string
	UserAgent    string
	CreatedAt    time.Time
}

// SavedQueryRecord is a named, reusable filter/query template.
type SavedQueryRecord struct {
	ID        int64
	Title     string
	Filters   catalog.Filters
	CreatedAt time.Time
}

// PartRequestRecord is a procurement ticket for a physical part.
type PartRequestRecord struct {
	ID          int64
	PartNumber  string
	Name        string
	Model       string
	GroupName   string
	CatalogID   int64
	SourceURL   string
	RequesterIP string
	RequesterUA string
	Status      catalog.RequestStatus
	Note        string
	CreatedAt   time.Time
}

// AccessLogRecord is one inbound request view, enriched with geo data.
type AccessLogRecord struct {
	ID        int64
	Path      string
	Method    string
	IP        string
	UserAgent string
	Referrer  string
	ClientID  string
	CatalogID int64
	Country   string
	City      string
	CreatedAt time.Time
}

// ClickLogRecord is one outbound redirect to a catalog entry's URL.
type ClickLogRecord struct {
	CatalogID int64
	ClientID  string
	IP        string
	UserAgent string
	Referrer  string
}

// StockRecord represents a row in the parts_stock table.
type StockRecord struct {
	ID           int64
	PartNumber   string
	Name         string
	GroupName    string
	Models       string
	Quantity     float64
	MinQuantity  float64
	Location     string
	Status       string
	EngineerNote string
	CreatedAt    time.Time
}

// FacetOptions carries the distinct filter values currently present in the
// catalog store.
type FacetOptions struct {
	Groups    []string
	Types     []string
	Countries []string
}

// ValueCount is one aggregated (value, count) pair from a log table.
type ValueCount struct {
	Value string
	Count int64
}

// CatalogClickCount is one aggregated click count with catalog labeling. The
// label fields are empty when the catalog reference dangles after a refresh.
type CatalogClickCount struct {
	CatalogID int64
	GroupName string
	Models    string
	Count     int64
}
