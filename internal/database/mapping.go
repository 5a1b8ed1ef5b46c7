package database

import (
	"github.com/partsdir/partsdir/internal/catalog"
	sqldb "github.com/partsdir/partsdir/internal/database/sqlc"
)

func mapCatalogRow(row sqldb.Catalog) CatalogRecord {
	return CatalogRecord{
		ID:            row.ID,
		GroupName:     optionalString(row.GroupName),
		Models:        optionalString(row.Models),
		CatalogType:   optionalString(row.CatalogType),
		Description:   optionalString(row.Description),
		URL:           row.Url,
		Domain:        optionalString(row.Domain),
		Country:       optionalString(row.Country),
		CatalogNumber: optionalString(row.CatalogNumber),
		PartNumbers:   optionalString(row.PartNumbers),
		Status:        row.Status,
		IsFavorite:    row.IsFavorite != 0,
		EngineerNote:  optionalString(row.EngineerNote),
		CreatedAt:     optionalTime(row.CreatedAt),
		UpdatedAt:     optionalTime(row.UpdatedAt),
	}
}

// SearchLogRecordFromRow converts a sqlc search_logs row for the service layer.
func SearchLogRecordFromRow(row sqldb.SearchLog) SearchLogRecord {
	return SearchLogRecord{
		ID: row.ID,
		Filters: catalog.Filters{
			Group:         optionalString(row.GroupFilter),
			Model:         optionalString(row.ModelFilter),
			Type:          optionalString(row.TypeFilter),
			Country:       optionalString(row.CountryFilter),
			Query:         optionalString(row.Query),
			FavoritesOnly: row.FavoritesOnly != 0,
		},
		ResultsCount: row.ResultsCount,
		ClientID:     optionalString(row.ClientID),
		IP:           optionalString(row.Ip),
		UserAgent:    optionalString(row.UserAgent),
		CreatedAt:    optionalTime(row.CreatedAt),
	}
}

// SavedQueryRecordFromRow converts a sqlc saved_queries row for the service layer.
func SavedQueryRecordFromRow(row sqldb.SavedQuery) SavedQueryRecord {
	return SavedQueryRecord{
		ID:    row.ID,
		Title: row.Title,
		Filters: catalog.Filters{
			Group:   optionalString(row.GroupFilter),
			Model:   optionalString(row.ModelFilter),
			Type:    optionalString(row.TypeFilter),
			Country: optionalString(row.CountryFilter),
			Query:   optionalString(row.Query),
		},
		CreatedAt: optionalTime(row.CreatedAt),
	}
}

// PartRequestRecordFromRow converts a sqlc part_requests row for the service layer.
func PartRequestRecordFromRow(row sqldb.PartRequest) PartRequestRecord {
	return PartRequestRecord{
		ID:          row.ID,
		PartNumber:  optionalString(row.PartNumber),
		Name:        optionalString(row.Name),
		Model:       optionalString(row.Model),
		GroupName:   optionalString(row.GroupName),
		CatalogID:   optionalInt64(row.CatalogID),
		SourceURL:   optionalString(row.SourceUrl),
		RequesterIP: optionalString(row.RequesterIp),
		RequesterUA: optionalString(row.RequesterUa),
		Status:      catalog.RequestStatus(row.Status),
		Note:        optionalString(row.Note),
		CreatedAt:   optionalTime(row.CreatedAt),
	}
}

// AccessLogRecordFromRow converts a sqlc access_logs row for the service layer.
func AccessLogRecordFromRow(row sqldb.AccessLog) AccessLogRecord {
	return AccessLogRecord{
		ID:        row.ID,
		Path:      row.Path,
		Method:    row.Method,
		IP:        optionalString(row.Ip),
		UserAgent: optionalString(row.UserAgent),
		Referrer:  optionalString(row.Referrer),
		ClientID:  optionalString(row.ClientID),
		CatalogID: optionalInt64(row.CatalogID),
		Country:   optionalString(row.Country),
		City:      optionalString(row.City),
		CreatedAt: optionalTime(row.CreatedAt),
	}
}

// ValueCountsFromRows converts aggregated (value, count) rows.
func ValueCountsFromRows(rows []sqldb.TopCountRow) []ValueCount {
	result := make([]ValueCount, 0, len(rows))
	for _, row := range rows {
		result = append(result, ValueCount{Value: row.Value, Count: row.Cnt})
	}
	return result
}
