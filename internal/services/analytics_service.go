package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/partsdir/partsdir/internal/database"
	sqldb "github.com/partsdir/partsdir/internal/database/sqlc"
	"github.com/partsdir/partsdir/internal/geo"
)

// DefaultStatsLimit bounds the per-dimension size of aggregated stats.
const DefaultStatsLimit = 10

// Visit is one inbound request to record in the access log.
type Visit struct {
	Path      string
	Method    string
	Referrer  string
	CatalogID int64
}

// UsageStats aggregates catalog, search, and click activity.
type UsageStats struct {
	TotalCatalogs  int64
	TotalFavorites int64
	TotalSearches  int64
	TotalClicks    int64
	TopGroups      []database.ValueCount
	TopModels      []database.ValueCount
	TopQueries     []database.ValueCount
	TopCatalogs    []database.CatalogClickCount
	TopDomains     []database.ValueCount
}

// AccessStats aggregates the access log.
type AccessStats struct {
	TotalRequests int64
	TopPaths      []database.ValueCount
	TopCountries  []database.ValueCount
	TopCities     []database.ValueCount
	TopUserAgents []database.ValueCount
	Recent        []database.AccessLogRecord
}

// AnalyticsService records access and click events and serves the aggregated
// views over them. Recording is best-effort: failures are reported to the
// operational logger and never propagate to the primary operation.
type AnalyticsService struct {
	ctx      *database.Context
	resolver geo.Resolver
	logger   *zap.Logger
}

// NewAnalyticsService creates a new AnalyticsService. A nil resolver disables
// geolocation enrichment.
func NewAnalyticsService(ctx *database.Context, resolver geo.Resolver, logger *zap.Logger) *AnalyticsService {
	if resolver == nil {
		resolver = geo.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{ctx: ctx, resolver: resolver, logger: logger}
}

// RecordAccess logs an inbound request. Static asset and favicon paths are
// skipped, and private or unparseable IPs are never sent to the geo resolver.
func (s *AnalyticsService) RecordAccess(ctx context.Context, visit Visit, meta RequestMeta) {
	if skipAccessPath(visit.Path) {
		return
	}

	q, err := s.queries()
	if err != nil {
		s.logger.Warn("access log skipped", zap.Error(err))
		return
	}

	var country, city string
	if meta.IP != "" && !geo.IsPrivate(meta.IP) {
		country, city = s.resolver.Lookup(meta.IP)
	}

	err = q.InsertAccessLog(ctx, sqldb.InsertAccessLogParams{
		Path:      visit.Path,
		Method:    visit.Method,
		Ip:        nullString(meta.IP),
		UserAgent: nullString(meta.UserAgent),
		Referrer:  nullString(visit.Referrer),
		ClientID:  nullString(meta.ClientID),
		CatalogID: nullInt64(visit.CatalogID),
		Country:   nullString(country),
		City:      nullString(city),
	})
	if err != nil {
		s.logger.Warn("access log write failed", zap.Error(err))
	}
}

// RecordClick logs an outbound redirect to a catalog entry's URL.
func (s *AnalyticsService) RecordClick(ctx context.Context, catalogID int64, referrer string, meta RequestMeta) {
	if catalogID <= 0 {
		return
	}

	q, err := s.queries()
	if err != nil {
		s.logger.Warn("click log skipped", zap.Error(err))
		return
	}

	err = q.InsertClickLog(ctx, sqldb.InsertClickLogParams{
		CatalogID: catalogID,
		ClientID:  nullString(meta.ClientID),
		Ip:        nullString(meta.IP),
		UserAgent: nullString(meta.UserAgent),
		Referrer:  nullString(referrer),
	})
	if err != nil {
		s.logger.Warn("click log write failed", zap.Error(err))
	}
}

// Usage returns catalog, search, and click aggregates recomputed from live
// data. A non-positive limit falls back to DefaultStatsLimit.
func (s *AnalyticsService) Usage(ctx context.Context, limit int64) (UsageStats, error) {
	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	q, err := s.queries()
	if err != nil {
		return UsageStats{}, err
	}

	var stats UsageStats
	if stats.TotalCatalogs, err = q.CountCatalogs(ctx); err != nil {
		return UsageStats{}, err
	}
	if stats.TotalFavorites, err = q.CountCatalogFavorites(ctx); err != nil {
		return UsageStats{}, err
	}
	if stats.TotalSearches, err = q.CountSearchLogs(ctx); err != nil {
		return UsageStats{}, err
	}
	if stats.TotalClicks, err = q.CountClickLogs(ctx); err != nil {
		return UsageStats{}, err
	}

	groups, err := q.TopSearchGroups(ctx, limit)
	if err != nil {
		return UsageStats{}, err
	}
	stats.TopGroups = database.ValueCountsFromRows(groups)

	models, err := q.TopSearchModels(ctx, limit)
	if err != nil {
		return UsageStats{}, err
	}
	stats.TopModels = database.ValueCountsFromRows(models)

	queries, err := q.TopSearchQueries(ctx, limit)
	if err != nil {
		return UsageStats{}, err
	}
	stats.TopQueries = database.ValueCountsFromRows(queries)

	clicked, err := q.TopClickedCatalogs(ctx, limit)
	if err != nil {
		return UsageStats{}, err
	}
	stats.TopCatalogs = make([]database.CatalogClickCount, 0, len(clicked))
	for _, row := range clicked {
		stats.TopCatalogs = append(stats.TopCatalogs, database.CatalogClickCount{
			CatalogID: row.CatalogID,
			GroupName: row.GroupName,
			Models:    row.Models,
			Count:     row.Cnt,
		})
	}

	domains, err := q.TopClickedDomains(ctx, limit)
	if err != nil {
		return UsageStats{}, err
	}
	stats.TopDomains = database.ValueCountsFromRows(domains)

	return stats, nil
}

// Access returns access log aggregates plus the most recent raw entries.
func (s *AnalyticsService) Access(ctx context.Context, limit int64) (AccessStats, error) {
	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	q, err := s.queries()
	if err != nil {
		return AccessStats{}, err
	}

	var stats AccessStats
	total, err := q.CountAccessLogs(ctx)
	if err != nil {
		return AccessStats{}, err
	}
	stats.TotalRequests = total

	paths, err := q.TopAccessPaths(ctx, limit)
	if err != nil {
		return AccessStats{}, err
	}
	stats.TopPaths = database.ValueCountsFromRows(paths)

	countries, err := q.TopAccessCountries(ctx, limit)
	if err != nil {
		return AccessStats{}, err
	}
	stats.TopCountries = database.ValueCountsFromRows(countries)

	cities, err := q.TopAccessCities(ctx, limit)
	if err != nil {
		return AccessStats{}, err
	}
	stats.TopCities = database.ValueCountsFromRows(cities)

	agents, err := q.TopAccessUserAgents(ctx, limit)
	if err != nil {
		return AccessStats{}, err
	}
	stats.TopUserAgents = database.ValueCountsFromRows(agents)

	recent, err := q.ListRecentAccessLogs(ctx, limit)
	if err != nil {
		return AccessStats{}, err
	}
	stats.Recent = make([]database.AccessLogRecord, 0, len(recent))
	for _, row := range recent {
		stats.Recent = append(stats.Recent, database.AccessLogRecordFromRow(row))
	}

	return stats, nil
}

// RecentSearches returns the latest logged searches, newest first.
func (s *AnalyticsService) RecentSearches(ctx context.Context, limit int64) ([]database.SearchLogRecord, error) {
	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	rows, err := q.ListRecentSearchLogs(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]database.SearchLogRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, database.SearchLogRecordFromRow(row))
	}
	return result, nil
}

func skipAccessPath(path string) bool {
	return strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/favicon")
}

func (s *AnalyticsService) queries() (*sqldb.Queries, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("analytics service: missing database context")
	}
	if s.ctx.Queries == nil {
		if s.ctx.DB == nil {
			return nil, fmt.Errorf("analytics service: database handle not initialised")
		}
		s.ctx.Queries = sqldb.New(s.ctx.DB)
	}
	return s.ctx.Queries, nil
}
