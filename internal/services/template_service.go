package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/partsdir/partsdir/internal/catalog"
	"github.com/partsdir/partsdir/internal/database"
	sqldb "github.com/partsdir/partsdir/internal/database/sqlc"
)

// DefaultTemplateLimit bounds how many saved templates a listing returns.
const DefaultTemplateLimit = 50

// TemplateService manages saved query templates: named filter sets that can
// be re-applied as searches later.
type TemplateService struct {
	ctx *database.Context
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(ctx *database.Context) *TemplateService {
	return &TemplateService{ctx: ctx}
}

// Save stores the filter set under the given title. The title must be
// non-blank and at least one of the five filter fields must carry a value;
// otherwise ErrValidation is returned. The favorites toggle is a view
// preference and is not part of a template.
func (s *TemplateService) Save(ctx context.Context, title string, f catalog.Filters) (*database.SavedQueryRecord, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: template title is required", ErrValidation)
	}

	group := strings.TrimSpace(f.Group)
	model := strings.TrimSpace(f.Model)
	typ := strings.TrimSpace(f.Type)
	country := strings.TrimSpace(f.Country)
	query := strings.TrimSpace(f.Query)
	if group == "" && model == "" && typ == "" && country == "" && query == "" {
		return nil, fmt.Errorf("%w: template needs at least one filter value", ErrValidation)
	}

	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	res, err := q.InsertSavedQuery(ctx, sqldb.InsertSavedQueryParams{
		Title:         title,
		GroupFilter:   nullString(group),
		ModelFilter:   nullString(model),
		TypeFilter:    nullString(typ),
		CountryFilter: nullString(country),
		Query:         nullString(query),
	})
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Get retrieves a single template. Returns ErrNotFound when the id does not
// exist.
func (s *TemplateService) Get(ctx context.Context, id int64) (*database.SavedQueryRecord, error) {
	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	row, err := q.FindSavedQueryByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	record := database.SavedQueryRecordFromRow(row)
	return &record, nil
}

// Load resolves a template back into a filter set ready for searching.
func (s *TemplateService) Load(ctx context.Context, id int64) (catalog.Filters, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return catalog.Filters{}, err
	}
	return record.Filters, nil
}

// List returns templates newest first, capped at limit. A non-positive limit
// falls back to DefaultTemplateLimit.
func (s *TemplateService) List(ctx context.Context, limit int64) ([]database.SavedQueryRecord, error) {
	if limit <= 0 {
		limit = DefaultTemplateLimit
	}

	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	rows, err := q.ListSavedQueries(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]database.SavedQueryRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, database.SavedQueryRecordFromRow(row))
	}
	return result, nil
}

// Delete removes a template. Returns ErrNotFound when the id does not exist.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	q, err := s.queries()
	if err != nil {
		return err
	}

	affected, err := q.DeleteSavedQueryByID(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TemplateService) queries() (*sqldb.Queries, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("template service: missing database context")
	}
	if s.ctx.Queries == nil {
		if s.ctx.DB == nil {
			return nil, fmt.Errorf("template service: database handle not initialised")
		}
		s.ctx.Queries = sqldb.New(s.ctx.DB)
	}
	return s.ctx.Queries, nil
}
