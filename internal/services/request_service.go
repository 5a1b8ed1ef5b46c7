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

// RequestDraft is the caller-supplied portion of a new part request.
type RequestDraft struct {
	PartNumber string
	Name       string
	Model      string
	GroupName  string
	CatalogID  int64
	SourceURL  string
	Note       string
}

// RequestService manages the part request workflow. Requests enter in the
// "new" status and may move freely between the known statuses afterwards.
type RequestService struct {
	ctx *database.Context
}

// NewRequestService creates a new RequestService.
func NewRequestService(ctx *database.Context) *RequestService {
	return &RequestService{ctx: ctx}
}

// Submit files a new part request. At least one of part number or name must
// be non-blank, otherwise ErrValidation is returned. The request always
// starts in the "new" status regardless of caller input.
func (s *RequestService) Submit(ctx context.Context, draft RequestDraft, meta RequestMeta) (*database.PartRequestRecord, error) {
	partNumber := strings.TrimSpace(draft.PartNumber)
	name := strings.TrimSpace(draft.Name)
	if partNumber == "" && name == "" {
		return nil, fmt.Errorf("%w: part number or name is required", ErrValidation)
	}

	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	res, err := q.InsertPartRequest(ctx, sqldb.InsertPartRequestParams{
		PartNumber:  nullString(partNumber),
		Name:        nullString(name),
		Model:       nullString(strings.TrimSpace(draft.Model)),
		GroupName:   nullString(strings.TrimSpace(draft.GroupName)),
		CatalogID:   nullInt64(draft.CatalogID),
		SourceUrl:   nullString(strings.TrimSpace(draft.SourceURL)),
		RequesterIp: nullString(meta.IP),
		RequesterUa: nullString(meta.UserAgent),
		Status:      string(catalog.StatusNew),
		Note:        nullString(strings.TrimSpace(draft.Note)),
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

// Get retrieves a single part request. Returns ErrNotFound when the id does
// not exist.
func (s *RequestService) Get(ctx context.Context, id int64) (*database.PartRequestRecord, error) {
	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	row, err := q.FindPartRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	record := database.PartRequestRecordFromRow(row)
	return &record, nil
}

// List returns part requests newest first. When statusFilter names a known
// status only matching requests are returned; an unknown or blank filter
// returns everything.
func (s *RequestService) List(ctx context.Context, statusFilter string) ([]database.PartRequestRecord, error) {
	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	var rows []sqldb.PartRequest
	if status, ok := catalog.ParseRequestStatus(statusFilter); ok {
		rows, err = q.ListPartRequestsByStatus(ctx, string(status))
	} else {
		rows, err = q.ListPartRequests(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]database.PartRequestRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, database.PartRequestRecordFromRow(row))
	}
	return result, nil
}

// ChangeStatus moves a request to the given status. Unknown statuses are
// rejected with ErrValidation; a missing id yields ErrNotFound.
func (s *RequestService) ChangeStatus(ctx context.Context, id int64, raw string) (*database.PartRequestRecord, error) {
	status, ok := catalog.ParseRequestStatus(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown request status %q", ErrValidation, raw)
	}

	q, err := s.queries()
	if err != nil {
		return nil, err
	}

	affected, err := q.UpdatePartRequestStatus(ctx, sqldb.UpdatePartRequestStatusParams{
		Status: string(status),
		ID:     id,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

func (s *RequestService) queries() (*sqldb.Queries, error) {
	if s.ctx == nil {
		return nil, fmt.Errorf("request service: missing database context")
	}
	if s.ctx.Queries == nil {
		if s.ctx.DB == nil {
			return nil, fmt.Errorf("request service: database handle not initialised")
		}
		s.ctx.Queries = sqldb.New(s.ctx.DB)
	}
	return s.ctx.Queries, nil
}
