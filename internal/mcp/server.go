package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/partsdir/partsdir/internal/catalog"
	"github.com/partsdir/partsdir/internal/database"
	"github.com/partsdir/partsdir/internal/services"
)

// Server wraps the MCP server with parts directory functionality
type Server struct {
	server *mcp.Server
	dbCtx  *database.Context
}

// NewServer creates a new MCP server instance
func NewServer() (*Server, error) {
	dbCtx, err := database.CreateDatabase("")
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "partsdir",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server: mcpServer,
		dbCtx:  dbCtx,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	defer database.CloseDatabase(s.dbCtx)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	// catalog_search
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "catalog_search",
		Description: "Search the parts catalog directory with filters and free text",
	}, s.handleSearch)

	// catalog_toggle_favorite
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "catalog_toggle_favorite",
		Description: "Flip the favorite flag on a catalog entry",
	}, s.handleToggleFavorite)

	// catalog_set_note
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "catalog_set_note",
		Description: "Attach or clear an engineer note on a catalog entry",
	}, s.handleSetNote)

	// request_submit
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "request_submit",
		Description: "File a part request ticket",
	}, s.handleRequestSubmit)

	// request_list
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "request_list",
		Description: "List part requests, optionally filtered by status",
	}, s.handleRequestList)
}

// Input/Output types for each tool

type SearchInput struct {
	Group         *string `json:"group,omitempty" jsonschema:"description=Equipment group filter (exact match)"`
	Model         *string `json:"model,omitempty" jsonschema:"description=Model fragment filter (case-insensitive substring)"`
	Type          *string `json:"type,omitempty" jsonschema:"description=Catalog type filter (exact match)"`
	Country       *string `json:"country,omitempty" jsonschema:"description=Country code filter derived from the catalog domain"`
	Query         *string `json:"query,omitempty" jsonschema:"description=Free-text terms matched across models, description, url, and part numbers"`
	FavoritesOnly *bool   `json:"favoritesOnly,omitempty" jsonschema:"description=Only return favorite entries"`
}

type SearchOutput struct {
	Results []SearchEntry `json:"results"`
	Count   int           `json:"count"`
}

type SearchEntry struct {
	ID           int64  `json:"id"`
	Group        string `json:"group,omitempty"`
	Models       string `json:"models,omitempty"`
	Type         string `json:"type,omitempty"`
	Description  string `json:"description,omitempty"`
	URL          string `json:"url"`
	Country      string `json:"country,omitempty"`
	PartNumbers  string `json:"partNumbers,omitempty"`
	IsFavorite   bool   `json:"isFavorite,omitempty"`
	EngineerNote string `json:"engineerNote,omitempty"`
}

type ToggleFavoriteInput struct {
	ID int64 `json:"id" jsonschema:"required,description=Catalog entry id"`
}

type ToggleFavoriteOutput struct {
	ID         int64 `json:"id"`
	IsFavorite bool  `json:"isFavorite"`
}

type SetNoteInput struct {
	ID   int64  `json:"id" jsonschema:"required,description=Catalog entry id"`
	Note string `json:"note" jsonschema:"description=Note text; blank clears the note"`
}

type SetNoteOutput struct {
	Message string `json:"message"`
}

type RequestSubmitInput struct {
	PartNumber *string `json:"partNumber,omitempty" jsonschema:"description=Part number being requested"`
	Name       *string `json:"name,omitempty" jsonschema:"description=Part name or free-form description"`
	Model      *string `json:"model,omitempty" jsonschema:"description=Equipment model the part is for"`
	Group      *string `json:"group,omitempty" jsonschema:"description=Equipment group the part is for"`
	CatalogID  *int64  `json:"catalogId,omitempty" jsonschema:"description=Catalog entry the request originated from"`
	Note       *string `json:"note,omitempty" jsonschema:"description=Free-form note for the purchaser"`
}

type RequestSubmitOutput struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type RequestListInput struct {
	Status *string `json:"status,omitempty" jsonschema:"enum=new;in_work;ordered;received;cancelled,description=Only return requests in this status"`
}

type RequestListOutput struct {
	Requests []RequestEntry `json:"requests"`
}

type RequestEntry struct {
	ID         int64  `json:"id"`
	PartNumber string `json:"partNumber,omitempty"`
	Name       string `json:"name,omitempty"`
	Model      string `json:"model,omitempty"`
	Group      string `json:"group,omitempty"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// Tool handlers

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	filters := catalog.Filters{}
	if input.Group != nil {
		filters.Group = *input.Group
	}
	if input.Model != nil {
		filters.Model = *input.Model
	}
	if input.Type != nil {
		filters.Type = *input.Type
	}
	if input.Country != nil {
		filters.Country = *input.Country
	}
	if input.Query != nil {
		filters.Query = *input.Query
	}
	if input.FavoritesOnly != nil {
		filters.FavoritesOnly = *input.FavoritesOnly
	}

	svc := services.NewCatalogService(s.dbCtx, nil)
	records, err := svc.Search(ctx, filters, services.RequestMeta{ClientID: "mcp"})
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("failed to search catalogs: %w", err)
	}

	results := make([]SearchEntry, 0, len(records))
	for _, r := range records {
		results = append(results, SearchEntry{
			ID:           r.ID,
			Group:        r.GroupName,
			Models:       r.Models,
			Type:         r.CatalogType,
			Description:  r.Description,
			URL:          r.URL,
			Country:      r.Country,
			PartNumbers:  r.PartNumbers,
			IsFavorite:   r.IsFavorite,
			EngineerNote: r.EngineerNote,
		})
	}

	return nil, SearchOutput{
		Results: results,
		Count:   len(results),
	}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *mcp.CallToolRequest, input ToggleFavoriteInput) (*mcp.CallToolResult, ToggleFavoriteOutput, error) {
	svc := services.NewCatalogService(s.dbCtx, nil)

	favorite, err := svc.ToggleFavorite(ctx, input.ID)
	if err != nil {
		return nil, ToggleFavoriteOutput{}, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	return nil, ToggleFavoriteOutput{
		ID:         input.ID,
		IsFavorite: favorite,
	}, nil
}

func (s *Server) handleSetNote(ctx context.Context, req *mcp.CallToolRequest, input SetNoteInput) (*mcp.CallToolResult, SetNoteOutput, error) {
	svc := services.NewCatalogService(s.dbCtx, nil)

	if err := svc.SetNote(ctx, input.ID, input.Note); err != nil {
		return nil, SetNoteOutput{}, fmt.Errorf("failed to set note: %w", err)
	}

	return nil, SetNoteOutput{
		Message: fmt.Sprintf("Updated note on catalog %d", input.ID),
	}, nil
}

func (s *Server) handleRequestSubmit(ctx context.Context, req *mcp.CallToolRequest, input RequestSubmitInput) (*mcp.CallToolResult, RequestSubmitOutput, error) {
	draft := services.RequestDraft{}
	if input.PartNumber != nil {
		draft.PartNumber = *input.PartNumber
	}
	if input.Name != nil {
		draft.Name = *input.Name
	}
	if input.Model != nil {
		draft.Model = *input.Model
	}
	if input.Group != nil {
		draft.GroupName = *input.Group
	}
	if input.CatalogID != nil {
		draft.CatalogID = *input.CatalogID
	}
	if input.Note != nil {
		draft.Note = *input.Note
	}

	svc := services.NewRequestService(s.dbCtx)
	record, err := svc.Submit(ctx, draft, services.RequestMeta{ClientID: "mcp"})
	if err != nil {
		return nil, RequestSubmitOutput{}, fmt.Errorf("failed to submit request: %w", err)
	}

	return nil, RequestSubmitOutput{
		ID:     record.ID,
		Status: string(record.Status),
	}, nil
}

func (s *Server) handleRequestList(ctx context.Context, req *mcp.CallToolRequest, input RequestListInput) (*mcp.CallToolResult, RequestListOutput, error) {
	status := ""
	if input.Status != nil {
		status = *input.Status
	}

	svc := services.NewRequestService(s.dbCtx)
	records, err := svc.List(ctx, status)
	if err != nil {
		return nil, RequestListOutput{}, fmt.Errorf("failed to list requests: %w", err)
	}

	requests := make([]RequestEntry, 0, len(records))
	for _, r := range records {
		requests = append(requests, RequestEntry{
			ID:         r.ID,
			PartNumber: r.PartNumber,
			Name:       r.Name,
			Model:      r.Model,
			Group:      r.GroupName,
			Status:     string(r.Status),
			Note:       r.Note,
			CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		})
	}

	return nil, RequestListOutput{
		Requests: requests,
	}, nil
}
