package services

import (
	"context"
	"errors"
	"testing"

	"github.com/partsdir/partsdir/internal/catalog"
)

func TestRequestServiceSubmit(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewRequestService(dbCtx)

	req, err := svc.Submit(ctx, RequestDraft{
		PartNumber: " 4181700 ",
		Name:       "Main pump seal kit",
		Model:      "EX200",
		GroupName:  "Hydraulics",
	}, RequestMeta{IP: "203.0.113.9", UserAgent: "cli"})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if req.Status != catalog.StatusNew {
		t.Fatalf("new request must start in %q, got %q", catalog.StatusNew, req.Status)
	}
	if req.PartNumber != "4181700" {
		t.Fatalf("part number not trimmed: %q", req.PartNumber)
	}
	if req.RequesterIP != "203.0.113.9" {
		t.Fatalf("requester ip not stored: %q", req.RequesterIP)
	}
}

func TestRequestServiceSubmitValidation(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewRequestService(dbCtx)

	_, err := svc.Submit(ctx, RequestDraft{PartNumber: "  ", Name: ""}, RequestMeta{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// Name alone is enough.
	if _, err := svc.Submit(ctx, RequestDraft{Name: "unknown bushing"}, RequestMeta{}); err != nil {
		t.Fatalf("Submit with name only failed: %v", err)
	}
}

func TestRequestServiceChangeStatus(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewRequestService(dbCtx)

	req, err := svc.Submit(ctx, RequestDraft{PartNumber: "9195238"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// Transitions are free between known statuses, including backwards.
	for _, status := range []string{"in_work", "ordered", "received", "in_work", "cancelled"} {
		updated, err := svc.ChangeStatus(ctx, req.ID, status)
		if err != nil {
			t.Fatalf("ChangeStatus to %q failed: %v", status, err)
		}
		if string(updated.Status) != status {
			t.Fatalf("expected status %q, got %q", status, updated.Status)
		}
	}

	if _, err := svc.ChangeStatus(ctx, req.ID, "shipped"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}
	// Rejected transition leaves the stored status untouched.
	got, err := svc.Get(ctx, req.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != catalog.StatusCancelled {
		t.Fatalf("rejected status change mutated the record: %q", got.Status)
	}

	if _, err := svc.ChangeStatus(ctx, 99999, "in_work"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestRequestServiceListStatusFilter(t *testing.T) {
	dbCtx := setupServiceDB(t)
	ctx := context.Background()
	svc := NewRequestService(dbCtx)

	a, err := svc.Submit(ctx, RequestDraft{PartNumber: "1"}, RequestMeta{})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := svc.Submit(ctx, RequestDraft{PartNumber: "2"}, RequestMeta{}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := svc.ChangeStatus(ctx, a.ID, "ordered"); err != nil {
		t.Fatalf("ChangeStatus failed: %v", err)
	}

	ordered, err := svc.List(ctx, "ordered")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ordered) != 1 || ordered[0].ID != a.ID {
		t.Fatalf("status filter returned wrong set: %#v", ordered)
	}

	// An unknown filter value is ignored and everything is returned.
	all, err := svc.List(ctx, "bogus")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests for unknown filter, got %d", len(all))
	}
}
