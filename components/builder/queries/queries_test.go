package queries

import (
	"context"
	"testing"

	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

type stubReadService struct {
	documentCalls int
	exportCalls   int
	previewCalls  int
	listCalls     int
	lastMode      builder.Breakpoint
}

func (s *stubReadService) Document(context.Context, string) (builder.Document, error) {
	s.documentCalls++
	return builder.Document{ID: "doc-1"}, nil
}

func (s *stubReadService) ExportDocument(context.Context, string) (string, error) {
	s.exportCalls++
	return "<!DOCTYPE html>", nil
}

func (s *stubReadService) Preview(_ context.Context, _ string, mode builder.Breakpoint) (string, error) {
	s.previewCalls++
	s.lastMode = mode
	return "<div></div>", nil
}

func (s *stubReadService) CustomComponents(context.Context, builder.EditorContext) ([]builder.CustomComponent, error) {
	s.listCalls++
	return []builder.CustomComponent{{ID: "cc-1", Name: "Banner"}}, nil
}

func TestDocumentQuery(t *testing.T) {
	service := &stubReadService{}
	query := NewDocumentQuery(service)
	doc, err := query.Query(context.Background(), DocumentInput{DocumentID: "doc-1"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if doc.ID != "doc-1" || service.documentCalls != 1 {
		t.Fatalf("unexpected document result: %+v", doc)
	}
}

func TestExportQuery(t *testing.T) {
	service := &stubReadService{}
	query := NewExportQuery(service)
	page, err := query.Query(context.Background(), ExportInput{DocumentID: "doc-1"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if page == "" || service.exportCalls != 1 {
		t.Fatalf("expected rendered page")
	}
}

func TestPreviewQuery(t *testing.T) {
	service := &stubReadService{}
	query := NewPreviewQuery(service)
	_, err := query.Query(context.Background(), PreviewInput{DocumentID: "doc-1", Mode: builder.BreakpointMobile})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if service.lastMode != builder.BreakpointMobile {
		t.Fatalf("breakpoint not propagated: %s", service.lastMode)
	}
}

func TestCustomComponentsQuery(t *testing.T) {
	service := &stubReadService{}
	query := NewCustomComponentsQuery(service)
	list, err := query.Query(context.Background(), CustomComponentsInput{Editor: builder.EditorContext{UserID: "u1"}})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(list) != 1 || service.listCalls != 1 {
		t.Fatalf("unexpected library listing: %v", list)
	}
}
