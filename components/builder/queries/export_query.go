package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
)

// ExportInput identifies the document to export.
type ExportInput struct {
	DocumentID string
}

type exportService interface {
	ExportDocument(ctx context.Context, documentID string) (string, error)
}

// ExportQuery renders the document as a self-contained HTML page.
type ExportQuery struct {
	service exportService
}

// NewExportQuery builds the query.
func NewExportQuery(service exportService) *ExportQuery {
	return &ExportQuery{service: service}
}

var _ gocommand.Querier[ExportInput, string] = (*ExportQuery)(nil)

// Query produces the published HTML document.
func (q *ExportQuery) Query(ctx context.Context, input ExportInput) (string, error) {
	return q.service.ExportDocument(ctx, input.DocumentID)
}
