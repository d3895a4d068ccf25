package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// PreviewInput selects a document and a device breakpoint.
type PreviewInput struct {
	DocumentID string
	Mode       builder.Breakpoint
}

type previewService interface {
	Preview(ctx context.Context, documentID string, mode builder.Breakpoint) (string, error)
}

// PreviewQuery renders the document inside a device viewport frame.
type PreviewQuery struct {
	service previewService
}

// NewPreviewQuery builds the query.
func NewPreviewQuery(service previewService) *PreviewQuery {
	return &PreviewQuery{service: service}
}

var _ gocommand.Querier[PreviewInput, string] = (*PreviewQuery)(nil)

// Query renders the breakpoint-adjusted preview markup.
func (q *PreviewQuery) Query(ctx context.Context, input PreviewInput) (string, error) {
	return q.service.Preview(ctx, input.DocumentID, input.Mode)
}
