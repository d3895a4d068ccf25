package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// DocumentInput identifies a stored document.
type DocumentInput struct {
	DocumentID string
}

type documentService interface {
	Document(ctx context.Context, documentID string) (builder.Document, error)
}

// DocumentQuery fetches the current document snapshot.
type DocumentQuery struct {
	service documentService
}

// NewDocumentQuery builds the query.
func NewDocumentQuery(service documentService) *DocumentQuery {
	return &DocumentQuery{service: service}
}

var _ gocommand.Querier[DocumentInput, builder.Document] = (*DocumentQuery)(nil)

// Query loads the document by id.
func (q *DocumentQuery) Query(ctx context.Context, input DocumentInput) (builder.Document, error) {
	return q.service.Document(ctx, input.DocumentID)
}
