package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// CustomComponentsInput scopes the listing to an editor.
type CustomComponentsInput struct {
	Editor builder.EditorContext
}

type customListService interface {
	CustomComponents(ctx context.Context, editor builder.EditorContext) ([]builder.CustomComponent, error)
}

// CustomComponentsQuery lists the saved component library.
type CustomComponentsQuery struct {
	service customListService
}

// NewCustomComponentsQuery builds the query.
func NewCustomComponentsQuery(service customListService) *CustomComponentsQuery {
	return &CustomComponentsQuery{service: service}
}

var _ gocommand.Querier[CustomComponentsInput, []builder.CustomComponent] = (*CustomComponentsQuery)(nil)

// Query returns every stored custom component.
func (q *CustomComponentsQuery) Query(ctx context.Context, input CustomComponentsInput) ([]builder.CustomComponent, error) {
	return q.service.CustomComponents(ctx, input.Editor)
}
