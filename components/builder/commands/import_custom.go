package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// ImportCustomComponentInput carries a raw component file payload.
type ImportCustomComponentInput struct {
	UserID string `json:"user_id"`
	Locale string `json:"locale"`
	Data   []byte `json:"data"`
}

type importCustomService interface {
	ImportCustomComponent(ctx context.Context, editor builder.EditorContext, data []byte) (builder.CustomComponent, error)
}

// ImportCustomComponentCommand wraps Service.ImportCustomComponent.
type ImportCustomComponentCommand struct {
	service   importCustomService
	telemetry Telemetry
}

// NewImportCustomComponentCommand builds the command.
func NewImportCustomComponentCommand(service importCustomService, telemetry Telemetry) *ImportCustomComponentCommand {
	return &ImportCustomComponentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ImportCustomComponentInput] = (*ImportCustomComponentCommand)(nil)

// Execute parses and stores the uploaded component definition.
func (c *ImportCustomComponentCommand) Execute(ctx context.Context, msg ImportCustomComponentInput) error {
	if c.service == nil {
		return errors.New("import command requires service")
	}
	if len(msg.Data) == 0 {
		return errors.New("import command requires file data")
	}
	component, err := c.service.ImportCustomComponent(ctx, builder.EditorContext{
		UserID: msg.UserID,
		Locale: msg.Locale,
	}, msg.Data)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.custom.import", map[string]any{
		"component_id": component.ID,
		"name":         component.Name,
	})
	return nil
}
