package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// UpdateComponentInput captures component patch payloads.
type UpdateComponentInput struct {
	DocumentID  string            `json:"document_id"`
	ComponentID string            `json:"component_id"`
	Content     map[string]any    `json:"content,omitempty"`
	Styles      map[string]string `json:"styles,omitempty"`
}

type updateService interface {
	UpdateComponent(ctx context.Context, documentID, componentID string, patch builder.ComponentPatch) (builder.Document, error)
}

// UpdateComponentCommand wraps Service.UpdateComponent.
type UpdateComponentCommand struct {
	service   updateService
	telemetry Telemetry
}

// NewUpdateComponentCommand creates the command.
func NewUpdateComponentCommand(service updateService, telemetry Telemetry) *UpdateComponentCommand {
	return &UpdateComponentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateComponentInput] = (*UpdateComponentCommand)(nil)

// Execute shallow-merges the content/style patch.
func (c *UpdateComponentCommand) Execute(ctx context.Context, msg UpdateComponentInput) error {
	if c.service == nil {
		return errors.New("update command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("update command requires document id")
	}
	if msg.ComponentID == "" {
		return errors.New("update command requires component id")
	}
	if _, err := c.service.UpdateComponent(ctx, msg.DocumentID, msg.ComponentID, builder.ComponentPatch{
		Content: msg.Content,
		Styles:  msg.Styles,
	}); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.component.update", map[string]any{
		"component_id": msg.ComponentID,
	})
	return nil
}
