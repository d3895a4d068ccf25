package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// RemoveComponentInput identifies the component to delete.
type RemoveComponentInput struct {
	DocumentID  string `json:"document_id"`
	ComponentID string `json:"component_id"`
}

type removeService interface {
	DeleteComponent(ctx context.Context, documentID, componentID string) (builder.Document, error)
}

// RemoveComponentCommand wraps Service.DeleteComponent.
type RemoveComponentCommand struct {
	service   removeService
	telemetry Telemetry
}

// NewRemoveComponentCommand builds the command.
func NewRemoveComponentCommand(service removeService, telemetry Telemetry) *RemoveComponentCommand {
	return &RemoveComponentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RemoveComponentInput] = (*RemoveComponentCommand)(nil)

// Execute removes the component from whichever section holds it.
func (c *RemoveComponentCommand) Execute(ctx context.Context, msg RemoveComponentInput) error {
	if c.service == nil {
		return errors.New("remove command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("remove command requires document id")
	}
	if msg.ComponentID == "" {
		return errors.New("remove command requires component id")
	}
	if _, err := c.service.DeleteComponent(ctx, msg.DocumentID, msg.ComponentID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.component.remove", map[string]any{
		"component_id": msg.ComponentID,
	})
	return nil
}
