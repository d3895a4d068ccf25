package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// DuplicateComponentInput identifies the component to copy.
type DuplicateComponentInput struct {
	DocumentID  string `json:"document_id"`
	ComponentID string `json:"component_id"`
}

type duplicateService interface {
	DuplicateComponent(ctx context.Context, documentID, componentID string) (builder.Document, error)
}

// DuplicateComponentCommand wraps Service.DuplicateComponent.
type DuplicateComponentCommand struct {
	service   duplicateService
	telemetry Telemetry
}

// NewDuplicateComponentCommand builds the command.
func NewDuplicateComponentCommand(service duplicateService, telemetry Telemetry) *DuplicateComponentCommand {
	return &DuplicateComponentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DuplicateComponentInput] = (*DuplicateComponentCommand)(nil)

// Execute inserts a copy with a fresh id right after the original.
func (c *DuplicateComponentCommand) Execute(ctx context.Context, msg DuplicateComponentInput) error {
	if c.service == nil {
		return errors.New("duplicate command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("duplicate command requires document id")
	}
	if msg.ComponentID == "" {
		return errors.New("duplicate command requires component id")
	}
	if _, err := c.service.DuplicateComponent(ctx, msg.DocumentID, msg.ComponentID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.component.duplicate", map[string]any{
		"component_id": msg.ComponentID,
	})
	return nil
}
