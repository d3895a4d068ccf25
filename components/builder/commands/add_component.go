package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// AddComponentInput captures a palette drop.
type AddComponentInput struct {
	DocumentID string `json:"document_id"`
	SectionID  string `json:"section_id"`
	Type       string `json:"type"`
}

type addComponentService interface {
	AddComponent(ctx context.Context, documentID, sectionID string, componentType builder.ComponentType) (builder.Document, error)
}

// AddComponentCommand wraps Service.AddComponent.
type AddComponentCommand struct {
	service   addComponentService
	telemetry Telemetry
}

// NewAddComponentCommand builds the command.
func NewAddComponentCommand(service addComponentService, telemetry Telemetry) *AddComponentCommand {
	return &AddComponentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AddComponentInput] = (*AddComponentCommand)(nil)

// Execute seeds a component into the target section.
func (c *AddComponentCommand) Execute(ctx context.Context, msg AddComponentInput) error {
	if c.service == nil {
		return errors.New("add component command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("add component command requires document id")
	}
	if msg.SectionID == "" {
		return errors.New("add component command requires section id")
	}
	if _, err := c.service.AddComponent(ctx, msg.DocumentID, msg.SectionID, builder.ComponentType(msg.Type)); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.component.add", map[string]any{
		"document_id": msg.DocumentID,
		"type":        msg.Type,
	})
	return nil
}
