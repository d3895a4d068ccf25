package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// MoveComponentInput carries drag-resolved move coordinates.
type MoveComponentInput struct {
	DocumentID    string `json:"document_id"`
	FromSectionID string `json:"from_section_id"`
	FromIndex     int    `json:"from_index"`
	ToSectionID   string `json:"to_section_id"`
	ToIndex       int    `json:"to_index"`
}

type moveService interface {
	MoveComponent(ctx context.Context, documentID string, req builder.MoveComponentRequest) (builder.Document, error)
}

// MoveComponentCommand wraps Service.MoveComponent.
type MoveComponentCommand struct {
	service   moveService
	telemetry Telemetry
}

// NewMoveComponentCommand builds the command.
func NewMoveComponentCommand(service moveService, telemetry Telemetry) *MoveComponentCommand {
	return &MoveComponentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[MoveComponentInput] = (*MoveComponentCommand)(nil)

// Execute repositions a component within or across sections.
func (c *MoveComponentCommand) Execute(ctx context.Context, msg MoveComponentInput) error {
	if c.service == nil {
		return errors.New("move command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("move command requires document id")
	}
	if _, err := c.service.MoveComponent(ctx, msg.DocumentID, builder.MoveComponentRequest{
		FromSectionID: msg.FromSectionID,
		FromIndex:     msg.FromIndex,
		ToSectionID:   msg.ToSectionID,
		ToIndex:       msg.ToIndex,
	}); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.component.move", map[string]any{
		"document_id": msg.DocumentID,
	})
	return nil
}
