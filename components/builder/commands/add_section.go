package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// AddSectionInput identifies the document to extend.
type AddSectionInput struct {
	DocumentID string `json:"document_id"`
}

type addSectionService interface {
	AddSection(ctx context.Context, documentID string) (builder.Document, error)
}

// AddSectionCommand wraps Service.AddSection.
type AddSectionCommand struct {
	service   addSectionService
	telemetry Telemetry
}

// NewAddSectionCommand builds the command.
func NewAddSectionCommand(service addSectionService, telemetry Telemetry) *AddSectionCommand {
	return &AddSectionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[AddSectionInput] = (*AddSectionCommand)(nil)

// Execute appends a fresh section.
func (c *AddSectionCommand) Execute(ctx context.Context, msg AddSectionInput) error {
	if c.service == nil {
		return errors.New("add section command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("add section command requires document id")
	}
	if _, err := c.service.AddSection(ctx, msg.DocumentID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.section.add", map[string]any{
		"document_id": msg.DocumentID,
	})
	return nil
}
