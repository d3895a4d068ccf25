package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// HistoryStepInput identifies the document whose history moves.
type HistoryStepInput struct {
	DocumentID string `json:"document_id"`
}

type historyService interface {
	Undo(ctx context.Context, documentID string) (builder.Document, error)
	Redo(ctx context.Context, documentID string) (builder.Document, error)
}

// UndoCommand wraps Service.Undo.
type UndoCommand struct {
	service   historyService
	telemetry Telemetry
}

// NewUndoCommand builds the command.
func NewUndoCommand(service historyService, telemetry Telemetry) *UndoCommand {
	return &UndoCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[HistoryStepInput] = (*UndoCommand)(nil)

// Execute restores the previous snapshot.
func (c *UndoCommand) Execute(ctx context.Context, msg HistoryStepInput) error {
	if c.service == nil {
		return errors.New("undo command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("undo command requires document id")
	}
	if _, err := c.service.Undo(ctx, msg.DocumentID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.history.undo", map[string]any{
		"document_id": msg.DocumentID,
	})
	return nil
}

// RedoCommand wraps Service.Redo.
type RedoCommand struct {
	service   historyService
	telemetry Telemetry
}

// NewRedoCommand builds the command.
func NewRedoCommand(service historyService, telemetry Telemetry) *RedoCommand {
	return &RedoCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[HistoryStepInput] = (*RedoCommand)(nil)

// Execute reapplies the next snapshot when one exists.
func (c *RedoCommand) Execute(ctx context.Context, msg HistoryStepInput) error {
	if c.service == nil {
		return errors.New("redo command requires service")
	}
	if msg.DocumentID == "" {
		return errors.New("redo command requires document id")
	}
	if _, err := c.service.Redo(ctx, msg.DocumentID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "builder.history.redo", map[string]any{
		"document_id": msg.DocumentID,
	})
	return nil
}
