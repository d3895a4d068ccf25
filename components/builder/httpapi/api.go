package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-sitebuilder/components/builder/commands"
)

// Executor is the mutation surface transports call into.
type Executor interface {
	AddSection(ctx context.Context, input commands.AddSectionInput) error
	AddComponent(ctx context.Context, input commands.AddComponentInput) error
	Move(ctx context.Context, input commands.MoveComponentInput) error
	Update(ctx context.Context, input commands.UpdateComponentInput) error
	Remove(ctx context.Context, input commands.RemoveComponentInput) error
	Duplicate(ctx context.Context, input commands.DuplicateComponentInput) error
	ImportCustom(ctx context.Context, input commands.ImportCustomComponentInput) error
	Undo(ctx context.Context, input commands.HistoryStepInput) error
	Redo(ctx context.Context, input commands.HistoryStepInput) error
	GenerateTheme(ctx context.Context, input commands.GenerateThemeInput) error
}

// CommandExecutor satisfies Executor by delegating to shared commands.
type CommandExecutor struct {
	AddSectionCmd    gocommand.Commander[commands.AddSectionInput]
	AddComponentCmd  gocommand.Commander[commands.AddComponentInput]
	MoveCmd          gocommand.Commander[commands.MoveComponentInput]
	UpdateCmd        gocommand.Commander[commands.UpdateComponentInput]
	RemoveCmd        gocommand.Commander[commands.RemoveComponentInput]
	DuplicateCmd     gocommand.Commander[commands.DuplicateComponentInput]
	ImportCustomCmd  gocommand.Commander[commands.ImportCustomComponentInput]
	UndoCmd          gocommand.Commander[commands.HistoryStepInput]
	RedoCmd          gocommand.Commander[commands.HistoryStepInput]
	GenerateThemeCmd gocommand.Commander[commands.GenerateThemeInput]
}

var _ Executor = (*CommandExecutor)(nil)

var errCommandMissing = errors.New("httpapi: command not configured")

func (e *CommandExecutor) AddSection(ctx context.Context, input commands.AddSectionInput) error {
	if e.AddSectionCmd == nil {
		return errCommandMissing
	}
	return e.AddSectionCmd.Execute(ctx, input)
}

func (e *CommandExecutor) AddComponent(ctx context.Context, input commands.AddComponentInput) error {
	if e.AddComponentCmd == nil {
		return errCommandMissing
	}
	return e.AddComponentCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Move(ctx context.Context, input commands.MoveComponentInput) error {
	if e.MoveCmd == nil {
		return errCommandMissing
	}
	return e.MoveCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Update(ctx context.Context, input commands.UpdateComponentInput) error {
	if e.UpdateCmd == nil {
		return errCommandMissing
	}
	return e.UpdateCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Remove(ctx context.Context, input commands.RemoveComponentInput) error {
	if e.RemoveCmd == nil {
		return errCommandMissing
	}
	return e.RemoveCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Duplicate(ctx context.Context, input commands.DuplicateComponentInput) error {
	if e.DuplicateCmd == nil {
		return errCommandMissing
	}
	return e.DuplicateCmd.Execute(ctx, input)
}

func (e *CommandExecutor) ImportCustom(ctx context.Context, input commands.ImportCustomComponentInput) error {
	if e.ImportCustomCmd == nil {
		return errCommandMissing
	}
	return e.ImportCustomCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Undo(ctx context.Context, input commands.HistoryStepInput) error {
	if e.UndoCmd == nil {
		return errCommandMissing
	}
	return e.UndoCmd.Execute(ctx, input)
}

func (e *CommandExecutor) Redo(ctx context.Context, input commands.HistoryStepInput) error {
	if e.RedoCmd == nil {
		return errCommandMissing
	}
	return e.RedoCmd.Execute(ctx, input)
}

func (e *CommandExecutor) GenerateTheme(ctx context.Context, input commands.GenerateThemeInput) error {
	if e.GenerateThemeCmd == nil {
		return errCommandMissing
	}
	return e.GenerateThemeCmd.Execute(ctx, input)
}

// Handlers exposes HTTP endpoints backed by shared commands.
type Handlers struct {
	AddSection    gocommand.Commander[commands.AddSectionInput]
	AddComponent  gocommand.Commander[commands.AddComponentInput]
	Move          gocommand.Commander[commands.MoveComponentInput]
	Update        gocommand.Commander[commands.UpdateComponentInput]
	Remove        gocommand.Commander[commands.RemoveComponentInput]
	Duplicate     gocommand.Commander[commands.DuplicateComponentInput]
	ImportCustom  gocommand.Commander[commands.ImportCustomComponentInput]
	Undo          gocommand.Commander[commands.HistoryStepInput]
	Redo          gocommand.Commander[commands.HistoryStepInput]
	GenerateTheme gocommand.Commander[commands.GenerateThemeInput]
}

func (h *Handlers) HandleAddSection(w http.ResponseWriter, r *http.Request) {
	var payload commands.AddSectionInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.AddSection.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleAddComponent(w http.ResponseWriter, r *http.Request) {
	var payload commands.AddComponentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.AddComponent.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleMoveComponent(w http.ResponseWriter, r *http.Request) {
	var payload commands.MoveComponentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Move.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleUpdateComponent(w http.ResponseWriter, r *http.Request) {
	var payload commands.UpdateComponentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Update.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleRemoveComponent(w http.ResponseWriter, r *http.Request, documentID, componentID string) {
	input := commands.RemoveComponentInput{DocumentID: documentID, ComponentID: componentID}
	if err := h.Remove.Execute(r.Context(), input); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleDuplicateComponent(w http.ResponseWriter, r *http.Request) {
	var payload commands.DuplicateComponentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Duplicate.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleImportCustomComponent(w http.ResponseWriter, r *http.Request) {
	var payload commands.ImportCustomComponentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.ImportCustom.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handlers) HandleUndo(w http.ResponseWriter, r *http.Request) {
	var payload commands.HistoryStepInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Undo.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleRedo(w http.ResponseWriter, r *http.Request) {
	var payload commands.HistoryStepInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Redo.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) HandleGenerateTheme(w http.ResponseWriter, r *http.Request) {
	var payload commands.GenerateThemeInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.GenerateTheme.Execute(r.Context(), payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
