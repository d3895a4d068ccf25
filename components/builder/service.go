package builder

import (
	"context"
	"errors"
	"sync"
)

var (
	errMissingDocumentStore  = errors.New("builder: document store not configured")
	errMissingThemeGenerator = errors.New("builder: theme generator not configured")
	errInvalidSection        = errors.New("builder: section id is required")
	errInvalidComponent      = errors.New("builder: component id is required")
)

// Options configures the builder Service. Every collaborator is provided via
// interface so applications can swap implementations without importing
// internal go-sitebuilder packages.
type Options struct {
	DocumentStore  DocumentStore
	Registry       ComponentRegistry
	CustomStore    CustomComponentStore
	Validator      ContentValidator
	RefreshHook    RefreshHook
	Telemetry      Telemetry
	ThemeGenerator ThemeGenerator
	HistoryLimit   int
}

// Service orchestrates document editing sessions: it wraps the pure mutation
// API with persistence, history snapshots, refresh events, and telemetry. All
// mutations happen synchronously per call; the document itself is only ever
// touched through snapshot-in, snapshot-out operations.
type Service struct {
	opts  Options
	theme *ThemeSession

	historyMu sync.Mutex
	history   map[string]*History
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.CustomStore == nil {
		opts.CustomStore = NewInMemoryCustomComponentStore()
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	return &Service{
		opts:    opts,
		theme:   NewThemeSession(opts.ThemeGenerator),
		history: make(map[string]*History),
	}
}

// Registry exposes the palette registry for controllers and transports.
func (s *Service) Registry() ComponentRegistry {
	return s.opts.Registry
}

// CreateDocument creates and persists an empty document.
func (s *Service) CreateDocument(ctx context.Context, name string) (Document, error) {
	store, err := s.documentStore()
	if err != nil {
		return Document{}, err
	}
	doc := NewDocument(name)
	if err := store.Save(ctx, doc, map[string]any{"reason": "create"}); err != nil {
		return Document{}, err
	}
	s.trackHistory(doc)
	s.emit(ctx, DocumentEvent{DocumentID: doc.ID, Reason: "document.create"})
	s.recordTelemetry(ctx, "builder.document.create", map[string]any{"document_id": doc.ID})
	return doc, nil
}

// Document loads the current snapshot for an id.
func (s *Service) Document(ctx context.Context, documentID string) (Document, error) {
	store, err := s.documentStore()
	if err != nil {
		return Document{}, err
	}
	return store.Load(ctx, documentID)
}

// AddSection appends a fresh section and persists the snapshot.
func (s *Service) AddSection(ctx context.Context, documentID string) (Document, error) {
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	next := AddSection(doc)
	sectionID := next.Sections[len(next.Sections)-1].ID
	if err := s.commit(ctx, next, DocumentEvent{
		DocumentID: documentID,
		SectionID:  sectionID,
		Reason:     "section.add",
	}); err != nil {
		return Document{}, err
	}
	return next, nil
}

// AddComponent seeds a component of the given type into a section. A missing
// section is a structural no-op: the stored document is returned unchanged
// and no event or snapshot is produced.
func (s *Service) AddComponent(ctx context.Context, documentID, sectionID string, componentType ComponentType) (Document, error) {
	if sectionID == "" {
		return Document{}, errInvalidSection
	}
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	if sectionIndex(doc, sectionID) < 0 {
		return doc, nil
	}
	next := AddComponent(doc, s.opts.Registry, sectionID, componentType)
	if err := s.commit(ctx, next, DocumentEvent{
		DocumentID: documentID,
		SectionID:  sectionID,
		Reason:     "component.add",
	}); err != nil {
		return Document{}, err
	}
	s.recordTelemetry(ctx, "builder.component.add", map[string]any{
		"document_id": documentID,
		"type":        string(componentType),
	})
	return next, nil
}

// MoveComponentRequest carries drag-resolved move coordinates.
type MoveComponentRequest struct {
	FromSectionID string `json:"from_section_id"`
	FromIndex     int    `json:"from_index"`
	ToSectionID   string `json:"to_section_id"`
	ToIndex       int    `json:"to_index"`
}

// MoveComponent repositions a component within or across sections.
func (s *Service) MoveComponent(ctx context.Context, documentID string, req MoveComponentRequest) (Document, error) {
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	from := sectionIndex(doc, req.FromSectionID)
	if from < 0 || sectionIndex(doc, req.ToSectionID) < 0 {
		return doc, nil
	}
	if req.FromIndex < 0 || req.FromIndex >= len(doc.Sections[from].Components) {
		return doc, nil
	}
	next := MoveComponent(doc, req.FromSectionID, req.FromIndex, req.ToSectionID, req.ToIndex)
	if err := s.commit(ctx, next, DocumentEvent{
		DocumentID: documentID,
		SectionID:  req.ToSectionID,
		Reason:     "component.move",
	}); err != nil {
		return Document{}, err
	}
	s.recordTelemetry(ctx, "builder.component.move", map[string]any{"document_id": documentID})
	return next, nil
}

// UpdateComponent shallow-merges the patch and persists. The merged content
// is validated against the definition schema when one is registered; a failed
// validation leaves the stored document untouched.
func (s *Service) UpdateComponent(ctx context.Context, documentID, componentID string, patch ComponentPatch) (Document, error) {
	if componentID == "" {
		return Document{}, errInvalidComponent
	}
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	if _, _, ok := findComponent(doc, componentID); !ok {
		return doc, nil
	}
	next := UpdateComponent(doc, componentID, patch)
	merged, _, _ := findComponent(next, componentID)
	if def, ok := s.opts.Registry.Definition(merged.Type); ok {
		if err := s.opts.Validator.Validate(def, merged.Content); err != nil {
			return Document{}, err
		}
	}
	if err := s.commit(ctx, next, DocumentEvent{
		DocumentID:  documentID,
		ComponentID: componentID,
		Reason:      "component.update",
	}); err != nil {
		return Document{}, err
	}
	s.recordTelemetry(ctx, "builder.component.update", map[string]any{
		"document_id":  documentID,
		"component_id": componentID,
	})
	return next, nil
}

// DeleteComponent removes a component from whichever section holds it.
func (s *Service) DeleteComponent(ctx context.Context, documentID, componentID string) (Document, error) {
	if componentID == "" {
		return Document{}, errInvalidComponent
	}
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	if _, _, ok := findComponent(doc, componentID); !ok {
		return doc, nil
	}
	next := DeleteComponent(doc, componentID)
	if err := s.commit(ctx, next, DocumentEvent{
		DocumentID:  documentID,
		ComponentID: componentID,
		Reason:      "component.delete",
	}); err != nil {
		return Document{}, err
	}
	s.recordTelemetry(ctx, "builder.component.delete", map[string]any{
		"document_id":  documentID,
		"component_id": componentID,
	})
	return next, nil
}

// DuplicateComponent copies a component under a fresh id next to the source.
func (s *Service) DuplicateComponent(ctx context.Context, documentID, componentID string) (Document, error) {
	if componentID == "" {
		return Document{}, errInvalidComponent
	}
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	if _, _, ok := findComponent(doc, componentID); !ok {
		return doc, nil
	}
	next := DuplicateComponent(doc, componentID)
	if err := s.commit(ctx, next, DocumentEvent{
		DocumentID:  documentID,
		ComponentID: componentID,
		Reason:      "component.duplicate",
	}); err != nil {
		return Document{}, err
	}
	return next, nil
}

// InsertCustomComponent loads a library template into a section.
func (s *Service) InsertCustomComponent(ctx context.Context, editor EditorContext, documentID, sectionID, customID string) (Document, error) {
	if sectionID == "" {
		return Document{}, errInvalidSection
	}
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	custom, ok, err := s.opts.CustomStore.Get(ctx, editor.UserID, customID)
	if err != nil {
		return Document{}, err
	}
	if !ok || sectionIndex(doc, sectionID) < 0 {
		return doc, nil
	}
	next := LoadCustomComponent(doc, sectionID, custom)
	if err := s.commit(ctx, next, DocumentEvent{
		DocumentID: documentID,
		SectionID:  sectionID,
		Reason:     "component.custom",
	}); err != nil {
		return Document{}, err
	}
	s.recordTelemetry(ctx, "builder.component.custom", map[string]any{
		"document_id": documentID,
		"custom_id":   customID,
	})
	return next, nil
}

// Drop resolves a drag gesture through the controller and persists the
// mutation when the drop was valid. Exactly one snapshot per completed drop.
func (s *Service) Drop(ctx context.Context, documentID string, gesture DragGesture, target DropTarget) (Document, error) {
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return Document{}, err
	}
	controller := NewDragController()
	controller.Grab(gesture)
	result := controller.Drop(doc, s.opts.Registry, target)
	if !result.Mutated {
		return doc, nil
	}
	if err := s.commit(ctx, result.Document, DocumentEvent{
		DocumentID: documentID,
		SectionID:  target.SectionID,
		Reason:     result.Reason,
	}); err != nil {
		return Document{}, err
	}
	return result.Document, nil
}

// Undo steps the document back one snapshot and persists the older state.
func (s *Service) Undo(ctx context.Context, documentID string) (Document, error) {
	return s.step(ctx, documentID, "document.undo", func(h *History) (Document, bool) { return h.Undo() })
}

// Redo steps the document forward one snapshot.
func (s *Service) Redo(ctx context.Context, documentID string) (Document, error) {
	return s.step(ctx, documentID, "document.redo", func(h *History) (Document, bool) { return h.Redo() })
}

func (s *Service) step(ctx context.Context, documentID, reason string, move func(*History) (Document, bool)) (Document, error) {
	store, err := s.documentStore()
	if err != nil {
		return Document{}, err
	}
	s.historyMu.Lock()
	h, ok := s.history[documentID]
	s.historyMu.Unlock()
	if !ok {
		return Document{}, ErrDocumentNotFound
	}
	doc, moved := move(h)
	if !moved {
		return doc, nil
	}
	if err := store.Save(ctx, doc, map[string]any{"reason": reason}); err != nil {
		return Document{}, err
	}
	s.emit(ctx, DocumentEvent{DocumentID: documentID, Reason: reason})
	return doc, nil
}

// ImportCustomComponent parses an exported component file and merges it into
// the editor's library under a fresh id. Malformed payloads abort with
// ErrInvalidComponentFile and leave the library unchanged.
func (s *Service) ImportCustomComponent(ctx context.Context, editor EditorContext, data []byte) (CustomComponent, error) {
	component, err := ImportCustomComponent(data)
	if err != nil {
		return CustomComponent{}, err
	}
	if component.Author == "" {
		component.Author = editor.UserID
	}
	if err := s.opts.CustomStore.Put(ctx, editor.UserID, component); err != nil {
		return CustomComponent{}, err
	}
	s.recordTelemetry(ctx, "builder.custom.import", map[string]any{
		"user_id":   editor.UserID,
		"custom_id": component.ID,
	})
	return component, nil
}

// ExportCustomComponent serializes a library entry with its download name.
func (s *Service) ExportCustomComponent(ctx context.Context, editor EditorContext, customID string) ([]byte, string, error) {
	component, ok, err := s.opts.CustomStore.Get(ctx, editor.UserID, customID)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrDocumentNotFound
	}
	data, err := ExportCustomComponent(component)
	if err != nil {
		return nil, "", err
	}
	return data, ExportFilename(component), nil
}

// CustomComponents lists the editor's library.
func (s *Service) CustomComponents(ctx context.Context, editor EditorContext) ([]CustomComponent, error) {
	return s.opts.CustomStore.List(ctx, editor.UserID)
}

// ExportDocument renders the stored snapshot as a standalone HTML page using
// the session's current theme.
func (s *Service) ExportDocument(ctx context.Context, documentID string) (string, error) {
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return "", err
	}
	page := ExportHTML(s.opts.Registry, doc, s.theme.Current())
	s.recordTelemetry(ctx, "builder.document.export", map[string]any{"document_id": documentID})
	return page, nil
}

// Preview renders the document at the requested breakpoint. Rendering never
// mutates the underlying document.
func (s *Service) Preview(ctx context.Context, documentID string, mode Breakpoint) (string, error) {
	doc, err := s.Document(ctx, documentID)
	if err != nil {
		return "", err
	}
	return RenderPreview(s.opts.Registry, doc, mode), nil
}

// GenerateTheme delegates to the external collaborator. Failures surface to
// the caller and the previous theme stays active; stale responses are
// discarded by the session's request counter.
func (s *Service) GenerateTheme(ctx context.Context, req GenerateThemeRequest) (*ThemeSelection, error) {
	selection, err := s.theme.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	s.recordTelemetry(ctx, "builder.theme.generate", map[string]any{
		"business_type": req.BusinessType,
		"theme_style":   req.ThemeStyle,
	})
	return selection, nil
}

// Theme returns the active theme selection, if any.
func (s *Service) Theme() *ThemeSelection {
	return s.theme.Current()
}

func (s *Service) commit(ctx context.Context, doc Document, event DocumentEvent) error {
	store, err := s.documentStore()
	if err != nil {
		return err
	}
	if err := store.Save(ctx, doc, map[string]any{"reason": event.Reason}); err != nil {
		return err
	}
	s.pushHistory(doc)
	s.emit(ctx, event)
	return nil
}

func (s *Service) trackHistory(doc Document) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.history[doc.ID] = NewHistory(doc, s.opts.HistoryLimit)
}

func (s *Service) pushHistory(doc Document) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	h, ok := s.history[doc.ID]
	if !ok {
		s.history[doc.ID] = NewHistory(doc, s.opts.HistoryLimit)
		return
	}
	h.Push(doc)
}

func (s *Service) emit(ctx context.Context, event DocumentEvent) {
	_ = s.opts.RefreshHook.DocumentUpdated(ctx, event)
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

func (s *Service) documentStore() (DocumentStore, error) {
	if s.opts.DocumentStore == nil {
		return nil, errMissingDocumentStore
	}
	return s.opts.DocumentStore, nil
}

type noopRefreshHook struct{}

func (noopRefreshHook) DocumentUpdated(context.Context, DocumentEvent) error { return nil }
