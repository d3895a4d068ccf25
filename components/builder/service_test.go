package builder

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type recordingHook struct {
	events []DocumentEvent
}

func (h *recordingHook) DocumentUpdated(_ context.Context, event DocumentEvent) error {
	h.events = append(h.events, event)
	return nil
}

type countingStore struct {
	*InMemoryDocumentStore
	saves int
}

func newCountingStore() *countingStore {
	return &countingStore{InMemoryDocumentStore: NewInMemoryDocumentStore()}
}

func (s *countingStore) Save(ctx context.Context, doc Document, meta map[string]any) error {
	s.saves++
	return s.InMemoryDocumentStore.Save(ctx, doc, meta)
}

func newTestService(t *testing.T) (*Service, *countingStore, *recordingHook) {
	t.Helper()
	store := newCountingStore()
	hook := &recordingHook{}
	service := NewService(Options{
		DocumentStore: store,
		RefreshHook:   hook,
	})
	return service, store, hook
}

func seedDocument(t *testing.T, service *Service) (Document, string) {
	t.Helper()
	ctx := context.Background()
	doc, err := service.CreateDocument(ctx, "Test Page")
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	doc, err = service.AddSection(ctx, doc.ID)
	if err != nil {
		t.Fatalf("add section: %v", err)
	}
	return doc, doc.Sections[0].ID
}

func TestServiceAssemblesAndExportsPage(t *testing.T) {
	ctx := context.Background()
	service, _, hook := newTestService(t)
	doc, sectionID := seedDocument(t, service)

	var err error
	for _, componentType := range []ComponentType{TypeHero, TypeText, TypeButton} {
		if doc, err = service.AddComponent(ctx, doc.ID, sectionID, componentType); err != nil {
			t.Fatalf("add %s: %v", componentType, err)
		}
	}
	if got := len(doc.Sections[0].Components); got != 3 {
		t.Fatalf("expected 3 components, got %d", got)
	}

	page, err := service.ExportDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{"Hero Title", "Get Started", "<!DOCTYPE html>"} {
		if !strings.Contains(page, want) {
			t.Fatalf("exported page missing %q", want)
		}
	}

	// create + section + 3 components = 5 events
	if len(hook.events) != 5 {
		t.Fatalf("expected 5 document events, got %d", len(hook.events))
	}
}

func TestServiceUpdateTextLeavesStylesUntouched(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)
	doc, sectionID := seedDocument(t, service)
	doc, err := service.AddComponent(ctx, doc.ID, sectionID, TypeButton)
	if err != nil {
		t.Fatalf("add button: %v", err)
	}
	button := doc.Sections[0].Components[0]
	stylesBefore := len(button.Styles)

	next, err := service.UpdateComponent(ctx, doc.ID, button.ID, ComponentPatch{
		Content: map[string]any{"text": "Buy Now"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	updated := next.Sections[0].Components[0]
	if updated.Content["text"] != "Buy Now" {
		t.Fatalf("text not updated: %v", updated.Content)
	}
	if len(updated.Styles) != stylesBefore {
		t.Fatalf("styles changed by a content-only update: %v", updated.Styles)
	}
	if updated.Content["link"] != button.Content["link"] {
		t.Fatalf("unrelated content key changed: %v", updated.Content)
	}
}

func TestServiceStructuralNoopsSkipPersistence(t *testing.T) {
	ctx := context.Background()
	service, store, hook := newTestService(t)
	doc, _ := seedDocument(t, service)
	savesBefore := store.saves
	eventsBefore := len(hook.events)

	got, err := service.AddComponent(ctx, doc.ID, "missing-section", TypeText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Sections[0].Components) != 0 {
		t.Fatalf("document changed by a no-op add")
	}
	if _, err := service.DeleteComponent(ctx, doc.ID, "missing-component"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.MoveComponent(ctx, doc.ID, MoveComponentRequest{
		FromSectionID: "missing", ToSectionID: "missing",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.saves != savesBefore {
		t.Fatalf("structural no-ops must not persist snapshots: %d saves", store.saves-savesBefore)
	}
	if len(hook.events) != eventsBefore {
		t.Fatalf("structural no-ops must not emit events")
	}
}

func TestServiceDropPersistsExactlyOneSnapshot(t *testing.T) {
	ctx := context.Background()
	service, store, _ := newTestService(t)
	doc, sectionID := seedDocument(t, service)
	savesBefore := store.saves

	next, err := service.Drop(ctx, doc.ID, DragGesture{
		Source:        SourcePalette,
		ComponentType: TypeImage,
	}, DropTarget{SectionID: sectionID})
	if err != nil {
		t.Fatalf("drop: %v", err)
	}
	if len(next.Sections[0].Components) != 1 {
		t.Fatalf("expected one component after drop, got %d", len(next.Sections[0].Components))
	}
	if store.saves != savesBefore+1 {
		t.Fatalf("expected exactly one snapshot per drop, got %d", store.saves-savesBefore)
	}

	// Invalid target: no snapshot.
	if _, err := service.Drop(ctx, doc.ID, DragGesture{Source: SourcePalette, ComponentType: TypeText},
		DropTarget{SectionID: "missing"}); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if store.saves != savesBefore+1 {
		t.Fatalf("invalid drop must not persist")
	}
}

func TestServiceUndoRedo(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)
	doc, sectionID := seedDocument(t, service)
	doc, err := service.AddComponent(ctx, doc.ID, sectionID, TypeText)
	if err != nil {
		t.Fatalf("add component: %v", err)
	}

	undone, err := service.Undo(ctx, doc.ID)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(undone.Sections[0].Components) != 0 {
		t.Fatalf("undo should remove the added component")
	}
	stored, _ := service.Document(ctx, doc.ID)
	if len(stored.Sections[0].Components) != 0 {
		t.Fatalf("undo must persist the older snapshot")
	}

	redone, err := service.Redo(ctx, doc.ID)
	if err != nil {
		t.Fatalf("redo: %v", err)
	}
	if len(redone.Sections[0].Components) != 1 {
		t.Fatalf("redo should restore the component")
	}
}

func TestServiceUpdateValidationFailureLeavesStore(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)
	doc, sectionID := seedDocument(t, service)
	doc, err := service.AddComponent(ctx, doc.ID, sectionID, TypeText)
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
	componentID := doc.Sections[0].Components[0].ID

	_, err = service.UpdateComponent(ctx, doc.ID, componentID, ComponentPatch{
		Content: map[string]any{"text": 42},
	})
	if err == nil {
		t.Fatalf("expected schema validation error")
	}
	stored, _ := service.Document(ctx, doc.ID)
	if stored.Sections[0].Components[0].Content["text"] == 42 {
		t.Fatalf("failed update must not persist")
	}
}

func TestServiceImportCustomComponentSetsAuthor(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)
	editor := EditorContext{UserID: "author@example.com"}

	data, _ := ExportCustomComponent(CustomComponent{ID: "cc-1", Name: "Banner", Template: "<div></div>"})
	imported, err := service.ImportCustomComponent(ctx, editor, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.Author != "author@example.com" {
		t.Fatalf("import should stamp the importing author, got %q", imported.Author)
	}
	list, err := service.CustomComponents(ctx, editor)
	if err != nil || len(list) != 1 {
		t.Fatalf("library should contain the import: %v / %d", err, len(list))
	}

	if _, err := service.ImportCustomComponent(ctx, editor, []byte(`{"template":"x"}`)); !errors.Is(err, ErrInvalidComponentFile) {
		t.Fatalf("expected invalid file error, got %v", err)
	}
	list, _ = service.CustomComponents(ctx, editor)
	if len(list) != 1 {
		t.Fatalf("failed import must leave the library unchanged")
	}
}

func TestServiceInsertCustomComponent(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)
	doc, sectionID := seedDocument(t, service)
	editor := EditorContext{UserID: "author@example.com"}

	data, _ := ExportCustomComponent(sampleCustomComponent())
	imported, err := service.ImportCustomComponent(ctx, editor, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	next, err := service.InsertCustomComponent(ctx, editor, doc.ID, sectionID, imported.ID)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	comps := next.Sections[0].Components
	if len(comps) != 1 || comps[0].Type != TypeCustom {
		t.Fatalf("expected a custom component, got %+v", comps)
	}
	if comps[0].Content["headline"] != "Hello" {
		t.Fatalf("property defaults not seeded: %v", comps[0].Content)
	}
}

func TestServiceGenerateThemeFlowsIntoExport(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	service := NewService(Options{
		DocumentStore: store,
		ThemeGenerator: generatorFunc(func(_ context.Context, req GenerateThemeRequest) (*ThemeSelection, error) {
			return &ThemeSelection{
				Name:   req.BusinessType,
				Tokens: map[string]string{"background": "#0f172a"},
			}, nil
		}),
	})
	doc, err := service.CreateDocument(ctx, "Page")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.GenerateTheme(ctx, GenerateThemeRequest{BusinessType: "studio"}); err != nil {
		t.Fatalf("generate theme: %v", err)
	}
	page, err := service.ExportDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(page, "background: #0f172a") {
		t.Fatalf("exported page should use the generated theme")
	}
}

func TestServiceRequiresDocumentStore(t *testing.T) {
	service := NewService(Options{})
	if _, err := service.CreateDocument(context.Background(), "x"); err == nil {
		t.Fatalf("expected error without a document store")
	}
}
