package builder

import (
	"testing"
)

func testDocument(componentIDs ...string) Document {
	doc := Document{ID: "doc-1", Name: "Test Page"}
	section := Section{ID: "s1", Name: "Section 1", GridCols: 12}
	for _, id := range componentIDs {
		section.Components = append(section.Components, Component{
			ID:      id,
			Type:    TypeText,
			Content: map[string]any{"text": "component " + id},
			Styles:  map[string]string{"padding": "8px"},
		})
	}
	doc.Sections = []Section{section}
	return doc
}

func componentOrder(doc Document, sectionIdx int) []string {
	ids := make([]string, 0, len(doc.Sections[sectionIdx].Components))
	for _, comp := range doc.Sections[sectionIdx].Components {
		ids = append(ids, comp.ID)
	}
	return ids
}

func equalOrder(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestAddSectionNamesSequentially(t *testing.T) {
	doc := NewDocument("Page")
	doc = AddSection(doc)
	doc = AddSection(doc)
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Name != "Section 1" || doc.Sections[1].Name != "Section 2" {
		t.Fatalf("unexpected section names: %q, %q", doc.Sections[0].Name, doc.Sections[1].Name)
	}
	if doc.Sections[0].GridCols != 12 {
		t.Fatalf("expected 12 grid columns, got %d", doc.Sections[0].GridCols)
	}
	if doc.Sections[0].ID == doc.Sections[1].ID {
		t.Fatalf("section ids must be unique")
	}
}

func TestAddComponentSeedsRegistryDefaults(t *testing.T) {
	reg := NewRegistry()
	doc := testDocument()
	next := AddComponent(doc, reg, "s1", TypeHero)
	if len(next.Sections[0].Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(next.Sections[0].Components))
	}
	hero := next.Sections[0].Components[0]
	if hero.Content["title"] != "Hero Title" {
		t.Fatalf("expected seeded hero title, got %v", hero.Content["title"])
	}
	if hero.Content["ctaText"] != "Get Started" {
		t.Fatalf("expected seeded cta text, got %v", hero.Content["ctaText"])
	}
	if len(doc.Sections[0].Components) != 0 {
		t.Fatalf("input document was mutated")
	}
}

func TestAddComponentUnknownSectionNoop(t *testing.T) {
	reg := NewRegistry()
	doc := testDocument("a")
	next := AddComponent(doc, reg, "missing", TypeText)
	if len(next.Sections[0].Components) != 1 {
		t.Fatalf("expected unchanged document, got %d components", len(next.Sections[0].Components))
	}
}

func TestMoveComponentReordersWithinSection(t *testing.T) {
	doc := testDocument("a", "b", "c")
	next := MoveComponent(doc, "s1", 0, "s1", 2)
	if got := componentOrder(next, 0); !equalOrder(got, []string{"b", "c", "a"}) {
		t.Fatalf("unexpected order after move: %v", got)
	}
	if got := componentOrder(doc, 0); !equalOrder(got, []string{"a", "b", "c"}) {
		t.Fatalf("input document was mutated: %v", got)
	}
}

func TestMoveComponentSamePositionIsIdentity(t *testing.T) {
	doc := testDocument("a", "b", "c")
	next := MoveComponent(doc, "s1", 1, "s1", 1)
	if got := componentOrder(next, 0); !equalOrder(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected identity move, got %v", got)
	}
}

func TestMoveComponentAcrossSections(t *testing.T) {
	doc := testDocument("a", "b")
	doc.Sections = append(doc.Sections, Section{ID: "s2", Name: "Section 2", GridCols: 12})
	next := MoveComponent(doc, "s1", 1, "s2", 0)
	if got := componentOrder(next, 0); !equalOrder(got, []string{"a"}) {
		t.Fatalf("unexpected source order: %v", got)
	}
	if got := componentOrder(next, 1); !equalOrder(got, []string{"b"}) {
		t.Fatalf("unexpected destination order: %v", got)
	}
}

func TestMoveComponentClampsTargetIndex(t *testing.T) {
	doc := testDocument("a", "b", "c")
	next := MoveComponent(doc, "s1", 0, "s1", 99)
	if got := componentOrder(next, 0); !equalOrder(got, []string{"b", "c", "a"}) {
		t.Fatalf("expected clamp to tail, got %v", got)
	}
	next = MoveComponent(doc, "s1", 2, "s1", -5)
	if got := componentOrder(next, 0); !equalOrder(got, []string{"c", "a", "b"}) {
		t.Fatalf("expected clamp to head, got %v", got)
	}
}

func TestMoveComponentInvalidCoordinatesNoop(t *testing.T) {
	doc := testDocument("a")
	for _, tc := range []struct {
		name string
		next Document
	}{
		{"unknown source", MoveComponent(doc, "missing", 0, "s1", 0)},
		{"unknown target", MoveComponent(doc, "s1", 0, "missing", 0)},
		{"index out of range", MoveComponent(doc, "s1", 5, "s1", 0)},
	} {
		if got := componentOrder(tc.next, 0); !equalOrder(got, []string{"a"}) {
			t.Fatalf("%s: expected unchanged document, got %v", tc.name, got)
		}
	}
}

func TestUpdateComponentShallowMerges(t *testing.T) {
	doc := testDocument("a")
	next := UpdateComponent(doc, "a", ComponentPatch{
		Content: map[string]any{"text": "updated"},
	})
	comp := next.Sections[0].Components[0]
	if comp.Content["text"] != "updated" {
		t.Fatalf("expected updated text, got %v", comp.Content["text"])
	}
	if comp.Styles["padding"] != "8px" {
		t.Fatalf("styles should be untouched by a content-only patch, got %v", comp.Styles)
	}
	if doc.Sections[0].Components[0].Content["text"] != "component a" {
		t.Fatalf("input document was mutated")
	}
}

func TestUpdateComponentPreservesUnknownKeys(t *testing.T) {
	doc := testDocument("a")
	doc.Sections[0].Components[0].Content["extra"] = "kept"
	next := UpdateComponent(doc, "a", ComponentPatch{Content: map[string]any{"text": "x"}})
	if next.Sections[0].Components[0].Content["extra"] != "kept" {
		t.Fatalf("unknown content key dropped by patch")
	}
}

func TestUpdateComponentUnknownIDNoop(t *testing.T) {
	doc := testDocument("a")
	next := UpdateComponent(doc, "missing", ComponentPatch{Content: map[string]any{"text": "x"}})
	if next.Sections[0].Components[0].Content["text"] != "component a" {
		t.Fatalf("unexpected mutation for unknown component id")
	}
}

func TestDeleteComponentRemovesAndNoops(t *testing.T) {
	doc := testDocument("a", "b")
	next := DeleteComponent(doc, "a")
	if got := componentOrder(next, 0); !equalOrder(got, []string{"b"}) {
		t.Fatalf("unexpected order after delete: %v", got)
	}
	next = DeleteComponent(doc, "missing")
	if got := componentOrder(next, 0); !equalOrder(got, []string{"a", "b"}) {
		t.Fatalf("expected no-op for unknown id, got %v", got)
	}
}

func TestDuplicateComponentInsertsCopyAfterOriginal(t *testing.T) {
	doc := testDocument("a", "b")
	next := DuplicateComponent(doc, "a")
	comps := next.Sections[0].Components
	if len(comps) != 3 {
		t.Fatalf("expected 3 components, got %d", len(comps))
	}
	if comps[0].ID != "a" || comps[2].ID != "b" {
		t.Fatalf("duplicate not inserted after original: %v", componentOrder(next, 0))
	}
	dup := comps[1]
	if dup.ID == "a" || dup.ID == "" {
		t.Fatalf("duplicate must carry a fresh id, got %q", dup.ID)
	}
	if dup.Content["text"] != "component a" {
		t.Fatalf("duplicate content mismatch: %v", dup.Content)
	}
	dup.Content["text"] = "changed"
	if comps[0].Content["text"] != "component a" {
		t.Fatalf("duplicate aliases the original content map")
	}
}

func TestLoadCustomComponentSeedsPropertyDefaults(t *testing.T) {
	doc := testDocument()
	custom := CustomComponent{
		ID:       "cc-1",
		Name:     "Promo Banner",
		Template: `<div>{{headline}}</div>`,
		Properties: []Property{
			{Name: "headline", Type: "string", DefaultValue: "Hello"},
		},
	}
	next := LoadCustomComponent(doc, "s1", custom)
	comps := next.Sections[0].Components
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %d", len(comps))
	}
	if comps[0].Type != TypeCustom {
		t.Fatalf("expected custom type, got %s", comps[0].Type)
	}
	if comps[0].Content["customId"] != "cc-1" || comps[0].Content["headline"] != "Hello" {
		t.Fatalf("unexpected seeded content: %v", comps[0].Content)
	}
}

func TestCloneDocumentIsDeep(t *testing.T) {
	doc := testDocument("a")
	doc.Sections[0].Components[0].Responsive = map[Breakpoint]Override{
		BreakpointMobile: {Styles: map[string]string{"fontSize": "14px"}},
	}
	clone := CloneDocument(doc)
	clone.Sections[0].Components[0].Content["text"] = "changed"
	clone.Sections[0].Components[0].Responsive[BreakpointMobile].Styles["fontSize"] = "10px"
	if doc.Sections[0].Components[0].Content["text"] != "component a" {
		t.Fatalf("clone aliases content")
	}
	if doc.Sections[0].Components[0].Responsive[BreakpointMobile].Styles["fontSize"] != "14px" {
		t.Fatalf("clone aliases responsive overrides")
	}
}
