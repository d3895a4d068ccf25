package builder

import (
	"fmt"

	"github.com/google/uuid"
)

// The mutation API is pure and total: every operation deep-copies the input
// document and returns the copy, and operations referencing unknown ids are
// structural no-ops rather than errors. Callers drive these with ids sourced
// from their own current render, so the unknown-id case is defensive. The
// snapshot-per-mutation contract is what makes the history stack cheap.

// NewDocument creates an empty document with a fresh id.
func NewDocument(name string) Document {
	return Document{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// AddSection appends a section named "Section N" with a 12-column grid.
func AddSection(doc Document) Document {
	out := CloneDocument(doc)
	out.Sections = append(out.Sections, Section{
		ID:       uuid.NewString(),
		Name:     fmt.Sprintf("Section %d", len(out.Sections)+1),
		GridCols: 12,
	})
	return out
}

// AddComponent appends a component seeded from the registry definition for
// componentType to the named section. Unknown section ids leave the document
// unchanged.
func AddComponent(doc Document, reg ComponentRegistry, sectionID string, componentType ComponentType) Document {
	out := CloneDocument(doc)
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		out.Sections[i].Components = append(out.Sections[i].Components, newComponent(reg, componentType))
		return out
	}
	return out
}

// MoveComponent removes the component at fromIndex in the source section and
// inserts it at toIndex in the destination section. Source and destination may
// be the same section (pure reorder). toIndex is clamped to [0, len]; a
// fromIndex outside the source section is a no-op.
func MoveComponent(doc Document, fromSectionID string, fromIndex int, toSectionID string, toIndex int) Document {
	out := CloneDocument(doc)
	from := sectionIndex(out, fromSectionID)
	to := sectionIndex(out, toSectionID)
	if from < 0 || to < 0 {
		return out
	}
	src := out.Sections[from].Components
	if fromIndex < 0 || fromIndex >= len(src) {
		return out
	}
	comp := src[fromIndex]
	out.Sections[from].Components = append(src[:fromIndex:fromIndex], src[fromIndex+1:]...)

	dst := out.Sections[to].Components
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(dst) {
		toIndex = len(dst)
	}
	dst = append(dst[:toIndex:toIndex], append([]Component{comp}, dst[toIndex:]...)...)
	out.Sections[to].Components = dst
	return out
}

// ComponentPatch carries partial updates for a component. Nil maps leave the
// corresponding side untouched; present keys shallow-merge over existing ones.
type ComponentPatch struct {
	Content map[string]any    `json:"content,omitempty"`
	Styles  map[string]string `json:"styles,omitempty"`
}

// UpdateComponent shallow-merges the patch into the first component matching
// componentID. Unknown keys are preserved, not rejected.
func UpdateComponent(doc Document, componentID string, patch ComponentPatch) Document {
	out := CloneDocument(doc)
	for si := range out.Sections {
		for ci := range out.Sections[si].Components {
			comp := &out.Sections[si].Components[ci]
			if comp.ID != componentID {
				continue
			}
			if len(patch.Content) > 0 {
				if comp.Content == nil {
					comp.Content = make(map[string]any, len(patch.Content))
				}
				for k, v := range patch.Content {
					comp.Content[k] = v
				}
			}
			if len(patch.Styles) > 0 {
				if comp.Styles == nil {
					comp.Styles = make(map[string]string, len(patch.Styles))
				}
				for k, v := range patch.Styles {
					comp.Styles[k] = v
				}
			}
			return out
		}
	}
	return out
}

// DeleteComponent removes the component with componentID from whichever
// section contains it.
func DeleteComponent(doc Document, componentID string) Document {
	out := CloneDocument(doc)
	for si := range out.Sections {
		comps := out.Sections[si].Components
		for ci := range comps {
			if comps[ci].ID != componentID {
				continue
			}
			out.Sections[si].Components = append(comps[:ci:ci], comps[ci+1:]...)
			return out
		}
	}
	return out
}

// DuplicateComponent inserts a copy of the component with componentID, under a
// fresh id, immediately after the original.
func DuplicateComponent(doc Document, componentID string) Document {
	out := CloneDocument(doc)
	for si := range out.Sections {
		comps := out.Sections[si].Components
		for ci := range comps {
			if comps[ci].ID != componentID {
				continue
			}
			dup := cloneComponent(comps[ci])
			dup.ID = uuid.NewString()
			out.Sections[si].Components = append(comps[:ci+1:ci+1], append([]Component{dup}, comps[ci+1:]...)...)
			return out
		}
	}
	return out
}

// LoadCustomComponent appends a TypeCustom component built from a library
// template: content carries the template reference plus each declared property
// seeded with its default value. Unknown section ids are a no-op.
func LoadCustomComponent(doc Document, sectionID string, custom CustomComponent) Document {
	out := CloneDocument(doc)
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		content := map[string]any{
			"customId": custom.ID,
			"name":     custom.Name,
			"template": custom.Template,
		}
		for _, prop := range custom.Properties {
			content[prop.Name] = prop.DefaultValue
		}
		out.Sections[i].Components = append(out.Sections[i].Components, Component{
			ID:      uuid.NewString(),
			Type:    TypeCustom,
			Content: content,
			Styles:  map[string]string{},
		})
		return out
	}
	return out
}

// CloneDocument deep-copies a document so mutations never alias the input.
func CloneDocument(doc Document) Document {
	out := doc
	if doc.Sections == nil {
		return out
	}
	out.Sections = make([]Section, len(doc.Sections))
	for i, section := range doc.Sections {
		out.Sections[i] = cloneSection(section)
	}
	return out
}

func cloneSection(section Section) Section {
	out := section
	out.Styles = cloneStyleMap(section.Styles)
	if section.Components != nil {
		out.Components = make([]Component, len(section.Components))
		for i, comp := range section.Components {
			out.Components[i] = cloneComponent(comp)
		}
	}
	return out
}

func cloneComponent(comp Component) Component {
	out := comp
	out.Content = cloneContentMap(comp.Content)
	out.Styles = cloneStyleMap(comp.Styles)
	if comp.Responsive != nil {
		out.Responsive = make(map[Breakpoint]Override, len(comp.Responsive))
		for mode, override := range comp.Responsive {
			out.Responsive[mode] = Override{
				Content: cloneContentMap(override.Content),
				Styles:  cloneStyleMap(override.Styles),
			}
		}
	}
	return out
}

func cloneContentMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneStyleMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func newComponent(reg ComponentRegistry, componentType ComponentType) Component {
	def := definitionOrPlaceholder(reg, componentType)
	return Component{
		ID:      uuid.NewString(),
		Type:    componentType,
		Content: cloneContentMap(def.Content),
		Styles:  cloneStyleMap(def.Styles),
	}
}

func sectionIndex(doc Document, sectionID string) int {
	for i := range doc.Sections {
		if doc.Sections[i].ID == sectionID {
			return i
		}
	}
	return -1
}

func findComponent(doc Document, componentID string) (Component, string, bool) {
	for _, section := range doc.Sections {
		for _, comp := range section.Components {
			if comp.ID == componentID {
				return comp, section.ID, true
			}
		}
	}
	return Component{}, "", false
}
