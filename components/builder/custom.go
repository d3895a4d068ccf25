package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// CustomComponent is a user-authored reusable template, stored independently
// of any document and referenced by id when inserted as a TypeCustom
// component.
type CustomComponent struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	Template    string            `json:"template"`
	Properties  []Property        `json:"properties,omitempty"`
	Styles      ComponentStyles   `json:"styles"`
	Tags        []string          `json:"tags,omitempty"`
	Author      string            `json:"author,omitempty"`
	Version     string            `json:"version,omitempty"`
	IsPublic    bool              `json:"isPublic"`
}

// Property declares one configurable field on a custom component.
type Property struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Label        string `json:"label,omitempty"`
	DefaultValue any    `json:"defaultValue,omitempty"`
	Required     bool   `json:"required,omitempty"`
}

// ComponentStyles bundles the authored source of a custom component.
type ComponentStyles struct {
	HTML string `json:"html,omitempty"`
	CSS  string `json:"css,omitempty"`
	JS   string `json:"js,omitempty"`
}

// ErrInvalidComponentFile is surfaced to the user when an import payload
// cannot be used; the library is left unchanged.
var ErrInvalidComponentFile = errors.New("builder: invalid component file")

// CustomComponentStore keeps per-author component libraries.
type CustomComponentStore interface {
	List(ctx context.Context, userID string) ([]CustomComponent, error)
	Get(ctx context.Context, userID, componentID string) (CustomComponent, bool, error)
	Put(ctx context.Context, userID string, component CustomComponent) error
	Delete(ctx context.Context, userID, componentID string) error
}

// InMemoryCustomComponentStore provides a concurrency-safe default library.
type InMemoryCustomComponentStore struct {
	mu   sync.RWMutex
	data map[string][]CustomComponent
}

// NewInMemoryCustomComponentStore creates an empty library store.
func NewInMemoryCustomComponentStore() *InMemoryCustomComponentStore {
	return &InMemoryCustomComponentStore{
		data: make(map[string][]CustomComponent),
	}
}

// List returns the author's library in insertion order.
func (s *InMemoryCustomComponentStore) List(_ context.Context, userID string) ([]CustomComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CustomComponent, len(s.data[userID]))
	copy(out, s.data[userID])
	return out, nil
}

// Get finds one library entry by id.
func (s *InMemoryCustomComponentStore) Get(_ context.Context, userID, componentID string) (CustomComponent, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, component := range s.data[userID] {
		if component.ID == componentID {
			return component, true, nil
		}
	}
	return CustomComponent{}, false, nil
}

// Put inserts or replaces a library entry.
func (s *InMemoryCustomComponentStore) Put(_ context.Context, userID string, component CustomComponent) error {
	if component.ID == "" {
		return fmt.Errorf("builder: custom component id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	library := s.data[userID]
	for i := range library {
		if library[i].ID == component.ID {
			library[i] = component
			return nil
		}
	}
	s.data[userID] = append(library, component)
	return nil
}

// Delete removes a library entry; unknown ids are a no-op.
func (s *InMemoryCustomComponentStore) Delete(_ context.Context, userID, componentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	library := s.data[userID]
	for i := range library {
		if library[i].ID == componentID {
			s.data[userID] = append(library[:i:i], library[i+1:]...)
			return nil
		}
	}
	return nil
}

// ExportCustomComponent serializes the component verbatim for download.
func ExportCustomComponent(component CustomComponent) ([]byte, error) {
	data, err := json.MarshalIndent(component, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("builder: export custom component %s: %w", component.ID, err)
	}
	return data, nil
}

// ExportFilename derives the download filename from the component name.
func ExportFilename(component CustomComponent) string {
	name := strings.TrimSpace(component.Name)
	if name == "" {
		name = "custom-component"
	}
	name = strings.ToLower(strings.Join(strings.Fields(name), "-"))
	return name + ".json"
}

// ImportCustomComponent parses an exported payload, validates it, and returns
// a copy under a fresh id ready to merge into the importing author's library.
// Malformed JSON or a missing name aborts the import with
// ErrInvalidComponentFile; nothing is partially imported.
func ImportCustomComponent(data []byte) (CustomComponent, error) {
	var component CustomComponent
	if err := json.Unmarshal(data, &component); err != nil {
		return CustomComponent{}, fmt.Errorf("%w: %v", ErrInvalidComponentFile, err)
	}
	if strings.TrimSpace(component.Name) == "" {
		return CustomComponent{}, fmt.Errorf("%w: missing name", ErrInvalidComponentFile)
	}
	component.ID = uuid.NewString()
	return component, nil
}

// PropertySchema synthesizes a JSON schema from the declared properties so
// instance values can be validated with the shared schema validator.
func (c CustomComponent) PropertySchema() map[string]any {
	if len(c.Properties) == 0 {
		return nil
	}
	properties := map[string]any{}
	var required []string
	for _, prop := range c.Properties {
		if prop.Name == "" {
			continue
		}
		properties[prop.Name] = map[string]any{"type": schemaType(prop.Type)}
		if prop.Required {
			required = append(required, prop.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func schemaType(propertyType string) string {
	switch propertyType {
	case "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		return "array"
	default:
		// text, url, color, select all carry string values.
		return "string"
	}
}
