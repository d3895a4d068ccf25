package builder

import (
	"context"
)

// DocumentStore encapsulates the persistence collaborator. The unit of save is
// always a full-document snapshot; implementations ensure thread safety.
type DocumentStore interface {
	Load(ctx context.Context, documentID string) (Document, error)
	Save(ctx context.Context, doc Document, meta map[string]any) error
}

// ComponentRegistry stores component definitions discoverable via hooks or
// component pack manifests.
type ComponentRegistry interface {
	RegisterDefinition(def ComponentDefinition) error
	Definition(componentType ComponentType) (ComponentDefinition, bool)
	Definitions() []ComponentDefinition
}

// RefreshHook notifies transports (REST/WebSocket) about document changes.
type RefreshHook interface {
	DocumentUpdated(ctx context.Context, event DocumentEvent) error
}

// ComponentType tags a component with its render strategy.
type ComponentType string

// Built-in component types. TypeCustom instances reference a CustomComponent
// from the author's library by id.
const (
	TypeText        ComponentType = "text"
	TypeImage       ComponentType = "image"
	TypeVideo       ComponentType = "video"
	TypeButton      ComponentType = "button"
	TypeProductCard ComponentType = "product-card"
	TypeForm        ComponentType = "form"
	TypeGallery     ComponentType = "gallery"
	TypeCarousel    ComponentType = "carousel"
	TypeHero        ComponentType = "hero"
	TypeTestimonial ComponentType = "testimonial"
	TypePricing     ComponentType = "pricing"
	TypeTeam        ComponentType = "team"
	TypeFeature     ComponentType = "feature"
	TypeNewsletter  ComponentType = "newsletter"
	TypeFooter      ComponentType = "footer"
	TypeCustom      ComponentType = "custom"
)

// ComponentTypes lists every built-in type in palette order.
func ComponentTypes() []ComponentType {
	return []ComponentType{
		TypeText, TypeImage, TypeVideo, TypeButton, TypeProductCard,
		TypeForm, TypeGallery, TypeCarousel, TypeHero, TypeTestimonial,
		TypePricing, TypeTeam, TypeFeature, TypeNewsletter, TypeFooter,
		TypeCustom,
	}
}

// Breakpoint names a responsive preview mode.
type Breakpoint string

const (
	BreakpointDesktop Breakpoint = "desktop"
	BreakpointTablet  Breakpoint = "tablet"
	BreakpointMobile  Breakpoint = "mobile"
	BreakpointTV      Breakpoint = "tv"
)

// Override replaces a component's base content/styles at one breakpoint.
// A nil map means "keep the base value".
type Override struct {
	Content map[string]any    `json:"content,omitempty" yaml:"content,omitempty"`
	Styles  map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// Component is one visual building block. Content keys are type-driven and
// open-ended; renderers fall back to registry defaults for missing keys.
type Component struct {
	ID         string                   `json:"id" yaml:"id"`
	Type       ComponentType            `json:"type" yaml:"type"`
	Content    map[string]any           `json:"content" yaml:"content"`
	Styles     map[string]string        `json:"styles" yaml:"styles"`
	Responsive map[Breakpoint]Override  `json:"responsive,omitempty" yaml:"responsive,omitempty"`
}

// Section is a horizontal grid region holding an ordered run of components.
type Section struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	GridCols   int               `json:"gridCols" yaml:"gridCols"`
	Styles     map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`
	Components []Component       `json:"components" yaml:"components"`
}

// Document is one buildable page layout: an ordered run of sections plus the
// metadata the store keys on.
type Document struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Theme    string    `json:"theme,omitempty" yaml:"theme,omitempty"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// ComponentDefinition describes the seed state and palette metadata for one
// component type.
type ComponentDefinition struct {
	Type     ComponentType     `json:"type" yaml:"type"`
	Label    string            `json:"label" yaml:"label"`
	Icon     string            `json:"icon" yaml:"icon"`
	Category string            `json:"category" yaml:"category"`
	Content  map[string]any    `json:"content" yaml:"content"`
	Styles   map[string]string `json:"styles" yaml:"styles"`
	Schema   map[string]any    `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// EditorContext captures the active author/locale for service calls.
type EditorContext struct {
	UserID string
	Locale string
}

// DocumentEvent describes a change transports might care about.
type DocumentEvent struct {
	DocumentID  string `json:"document_id"`
	SectionID   string `json:"section_id,omitempty"`
	ComponentID string `json:"component_id,omitempty"`
	Reason      string `json:"reason"`
}
