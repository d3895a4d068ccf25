package builder

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	packVersionV1 = "1"
	// PackVersion exposes the current component pack format version for tooling.
	PackVersion = packVersionV1
)

// ComponentPackDocument models a YAML/JSON manifest describing a pack of
// third-party component definitions.
type ComponentPackDocument struct {
	Version    string          `json:"version" yaml:"version"`
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Package    string          `json:"package,omitempty" yaml:"package,omitempty"`
	Homepage   string          `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Components []PackComponent `json:"components" yaml:"components"`
	Source     string          `json:"-" yaml:"-"`
}

// PackComponent describes a single component entry within a pack.
type PackComponent struct {
	Definition  ComponentDefinition `json:"definition" yaml:"definition"`
	Provider    PackProvider        `json:"provider,omitempty" yaml:"provider,omitempty"`
	Maintainers []string            `json:"maintainers,omitempty" yaml:"maintainers,omitempty"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// PackProvider captures discovery metadata about where a pack component comes
// from.
type PackProvider struct {
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Summary      string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Package      string   `json:"package,omitempty" yaml:"package,omitempty"`
	DocsURL      string   `json:"docs_url,omitempty" yaml:"docs_url,omitempty"`
	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	Channel      string   `json:"channel,omitempty" yaml:"channel,omitempty"`
}

// LoadPackFile reads a pack from disk, registers it against the registry, and
// returns the document.
func (r *Registry) LoadPackFile(path string) (*ComponentPackDocument, error) {
	doc, err := ReadPack(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadPackDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadPackDocument registers definitions and provider metadata from a decoded
// pack.
func (r *Registry) LoadPackDocument(doc *ComponentPackDocument) error {
	if doc == nil {
		return fmt.Errorf("builder: component pack document is nil")
	}
	for _, entry := range doc.Components {
		if err := r.RegisterDefinition(entry.Definition); err != nil {
			return fmt.Errorf("builder: register component %s from %s: %w", entry.Definition.Type, doc.Source, err)
		}
		r.recordPackMetadata(entry.Definition.Type, entry.Provider)
	}
	return nil
}

// ReadPack loads a pack file from disk without registering it.
func ReadPack(path string) (*ComponentPackDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("builder: open pack %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodePack(f)
	if err != nil {
		return nil, fmt.Errorf("builder: decode pack %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodePack reads a component pack from any reader.
func DecodePack(r io.Reader) (*ComponentPackDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc ComponentPackDocument
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("builder: component pack is empty")
		}
		return nil, fmt.Errorf("builder: parse component pack: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the pack satisfies required fields.
func (doc *ComponentPackDocument) Validate() error {
	if doc.Version != packVersionV1 {
		return fmt.Errorf("builder: unsupported component pack version %q", doc.Version)
	}
	seen := make(map[ComponentType]struct{}, len(doc.Components))
	for idx, entry := range doc.Components {
		if entry.Definition.Type == "" {
			return fmt.Errorf("builder: pack component at index %d is missing definition.type", idx)
		}
		if entry.Definition.Label == "" {
			return fmt.Errorf("builder: pack component %s missing definition.label", entry.Definition.Type)
		}
		if _, exists := seen[entry.Definition.Type]; exists {
			return fmt.Errorf("builder: pack duplicates component type %s", entry.Definition.Type)
		}
		seen[entry.Definition.Type] = struct{}{}
	}
	return nil
}

func (doc *ComponentPackDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = packVersionV1
	}
}

func (p PackProvider) isZero() bool {
	return p.Name == "" &&
		p.Summary == "" &&
		p.Package == "" &&
		p.DocsURL == "" &&
		len(p.Capabilities) == 0 &&
		p.Channel == ""
}
