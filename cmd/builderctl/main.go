package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

type cli struct {
	Scaffold scaffoldCmd `cmd:"" help:"Scaffold a component definition and pack manifest entry."`
	Export   exportCmd   `cmd:"" help:"Render a saved document JSON file into a standalone HTML page."`
}

type scaffoldCmd struct {
	Type         string   `required:"" help:"Component type identifier (e.g. acme-countdown)."`
	Label        string   `required:"" help:"Display label shown in the palette."`
	Icon         string   `help:"Emoji or icon string for the palette entry."`
	Category     string   `default:"custom" help:"Palette category (content, media, marketing, ...)."`
	PackPath     string   `required:"" type:"path" help:"Path to the component pack YAML/JSON file to update."`
	SchemaPath   string   `type:"path" help:"Optional path to a JSON schema file for the component content."`
	Tag          []string `help:"Optional tags to include in the pack (use multiple --tag flags)."`
	Maintainer   []string `help:"Maintainers to record in the pack."`
	Capabilities []string `help:"Provider capability labels (html,preview,export,...)."`
	DocsURL      string   `help:"Link to provider documentation."`
	Channel      string   `help:"Distribution channel label (community, partner, internal)."`
	Package      string   `default:"github.com/goliatone/go-sitebuilder/components/builder" help:"Go package where the component renderer lives."`
	Overwrite    bool     `help:"Overwrite an existing pack entry if present."`
}

type exportCmd struct {
	DocumentPath string `arg:"" type:"path" help:"Path to a document JSON file."`
	Out          string `short:"o" type:"path" help:"Output HTML path (defaults to <document>.html)."`
	PackPath     string `type:"path" help:"Optional component pack to register before rendering."`
	Theme        string `help:"Optional theme JSON file with design tokens."`
}

func main() {
	ctx := kong.Parse(&cli{},
		kong.Description("Component scaffolding and export utility for go-sitebuilder."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

func (cmd *scaffoldCmd) Run(_ context.Context) error {
	if err := cmd.validate(); err != nil {
		return err
	}
	packPath, err := filepath.Abs(cmd.PackPath)
	if err != nil {
		return fmt.Errorf("builderctl: resolve pack path: %w", err)
	}
	doc, err := loadOrInitPack(packPath)
	if err != nil {
		return err
	}
	componentType := builder.ComponentType(cmd.Type)
	if !cmd.Overwrite {
		for _, entry := range doc.Components {
			if entry.Definition.Type == componentType {
				return fmt.Errorf("builderctl: pack already defines component %s (use --overwrite to replace)", cmd.Type)
			}
		}
	}

	schema, err := cmd.loadSchema()
	if err != nil {
		return err
	}

	entry := builder.PackComponent{
		Definition: builder.ComponentDefinition{
			Type:     componentType,
			Label:    cmd.Label,
			Icon:     cmd.Icon,
			Category: cmd.Category,
			Schema:   schema,
		},
		Provider: builder.PackProvider{
			Name:         fmt.Sprintf("%s Provider", cmd.Label),
			Package:      cmd.Package,
			DocsURL:      cmd.DocsURL,
			Capabilities: cmd.Capabilities,
			Channel:      cmd.Channel,
		},
		Maintainers: cmd.Maintainer,
		Tags:        cmd.Tag,
	}

	if cmd.Overwrite {
		replaced := false
		for idx := range doc.Components {
			if doc.Components[idx].Definition.Type == componentType {
				doc.Components[idx] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			doc.Components = append(doc.Components, entry)
		}
	} else {
		doc.Components = append(doc.Components, entry)
	}

	sort.Slice(doc.Components, func(i, j int) bool {
		return doc.Components[i].Definition.Type < doc.Components[j].Definition.Type
	})

	if err := writePack(packPath, doc); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✓ Added %s to %s\n", cmd.Type, packPath)
	return nil
}

func (cmd *scaffoldCmd) validate() error {
	slug := strcase.ToKebab(cmd.Type)
	if slug != cmd.Type {
		return fmt.Errorf("builderctl: component type %s must be kebab-case (did you mean %s?)", cmd.Type, slug)
	}
	return nil
}

func (cmd *scaffoldCmd) loadSchema() (map[string]any, error) {
	if cmd.SchemaPath == "" {
		return map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		}, nil
	}
	data, err := os.ReadFile(cmd.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("builderctl: read schema file: %w", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("builderctl: parse schema JSON: %w", err)
	}
	return schema, nil
}

func (cmd *exportCmd) Run(_ context.Context) error {
	data, err := os.ReadFile(cmd.DocumentPath)
	if err != nil {
		return fmt.Errorf("builderctl: read document: %w", err)
	}
	var doc builder.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("builderctl: parse document JSON: %w", err)
	}

	registry := builder.NewRegistry()
	if cmd.PackPath != "" {
		if _, err := registry.LoadPackFile(cmd.PackPath); err != nil {
			return err
		}
	}

	var theme *builder.ThemeSelection
	if cmd.Theme != "" {
		raw, err := os.ReadFile(cmd.Theme)
		if err != nil {
			return fmt.Errorf("builderctl: read theme: %w", err)
		}
		theme = &builder.ThemeSelection{}
		if err := json.Unmarshal(raw, theme); err != nil {
			return fmt.Errorf("builderctl: parse theme JSON: %w", err)
		}
	}

	page := builder.ExportHTML(registry, doc, theme)

	out := cmd.Out
	if out == "" {
		out = strings.TrimSuffix(cmd.DocumentPath, filepath.Ext(cmd.DocumentPath)) + ".html"
	}
	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("builderctl: write html: %w", err)
	}
	fmt.Fprintf(os.Stdout, "✓ Exported %s to %s\n", doc.Name, out)
	return nil
}

func loadOrInitPack(path string) (*builder.ComponentPackDocument, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			doc := &builder.ComponentPackDocument{
				Version:    builder.PackVersion,
				Components: []builder.PackComponent{},
				Source:     path,
			}
			return doc, nil
		}
		return nil, fmt.Errorf("builderctl: stat pack: %w", err)
	}
	doc, err := builder.ReadPack(path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func writePack(path string, doc *builder.ComponentPackDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("builderctl: mkdir %s: %w", filepath.Dir(path), err)
	}
	tmpDoc := *doc
	tmpDoc.Source = ""

	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("builderctl: create pack %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(tmpDoc); err != nil {
		return fmt.Errorf("builderctl: write pack: %w", err)
	}
	return nil
}
