package builder

import (
	"context"
	"errors"
	"io"
	"sort"
)

// ControllerOptions wires the service and template renderer together.
type ControllerOptions struct {
	Service  *Service
	Renderer Renderer
}

// Controller prepares editor payloads for HTTP transports.
type Controller struct {
	service  *Service
	renderer Renderer
}

// NewController builds a controller.
func NewController(opts ControllerOptions) *Controller {
	return &Controller{service: opts.Service, renderer: opts.Renderer}
}

// RenderEditor renders the full editor page (palette + canvas) for a document.
func (c *Controller) RenderEditor(ctx context.Context, editor EditorContext, documentID string, out io.Writer) error {
	if c.service == nil {
		return errors.New("builder: controller requires a service")
	}
	if c.renderer == nil {
		return errors.New("builder: controller requires a renderer")
	}
	payload, err := c.EditorPayload(ctx, editor, documentID)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render("editor", payload, out)
	return err
}

// EditorPayload resolves the document and palette into the template/JSON
// payload consumed by the editor page and the layout endpoint.
func (c *Controller) EditorPayload(ctx context.Context, editor EditorContext, documentID string) (map[string]any, error) {
	doc, err := c.service.Document(ctx, documentID)
	if err != nil {
		return nil, err
	}
	reg := c.service.Registry()

	palette := make([]map[string]any, 0)
	defs := reg.Definitions()
	sort.Slice(defs, func(i, j int) bool { return defs[i].Type < defs[j].Type })
	for _, def := range defs {
		palette = append(palette, map[string]any{
			"type":     string(def.Type),
			"label":    def.Label,
			"icon":     def.Icon,
			"category": def.Category,
		})
	}

	sections := make([]map[string]any, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		components := make([]map[string]any, 0, len(section.Components))
		for _, comp := range section.Components {
			components = append(components, map[string]any{
				"id":   comp.ID,
				"type": string(comp.Type),
				"html": RenderCanvasComponent(reg, comp, CanvasOptions{}),
			})
		}
		sections = append(sections, map[string]any{
			"id":         section.ID,
			"name":       section.Name,
			"gridCols":   section.GridCols,
			"components": components,
		})
	}

	customs, err := c.service.CustomComponents(ctx, editor)
	if err != nil {
		return nil, err
	}
	library := make([]map[string]any, 0, len(customs))
	for _, component := range customs {
		library = append(library, map[string]any{
			"id":       component.ID,
			"name":     component.Name,
			"icon":     component.Icon,
			"category": component.Category,
		})
	}

	return map[string]any{
		"title":    documentTitle(doc),
		"document": map[string]any{"id": doc.ID, "name": doc.Name, "theme": doc.Theme},
		"palette":  palette,
		"library":  library,
		"sections": sections,
	}, nil
}
