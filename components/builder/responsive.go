package builder

import (
	"fmt"
	"html"
	"strings"
)

// ApplyBreakpoint returns a copy of the document with every component's
// responsive override for mode substituted over its base content/styles, and
// each section's column count forced to the breakpoint's layout. The input is
// never mutated; switching modes is a pure re-render.
func ApplyBreakpoint(doc Document, mode Breakpoint) Document {
	out := CloneDocument(doc)
	for si := range out.Sections {
		out.Sections[si].GridCols = breakpointColumns(mode, out.Sections[si].GridCols)
		for ci := range out.Sections[si].Components {
			comp := &out.Sections[si].Components[ci]
			override, ok := comp.Responsive[mode]
			if !ok {
				continue
			}
			if override.Content != nil {
				comp.Content = cloneContentMap(override.Content)
			}
			if override.Styles != nil {
				comp.Styles = cloneStyleMap(override.Styles)
			}
		}
	}
	return out
}

// breakpointColumns overrides section columns per mode independent of any
// per-component override: mobile collapses to one column, tablet to two.
func breakpointColumns(mode Breakpoint, gridCols int) int {
	switch mode {
	case BreakpointMobile:
		return 1
	case BreakpointTablet:
		return 2
	default:
		if gridCols < 1 {
			return 12
		}
		return gridCols
	}
}

// BreakpointWidth returns the preview viewport width in pixels for a mode.
func BreakpointWidth(mode Breakpoint) int {
	switch mode {
	case BreakpointMobile:
		return 375
	case BreakpointTablet:
		return 768
	case BreakpointTV:
		return 1920
	default:
		return 1280
	}
}

// RenderPreview renders the document canvas at the requested breakpoint,
// wrapped in a sized viewport frame. The tv mode shows the desktop layout at
// reduced zoom inside a widescreen frame.
func RenderPreview(reg ComponentRegistry, doc Document, mode Breakpoint) string {
	resolved := ApplyBreakpoint(doc, mode)
	width := BreakpointWidth(mode)
	scale := ""
	if mode == BreakpointTV {
		scale = " transform: scale(0.5); transform-origin: top left;"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="preview-viewport" data-breakpoint="%s" style="width: %dpx; margin: 0 auto;%s">`,
		html.EscapeString(string(mode)), width, scale)
	b.WriteString("\n")
	for _, section := range resolved.Sections {
		b.WriteString(renderPreviewSection(reg, section))
	}
	b.WriteString("</div>\n")
	return b.String()
}

func renderPreviewSection(reg ComponentRegistry, section Section) string {
	styles := cloneStyleMap(section.Styles)
	if styles == nil {
		styles = map[string]string{}
	}
	styles["display"] = "grid"
	styles["gridTemplateColumns"] = fmt.Sprintf("repeat(%d, 1fr)", section.GridCols)

	var b strings.Builder
	fmt.Fprintf(&b, `<section data-section-id="%s" style="%s">`,
		html.EscapeString(section.ID), html.EscapeString(flattenStyles(styles)))
	for _, comp := range section.Components {
		b.WriteString(RenderCanvasComponent(reg, comp, CanvasOptions{Preview: true}))
	}
	b.WriteString("</section>\n")
	return b.String()
}
