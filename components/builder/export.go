package builder

import (
	"fmt"
	"html"
	"strings"
)

// ExportHTML produces a single self-contained HTML document reproducing the
// current document: one <section> per section with an inline CSS grid, each
// component's style map inlined on its wrapper, and a document shell carrying
// global resets, a theme-derived body rule, and the responsive breakpoints.
// No external resources are referenced; the string is offered for download or
// preview-in-new-tab as-is.
func ExportHTML(reg ComponentRegistry, doc Document, theme *ThemeSelection) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(documentTitle(doc)))
	b.WriteString("<style>\n")
	b.WriteString(exportStylesheet(theme))
	b.WriteString("</style>\n</head>\n<body>\n")
	for _, section := range doc.Sections {
		b.WriteString(exportSection(reg, section))
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func documentTitle(doc Document) string {
	if doc.Name != "" {
		return doc.Name
	}
	return "Untitled Page"
}

func exportSection(reg ComponentRegistry, section Section) string {
	cols := section.GridCols
	if cols < 1 {
		cols = 12
	}
	styles := cloneStyleMap(section.Styles)
	if styles == nil {
		styles = map[string]string{}
	}
	styles["display"] = "grid"
	styles["gridTemplateColumns"] = fmt.Sprintf("repeat(%d, 1fr)", cols)
	if _, ok := styles["gap"]; !ok {
		styles["gap"] = "16px"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<section class="page-section" data-section-id="%s" style="%s">`,
		html.EscapeString(section.ID), html.EscapeString(flattenStyles(styles)))
	b.WriteString("\n")
	for _, comp := range section.Components {
		def := definitionOrPlaceholder(reg, comp.Type)
		fmt.Fprintf(&b, `<div class="page-component" style="%s">%s</div>`,
			html.EscapeString(inlineStyles(def, comp)), componentBody(def, comp))
		b.WriteString("\n")
	}
	b.WriteString("</section>\n")
	return b.String()
}

// exportStylesheet emits global resets, the theme body rule, and the three
// responsive breakpoints: single column below 769px, two columns up to
// 1024px, and a centered max-width container on very wide screens.
func exportStylesheet(theme *ThemeSelection) string {
	var b strings.Builder
	b.WriteString("* { box-sizing: border-box; margin: 0; padding: 0; }\n")
	b.WriteString(bodyRule(theme))
	b.WriteString(".builder-button { display: inline-block; text-decoration: none; padding: 12px 24px; border-radius: 6px; background: #2563eb; color: #ffffff; }\n")
	b.WriteString(".builder-placeholder { border: 1px dashed #9ca3af; color: #6b7280; padding: 32px; text-align: center; }\n")
	b.WriteString("img { max-width: 100%; }\n")
	b.WriteString("@media (max-width: 768px) {\n  section.page-section { grid-template-columns: 1fr !important; }\n}\n")
	b.WriteString("@media (min-width: 769px) and (max-width: 1024px) {\n  section.page-section { grid-template-columns: repeat(2, 1fr) !important; }\n}\n")
	b.WriteString("@media (min-width: 1920px) {\n  body { max-width: 1680px; margin: 0 auto; }\n}\n")
	return b.String()
}

func bodyRule(theme *ThemeSelection) string {
	font := `-apple-system, "Segoe UI", sans-serif`
	background := "#ffffff"
	foreground := "#111827"
	if theme != nil {
		if v := theme.Tokens["fontFamily"]; v != "" {
			font = v
		}
		if v := theme.Tokens["background"]; v != "" {
			background = v
		}
		if v := theme.Tokens["foreground"]; v != "" {
			foreground = v
		}
	}
	rule := fmt.Sprintf("body { font-family: %s; background: %s; color: %s;", font, background, foreground)
	if vars := theme.CSSVariablesInline(); vars != "" {
		rule += " " + vars
	}
	return rule + " }\n"
}
