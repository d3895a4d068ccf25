package builder

import (
	"strings"
	"testing"
)

func TestExportHTMLHeroDefaults(t *testing.T) {
	reg := NewRegistry()
	doc := NewDocument("Landing")
	doc = AddSection(doc)
	doc = AddComponent(doc, reg, doc.Sections[0].ID, TypeHero)

	page := ExportHTML(reg, doc, nil)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Landing</title>",
		"Hero Title",
		"Get Started",
		"grid-template-columns: repeat(12, 1fr)",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("exported page missing %q:\n%s", want, page)
		}
	}
}

func TestExportHTMLIsSelfContained(t *testing.T) {
	reg := NewRegistry()
	doc := NewDocument("Landing")
	doc = AddSection(doc)
	doc = AddComponent(doc, reg, doc.Sections[0].ID, TypeText)
	doc = AddComponent(doc, reg, doc.Sections[0].ID, TypeButton)

	page := ExportHTML(reg, doc, nil)
	for _, forbidden := range []string{"<script", `<link rel="stylesheet"`, "data-action", "draggable"} {
		if strings.Contains(page, forbidden) {
			t.Fatalf("exported page must be static and self-contained, found %q", forbidden)
		}
	}
	if !strings.Contains(page, "<style>") {
		t.Fatalf("exported page should inline its stylesheet")
	}
}

func TestExportHTMLResponsiveBreakpoints(t *testing.T) {
	reg := NewRegistry()
	doc := AddSection(NewDocument("Landing"))
	page := ExportHTML(reg, doc, nil)
	for _, want := range []string{
		"@media (max-width: 768px)",
		"@media (min-width: 769px) and (max-width: 1024px)",
		"@media (min-width: 1920px)",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("missing breakpoint rule %q", want)
		}
	}
}

func TestExportHTMLAppliesThemeTokens(t *testing.T) {
	reg := NewRegistry()
	doc := AddSection(NewDocument("Landing"))
	theme := &ThemeSelection{
		Name: "midnight",
		Tokens: map[string]string{
			"background": "#0f172a",
			"foreground": "#e2e8f0",
			"primary":    "#38bdf8",
		},
	}
	page := ExportHTML(reg, doc, theme)
	if !strings.Contains(page, "background: #0f172a") {
		t.Fatalf("theme background token not applied:\n%s", page)
	}
	if !strings.Contains(page, "--primary: #38bdf8") {
		t.Fatalf("theme tokens should surface as CSS variables:\n%s", page)
	}
}

func TestExportHTMLEscapesAuthoredText(t *testing.T) {
	reg := NewRegistry()
	doc := AddSection(NewDocument(`<Landing> & Co`))
	doc = AddComponent(doc, reg, doc.Sections[0].ID, TypeText)
	doc = UpdateComponent(doc, doc.Sections[0].Components[0].ID, ComponentPatch{
		Content: map[string]any{"text": `<img src=x onerror=alert(1)>`},
	})
	page := ExportHTML(reg, doc, nil)
	if strings.Contains(page, "<img src=x") {
		t.Fatalf("authored markup leaked unescaped")
	}
	if !strings.Contains(page, "&lt;Landing&gt; &amp; Co") {
		t.Fatalf("title not escaped:\n%s", page)
	}
}

func TestExportHTMLUntitledFallback(t *testing.T) {
	reg := NewRegistry()
	page := ExportHTML(reg, Document{ID: "d1"}, nil)
	if !strings.Contains(page, "<title>Untitled Page</title>") {
		t.Fatalf("expected untitled fallback:\n%s", page)
	}
}
