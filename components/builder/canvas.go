package builder

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/ettle/strcase"
)

// CanvasOptions controls how a component is rendered on the editor canvas.
type CanvasOptions struct {
	// Preview disables interaction affordances and marks the element read-only.
	Preview bool
	// Selected draws the selection outline. Selection never mutates the document.
	Selected bool
}

// RenderCanvasComponent renders one component as editor canvas markup. The
// wrapper carries data attributes the client binds click (select) and
// double-click (edit) handlers to. Missing content keys fall back to the
// registry defaults and then to hardcoded values; rendering never fails
// because authoring is incremental.
func RenderCanvasComponent(reg ComponentRegistry, comp Component, opts CanvasOptions) string {
	def := definitionOrPlaceholder(reg, comp.Type)
	styles := inlineStyles(def, comp)
	if opts.Selected {
		styles += " outline: 2px solid #2563eb; outline-offset: 2px;"
	}
	if opts.Preview {
		styles += " pointer-events: none;"
	}

	var b strings.Builder
	b.WriteString(`<div class="builder-component" data-component-id="`)
	b.WriteString(html.EscapeString(comp.ID))
	b.WriteString(`" data-component-type="`)
	b.WriteString(html.EscapeString(string(comp.Type)))
	b.WriteString(`"`)
	if !opts.Preview {
		b.WriteString(` data-action="select" data-edit-action="edit" draggable="true"`)
	} else {
		b.WriteString(` aria-readonly="true"`)
	}
	b.WriteString(` style="`)
	b.WriteString(html.EscapeString(strings.TrimSpace(styles)))
	b.WriteString(`">`)
	b.WriteString(componentBody(def, comp))
	b.WriteString(`</div>`)
	return b.String()
}

// componentBody dispatches on component type to a markup strategy. Shared by
// the canvas and static export renderers; styles live on the caller's wrapper.
func componentBody(def ComponentDefinition, comp Component) string {
	switch comp.Type {
	case TypeText:
		return textBody(def, comp)
	case TypeImage:
		return imageBody(def, comp)
	case TypeVideo:
		return videoBody(def, comp)
	case TypeButton:
		return buttonBody(def, comp)
	case TypeProductCard:
		return productCardBody(def, comp)
	case TypeForm:
		return formBody(def, comp)
	case TypeGallery:
		return galleryBody(def, comp)
	case TypeCarousel:
		return carouselBody(def, comp)
	case TypeHero:
		return heroBody(def, comp)
	case TypeTestimonial:
		return testimonialBody(def, comp)
	case TypePricing:
		return pricingBody(def, comp)
	case TypeTeam:
		return teamBody(def, comp)
	case TypeFeature:
		return featureBody(def, comp)
	case TypeNewsletter:
		return newsletterBody(def, comp)
	case TypeFooter:
		return footerBody(def, comp)
	case TypeCustom:
		return customBody(def, comp)
	default:
		return fallbackBody(def, comp)
	}
}

var textTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "blockquote": true,
}

func textBody(def ComponentDefinition, comp Component) string {
	tag := stringField(comp, def, "tag", "p")
	if !textTags[tag] {
		tag = "p"
	}
	text := stringField(comp, def, "text", "Your text here...")
	return fmt.Sprintf("<%s>%s</%s>", tag, html.EscapeString(text), tag)
}

func imageBody(def ComponentDefinition, comp Component) string {
	src := safeURL(stringField(comp, def, "src", ""))
	alt := stringField(comp, def, "alt", "Image")
	if src == "" {
		return placeholderBox("Image")
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" style="max-width: 100%%; display: block;">`,
		html.EscapeString(src), html.EscapeString(alt))
}

func videoBody(def ComponentDefinition, comp Component) string {
	url := safeURL(stringField(comp, def, "url", ""))
	if url == "" {
		return placeholderBox("Video")
	}
	attrs := "controls"
	if boolField(comp, def, "autoplay") {
		attrs = "controls autoplay muted"
	}
	return fmt.Sprintf(`<video src="%s" %s style="max-width: 100%%;"></video>`, html.EscapeString(url), attrs)
}

func buttonBody(def ComponentDefinition, comp Component) string {
	text := stringField(comp, def, "text", "Click me")
	link := safeURL(stringField(comp, def, "link", "#"))
	if link == "" {
		link = "#"
	}
	return fmt.Sprintf(`<a class="builder-button" href="%s">%s</a>`,
		html.EscapeString(link), html.EscapeString(text))
}

func productCardBody(def ComponentDefinition, comp Component) string {
	var b strings.Builder
	if image := safeURL(stringField(comp, def, "image", "")); image != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" style="max-width: 100%%;">`,
			html.EscapeString(image), html.EscapeString(stringField(comp, def, "title", "Product Name")))
	}
	fmt.Fprintf(&b, `<h3>%s</h3>`, html.EscapeString(stringField(comp, def, "title", "Product Name")))
	fmt.Fprintf(&b, `<p class="price">%s</p>`, html.EscapeString(stringField(comp, def, "price", "$0.00")))
	fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(stringField(comp, def, "description", "")))
	fmt.Fprintf(&b, `<a class="builder-button" href="#">%s</a>`, html.EscapeString(stringField(comp, def, "ctaText", "Add to Cart")))
	return b.String()
}

func formBody(def ComponentDefinition, comp Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<h3>%s</h3><form onsubmit="return false;">`, html.EscapeString(stringField(comp, def, "title", "Contact Us")))
	for _, field := range listField(comp, def, "fields") {
		name, ok := field.(string)
		if !ok || name == "" {
			continue
		}
		if name == "message" {
			fmt.Fprintf(&b, `<textarea name="%s" placeholder="%s"></textarea>`, html.EscapeString(name), html.EscapeString(name))
			continue
		}
		fmt.Fprintf(&b, `<input type="text" name="%s" placeholder="%s">`, html.EscapeString(name), html.EscapeString(name))
	}
	fmt.Fprintf(&b, `<button type="submit">%s</button></form>`, html.EscapeString(stringField(comp, def, "submitText", "Send")))
	return b.String()
}

func galleryBody(def ComponentDefinition, comp Component) string {
	images := listField(comp, def, "images")
	if len(images) == 0 {
		return placeholderBox("Gallery")
	}
	cols := intField(comp, def, "columns", 3)
	if cols < 1 {
		cols = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="display: grid; grid-template-columns: repeat(%d, 1fr); gap: 8px;">`, cols)
	for _, entry := range images {
		raw, ok := entry.(string)
		if !ok {
			continue
		}
		if src := safeURL(raw); src != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="" style="width: 100%%;">`, html.EscapeString(src))
		}
	}
	b.WriteString(`</div>`)
	return b.String()
}

func carouselBody(def ComponentDefinition, comp Component) string {
	slides := listField(comp, def, "slides")
	if len(slides) == 0 {
		return placeholderBox("Carousel")
	}
	// Static first-slide rendering; rotation is client behavior.
	var b strings.Builder
	b.WriteString(`<div class="builder-carousel">`)
	if raw, ok := slides[0].(string); ok {
		if src := safeURL(raw); src != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="" style="width: 100%%;">`, html.EscapeString(src))
		}
	}
	fmt.Fprintf(&b, `<div class="dots">%s</div>`, strings.Repeat("&bull; ", len(slides)))
	b.WriteString(`</div>`)
	return b.String()
}

func heroBody(def ComponentDefinition, comp Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<h1>%s</h1>`, html.EscapeString(stringField(comp, def, "title", "Hero Title")))
	if subtitle := stringField(comp, def, "subtitle", ""); subtitle != "" {
		fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(subtitle))
	}
	cta := stringField(comp, def, "ctaText", "Get Started")
	link := safeURL(stringField(comp, def, "ctaLink", "#"))
	if link == "" {
		link = "#"
	}
	fmt.Fprintf(&b, `<a class="builder-button" href="%s">%s</a>`, html.EscapeString(link), html.EscapeString(cta))
	return b.String()
}

func testimonialBody(def ComponentDefinition, comp Component) string {
	return fmt.Sprintf(`<blockquote>%s</blockquote><footer>%s &mdash; %s</footer>`,
		html.EscapeString(stringField(comp, def, "quote", "")),
		html.EscapeString(stringField(comp, def, "author", "Anonymous")),
		html.EscapeString(stringField(comp, def, "role", "")))
}

func pricingBody(def ComponentDefinition, comp Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<h2>%s</h2><div class="plans">`, html.EscapeString(stringField(comp, def, "title", "Pricing")))
	for _, entry := range listField(comp, def, "plans") {
		plan, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := plan["name"].(string)
		price, _ := plan["price"].(string)
		fmt.Fprintf(&b, `<div class="plan"><h3>%s</h3><p>%s</p></div>`,
			html.EscapeString(name), html.EscapeString(price))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func teamBody(def ComponentDefinition, comp Component) string {
	var b strings.Builder
	if photo := safeURL(stringField(comp, def, "photo", "")); photo != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" style="border-radius: 50%%; width: 96px; height: 96px;">`,
			html.EscapeString(photo), html.EscapeString(stringField(comp, def, "name", "")))
	}
	fmt.Fprintf(&b, `<h3>%s</h3><p>%s</p>`,
		html.EscapeString(stringField(comp, def, "name", "Team Member")),
		html.EscapeString(stringField(comp, def, "role", "")))
	return b.String()
}

func featureBody(def ComponentDefinition, comp Component) string {
	return fmt.Sprintf(`<span class="icon" data-icon="%s"></span><h3>%s</h3><p>%s</p>`,
		html.EscapeString(stringField(comp, def, "icon", "star")),
		html.EscapeString(stringField(comp, def, "title", "Feature")),
		html.EscapeString(stringField(comp, def, "description", "")))
}

func newsletterBody(def ComponentDefinition, comp Component) string {
	return fmt.Sprintf(`<h2>%s</h2><form onsubmit="return false;"><input type="email" placeholder="%s"><button type="submit">%s</button></form>`,
		html.EscapeString(stringField(comp, def, "title", "Stay in the loop")),
		html.EscapeString(stringField(comp, def, "placeholder", "Your email")),
		html.EscapeString(stringField(comp, def, "buttonText", "Subscribe")))
}

func footerBody(def ComponentDefinition, comp Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(stringField(comp, def, "text", "")))
	links := listField(comp, def, "links")
	if len(links) > 0 {
		b.WriteString(`<nav>`)
		for _, entry := range links {
			link, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			label, _ := link["label"].(string)
			href, _ := link["href"].(string)
			if href = safeURL(href); href == "" {
				href = "#"
			}
			fmt.Fprintf(&b, `<a href="%s">%s</a> `, html.EscapeString(href), html.EscapeString(label))
		}
		b.WriteString(`</nav>`)
	}
	return b.String()
}

// customBody interpolates escaped property values into the author's template
// via {{name}} placeholders. The template markup itself is the author's own
// code and is emitted as-is; every substituted value is escaped.
func customBody(def ComponentDefinition, comp Component) string {
	template := stringField(comp, def, "template", "")
	if template == "" {
		return placeholderBox(stringField(comp, def, "name", "Custom component"))
	}
	out := template
	for key, value := range comp.Content {
		if key == "template" {
			continue
		}
		needle := "{{" + key + "}}"
		if !strings.Contains(out, needle) {
			continue
		}
		out = strings.ReplaceAll(out, needle, html.EscapeString(fmt.Sprintf("%v", value)))
	}
	return out
}

func fallbackBody(def ComponentDefinition, comp Component) string {
	return placeholderBox(def.Label)
}

func placeholderBox(label string) string {
	return fmt.Sprintf(`<div class="builder-placeholder">%s</div>`, html.EscapeString(label))
}

// inlineStyles flattens the definition + component style maps into a CSS
// declaration list, keys sorted for deterministic output. A hero-style
// backgroundImage content field folds into the map as a background-image rule
// when its URL passes the allow-list.
func inlineStyles(def ComponentDefinition, comp Component) string {
	styles := cloneStyleMap(def.Styles)
	if styles == nil {
		styles = map[string]string{}
	}
	for k, v := range comp.Styles {
		styles[k] = v
	}
	if raw, ok := comp.Content["backgroundImage"].(string); ok && raw != "" {
		if src := safeURL(raw); src != "" {
			styles["backgroundImage"] = fmt.Sprintf("url('%s')", src)
			if _, ok := styles["backgroundSize"]; !ok {
				styles["backgroundSize"] = "cover"
			}
		}
	}
	return flattenStyles(styles)
}

func flattenStyles(styles map[string]string) string {
	if len(styles) == 0 {
		return ""
	}
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		v := styles[k]
		if v == "" {
			continue
		}
		b.WriteString(cssProperty(k))
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}

// cssProperty converts camelCase style keys to CSS property names; keys
// already in kebab case (or CSS custom properties) pass through.
func cssProperty(key string) string {
	if strings.HasPrefix(key, "--") || strings.Contains(key, "-") {
		return key
	}
	return strcase.ToKebab(key)
}

// safeURL allow-lists URL-bearing content fields before interpolation.
// Accepted: http(s), mailto, anchors, and site-relative paths. Everything
// else (javascript:, data:, protocol-relative) is dropped.
func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return raw
	case strings.HasPrefix(lower, "mailto:"):
		return raw
	case strings.HasPrefix(raw, "#"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return ""
	case strings.HasPrefix(raw, "/"), strings.HasPrefix(raw, "./"), strings.HasPrefix(raw, "../"):
		return raw
	case strings.Contains(lower, ":"):
		return ""
	default:
		return raw
	}
}

func stringField(comp Component, def ComponentDefinition, key, fallback string) string {
	if v, ok := comp.Content[key].(string); ok && v != "" {
		return v
	}
	if v, ok := def.Content[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func boolField(comp Component, def ComponentDefinition, key string) bool {
	if v, ok := comp.Content[key].(bool); ok {
		return v
	}
	v, _ := def.Content[key].(bool)
	return v
}

func intField(comp Component, def ComponentDefinition, key string, fallback int) int {
	for _, source := range []map[string]any{comp.Content, def.Content} {
		switch v := source[key].(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
	}
	return fallback
}

func listField(comp Component, def ComponentDefinition, key string) []any {
	if v, ok := comp.Content[key].([]any); ok {
		return v
	}
	v, _ := def.Content[key].([]any)
	return v
}
