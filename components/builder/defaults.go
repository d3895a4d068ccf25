package builder

// Shared style base applied to every fresh component before per-type
// overrides. Values are CSS-like strings, never validated here; the export
// renderer flattens them verbatim (escaped) into inline style attributes.
func baseComponentStyles() map[string]string {
	return map[string]string{
		"width":           "100%",
		"margin":          "0",
		"padding":         "8px",
		"fontSize":        "16px",
		"textAlign":       "left",
		"color":           "#111827",
		"backgroundColor": "transparent",
	}
}

func styledWith(overrides map[string]string) map[string]string {
	styles := baseComponentStyles()
	for k, v := range overrides {
		styles[k] = v
	}
	return styles
}

var defaultComponentDefinitions = []ComponentDefinition{
	{
		Type:     TypeText,
		Label:    "Text",
		Icon:     "type",
		Category: "basic",
		Content: map[string]any{
			"text": "Your text here...",
			"tag":  "p",
		},
		Styles: baseComponentStyles(),
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"tag":  map[string]any{"type": "string", "enum": []string{"p", "h1", "h2", "h3", "h4", "blockquote"}},
			},
		},
	},
	{
		Type:     TypeImage,
		Label:    "Image",
		Icon:     "image",
		Category: "basic",
		Content: map[string]any{
			"src": "",
			"alt": "Image",
		},
		Styles: styledWith(map[string]string{"padding": "0"}),
	},
	{
		Type:     TypeVideo,
		Label:    "Video",
		Icon:     "video",
		Category: "basic",
		Content: map[string]any{
			"url":      "",
			"autoplay": false,
		},
		Styles: styledWith(map[string]string{"padding": "0", "backgroundColor": "#111827"}),
	},
	{
		Type:     TypeButton,
		Label:    "Button",
		Icon:     "square",
		Category: "basic",
		Content: map[string]any{
			"text":    "Click me",
			"link":    "#",
			"variant": "primary",
		},
		Styles: styledWith(map[string]string{
			"width":           "auto",
			"padding":         "12px 24px",
			"backgroundColor": "#2563eb",
			"color":           "#ffffff",
			"textAlign":       "center",
			"borderRadius":    "6px",
		}),
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":    map[string]any{"type": "string"},
				"link":    map[string]any{"type": "string"},
				"variant": map[string]any{"type": "string", "enum": []string{"primary", "secondary", "ghost"}},
			},
		},
	},
	{
		Type:     TypeProductCard,
		Label:    "Product Card",
		Icon:     "shopping-bag",
		Category: "commerce",
		Content: map[string]any{
			"title":       "Product Name",
			"price":       "$29.99",
			"image":       "",
			"description": "Short product description.",
			"ctaText":     "Add to Cart",
		},
		Styles: styledWith(map[string]string{
			"padding":         "16px",
			"backgroundColor": "#ffffff",
			"borderRadius":    "8px",
			"boxShadow":       "0 2px 8px rgba(31,41,55,0.12)",
		}),
	},
	{
		Type:     TypeForm,
		Label:    "Form",
		Icon:     "mail",
		Category: "basic",
		Content: map[string]any{
			"title":      "Contact Us",
			"fields":     []any{"name", "email", "message"},
			"submitText": "Send",
		},
		Styles: styledWith(map[string]string{"padding": "24px"}),
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":      map[string]any{"type": "string"},
				"fields":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"submitText": map[string]any{"type": "string"},
			},
		},
	},
	{
		Type:     TypeGallery,
		Label:    "Gallery",
		Icon:     "grid",
		Category: "media",
		Content: map[string]any{
			"images":  []any{},
			"columns": 3,
		},
		Styles: styledWith(map[string]string{"padding": "16px"}),
	},
	{
		Type:     TypeCarousel,
		Label:    "Carousel",
		Icon:     "film",
		Category: "media",
		Content: map[string]any{
			"slides":   []any{},
			"interval": 5000,
		},
		Styles: styledWith(map[string]string{"padding": "0", "backgroundColor": "#f4f5f7"}),
	},
	{
		Type:     TypeHero,
		Label:    "Hero",
		Icon:     "layout",
		Category: "sections",
		Content: map[string]any{
			"title":           "Hero Title",
			"subtitle":        "Add a subtitle that sells the story.",
			"backgroundImage": "",
			"ctaText":         "Get Started",
			"ctaLink":         "#",
		},
		Styles: styledWith(map[string]string{
			"padding":         "96px 24px",
			"backgroundColor": "#2563eb",
			"color":           "#ffffff",
			"textAlign":       "center",
			"fontSize":        "40px",
		}),
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":           map[string]any{"type": "string"},
				"subtitle":        map[string]any{"type": "string"},
				"backgroundImage": map[string]any{"type": "string"},
				"ctaText":         map[string]any{"type": "string"},
				"ctaLink":         map[string]any{"type": "string"},
			},
		},
	},
	{
		Type:     TypeTestimonial,
		Label:    "Testimonial",
		Icon:     "message-circle",
		Category: "sections",
		Content: map[string]any{
			"quote":  "This product changed how we work.",
			"author": "Jane Doe",
			"role":   "Customer",
		},
		Styles: styledWith(map[string]string{
			"padding":         "32px",
			"backgroundColor": "#f9fafb",
			"textAlign":       "center",
		}),
	},
	{
		Type:     TypePricing,
		Label:    "Pricing",
		Icon:     "dollar-sign",
		Category: "commerce",
		Content: map[string]any{
			"title": "Pricing",
			"plans": []any{
				map[string]any{"name": "Starter", "price": "$9/mo"},
				map[string]any{"name": "Pro", "price": "$29/mo"},
			},
		},
		Styles: styledWith(map[string]string{"padding": "48px 24px", "textAlign": "center"}),
	},
	{
		Type:     TypeTeam,
		Label:    "Team",
		Icon:     "users",
		Category: "sections",
		Content: map[string]any{
			"name":  "Team Member",
			"role":  "Role",
			"photo": "",
		},
		Styles: styledWith(map[string]string{"padding": "24px", "textAlign": "center"}),
	},
	{
		Type:     TypeFeature,
		Label:    "Feature",
		Icon:     "star",
		Category: "sections",
		Content: map[string]any{
			"title":       "Feature",
			"description": "Describe the benefit in one line.",
			"icon":        "star",
		},
		Styles: styledWith(map[string]string{"padding": "24px"}),
	},
	{
		Type:     TypeNewsletter,
		Label:    "Newsletter",
		Icon:     "send",
		Category: "sections",
		Content: map[string]any{
			"title":       "Stay in the loop",
			"placeholder": "Your email",
			"buttonText":  "Subscribe",
		},
		Styles: styledWith(map[string]string{
			"padding":         "48px 24px",
			"backgroundColor": "#111827",
			"color":           "#ffffff",
			"textAlign":       "center",
		}),
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"placeholder": map[string]any{"type": "string"},
				"buttonText":  map[string]any{"type": "string"},
			},
		},
	},
	{
		Type:     TypeFooter,
		Label:    "Footer",
		Icon:     "minus",
		Category: "sections",
		Content: map[string]any{
			"text":  "© Your Company. All rights reserved.",
			"links": []any{},
		},
		Styles: styledWith(map[string]string{
			"padding":         "32px 24px",
			"backgroundColor": "#1f2937",
			"color":           "#d1d5db",
			"textAlign":       "center",
			"fontSize":        "14px",
		}),
	},
	{
		Type:     TypeCustom,
		Label:    "Custom",
		Icon:     "box",
		Category: "custom",
		Content: map[string]any{
			"customId": "",
			"name":     "Custom component",
		},
		Styles: baseComponentStyles(),
	},
}

// DefaultComponentDefinitions returns deep copies of the built-in palette.
func DefaultComponentDefinitions() []ComponentDefinition {
	out := make([]ComponentDefinition, len(defaultComponentDefinitions))
	for i, def := range defaultComponentDefinitions {
		out[i] = cloneDefinition(def)
	}
	return out
}

func cloneDefinition(def ComponentDefinition) ComponentDefinition {
	out := def
	out.Content = cloneContentMap(def.Content)
	out.Styles = cloneStyleMap(def.Styles)
	out.Schema = cloneContentMap(def.Schema)
	return out
}

// placeholderDefinition backs unknown component types so lookups never fail.
func placeholderDefinition(componentType ComponentType) ComponentDefinition {
	return ComponentDefinition{
		Type:     componentType,
		Label:    string(componentType),
		Icon:     "box",
		Category: "custom",
		Content: map[string]any{
			"text": "Unsupported component",
		},
		Styles: baseComponentStyles(),
	}
}

func definitionOrPlaceholder(reg ComponentRegistry, componentType ComponentType) ComponentDefinition {
	if reg != nil {
		if def, ok := reg.Definition(componentType); ok {
			return cloneDefinition(def)
		}
	}
	return placeholderDefinition(componentType)
}
