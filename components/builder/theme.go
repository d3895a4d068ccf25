package builder

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
)

// ThemeProvider resolves a named theme/variant to concrete tokens. Optional;
// when absent the export renderer uses its built-in body rule.
type ThemeProvider interface {
	SelectTheme(ctx context.Context, selector ThemeSelector) (*ThemeSelection, error)
}

// ThemeSelector describes the desired theme/variant.
type ThemeSelector struct {
	Name    string
	Variant string
}

// ThemeSelection carries resolved theme details (tokens, assets).
type ThemeSelection struct {
	Name    string
	Variant string
	Tokens  map[string]string
	Assets  ThemeAssets
}

// ThemeAssets provides asset metadata plus optional prefix/resolver.
type ThemeAssets struct {
	Values   map[string]string
	Prefix   string
	Resolver func(string) string
}

// AssetURL resolves the final URL for a named asset (logo, favicon, etc.).
func (assets ThemeAssets) AssetURL(name string) string {
	if len(assets.Values) == 0 {
		return ""
	}
	path := assets.Values[name]
	if path == "" {
		return ""
	}
	if assets.Resolver != nil {
		if resolved := assets.Resolver(path); resolved != "" {
			return resolved
		}
	}
	if assets.Prefix != "" {
		return strings.TrimRight(assets.Prefix, "/") + "/" + strings.TrimLeft(path, "/")
	}
	return path
}

// CSSVariables normalizes token keys into CSS variable names.
func (theme *ThemeSelection) CSSVariables() map[string]string {
	if theme == nil || len(theme.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(theme.Tokens))
	for key, value := range theme.Tokens {
		name := normalizeCSSVariable(key)
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}

// CSSVariablesInline renders the CSS variable map as a style string.
func (theme *ThemeSelection) CSSVariablesInline() string {
	vars := theme.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	var builder strings.Builder
	for key, value := range vars {
		if value == "" {
			continue
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

func normalizeCSSVariable(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

func cloneThemeSelection(selection *ThemeSelection) *ThemeSelection {
	if selection == nil {
		return nil
	}
	cloned := *selection
	if len(selection.Tokens) > 0 {
		cloned.Tokens = make(map[string]string, len(selection.Tokens))
		for key, value := range selection.Tokens {
			cloned.Tokens[key] = value
		}
	}
	if len(selection.Assets.Values) > 0 {
		cloned.Assets.Values = make(map[string]string, len(selection.Assets.Values))
		for key, value := range selection.Assets.Values {
			cloned.Assets.Values[key] = value
		}
	}
	return &cloned
}

// ThemeGenerator is the external generation collaborator. It is treated as an
// opaque asynchronous call with no retry policy at this layer.
type ThemeGenerator interface {
	GenerateTheme(ctx context.Context, req GenerateThemeRequest) (*ThemeSelection, error)
}

// GenerateThemeRequest captures the prompt for theme generation.
type GenerateThemeRequest struct {
	BusinessType string `json:"business_type"`
	ThemeStyle   string `json:"theme_style"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
}

// ThemeSession serializes theme generation for one editor session. Each call
// gets a monotonically increasing request id; a response that resolves after a
// newer request started is discarded, so a slow generation can never clobber
// the result of a later one.
type ThemeSession struct {
	generator ThemeGenerator

	mu      sync.Mutex
	latest  atomic.Uint64
	current *ThemeSelection
}

// ErrStaleThemeResponse marks a generation superseded by a newer request.
var ErrStaleThemeResponse = errStale{}

type errStale struct{}

func (errStale) Error() string { return "builder: theme generation superseded by a newer request" }

// NewThemeSession wraps a generator for one editor session.
func NewThemeSession(generator ThemeGenerator) *ThemeSession {
	return &ThemeSession{generator: generator}
}

// Generate invokes the collaborator and applies the result only when no newer
// request has started in the meantime.
func (s *ThemeSession) Generate(ctx context.Context, req GenerateThemeRequest) (*ThemeSelection, error) {
	if s.generator == nil {
		return nil, errMissingThemeGenerator
	}
	id := s.latest.Add(1)
	selection, err := s.generator.GenerateTheme(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.latest.Load() != id {
		return nil, ErrStaleThemeResponse
	}
	s.mu.Lock()
	s.current = cloneThemeSelection(selection)
	s.mu.Unlock()
	return cloneThemeSelection(selection), nil
}

// Current returns the last applied selection, or nil before any generation.
func (s *ThemeSession) Current() *ThemeSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneThemeSelection(s.current)
}
