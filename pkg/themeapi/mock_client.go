package themeapi

import (
	"context"
	"fmt"
	"sync"

	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// MockData seeds deterministic theme responses for tests or local demos.
type MockData struct {
	// Palettes maps a business type to its generated selection.
	Palettes map[string]builder.ThemeSelection
	// Default is returned when no palette matches the business type.
	Default builder.ThemeSelection
}

// MockClient implements builder.ThemeGenerator using in-memory fixtures.
type MockClient struct {
	data MockData
	mu   sync.RWMutex
}

var _ builder.ThemeGenerator = (*MockClient)(nil)

// NewMockClient builds a mock generation client from the provided fixtures.
func NewMockClient(data MockData) *MockClient {
	return &MockClient{data: data}
}

// GenerateTheme returns the fixture for the requested business type, falling
// back to the default palette. Dark style requests flip the surface tokens.
func (c *MockClient) GenerateTheme(_ context.Context, req builder.GenerateThemeRequest) (*builder.ThemeSelection, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	selection, ok := c.data.Palettes[req.BusinessType]
	if !ok {
		selection = c.data.Default
	}
	out := cloneSelection(selection)
	if out.Name == "" {
		out.Name = fmt.Sprintf("%s-%s", req.BusinessType, req.ThemeStyle)
	}
	if req.ThemeStyle == "dark" {
		if out.Tokens == nil {
			out.Tokens = map[string]string{}
		}
		out.Tokens["background"] = "#0f172a"
		out.Tokens["text"] = "#e2e8f0"
		out.Variant = "dark"
	}
	return out, nil
}

func cloneSelection(selection builder.ThemeSelection) *builder.ThemeSelection {
	out := selection
	if len(selection.Tokens) > 0 {
		out.Tokens = make(map[string]string, len(selection.Tokens))
		for key, value := range selection.Tokens {
			out.Tokens[key] = value
		}
	}
	if len(selection.Assets.Values) > 0 {
		out.Assets.Values = make(map[string]string, len(selection.Assets.Values))
		for key, value := range selection.Assets.Values {
			out.Assets.Values[key] = value
		}
	}
	return &out
}
