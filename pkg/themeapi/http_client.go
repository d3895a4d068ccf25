package themeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// HTTPConfig configures the HTTP theme generation client.
type HTTPConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPClient talks to a remote theme generation service via REST endpoints.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ builder.ThemeGenerator = (*HTTPClient)(nil)

// NewHTTPClient builds a client capable of hitting a live generation API.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("themeapi: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  httpClient,
	}, nil
}

// GenerateTheme implements builder.ThemeGenerator by calling the remote
// generation endpoint. Request-id bookkeeping stays with the caller's
// ThemeSession; the client just performs one blocking round trip.
func (c *HTTPClient) GenerateTheme(ctx context.Context, req builder.GenerateThemeRequest) (*builder.ThemeSelection, error) {
	payload := generateRequest{
		BusinessType: req.BusinessType,
		ThemeStyle:   req.ThemeStyle,
		CustomPrompt: req.CustomPrompt,
	}
	var resp generateResponse
	if err := c.do(ctx, http.MethodPost, "/themes/generate", payload, &resp); err != nil {
		return nil, err
	}
	return resp.toSelection(), nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("themeapi: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("themeapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("themeapi: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("themeapi: remote error %d: %s", resp.StatusCode, buf.String())
	}
	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("themeapi: decode response: %w", err)
	}
	return nil
}

type generateRequest struct {
	BusinessType string `json:"business_type"`
	ThemeStyle   string `json:"theme_style"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
}

type generateResponse struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Tokens  map[string]string `json:"tokens"`
	Assets  assetsPayload     `json:"assets"`
}

type assetsPayload struct {
	Values map[string]string `json:"values"`
	Prefix string            `json:"prefix"`
}

func (r generateResponse) toSelection() *builder.ThemeSelection {
	tokens := make(map[string]string, len(r.Tokens))
	for key, value := range r.Tokens {
		tokens[key] = value
	}
	selection := &builder.ThemeSelection{
		Name:    r.Name,
		Variant: r.Variant,
		Tokens:  tokens,
	}
	if len(r.Assets.Values) > 0 || r.Assets.Prefix != "" {
		values := make(map[string]string, len(r.Assets.Values))
		for key, value := range r.Assets.Values {
			values[key] = value
		}
		selection.Assets = builder.ThemeAssets{Values: values, Prefix: r.Assets.Prefix}
	}
	return selection
}
