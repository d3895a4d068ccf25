package themeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

func TestHTTPClientGenerateTheme(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/themes/generate" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("expected auth header, got %s", got)
		}
		var req generateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.BusinessType != "cafe" || req.ThemeStyle != "dark" {
			t.Fatalf("unexpected request payload: %#v", req)
		}
		resp := generateResponse{
			Name:    "midnight-roast",
			Variant: "dark",
			Tokens:  map[string]string{"primary": "#38bdf8", "background": "#0f172a"},
			Assets:  assetsPayload{Values: map[string]string{"logo": "logo.svg"}, Prefix: "/static"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	selection, err := client.GenerateTheme(context.Background(), builder.GenerateThemeRequest{
		BusinessType: "cafe",
		ThemeStyle:   "dark",
	})
	if err != nil {
		t.Fatalf("generate theme: %v", err)
	}
	if selection.Name != "midnight-roast" || selection.Tokens["primary"] != "#38bdf8" {
		t.Fatalf("unexpected selection: %#v", selection)
	}
	if got := selection.Assets.AssetURL("logo"); got != "/static/logo.svg" {
		t.Fatalf("asset url not resolved: %q", got)
	}
}

func TestHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPClient(HTTPConfig{}); err == nil {
		t.Fatalf("expected error for missing base url")
	}
}

func TestHTTPClientRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.GenerateTheme(context.Background(), builder.GenerateThemeRequest{BusinessType: "cafe"}); err == nil {
		t.Fatalf("expected remote error to propagate")
	}
}

func TestMockClientPalettes(t *testing.T) {
	client := NewMockClient(MockData{
		Palettes: map[string]builder.ThemeSelection{
			"cafe": {Name: "roast", Tokens: map[string]string{"primary": "#b45309"}},
		},
		Default: builder.ThemeSelection{Name: "plain", Tokens: map[string]string{"primary": "#2563eb"}},
	})

	selection, err := client.GenerateTheme(context.Background(), builder.GenerateThemeRequest{BusinessType: "cafe"})
	if err != nil {
		t.Fatalf("generate theme: %v", err)
	}
	if selection.Name != "roast" {
		t.Fatalf("expected cafe palette, got %#v", selection)
	}

	selection, err = client.GenerateTheme(context.Background(), builder.GenerateThemeRequest{BusinessType: "gym", ThemeStyle: "dark"})
	if err != nil {
		t.Fatalf("generate theme: %v", err)
	}
	if selection.Name != "plain" || selection.Variant != "dark" || selection.Tokens["background"] != "#0f172a" {
		t.Fatalf("expected dark default palette, got %#v", selection)
	}

	// fixtures must not alias returned selections
	selection.Tokens["primary"] = "mutated"
	again, _ := client.GenerateTheme(context.Background(), builder.GenerateThemeRequest{BusinessType: "gym"})
	if again.Tokens["primary"] != "#2563eb" {
		t.Fatalf("mock fixture aliased by a returned selection")
	}
}
