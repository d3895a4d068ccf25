package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	builder "github.com/goliatone/go-sitebuilder/components/builder"
)

// GenerateThemeInput describes the site the theme should fit.
type GenerateThemeInput struct {
	BusinessType string `json:"business_type"`
	ThemeStyle   string `json:"theme_style"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
}

type themeService interface {
	GenerateTheme(ctx context.Context, req builder.GenerateThemeRequest) (*builder.ThemeSelection, error)
}

// GenerateThemeCommand wraps Service.GenerateTheme.
type GenerateThemeCommand struct {
	service   themeService
	telemetry Telemetry
}

// NewGenerateThemeCommand builds the command.
func NewGenerateThemeCommand(service themeService, telemetry Telemetry) *GenerateThemeCommand {
	return &GenerateThemeCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[GenerateThemeInput] = (*GenerateThemeCommand)(nil)

// Execute requests a generated theme. Responses that lose the race to a
// newer request surface ErrStaleThemeResponse and are dropped silently.
func (c *GenerateThemeCommand) Execute(ctx context.Context, msg GenerateThemeInput) error {
	if c.service == nil {
		return errors.New("generate theme command requires service")
	}
	if msg.BusinessType == "" {
		return errors.New("generate theme command requires business type")
	}
	selection, err := c.service.GenerateTheme(ctx, builder.GenerateThemeRequest{
		BusinessType: msg.BusinessType,
		ThemeStyle:   msg.ThemeStyle,
		CustomPrompt: msg.CustomPrompt,
	})
	if err != nil {
		if errors.Is(err, builder.ErrStaleThemeResponse) {
			return nil
		}
		return err
	}
	if selection != nil {
		c.telemetry.Record(ctx, "builder.theme.generate", map[string]any{
			"theme": selection.Name,
		})
	}
	return nil
}
