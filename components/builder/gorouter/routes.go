package gorouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	builder "github.com/goliatone/go-sitebuilder/components/builder"
	"github.com/goliatone/go-sitebuilder/components/builder/commands"
	"github.com/goliatone/go-sitebuilder/components/builder/httpapi"
)

// EditorResolver converts a router.Context into a builder.EditorContext.
type EditorResolver func(router.Context) builder.EditorContext

// ReadService exposes the read-only operations routes need beyond the
// controller: raw document JSON, static export, and breakpoint previews.
type ReadService interface {
	Document(ctx context.Context, documentID string) (builder.Document, error)
	ExportDocument(ctx context.Context, documentID string) (string, error)
	Preview(ctx context.Context, documentID string, mode builder.Breakpoint) (string, error)
}

// Config wires go-router with go-sitebuilder controllers, APIs, and hooks.
type Config[T any] struct {
	Router         router.Router[T]
	Controller     *builder.Controller
	Service        ReadService
	API            httpapi.Executor
	Broadcast      *builder.BroadcastHook
	EditorResolver EditorResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for builder endpoints.
type RouteConfig struct {
	HTML        string
	Document    string
	Sections    string
	Components  string
	ComponentID string
	Move        string
	Duplicate   string
	Import      string
	Undo        string
	Redo        string
	Theme       string
	Export      string
	Preview     string
	WebSocket   string
}

// Register mounts builder routes (HTML, JSON, REST, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = "/builder"
	}
	editorResolver := cfg.EditorResolver
	if editorResolver == nil {
		editorResolver = defaultEditorResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		editor := editorResolver(ctx)
		id := ctx.Param("id")
		var buf bytes.Buffer
		if err := cfg.Controller.RenderEditor(ctx.Context(), editor, id, &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	if cfg.Service != nil {
		registerReads(group, cfg.Service, routes)
	}

	if cfg.API != nil {
		registerAPI(group, cfg.API, editorResolver, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	return nil
}

func registerReads[T any](r router.Router[T], service ReadService, routes RouteConfig) {
	r.Get(routes.Document, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("document id is required"))
		}
		doc, err := service.Document(ctx.Context(), id)
		if err != nil {
			return respondError(ctx, http.StatusNotFound, err)
		}
		return ctx.JSON(http.StatusOK, doc)
	}))

	r.Get(routes.Export, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("document id is required"))
		}
		page, err := service.ExportDocument(ctx.Context(), id)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send([]byte(page))
	}))

	r.Get(routes.Preview, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("document id is required"))
		}
		mode := builder.Breakpoint(ctx.Param("mode"))
		markup, err := service.Preview(ctx.Context(), id, mode)
		if err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send([]byte(markup))
	}))
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, resolver EditorResolver, routes RouteConfig) {
	r.Post(routes.Sections, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.AddSectionInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.AddSection(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	r.Post(routes.Components, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.AddComponentInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.AddComponent(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "created"})
	}))

	r.Post(routes.Move, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.MoveComponentInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Move(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "moved"})
	}))

	r.Put(routes.ComponentID, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.UpdateComponentInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if id := ctx.Param("id"); id != "" {
			payload.ComponentID = id
		}
		if err := api.Update(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	r.Delete(routes.ComponentID, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("component id is required"))
		}
		input := commands.RemoveComponentInput{
			DocumentID:  ctx.Query("document_id"),
			ComponentID: id,
		}
		if err := api.Remove(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusNoContent, map[string]string{"status": "removed"})
	}))

	r.Post(routes.Duplicate, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.DuplicateComponentInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Duplicate(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "duplicated"})
	}))

	r.Post(routes.Import, router.WrapHandler(func(ctx router.Context) error {
		editor := resolver(ctx)
		input := commands.ImportCustomComponentInput{
			UserID: editor.UserID,
			Locale: editor.Locale,
			Data:   ctx.Body(),
		}
		if err := api.ImportCustom(ctx.Context(), input); err != nil {
			return respondError(ctx, http.StatusUnprocessableEntity, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "imported"})
	}))

	r.Post(routes.Undo, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.HistoryStepInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Undo(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "undone"})
	}))

	r.Post(routes.Redo, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.HistoryStepInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.Redo(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "redone"})
	}))

	r.Post(routes.Theme, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.GenerateThemeInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := api.GenerateTheme(ctx.Context(), payload); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *builder.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func defaultEditorResolver(ctx router.Context) builder.EditorContext {
	var editor builder.EditorContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		editor.UserID = v
	}
	editor.Locale = inferLocale(ctx)
	return editor
}

func inferLocale(ctx router.Context) string {
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		return locale
	}
	if locale := strings.TrimSpace(ctx.Query("locale")); locale != "" {
		return strings.ToLower(locale)
	}
	if header := ctx.Header("Accept-Language"); header != "" {
		if lang := parseAcceptLanguage(header); lang != "" {
			return lang
		}
	}
	return ""
}

func parseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func (cfg Config[T]) routes() RouteConfig {
	return defaultRouteConfig(cfg.Routes)
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/editor/:id"
	}
	if routes.Document == "" {
		routes.Document = "/documents/:id"
	}
	if routes.Sections == "" {
		routes.Sections = "/sections"
	}
	if routes.Components == "" {
		routes.Components = "/components"
	}
	if routes.ComponentID == "" {
		routes.ComponentID = "/components/:id"
	}
	if routes.Move == "" {
		routes.Move = "/components/move"
	}
	if routes.Duplicate == "" {
		routes.Duplicate = "/components/duplicate"
	}
	if routes.Import == "" {
		routes.Import = "/library/import"
	}
	if routes.Undo == "" {
		routes.Undo = "/history/undo"
	}
	if routes.Redo == "" {
		routes.Redo = "/history/redo"
	}
	if routes.Theme == "" {
		routes.Theme = "/theme/generate"
	}
	if routes.Export == "" {
		routes.Export = "/documents/:id/export"
	}
	if routes.Preview == "" {
		routes.Preview = "/documents/:id/preview/:mode"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
