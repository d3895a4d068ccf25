package builder

import (
	"fmt"
	"sync"
)

// ComponentHook lets packages register component definitions during init().
type ComponentHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []ComponentHook
)

// RegisterComponentHook registers a hook executed against new registries.
func RegisterComponentHook(h ComponentHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry implements ComponentRegistry with hook + component pack support.
type Registry struct {
	mu          sync.RWMutex
	definitions map[ComponentType]ComponentDefinition
	packMeta    map[ComponentType]PackProvider
}

// NewRegistry builds a registry seeded with the built-in palette and applies
// global hooks.
func NewRegistry() *Registry {
	reg := &Registry{
		definitions: map[ComponentType]ComponentDefinition{},
		packMeta:    map[ComponentType]PackProvider{},
	}
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

func (r *Registry) registerDefaults() {
	for _, def := range DefaultComponentDefinitions() {
		_ = r.RegisterDefinition(def)
	}
}

// ApplyHooks executes registered component hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefinition stores palette metadata and seed content for a type.
func (r *Registry) RegisterDefinition(def ComponentDefinition) error {
	if def.Type == "" {
		return fmt.Errorf("builder: component definition type is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.Type] = def
	return nil
}

// Definition fetches a component definition by type.
func (r *Registry) Definition(componentType ComponentType) (ComponentDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[componentType]
	return def, ok
}

// DefaultContent returns seed content for a type; unknown types get the
// generic placeholder so callers never fail.
func (r *Registry) DefaultContent(componentType ComponentType) map[string]any {
	return definitionOrPlaceholder(r, componentType).Content
}

// DefaultStyles returns the seed style map for a type.
func (r *Registry) DefaultStyles(componentType ComponentType) map[string]string {
	return definitionOrPlaceholder(r, componentType).Styles
}

// Icon returns the palette icon name for a type.
func (r *Registry) Icon(componentType ComponentType) string {
	return definitionOrPlaceholder(r, componentType).Icon
}

// Label returns the palette display label for a type.
func (r *Registry) Label(componentType ComponentType) string {
	return definitionOrPlaceholder(r, componentType).Label
}

// PackMetadata returns any component pack metadata registered for a type.
func (r *Registry) PackMetadata(componentType ComponentType) (PackProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.packMeta[componentType]
	return meta, ok
}

// Definitions returns all registered definitions.
func (r *Registry) Definitions() []ComponentDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]ComponentDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	return defs
}

func (r *Registry) recordPackMetadata(componentType ComponentType, meta PackProvider) {
	if meta.isZero() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packMeta[componentType] = meta
}
