package builder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ContentValidator validates component content payloads against a schema.
// Definitions without a schema accept anything; content keys stay open-ended
// by policy, so schemas should describe known keys without closing the object.
type ContentValidator interface {
	Validate(def ComponentDefinition, content map[string]any) error
}

// JSONSchemaValidator compiles definition schemas on first use and caches the
// compiled form.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures the provided content satisfies the definition schema.
func (v *JSONSchemaValidator) Validate(def ComponentDefinition, content map[string]any) error {
	if len(def.Schema) == 0 {
		return nil
	}
	schema, err := v.schemaFor(string(def.Type), def.Schema)
	if err != nil {
		return err
	}
	return v.validatePayload(schema, string(def.Type), content)
}

// ValidateProperties checks custom component property values against the
// schema synthesized from the component's property declarations.
func (v *JSONSchemaValidator) ValidateProperties(component CustomComponent, values map[string]any) error {
	raw := component.PropertySchema()
	if len(raw) == 0 {
		return nil
	}
	schema, err := v.schemaFor("custom-"+component.ID, raw)
	if err != nil {
		return err
	}
	return v.validatePayload(schema, component.Name, values)
}

func (v *JSONSchemaValidator) validatePayload(schema *jsonschema.Schema, subject string, values map[string]any) error {
	var payload map[string]any
	if values == nil {
		payload = map[string]any{}
	} else {
		data, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("builder: marshal content for %s: %w", subject, err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("builder: normalize content for %s: %w", subject, err)
		}
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("builder: content for %s failed validation: %w", subject, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(key string, raw map[string]any) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[key]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("builder: marshal schema %s: %w", key, err)
	}
	compiler := jsonschema.NewCompiler()
	name := key + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("builder: load schema %s: %w", key, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("builder: compile schema %s: %w", key, err)
	}
	v.mu.Lock()
	v.compiled[key] = compiled
	v.mu.Unlock()
	return compiled, nil
}

type noopContentValidator struct{}

func (noopContentValidator) Validate(ComponentDefinition, map[string]any) error { return nil }
