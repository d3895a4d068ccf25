package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textSchemaDefinition() ComponentDefinition {
	return ComponentDefinition{
		Type:  TypeText,
		Label: "Text",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"tag":  map[string]any{"type": "string"},
			},
		},
	}
}

func TestValidateAcceptsMatchingContent(t *testing.T) {
	v := NewJSONSchemaValidator()
	err := v.Validate(textSchemaDefinition(), map[string]any{"text": "hello", "tag": "p"})
	assert.NoError(t, err)
}

func TestValidateRejectsWrongType(t *testing.T) {
	v := NewJSONSchemaValidator()
	err := v.Validate(textSchemaDefinition(), map[string]any{"text": 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestValidateAllowsUnknownKeys(t *testing.T) {
	v := NewJSONSchemaValidator()
	err := v.Validate(textSchemaDefinition(), map[string]any{"text": "ok", "custom": true})
	assert.NoError(t, err)
}

func TestValidateSkipsDefinitionsWithoutSchema(t *testing.T) {
	v := NewJSONSchemaValidator()
	err := v.Validate(ComponentDefinition{Type: TypeImage, Label: "Image"}, map[string]any{"anything": 1})
	assert.NoError(t, err)
}

func TestValidateNilContent(t *testing.T) {
	v := NewJSONSchemaValidator()
	assert.NoError(t, v.Validate(textSchemaDefinition(), nil))
}

func TestValidatePropertiesEnforcesRequired(t *testing.T) {
	v := NewJSONSchemaValidator()
	component := sampleCustomComponent()

	err := v.ValidateProperties(component, map[string]any{"headline": "Hello", "count": 2})
	assert.NoError(t, err)

	err = v.ValidateProperties(component, map[string]any{"count": 2})
	require.Error(t, err)
}

func TestValidateCachesCompiledSchemas(t *testing.T) {
	v := NewJSONSchemaValidator()
	def := textSchemaDefinition()
	require.NoError(t, v.Validate(def, map[string]any{"text": "a"}))
	require.NoError(t, v.Validate(def, map[string]any{"text": "b"}))
	assert.Len(t, v.compiled, 1)
}
