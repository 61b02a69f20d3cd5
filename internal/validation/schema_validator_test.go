package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func newTestValidator() SchemaValidator {
	return NewSchemaValidator(fstest.MapFS{
		"person.schema.json": &fstest.MapFile{Data: []byte(testSchema)},
	})
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, wantError: true, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateValue(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.ValidateValue(map[string]any{"name": "Ana", "age": float64(3)}, "person.schema.json"))
	assert.Error(t, v.ValidateValue(map[string]any{"age": float64(3)}, "person.schema.json"))
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}
