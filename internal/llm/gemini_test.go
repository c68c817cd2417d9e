package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		assert.Equalf(t, tt.expected, got, "resolveModel(%q)", tt.input)
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	// Shape mirrors the question-generation schema.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stem":          map[string]any{"type": "string"},
			"correct_label": map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"difficulty": map[string]any{"type": "integer"},
		},
		"required": []any{"stem", "options"},
	}

	schema := buildGeminiSchema(def)

	require.Equal(t, "OBJECT", string(schema.Type))
	require.Len(t, schema.Properties, 4)
	assert.Equal(t, "STRING", string(schema.Properties["stem"].Type))
	assert.Equal(t, "INTEGER", string(schema.Properties["difficulty"].Type))
	assert.Len(t, schema.Properties["correct_label"].Enum, 4)
	require.Equal(t, "ARRAY", string(schema.Properties["options"].Type))
	assert.Equal(t, "STRING", string(schema.Properties["options"].Items.Type))
	assert.Len(t, schema.Required, 2)
}
