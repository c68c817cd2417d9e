package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "practice-question",
		Description: "A multiple-choice practice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stem":          map[string]any{"type": "string"},
				"difficulty":    map[string]any{"type": "integer", "minimum": 1},
				"correct_label": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			},
			"required": []any{"stem", "difficulty"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"stem":"Which medication requires a potassium check?","difficulty":2,"correct_label":"A"}`)
	assert.NoError(t, validateResponse(testSchema(), raw))
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"stem":"Which client should the nurse assess first?","difficulty":1}`)
	assert.NoError(t, validateResponse(testSchema(), raw))
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"stem":"Which action is the priority?"}`)
	err := validateResponse(testSchema(), raw)
	require.Error(t, err)
	var invErr *ErrInvalidResponse
	assert.True(t, errors.As(err, &invErr), "expected ErrInvalidResponse, got %T", err)
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"stem":"Which action is the priority?","difficulty":"hard"}`)
	err := validateResponse(testSchema(), raw)
	require.Error(t, err)
	var invErr *ErrInvalidResponse
	assert.True(t, errors.As(err, &invErr), "expected ErrInvalidResponse, got %T", err)
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"stem":"Which action is the priority?","difficulty":2,"correct_label":"E"}`)
	err := validateResponse(testSchema(), raw)
	require.Error(t, err)
	var invErr *ErrInvalidResponse
	assert.True(t, errors.As(err, &invErr), "expected ErrInvalidResponse, got %T", err)
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	require.Error(t, err)
	var invErr *ErrInvalidResponse
	assert.True(t, errors.As(err, &invErr), "expected ErrInvalidResponse, got %T", err)
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	assert.Error(t, validateResponse(testSchema(), json.RawMessage(``)))
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	assert.NoError(t, validateResponse(nil, raw))
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "tutor-explanation",
		Description: "Explanation with per-option notes",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"summary": map[string]any{"type": "string"},
					},
					"required": []any{"summary"},
				},
				"option_notes": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"verdict", "option_notes"},
		},
	}

	valid := json.RawMessage(`{"verdict":{"summary":"Airway comes before comfort measures."},"option_notes":["correct","distractor","distractor"]}`)
	require.NoError(t, validateResponse(schema, valid))

	invalid := json.RawMessage(`{"verdict":{"summary":"ok"},"option_notes":[1,2]}`)
	assert.Error(t, validateResponse(schema, invalid))
}
