package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/llm"
)

func validItemJSON() json.RawMessage {
	return json.RawMessage(`{
		"stem": "A client taking furosemide reports muscle cramps. Which lab value should the nurse check first?",
		"options": ["Serum potassium", "Serum calcium", "Blood glucose", "Hemoglobin"],
		"correct_label": "A",
		"rationale": "Furosemide is a potassium-wasting loop diuretic; muscle cramps suggest hypokalemia. Calcium and glucose are not the priority, and hemoglobin is unrelated to cramping.",
		"difficulty": "medium"
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validItemJSON(),
	})
	gen := New(mock, DefaultConfig())

	it, err := gen.Generate(context.Background(), GenerateInput{
		Category:   "Pharmacology",
		Difficulty: bank.DifficultyMedium,
	})
	require.NoError(t, err)

	assert.Contains(t, it.Stem, "furosemide")
	require.Len(t, it.Options, 4)
	assert.Equal(t, "A", it.Options[0].Label)
	assert.Equal(t, "D", it.Options[3].Label)
	assert.Equal(t, "A", it.CorrectLabel)
	assert.Equal(t, "Pharmacology", it.Category)
	assert.Equal(t, bank.DifficultyMedium, it.Difficulty)
}

func TestGenerate_ToQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validItemJSON()})
	gen := New(mock, DefaultConfig())

	it, err := gen.Generate(context.Background(), GenerateInput{
		Category:     "Pharmacology",
		ExamCategory: "Pharmacological and Parenteral Therapies",
		Difficulty:   bank.DifficultyMedium,
	})
	require.NoError(t, err)

	q := it.ToQuestion()
	assert.NotEmpty(t, q.ID, "question should get a fresh ID")
	assert.Equal(t, bank.SourceGenerated, q.Source)
	assert.True(t, q.Active, "generated question should be active")
	assert.NoError(t, bank.Validate(&q), "generated question should pass bank validation")
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validItemJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category:   "Pharmacology",
		Difficulty: bank.DifficultyHard,
		PriorStems: []string{"A client with heart failure is prescribed digoxin."},
		WeakAreas:  []string{"diuretic electrolyte effects"},
	})
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Pharmacology", "hard", "digoxin", "diuretic electrolyte effects"} {
		assert.Contains(t, msg, want)
	}
	assert.Equal(t, ItemSchema, mock.Calls[0].Schema, "request should carry the item schema")
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: "Safety", Difficulty: bank.DifficultyEasy})
	require.Error(t, err)
	var unavail *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail), "error = %v, want provider unavailable", err)
}

func TestGenerate_StructuralFailure(t *testing.T) {
	bad := json.RawMessage(`{
		"stem": "Pick one.",
		"options": ["x", "y"],
		"correct_label": "A",
		"rationale": "because",
		"difficulty": "medium"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Category: "Safety", Difficulty: bank.DifficultyEasy})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "error = %v, want ValidationError", err)
	assert.Equal(t, "structural", verr.Validator)
	assert.True(t, verr.Retryable, "structural failures should be retryable")
}

func TestGenerate_DedupFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validItemJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Category:   "Pharmacology",
		Difficulty: bank.DifficultyMedium,
		PriorStems: []string{"A client taking furosemide reports muscle cramps.  Which lab value should the nurse check FIRST?"},
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "error = %v, want ValidationError", err)
	assert.Equal(t, "dedup", verr.Validator)
}
