package qgen

import "github.com/meera/nclexprep/internal/llm"

// ItemSchema defines the JSON schema for LLM item generation responses.
var ItemSchema = &llm.Schema{
	Name:        "nclex-question",
	Description: "A single NCLEX-style practice question with four options and a rationale",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stem": map[string]any{
				"type":        "string",
				"description": "The clinical scenario and question, in plain text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer choices in order A, B, C, D. Option text only, no labels.",
			},
			"correct_label": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The label of the correct option",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is right and each distractor is wrong",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "The item's difficulty level",
			},
		},
		"required":             []any{"stem", "options", "correct_label", "rationale", "difficulty"},
		"additionalProperties": false,
	},
}
