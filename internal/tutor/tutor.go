// Package tutor generates short coaching explanations for missed questions.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/llm"
)

// ErrUnavailable is returned when no LLM provider is configured.
var ErrUnavailable = errors.New("tutor unavailable: no LLM provider configured")

// Explanation is the tutor's coaching response for a missed item.
type Explanation struct {
	// WhyWrong explains the flaw in the chosen option's reasoning.
	WhyWrong string

	// WhyRight explains why the correct option is the priority.
	WhyRight string

	// Takeaway is a one-sentence principle to remember.
	Takeaway string
}

// Service wraps an LLM provider for tutoring. The provider may be nil, in
// which case every call returns ErrUnavailable.
type Service struct {
	provider  llm.Provider
	maxTokens int
}

// NewService creates a tutor service. Pass a nil provider when the user has
// no API key configured; the TUI shows the unavailable state instead.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, maxTokens: 768}
}

// Available reports whether tutoring can be offered.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Explain asks the tutor why the chosen answer was wrong and the correct one
// right. The question's own rationale is given to the model as grounding.
func (s *Service) Explain(ctx context.Context, q bank.Question, chosenLabel string) (*Explanation, error) {
	if s.provider == nil {
		return nil, ErrUnavailable
	}

	ctx = llm.WithPurpose(ctx, "tutor")

	req := llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorMessage(q, chosenLabel)},
		},
		Schema:    ExplanationSchema,
		MaxTokens: s.maxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tutor generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse tutor response: %w", err)
	}

	return &Explanation{
		WhyWrong: out.WhyWrong,
		WhyRight: out.WhyRight,
		Takeaway: out.Takeaway,
	}, nil
}

type explanationOutput struct {
	WhyWrong string `json:"why_wrong"`
	WhyRight string `json:"why_right"`
	Takeaway string `json:"takeaway"`
}

const tutorSystemPrompt = `You are a supportive NCLEX tutor reviewing a question the student just missed.

Rules:
- Be direct and specific to this question. No generic study advice.
- Explain the clinical reasoning, not just the fact. Name the principle involved (e.g. airway before circulation, assess before intervene).
- Keep each part to 2-3 sentences. Plain text only.
- Never invent clinical details not present in the question.`

func buildTutorMessage(q bank.Question, chosenLabel string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", q.Stem)
	for _, o := range q.Options {
		fmt.Fprintf(&b, "%s. %s\n", o.Label, o.Text)
	}
	fmt.Fprintf(&b, "\nCorrect answer: %s\n", q.CorrectLabel)
	fmt.Fprintf(&b, "Student chose: %s\n", chosenLabel)
	if q.Rationale != "" {
		fmt.Fprintf(&b, "\nAuthor's rationale: %s\n", q.Rationale)
	}
	return b.String()
}

// ExplanationSchema defines the JSON schema for tutor responses.
var ExplanationSchema = &llm.Schema{
	Name:        "tutor-explanation",
	Description: "Coaching explanation for a missed NCLEX question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"why_wrong": map[string]any{
				"type":        "string",
				"description": "Why the student's chosen option is incorrect, 2-3 sentences",
			},
			"why_right": map[string]any{
				"type":        "string",
				"description": "Why the correct option is the priority, 2-3 sentences",
			},
			"takeaway": map[string]any{
				"type":        "string",
				"description": "A one-sentence principle to remember",
			},
		},
		"required":             []any{"why_wrong", "why_right", "takeaway"},
		"additionalProperties": false,
	},
}
