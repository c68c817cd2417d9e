package qgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/llm"
)

// optionLabels are the fixed labels assigned to generated options in order.
var optionLabels = []string{"A", "B", "C", "D"}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// itemOutput is the raw LLM response before validation.
type itemOutput struct {
	Stem         string   `json:"stem"`
	Options      []string `json:"options"`
	CorrectLabel string   `json:"correct_label"`
	Rationale    string   `json:"rationale"`
	Difficulty   string   `json:"difficulty"`
}

// Generate produces a single item for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Item, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ItemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw itemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	opts := make([]bank.Option, 0, len(raw.Options))
	for i, text := range raw.Options {
		if i >= len(optionLabels) {
			break
		}
		opts = append(opts, bank.Option{Label: optionLabels[i], Text: text})
	}

	it := &Item{
		Stem:         raw.Stem,
		Options:      opts,
		CorrectLabel: raw.CorrectLabel,
		Rationale:    raw.Rationale,
		Category:     input.Category,
		ExamCategory: input.ExamCategory,
		Difficulty:   bank.Difficulty(raw.Difficulty),
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(it, input); verr != nil {
			return nil, verr
		}
	}

	return it, nil
}
