package qgen

import "context"

// Generator produces NCLEX practice items using an LLM provider.
type Generator interface {
	// Generate produces a single item for the given input context.
	// Returns a validated Item or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Item, error)
}
