package qgen

import (
	"fmt"
	"strings"
)

// buildDedup formats prior stems for the prompt, respecting the max limit.
// Returns "None" if there are no prior stems.
func buildDedup(priorStems []string, max int) string {
	if len(priorStems) == 0 {
		return "None"
	}

	// Keep only the most recent N stems.
	if max > 0 && len(priorStems) > max {
		priorStems = priorStems[len(priorStems)-max:]
	}

	var b strings.Builder
	for i, s := range priorStems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}

// normalizeStem lowercases and collapses whitespace for duplicate comparison.
func normalizeStem(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// DedupValidator rejects items whose stem duplicates one already in the bank.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(it *Item, input GenerateInput) *ValidationError {
	norm := normalizeStem(it.Stem)
	for _, prior := range input.PriorStems {
		if normalizeStem(prior) == norm {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "stem duplicates an existing question",
				Retryable: true,
			}
		}
	}
	return nil
}
