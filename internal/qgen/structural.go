package qgen

import "github.com/meera/nclexprep/internal/bank"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(it *Item, _ GenerateInput) *ValidationError {
	if it.Stem == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "stem is empty",
			Retryable: true,
		}
	}
	if len(it.Stem) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "stem exceeds 1000 characters",
			Retryable: true,
		}
	}
	if len(it.Options) != bank.RequiredOptions {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "must have exactly 4 options",
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(it.Options))
	correctFound := false
	for _, o := range it.Options {
		if o.Text == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "option text is empty",
				Retryable: true,
			}
		}
		if seen[o.Text] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "duplicate option text",
				Retryable: true,
			}
		}
		seen[o.Text] = true
		if o.Label == it.CorrectLabel {
			correctFound = true
		}
	}
	if !correctFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_label does not match any option",
			Retryable: true,
		}
	}
	if it.Rationale == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "rationale is empty",
			Retryable: true,
		}
	}
	switch it.Difficulty {
	case bank.DifficultyEasy, bank.DifficultyMedium, bank.DifficultyHard:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be \"easy\", \"medium\", or \"hard\"",
			Retryable: true,
		}
	}
	return nil
}
