package qgen

import (
	"github.com/google/uuid"

	"github.com/meera/nclexprep/internal/bank"
)

// Item represents a generated NCLEX practice item before it enters the bank.
type Item struct {
	// Stem is the clinical scenario and question, plain text.
	Stem string

	// Options are the four answer choices in label order A-D.
	Options []bank.Option

	// CorrectLabel identifies the correct option ("A".."D").
	CorrectLabel string

	// Rationale is the explanation shown after answering. Always present.
	Rationale string

	// Category is the content category the item was generated for.
	Category string

	// ExamCategory is the official client-needs category, when assigned.
	ExamCategory string

	// Difficulty is the authored difficulty level.
	Difficulty bank.Difficulty
}

// ToQuestion converts the item into a bank question with a fresh ID,
// marked as AI-generated.
func (it *Item) ToQuestion() bank.Question {
	return bank.Question{
		ID:           uuid.NewString(),
		Stem:         it.Stem,
		Options:      it.Options,
		CorrectLabel: it.CorrectLabel,
		Rationale:    it.Rationale,
		Category:     it.Category,
		ExamCategory: it.ExamCategory,
		Difficulty:   it.Difficulty,
		Active:       true,
		Source:       bank.SourceGenerated,
	}
}

// GenerateInput holds all context needed to generate an item.
type GenerateInput struct {
	// Category is the target content category, e.g. "Pharmacology".
	Category string

	// ExamCategory is the official client-needs category to tag the item
	// with. Optional.
	ExamCategory string

	// Difficulty is the requested difficulty level.
	Difficulty bank.Difficulty

	// PriorStems contains the stems of questions already in the bank for
	// this category. Used for deduplication in the prompt and validation.
	PriorStems []string

	// WeakAreas contains short descriptions of topics the user has been
	// missing, to steer generation toward them. Empty slice if no history.
	WeakAreas []string
}
