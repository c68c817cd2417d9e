package bank

import "github.com/meera/nclexprep/internal/store"

// Difficulty is the authored difficulty level of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Source records how a question entered the bank.
type Source string

const (
	SourceImported  Source = "imported"
	SourceGenerated Source = "generated"
)

// Option is one labeled answer choice.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is a single NCLEX practice item. Immutable once in the bank:
// end-user actions never mutate it.
type Question struct {
	ID           string     `json:"id"`
	Stem         string     `json:"stem"`
	Options      []Option   `json:"options"`
	CorrectLabel string     `json:"correct_label"`
	Rationale    string     `json:"rationale,omitempty"`
	Category     string     `json:"category"`
	ExamCategory string     `json:"exam_category,omitempty"`
	Difficulty   Difficulty `json:"difficulty"`
	Active       bool       `json:"active"`
	Source       Source     `json:"source,omitempty"`
}

// IsCorrect reports whether the given label is this question's correct answer.
func (q *Question) IsCorrect(label string) bool {
	return label == q.CorrectLabel
}

// OptionByLabel returns the option with the given label, or nil.
func (q *Question) OptionByLabel(label string) *Option {
	for i := range q.Options {
		if q.Options[i].Label == label {
			return &q.Options[i]
		}
	}
	return nil
}

// FromRecord converts a storage row into a domain Question.
func FromRecord(r store.QuestionRecord) Question {
	opts := make([]Option, len(r.Options))
	for i, o := range r.Options {
		opts[i] = Option{Label: o.Label, Text: o.Text}
	}
	return Question{
		ID:           r.QID,
		Stem:         r.Stem,
		Options:      opts,
		CorrectLabel: r.CorrectLabel,
		Rationale:    r.Rationale,
		Category:     r.Category,
		ExamCategory: r.ExamCategory,
		Difficulty:   Difficulty(r.Difficulty),
		Active:       r.Active,
		Source:       Source(r.Source),
	}
}

// ToRecord converts a domain Question into its storage row.
func ToRecord(q Question) store.QuestionRecord {
	opts := make([]store.OptionData, len(q.Options))
	for i, o := range q.Options {
		opts[i] = store.OptionData{Label: o.Label, Text: o.Text}
	}
	return store.QuestionRecord{
		QID:          q.ID,
		Stem:         q.Stem,
		Options:      opts,
		CorrectLabel: q.CorrectLabel,
		Rationale:    q.Rationale,
		Category:     q.Category,
		ExamCategory: q.ExamCategory,
		Difficulty:   string(q.Difficulty),
		Active:       q.Active,
		Source:       string(q.Source),
	}
}

// FromRecords converts a slice of storage rows.
func FromRecords(recs []store.QuestionRecord) []Question {
	qs := make([]Question, len(recs))
	for i, r := range recs {
		qs[i] = FromRecord(r)
	}
	return qs
}
