package bank

import "fmt"

// RequiredOptions is the number of answer choices every question carries.
const RequiredOptions = 4

// Validate checks a question's structural integrity before it enters the bank.
func Validate(q *Question) error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if q.Stem == "" {
		return fmt.Errorf("question %s: empty stem", q.ID)
	}
	if len(q.Options) != RequiredOptions {
		return fmt.Errorf("question %s: %d options, want %d", q.ID, len(q.Options), RequiredOptions)
	}

	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o.Label == "" {
			return fmt.Errorf("question %s: option with empty label", q.ID)
		}
		if o.Text == "" {
			return fmt.Errorf("question %s: option %s has empty text", q.ID, o.Label)
		}
		if seen[o.Label] {
			return fmt.Errorf("question %s: duplicate option label %s", q.ID, o.Label)
		}
		seen[o.Label] = true
	}

	if q.CorrectLabel == "" {
		return fmt.Errorf("question %s: no correct label", q.ID)
	}
	if !seen[q.CorrectLabel] {
		return fmt.Errorf("question %s: correct label %s matches no option", q.ID, q.CorrectLabel)
	}

	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
	}

	if q.Category == "" {
		return fmt.Errorf("question %s: empty category", q.ID)
	}
	if q.ExamCategory != "" && !IsExamCategory(q.ExamCategory) {
		return fmt.Errorf("question %s: unknown exam category %q", q.ID, q.ExamCategory)
	}

	return nil
}
