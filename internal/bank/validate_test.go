package bank

import (
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		ID:   "q-1",
		Stem: "Which finding should the nurse report immediately?",
		Options: []Option{
			{Label: "A", Text: "Heart rate 88"},
			{Label: "B", Text: "Urine output 10 mL/hr"},
			{Label: "C", Text: "Temperature 37.2 C"},
			{Label: "D", Text: "Respiratory rate 16"},
		},
		CorrectLabel: "B",
		Category:     "Renal",
		ExamCategory: "Reduction of Risk Potential",
		Difficulty:   DifficultyMedium,
		Active:       true,
	}
}

func TestValidate_OK(t *testing.T) {
	q := validQuestion()
	if err := Validate(&q); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantSub string
	}{
		{"empty stem", func(q *Question) { q.Stem = "" }, "empty stem"},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, "3 options"},
		{"duplicate label", func(q *Question) { q.Options[1].Label = "A" }, "duplicate option label"},
		{"empty option text", func(q *Question) { q.Options[2].Text = "" }, "empty text"},
		{"correct label missing", func(q *Question) { q.CorrectLabel = "E" }, "matches no option"},
		{"bad difficulty", func(q *Question) { q.Difficulty = "brutal" }, "unknown difficulty"},
		{"empty category", func(q *Question) { q.Category = "" }, "empty category"},
		{"bogus exam category", func(q *Question) { q.ExamCategory = "Vibes" }, "unknown exam category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := Validate(&q)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestQuestionHelpers(t *testing.T) {
	q := validQuestion()

	if !q.IsCorrect("B") {
		t.Error("IsCorrect(B) = false, want true")
	}
	if q.IsCorrect("A") {
		t.Error("IsCorrect(A) = true, want false")
	}

	opt := q.OptionByLabel("C")
	if opt == nil || opt.Text != "Temperature 37.2 C" {
		t.Errorf("OptionByLabel(C) = %v", opt)
	}
	if q.OptionByLabel("Z") != nil {
		t.Error("OptionByLabel(Z) should be nil")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	q := validQuestion()
	got := FromRecord(ToRecord(q))
	if got.ID != q.ID || got.CorrectLabel != q.CorrectLabel || len(got.Options) != 4 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Difficulty != DifficultyMedium {
		t.Errorf("difficulty = %q", got.Difficulty)
	}
}
