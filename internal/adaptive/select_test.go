package adaptive

import (
	"testing"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/store"
)

func q(id, category string) bank.Question {
	return bank.Question{
		ID:       id,
		Stem:     "stem " + id,
		Category: category,
		Options: []bank.Option{
			{Label: "A", Text: "a"}, {Label: "B", Text: "b"},
			{Label: "C", Text: "c"}, {Label: "D", Text: "d"},
		},
		CorrectLabel: "A",
		Difficulty:   bank.DifficultyMedium,
		Active:       true,
	}
}

func answer(questionID, category string, correct bool) store.AnswerEventRecord {
	return store.AnswerEventRecord{
		UserID:     "u1",
		QuestionID: questionID,
		Category:   category,
		Correct:    correct,
	}
}

func TestSummarize(t *testing.T) {
	questions := []bank.Question{q("q1", "Pharmacology"), q("q2", "Pharmacology"), q("q3", "Safety")}
	history := []store.AnswerEventRecord{
		answer("q1", "Pharmacology", true),
		answer("q2", "Pharmacology", false),
		answer("q3", "Safety", true),
		answer("q3", "Safety", true),
	}

	stats := Summarize(history, questions)
	if len(stats) != 2 {
		t.Fatalf("got %d categories, want 2", len(stats))
	}
	if stats[0].Category != "Pharmacology" || stats[0].Correct != 1 || stats[0].Total != 2 {
		t.Errorf("pharm stat = %+v, want 1/2", stats[0])
	}
	if stats[1].Category != "Safety" || stats[1].Correct != 2 || stats[1].Total != 2 {
		t.Errorf("safety stat = %+v, want 2/2", stats[1])
	}
	if got := stats[0].Accuracy(); got != 0.5 {
		t.Errorf("pharm accuracy = %v, want 0.5", got)
	}
}

func TestSummarizeFallsBackToEventCategory(t *testing.T) {
	// Question was removed from the pool; its events still count toward the
	// category recorded at answer time.
	history := []store.AnswerEventRecord{answer("gone", "Safety", false)}

	stats := Summarize(history, nil)
	if len(stats) != 1 || stats[0].Category != "Safety" || stats[0].Total != 1 {
		t.Fatalf("stats = %+v, want one Safety entry", stats)
	}
}

func TestAccuracyNeutralDefault(t *testing.T) {
	s := CategoryStat{Category: "Peds"}
	if got := s.Accuracy(); got != NeutralAccuracy {
		t.Errorf("accuracy with no attempts = %v, want %v", got, NeutralAccuracy)
	}
}

func TestRankQuestionsUnansweredFirst(t *testing.T) {
	questions := []bank.Question{
		q("q1", "Pharmacology"),
		q("q2", "Safety"),
		q("q3", "Pharmacology"),
		q("q4", "Safety"),
	}
	history := []store.AnswerEventRecord{
		answer("q1", "Pharmacology", false),
		answer("q2", "Safety", true),
	}

	ranked := RankQuestions(questions, history)
	if len(ranked) != len(questions) {
		t.Fatalf("got %d questions, want %d", len(ranked), len(questions))
	}

	// q3 and q4 are unanswered so they come first; within each partition
	// Pharmacology (0%) sorts before Safety (100%).
	want := []string{"q3", "q4", "q1", "q2"}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Errorf("position %d = %s, want %s (full order %v)", i, ranked[i].ID, id, ids(ranked))
		}
	}
}

func TestRankQuestionsIsPermutation(t *testing.T) {
	questions := []bank.Question{
		q("q1", "A"), q("q2", "B"), q("q3", "C"), q("q4", "A"), q("q5", "B"),
	}
	history := []store.AnswerEventRecord{
		answer("q1", "A", true),
		answer("q2", "B", false),
		answer("q2", "B", false),
	}

	ranked := RankQuestions(questions, history)
	if len(ranked) != len(questions) {
		t.Fatalf("length changed: got %d, want %d", len(ranked), len(questions))
	}
	seen := make(map[string]bool)
	for _, r := range ranked {
		if seen[r.ID] {
			t.Fatalf("duplicate id %s in output", r.ID)
		}
		seen[r.ID] = true
	}
	for _, orig := range questions {
		if !seen[orig.ID] {
			t.Errorf("id %s dropped from output", orig.ID)
		}
	}
}

func TestRankQuestionsStableForNoHistory(t *testing.T) {
	questions := []bank.Question{q("q1", "A"), q("q2", "B"), q("q3", "C")}

	ranked := RankQuestions(questions, nil)
	for i := range questions {
		if ranked[i].ID != questions[i].ID {
			t.Fatalf("order changed with no history: %v", ids(ranked))
		}
	}
}

func TestPickWeakestCategory(t *testing.T) {
	questions := []bank.Question{q("q1", "Pharmacology"), q("q2", "Safety")}

	t.Run("no qualifying category", func(t *testing.T) {
		// Pharmacology 1/2: too few attempts. Safety 4/5: 80% is above the bar.
		history := []store.AnswerEventRecord{
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", false),
			answer("q2", "Safety", true),
			answer("q2", "Safety", true),
			answer("q2", "Safety", true),
			answer("q2", "Safety", true),
			answer("q2", "Safety", false),
		}
		cat, ok := WeakestCategory(questions, history)
		if ok {
			t.Errorf("got category %q, want none", cat)
		}
	})

	t.Run("qualifying category returned", func(t *testing.T) {
		history := []store.AnswerEventRecord{
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", false),
			answer("q1", "Pharmacology", false),
		}
		cat, ok := WeakestCategory(questions, history)
		if !ok || cat != "Pharmacology" {
			t.Errorf("got (%q, %v), want Pharmacology", cat, ok)
		}
	})

	t.Run("lowest accuracy wins", func(t *testing.T) {
		history := []store.AnswerEventRecord{
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", false),
			answer("q1", "Pharmacology", false),
			answer("q2", "Safety", false),
			answer("q2", "Safety", false),
			answer("q2", "Safety", false),
		}
		cat, ok := WeakestCategory(questions, history)
		if !ok || cat != "Safety" {
			t.Errorf("got (%q, %v), want Safety at 0%%", cat, ok)
		}
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		// Exactly 70% does not qualify.
		history := []store.AnswerEventRecord{
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", true),
			answer("q1", "Pharmacology", false),
			answer("q1", "Pharmacology", false),
			answer("q1", "Pharmacology", false),
		}
		if cat, ok := WeakestCategory(questions, history); ok {
			t.Errorf("got category %q at exactly 70%%, want none", cat)
		}
	})
}

func ids(qs []bank.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
