package session

import (
	"context"
	"testing"
	"time"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/entitlement"
	"github.com/meera/nclexprep/internal/review"
	"github.com/meera/nclexprep/internal/store"
)

var planNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func question(id, category string) bank.Question {
	return bank.Question{
		ID:   id,
		Stem: "stem " + id,
		Options: []bank.Option{
			{Label: "A", Text: "a"}, {Label: "B", Text: "b"},
			{Label: "C", Text: "c"}, {Label: "D", Text: "d"},
		},
		CorrectLabel: "A",
		Category:     category,
		Difficulty:   bank.DifficultyMedium,
		Active:       true,
	}
}

func newTestPlanner(f *fakeStore, gate *entitlement.Gate) *Planner {
	sched := review.NewScheduler(reviewRepoView{f})
	return NewPlanner(f, f, sched, gate)
}

func recordAnswer(f *fakeStore, questionID, category string, correct bool) {
	f.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		UserID:     "u1",
		QuestionID: questionID,
		Category:   category,
		Correct:    correct,
	})
}

func TestBuildPlanPractice(t *testing.T) {
	f := newFakeStore()
	f.addQuestion(question("q1", "Pharmacology"))
	f.addQuestion(question("q2", "Safety"))
	f.addQuestion(question("q3", "Pharmacology"))
	recordAnswer(f, "q1", "Pharmacology", false)

	plan, status, err := newTestPlanner(f, nil).BuildPlan(context.Background(), "u1", ModePractice, planNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if status.Remaining != -1 {
		t.Errorf("status without gate = %+v, want unlimited", status)
	}
	if len(plan.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(plan.Questions))
	}
	// q1 is answered so it must come last.
	if plan.Questions[2].ID != "q1" {
		t.Errorf("answered question not last: %v", plan.Questions)
	}
}

func TestBuildPlanFocused(t *testing.T) {
	f := newFakeStore()
	f.addQuestion(question("q1", "Pharmacology"))
	f.addQuestion(question("q2", "Safety"))
	f.addQuestion(question("q3", "Pharmacology"))
	// Pharmacology: 3 attempts, 0 correct — weak with enough data.
	recordAnswer(f, "q1", "Pharmacology", false)
	recordAnswer(f, "q1", "Pharmacology", false)
	recordAnswer(f, "q3", "Pharmacology", false)

	plan, _, err := newTestPlanner(f, nil).BuildPlan(context.Background(), "u1", ModeFocused, planNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if plan.FocusCategory != "Pharmacology" {
		t.Errorf("focus category = %q, want Pharmacology", plan.FocusCategory)
	}
	for _, q := range plan.Questions {
		if q.Category != "Pharmacology" {
			t.Errorf("focused plan contains %s question %s", q.Category, q.ID)
		}
	}
}

func TestBuildPlanFocusedNoWeakCategory(t *testing.T) {
	f := newFakeStore()
	f.addQuestion(question("q1", "Pharmacology"))
	f.addQuestion(question("q2", "Safety"))
	// Only 2 attempts: below the sample threshold.
	recordAnswer(f, "q1", "Pharmacology", false)
	recordAnswer(f, "q1", "Pharmacology", true)

	plan, _, err := newTestPlanner(f, nil).BuildPlan(context.Background(), "u1", ModeFocused, planNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if plan.FocusCategory != "" {
		t.Errorf("focus category = %q, want empty fallback", plan.FocusCategory)
	}
	if !plan.NoWeakCategory {
		t.Error("plan should flag that no category qualified")
	}
	if len(plan.Questions) != 2 {
		t.Errorf("fallback should serve the full pool, got %d", len(plan.Questions))
	}
}

func TestBuildPlanReview(t *testing.T) {
	f := newFakeStore()
	f.addQuestion(question("q1", "Pharmacology"))
	f.addQuestion(question("q2", "Safety"))

	sched := review.NewScheduler(reviewRepoView{f})
	if _, err := sched.Admit(context.Background(), "u1", "q1", review.ReasonIncorrect, planNow.Add(-24*time.Hour)); err != nil {
		t.Fatalf("admit: %v", err)
	}

	plan, _, err := newTestPlanner(f, nil).BuildPlan(context.Background(), "u1", ModeReview, planNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if len(plan.Questions) != 1 || plan.Questions[0].ID != "q1" {
		t.Errorf("review plan = %v, want just q1", plan.Questions)
	}
}

func TestBuildPlanQuotaCap(t *testing.T) {
	f := newFakeStore()
	for i := 0; i < 30; i++ {
		f.addQuestion(question(string(rune('a'+i)), "Safety"))
	}

	gate := entitlement.NewGate(f, entitlement.PlanFree)
	plan, status, err := newTestPlanner(f, gate).BuildPlan(context.Background(), "u1", ModePractice, planNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if status.Plan != entitlement.PlanFree {
		t.Errorf("plan = %s, want free", status.Plan)
	}
	if len(plan.Questions) != DefaultSessionLength {
		t.Errorf("plan length = %d, want session default %d", len(plan.Questions), DefaultSessionLength)
	}
}

func TestBuildPlanQuotaExhausted(t *testing.T) {
	f := newFakeStore()
	f.addQuestion(question("q1", "Safety"))
	for i := 0; i < entitlement.FreeDailyQuota; i++ {
		recordAnswer(f, "q1", "Safety", true)
	}

	gate := entitlement.NewGate(f, entitlement.PlanFree)
	plan, status, err := newTestPlanner(f, gate).BuildPlan(context.Background(), "u1", ModePractice, planNow)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	if status.Allowed() {
		t.Error("exhausted quota should not allow more answers")
	}
	if len(plan.Questions) != 0 {
		t.Errorf("plan length = %d, want 0", len(plan.Questions))
	}
}
