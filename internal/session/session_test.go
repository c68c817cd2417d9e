package session

import (
	"context"
	"testing"
	"time"

	"github.com/meera/nclexprep/internal/awards"
	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/review"
)

func newTestEngine(f *fakeStore) *Engine {
	sched := review.NewScheduler(reviewRepoView{f})
	return NewEngine(f, f, sched, awards.NewService(f))
}

func startedState(plan *Plan) *State {
	return NewState(plan, "u1", progress.State{UserID: "u1"}, planNow)
}

func TestHandleAnswerCorrect(t *testing.T) {
	f := newFakeStore()
	q := question("q1", "Pharmacology")
	f.addQuestion(q)
	engine := newTestEngine(f)
	state := startedState(&Plan{Mode: ModePractice, Questions: []bank.Question{q}})

	res, err := engine.HandleAnswer(context.Background(), state, "A", review.ConfidenceHigh, planNow)
	if err != nil {
		t.Fatalf("handle answer: %v", err)
	}
	if !res.Correct {
		t.Error("A should be correct")
	}
	if res.Admitted {
		t.Error("confident correct answer should not be admitted to review")
	}
	if state.TotalCorrect != 1 || state.TotalQuestions != 1 {
		t.Errorf("counters = %d/%d", state.TotalCorrect, state.TotalQuestions)
	}
	if state.Progress.Points != progress.PointsPerCorrect {
		t.Errorf("points = %d", state.Progress.Points)
	}
	if len(f.answers) != 1 || !f.answers[0].Correct {
		t.Errorf("answer event = %+v", f.answers)
	}
	if len(f.snapshots) == 0 {
		t.Error("progress snapshot not saved")
	}
	// The very first correct answer unlocks first_correct.
	found := false
	for _, a := range res.NewAwards {
		if a.AchievementID == "first_correct" {
			found = true
		}
	}
	if !found {
		t.Errorf("awards = %+v, want first_correct", res.NewAwards)
	}
}

func TestHandleAnswerIncorrectAdmits(t *testing.T) {
	f := newFakeStore()
	q := question("q1", "Pharmacology")
	f.addQuestion(q)
	engine := newTestEngine(f)
	state := startedState(&Plan{Mode: ModePractice, Questions: []bank.Question{q}})

	res, err := engine.HandleAnswer(context.Background(), state, "B", review.ConfidenceHigh, planNow)
	if err != nil {
		t.Fatalf("handle answer: %v", err)
	}
	if res.Correct {
		t.Error("B should be wrong")
	}
	if !res.Admitted {
		t.Error("incorrect answer should be admitted to review")
	}
	if res.CorrectLabel != "A" {
		t.Errorf("correct label = %q", res.CorrectLabel)
	}

	entry := f.entries["u1/q1"]
	if entry == nil {
		t.Fatal("no review entry created")
	}
	if entry.Reason != string(review.ReasonIncorrect) {
		t.Errorf("reason = %q", entry.Reason)
	}
	if entry.IntervalDays != 1 || entry.EaseFactor != 2.5 || entry.ReviewCount != 0 {
		t.Errorf("fresh entry = %+v", entry)
	}
}

func TestHandleAnswerLowConfidenceAdmits(t *testing.T) {
	f := newFakeStore()
	q := question("q1", "Safety")
	f.addQuestion(q)
	engine := newTestEngine(f)
	state := startedState(&Plan{Mode: ModePractice, Questions: []bank.Question{q}})

	res, err := engine.HandleAnswer(context.Background(), state, "A", review.ConfidenceLow, planNow)
	if err != nil {
		t.Fatalf("handle answer: %v", err)
	}
	if !res.Correct || !res.Admitted {
		t.Errorf("result = %+v, want correct and admitted", res)
	}
	if f.entries["u1/q1"].Reason != string(review.ReasonLowConfidence) {
		t.Errorf("reason = %q", f.entries["u1/q1"].Reason)
	}
}

func TestHandleAnswerReviewModeReschedules(t *testing.T) {
	f := newFakeStore()
	q := question("q1", "Safety")
	f.addQuestion(q)
	engine := newTestEngine(f)

	sched := review.NewScheduler(reviewRepoView{f})
	if _, err := sched.Admit(context.Background(), "u1", "q1", review.ReasonIncorrect, planNow.Add(-24*time.Hour)); err != nil {
		t.Fatalf("admit: %v", err)
	}

	state := startedState(&Plan{Mode: ModeReview, Questions: []bank.Question{q}})
	if _, err := engine.HandleAnswer(context.Background(), state, "A", review.ConfidenceHigh, planNow); err != nil {
		t.Fatalf("handle answer: %v", err)
	}

	entry := f.entries["u1/q1"]
	if entry.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", entry.ReviewCount)
	}
	if entry.EaseFactor != 2.6 {
		t.Errorf("ease = %v, want 2.6 after confident correct review", entry.EaseFactor)
	}
}

func TestSessionLifecycle(t *testing.T) {
	f := newFakeStore()
	q1 := question("q1", "Pharmacology")
	q2 := question("q2", "Safety")
	f.addQuestion(q1)
	f.addQuestion(q2)
	engine := newTestEngine(f)

	state := startedState(&Plan{Mode: ModePractice, Questions: []bank.Question{q1, q2}})
	ctx := context.Background()

	if err := engine.Start(ctx, state); err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := engine.HandleAnswer(ctx, state, "A", review.ConfidenceHigh, planNow); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	state.Advance(planNow.Add(time.Minute))
	if _, err := engine.HandleAnswer(ctx, state, "C", review.ConfidenceMedium, planNow.Add(2*time.Minute)); err != nil {
		t.Fatalf("answer 2: %v", err)
	}
	state.Advance(planNow.Add(2 * time.Minute))

	if !state.Done() {
		t.Error("state should be done after both questions")
	}

	summary, err := engine.Finish(ctx, state, planNow.Add(3*time.Minute))
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if summary.TotalQuestions != 2 || summary.TotalCorrect != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", summary.Accuracy)
	}
	if summary.PointsEarned <= 0 {
		t.Errorf("points earned = %d", summary.PointsEarned)
	}
	if len(summary.CategoryResults) != 2 {
		t.Errorf("category results = %+v", summary.CategoryResults)
	}

	// Start and end session events recorded.
	if len(f.sessions) != 2 || f.sessions[0].Action != "start" || f.sessions[1].Action != "end" {
		t.Errorf("session events = %+v", f.sessions)
	}
	if f.sessions[1].QuestionsServed != 2 || f.sessions[1].CorrectAnswers != 1 {
		t.Errorf("end event = %+v", f.sessions[1])
	}
}

func TestHandleAnswerNoActiveQuestion(t *testing.T) {
	f := newFakeStore()
	engine := newTestEngine(f)
	state := startedState(&Plan{Mode: ModePractice})

	if _, err := engine.HandleAnswer(context.Background(), state, "A", review.ConfidenceHigh, planNow); err == nil {
		t.Error("expected error with empty plan")
	}
}
