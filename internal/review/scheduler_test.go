package review

import (
	"context"
	"testing"
	"time"

	"github.com/meera/nclexprep/internal/store"
)

type fakeReviewRepo struct {
	entries map[string]*store.ReviewEntryRecord
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{entries: make(map[string]*store.ReviewEntryRecord)}
}

func key(userID, questionID string) string {
	return userID + "/" + questionID
}

func (f *fakeReviewRepo) Admit(_ context.Context, entry store.ReviewEntryRecord) (bool, error) {
	k := key(entry.UserID, entry.QuestionID)
	if _, ok := f.entries[k]; ok {
		return false, nil
	}
	e := entry
	f.entries[k] = &e
	return true, nil
}

func (f *fakeReviewRepo) Get(_ context.Context, userID, questionID string) (*store.ReviewEntryRecord, error) {
	e, ok := f.entries[key(userID, questionID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeReviewRepo) ListDue(_ context.Context, userID string, asOf time.Time) ([]store.DueItem, error) {
	var out []store.DueItem
	for _, e := range f.entries {
		if e.UserID == userID && !e.DueAt.After(asOf) {
			out = append(out, store.DueItem{Entry: *e})
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) CountDue(_ context.Context, userID string, asOf time.Time) (int, error) {
	items, _ := f.ListDue(context.Background(), userID, asOf)
	return len(items), nil
}

func (f *fakeReviewRepo) Update(_ context.Context, userID, questionID string, u store.ReviewUpdate) error {
	e, ok := f.entries[key(userID, questionID)]
	if !ok {
		return nil
	}
	e.DueAt = u.DueAt
	e.IntervalDays = u.IntervalDays
	e.EaseFactor = u.EaseFactor
	e.ReviewCount = u.ReviewCount
	return nil
}

func TestSchedulerAdmit(t *testing.T) {
	repo := newFakeReviewRepo()
	sched := NewScheduler(repo)
	ctx := context.Background()

	created, err := sched.Admit(ctx, "u1", "q1", ReasonIncorrect, testNow)
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if !created {
		t.Fatal("first admit should create an entry")
	}

	e, _ := repo.Get(ctx, "u1", "q1")
	if e.IntervalDays != 1 || e.EaseFactor != 2.5 || e.ReviewCount != 0 {
		t.Errorf("fresh entry = %+v, want interval 1, ease 2.5, count 0", e)
	}
	if !e.DueAt.Equal(testNow) {
		t.Errorf("fresh entry due at %v, want now", e.DueAt)
	}

	created, err = sched.Admit(ctx, "u1", "q1", ReasonLowConfidence, testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("re-admit: %v", err)
	}
	if created {
		t.Error("re-admit should be a no-op")
	}
	e, _ = repo.Get(ctx, "u1", "q1")
	if e.Reason != string(ReasonIncorrect) {
		t.Errorf("reason = %q, want original %q preserved", e.Reason, ReasonIncorrect)
	}
}

func TestSchedulerAdmitFromAnswer(t *testing.T) {
	repo := newFakeReviewRepo()
	sched := NewScheduler(repo)
	ctx := context.Background()

	created, err := sched.AdmitFromAnswer(ctx, "u1", "q1", true, ConfidenceHigh, testNow)
	if err != nil {
		t.Fatalf("admit from answer: %v", err)
	}
	if created {
		t.Error("confident correct answer should not admit")
	}

	created, _ = sched.AdmitFromAnswer(ctx, "u1", "q2", false, ConfidenceHigh, testNow)
	if !created {
		t.Error("incorrect answer should admit")
	}
	e, _ := repo.Get(ctx, "u1", "q2")
	if e.Reason != string(ReasonIncorrect) {
		t.Errorf("reason = %q, want %q", e.Reason, ReasonIncorrect)
	}

	created, _ = sched.AdmitFromAnswer(ctx, "u1", "q3", true, ConfidenceLow, testNow)
	if !created {
		t.Error("hesitant correct answer should admit")
	}
	e, _ = repo.Get(ctx, "u1", "q3")
	if e.Reason != string(ReasonLowConfidence) {
		t.Errorf("reason = %q, want %q", e.Reason, ReasonLowConfidence)
	}
}

func TestSchedulerRecordReview(t *testing.T) {
	repo := newFakeReviewRepo()
	sched := NewScheduler(repo)
	ctx := context.Background()

	if _, err := sched.Admit(ctx, "u1", "q1", ReasonIncorrect, testNow); err != nil {
		t.Fatalf("admit: %v", err)
	}

	e, err := sched.RecordReview(ctx, "u1", "q1", true, ConfidenceHigh, testNow)
	if err != nil {
		t.Fatalf("record review: %v", err)
	}
	if e == nil {
		t.Fatal("expected updated entry")
	}
	if e.IntervalDays != 1 || e.EaseFactor != 2.6 || e.ReviewCount != 1 {
		t.Errorf("entry = %+v, want interval 1, ease 2.6, count 1", e)
	}

	e, err = sched.RecordReview(ctx, "u1", "q1", false, ConfidenceNone, testNow)
	if err != nil {
		t.Fatalf("record review: %v", err)
	}
	if e.IntervalDays != 1 || e.EaseFactor != 2.4 || e.ReviewCount != 2 {
		t.Errorf("entry = %+v, want interval 1, ease 2.4, count 2", e)
	}

	stored, _ := repo.Get(ctx, "u1", "q1")
	if stored.EaseFactor != 2.4 || stored.ReviewCount != 2 {
		t.Errorf("persisted entry = %+v, want ease 2.4, count 2", stored)
	}
}

func TestSchedulerRecordReviewMissingEntry(t *testing.T) {
	sched := NewScheduler(newFakeReviewRepo())

	e, err := sched.RecordReview(context.Background(), "u1", "never-admitted", true, ConfidenceHigh, testNow)
	if err != nil {
		t.Fatalf("record review on absent entry: %v", err)
	}
	if e != nil {
		t.Errorf("entry = %+v, want nil no-op", e)
	}
}

func TestSchedulerDueCounts(t *testing.T) {
	repo := newFakeReviewRepo()
	sched := NewScheduler(repo)
	ctx := context.Background()

	sched.Admit(ctx, "u1", "q1", ReasonIncorrect, testNow)
	sched.Admit(ctx, "u1", "q2", ReasonIncorrect, testNow)
	sched.Admit(ctx, "u2", "q1", ReasonIncorrect, testNow)

	// Push q2 a day out.
	if _, err := sched.RecordReview(ctx, "u1", "q2", true, ConfidenceMedium, testNow); err != nil {
		t.Fatalf("record review: %v", err)
	}

	n, err := sched.CountDue(ctx, "u1", testNow)
	if err != nil {
		t.Fatalf("count due: %v", err)
	}
	if n != 1 {
		t.Errorf("due now = %d, want 1", n)
	}

	n, _ = sched.CountDue(ctx, "u1", testNow.AddDate(0, 0, 1))
	if n != 2 {
		t.Errorf("due tomorrow = %d, want 2", n)
	}

	items, err := sched.DueItems(ctx, "u1", testNow)
	if err != nil {
		t.Fatalf("due items: %v", err)
	}
	if len(items) != 1 || items[0].Entry.QuestionID != "q1" {
		t.Errorf("due items = %+v, want just q1", items)
	}
}
