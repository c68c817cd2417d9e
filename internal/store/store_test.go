package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleQuestion(qid, category string) QuestionRecord {
	return QuestionRecord{
		QID:  qid,
		Stem: "A client with heart failure is prescribed furosemide. Which lab value should the nurse monitor?",
		Options: []OptionData{
			{Label: "A", Text: "Serum potassium"},
			{Label: "B", Text: "Serum calcium"},
			{Label: "C", Text: "Blood glucose"},
			{Label: "D", Text: "Serum albumin"},
		},
		CorrectLabel: "A",
		Rationale:    "Loop diuretics cause potassium wasting.",
		Category:     category,
		ExamCategory: "Pharmacological and Parenteral Therapies",
		Difficulty:   "medium",
		Active:       true,
		Source:       "imported",
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionUpsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := sampleQuestion("q-1", "Pharmacology")
	if err := repo.Upsert(ctx, q); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Upsert again with changed content replaces, not duplicates.
	q.Stem = "Updated stem"
	if err := repo.Upsert(ctx, q); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Stem != "Updated stem" {
		t.Errorf("stem = %q, want updated stem", got[0].Stem)
	}
	if len(got[0].Options) != 4 {
		t.Errorf("options = %d, want 4", len(got[0].Options))
	}
}

func TestQuestionListActiveOnly(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	active := sampleQuestion("q-active", "Pharmacology")
	inactive := sampleQuestion("q-inactive", "Pharmacology")
	inactive.Active = false

	if err := repo.Upsert(ctx, active); err != nil {
		t.Fatal(err)
	}
	if err := repo.Upsert(ctx, inactive); err != nil {
		t.Fatal(err)
	}

	got, err := repo.List(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].QID != "q-active" {
		t.Errorf("active-only list = %v, want only q-active", got)
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("full list = %d, want 2", len(all))
	}
}

func TestAnswerEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{UserID: "u1", QuestionID: "q-1", SelectedLabel: "A", Correct: true, Category: "Pharmacology"},
		{UserID: "u1", QuestionID: "q-2", SelectedLabel: "C", Correct: false, Confidence: "low", Category: "Safety"},
		{UserID: "u2", QuestionID: "q-1", SelectedLabel: "B", Correct: false, Category: "Pharmacology"},
	}
	for _, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryAnswerEvents(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (u2's event must be excluded)", len(got))
	}
	if got[0].QuestionID != "q-1" || got[1].QuestionID != "q-2" {
		t.Errorf("expected oldest-first ordering, got %v", got)
	}
	if got[1].Confidence != "low" {
		t.Errorf("confidence = %q, want low", got[1].Confidence)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", got[0].Sequence, got[1].Sequence)
	}
}

func TestCountAnswersSince(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		UserID: "u1", QuestionID: "q-1", SelectedLabel: "A", Correct: true, Category: "Safety",
	}); err != nil {
		t.Fatal(err)
	}

	n, err := repo.CountAnswersSince(ctx, "u1", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}

	n, err = repo.CountAnswersSince(ctx, "u1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0 for future cutoff", n)
	}
}

func TestReviewAdmitIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	entry := ReviewEntryRecord{
		UserID:       "u1",
		QuestionID:   "q-1",
		Reason:       "incorrect",
		DueAt:        now,
		IntervalDays: 1,
		EaseFactor:   2.5,
		ReviewCount:  0,
	}

	created, err := repo.Admit(ctx, entry)
	if err != nil {
		t.Fatalf("first admit: %v", err)
	}
	if !created {
		t.Fatal("first admit should create a row")
	}

	// Second admission for the same pair is a no-op.
	entry.Reason = "low_confidence"
	created, err = repo.Admit(ctx, entry)
	if err != nil {
		t.Fatalf("second admit: %v", err)
	}
	if created {
		t.Error("second admit should not create a row")
	}

	got, err := repo.Get(ctx, "u1", "q-1")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected entry")
	}
	if got.Reason != "incorrect" {
		t.Errorf("reason = %q, want original reason preserved", got.Reason)
	}

	// Same question for a different user is a separate row.
	entry.UserID = "u2"
	created, err = repo.Admit(ctx, entry)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("admit for a different user should create a row")
	}
}

func TestReviewListDueOrderAndJoin(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.QuestionRepo().Upsert(ctx, sampleQuestion("q-old", "Safety")); err != nil {
		t.Fatal(err)
	}
	if err := s.QuestionRepo().Upsert(ctx, sampleQuestion("q-new", "Safety")); err != nil {
		t.Fatal(err)
	}

	repo := s.ReviewRepo()
	for qid, due := range map[string]time.Time{
		"q-old":    now.Add(-48 * time.Hour),
		"q-new":    now.Add(-1 * time.Hour),
		"q-future": now.Add(24 * time.Hour),
	} {
		_, err := repo.Admit(ctx, ReviewEntryRecord{
			UserID: "u1", QuestionID: qid, Reason: "incorrect",
			DueAt: due, IntervalDays: 1, EaseFactor: 2.5,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	items, err := repo.ListDue(ctx, "u1", now)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("due = %d, want 2 (future entry excluded)", len(items))
	}
	if items[0].Entry.QuestionID != "q-old" {
		t.Errorf("first due = %s, want oldest-due first", items[0].Entry.QuestionID)
	}
	if items[0].Question == nil || items[0].Question.QID != "q-old" {
		t.Error("expected joined question on due item")
	}

	n, err := repo.CountDue(ctx, "u1", now)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("CountDue = %d, want 2", n)
	}
}

func TestReviewUpdatePersistsAllFields(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := repo.Admit(ctx, ReviewEntryRecord{
		UserID: "u1", QuestionID: "q-1", Reason: "incorrect",
		DueAt: now, IntervalDays: 1, EaseFactor: 2.5,
	})
	if err != nil {
		t.Fatal(err)
	}

	due := now.AddDate(0, 0, 6)
	err = repo.Update(ctx, "u1", "q-1", ReviewUpdate{
		DueAt: due, IntervalDays: 6, EaseFactor: 2.6, ReviewCount: 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, "u1", "q-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.IntervalDays != 6 || got.ReviewCount != 2 {
		t.Errorf("got interval=%d count=%d, want 6 and 2", got.IntervalDays, got.ReviewCount)
	}
	if got.EaseFactor < 2.59 || got.EaseFactor > 2.61 {
		t.Errorf("ease = %v, want 2.6", got.EaseFactor)
	}
	if !got.DueAt.Equal(due) {
		t.Errorf("due = %v, want %v", got.DueAt, due)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot in empty store")
	}

	want := &Snapshot{
		Sequence:  7,
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Data: SnapshotData{
			Version: 1,
			Progress: &ProgressSnapshotData{
				UserID:        "u1",
				Points:        120,
				AnswerStreak:  3,
				BestStreak:    8,
				DailyStreak:   4,
				LastStudyDay:  "2026-08-30",
				TotalAnswered: 42,
				TotalCorrect:  30,
			},
		},
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot")
	}
	if got.Sequence != 7 {
		t.Errorf("sequence = %d, want 7", got.Sequence)
	}
	if got.Data.Progress == nil || got.Data.Progress.Points != 120 {
		t.Errorf("progress not round-tripped: %+v", got.Data.Progress)
	}
}

func TestAwardEventsAndEarnedSet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	awards := []AwardEventData{
		{UserID: "u1", AwardType: "achievement", AchievementID: "first_correct", Tier: "bronze", Points: 10, Reason: "First correct answer"},
		{UserID: "u1", AwardType: "streak", Tier: "silver", Points: 25, Reason: "5 correct in a row"},
	}
	for _, a := range awards {
		if err := repo.AppendAwardEvent(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	earned, err := repo.EarnedAchievements(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !earned["first_correct"] {
		t.Error("expected first_correct in earned set")
	}
	if len(earned) != 1 {
		t.Errorf("earned = %v, want only achievement rows", earned)
	}

	recs, err := repo.QueryAwardEvents(ctx, "u1", QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("awards = %d, want 2", len(recs))
	}
	// Newest first.
	if recs[0].AwardType != "streak" {
		t.Errorf("first award = %s, want streak (newest first)", recs[0].AwardType)
	}
}
