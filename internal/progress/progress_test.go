package progress

import (
	"context"
	"testing"
	"time"

	"github.com/meera/nclexprep/internal/store"
)

var day1 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestApplyCorrect(t *testing.T) {
	s, milestones := Apply(State{UserID: "u1"}, true, day1)
	if s.Points != PointsPerCorrect {
		t.Errorf("points = %d, want %d", s.Points, PointsPerCorrect)
	}
	if s.AnswerStreak != 1 || s.BestStreak != 1 {
		t.Errorf("streaks = %d/%d, want 1/1", s.AnswerStreak, s.BestStreak)
	}
	if s.TotalAnswered != 1 || s.TotalCorrect != 1 {
		t.Errorf("totals = %d/%d, want 1/1", s.TotalAnswered, s.TotalCorrect)
	}
	if len(milestones) != 0 {
		t.Errorf("milestones = %v, want none", milestones)
	}
}

func TestApplyIncorrectBreaksStreak(t *testing.T) {
	s := State{UserID: "u1", AnswerStreak: 4, BestStreak: 4, Points: 40, TotalAnswered: 4, TotalCorrect: 4}
	s, _ = Apply(s, false, day1)
	if s.AnswerStreak != 0 {
		t.Errorf("streak = %d, want 0", s.AnswerStreak)
	}
	if s.BestStreak != 4 {
		t.Errorf("best streak = %d, want preserved 4", s.BestStreak)
	}
	if s.Points != 40 {
		t.Errorf("points = %d, want unchanged 40", s.Points)
	}
	if s.TotalAnswered != 5 || s.TotalCorrect != 4 {
		t.Errorf("totals = %d/%d, want 5/4", s.TotalAnswered, s.TotalCorrect)
	}
}

func TestApplyStreakMilestone(t *testing.T) {
	s := State{UserID: "u1", AnswerStreak: 4, BestStreak: 4}
	s, milestones := Apply(s, true, day1)
	if len(milestones) != 1 || milestones[0].Streak != 5 {
		t.Fatalf("milestones = %v, want streak 5", milestones)
	}
	if s.Points != PointsPerCorrect+PointsPerMilestone {
		t.Errorf("points = %d, want %d", s.Points, PointsPerCorrect+PointsPerMilestone)
	}
}

func TestDailyStreak(t *testing.T) {
	s := State{UserID: "u1"}

	s, _ = Apply(s, true, day1)
	if s.DailyStreak != 1 || s.LastStudyDay != "2025-03-10" {
		t.Fatalf("first study day: streak %d, day %q", s.DailyStreak, s.LastStudyDay)
	}

	// Same day does not extend.
	s, _ = Apply(s, true, day1.Add(3*time.Hour))
	if s.DailyStreak != 1 {
		t.Errorf("same-day streak = %d, want 1", s.DailyStreak)
	}

	// Next day extends.
	s, _ = Apply(s, false, day1.AddDate(0, 0, 1))
	if s.DailyStreak != 2 {
		t.Errorf("next-day streak = %d, want 2", s.DailyStreak)
	}

	// A skipped day resets.
	s, _ = Apply(s, true, day1.AddDate(0, 0, 3))
	if s.DailyStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", s.DailyStreak)
	}
}

func TestNextStreakMilestone(t *testing.T) {
	cases := []struct{ current, want int }{
		{0, 5}, {3, 5}, {5, 10}, {7, 10}, {10, 15}, {22, 25}, {25, 30},
	}
	for _, tc := range cases {
		if got := NextStreakMilestone(tc.current); got != tc.want {
			t.Errorf("NextStreakMilestone(%d) = %d, want %d", tc.current, got, tc.want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	if got := (State{}).Accuracy(); got != 0 {
		t.Errorf("fresh accuracy = %v, want 0", got)
	}
	s := State{TotalAnswered: 4, TotalCorrect: 3}
	if got := s.Accuracy(); got != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", got)
	}
}

type fakeSnapshotRepo struct {
	saved  []*store.Snapshot
	pruned int
}

func (f *fakeSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshotRepo) Prune(_ context.Context, keep int) error {
	f.pruned = keep
	return nil
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	ctx := context.Background()

	orig := State{
		UserID:        "u1",
		Points:        135,
		AnswerStreak:  3,
		BestStreak:    8,
		DailyStreak:   4,
		LastStudyDay:  "2025-03-10",
		TotalAnswered: 20,
		TotalCorrect:  13,
	}
	if err := Save(ctx, repo, orig); err != nil {
		t.Fatalf("save: %v", err)
	}
	if repo.pruned == 0 {
		t.Error("save should prune old snapshots")
	}

	got, err := Load(ctx, repo, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != orig {
		t.Errorf("loaded = %+v, want %+v", got, orig)
	}
}

func TestLoadFresh(t *testing.T) {
	got, err := Load(context.Background(), &fakeSnapshotRepo{}, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.UserID != "u1" || got.Points != 0 {
		t.Errorf("fresh state = %+v", got)
	}
}

func TestLoadOtherUserSnapshotIgnored(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	ctx := context.Background()
	if err := Save(ctx, repo, State{UserID: "u1", Points: 50}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(ctx, repo, "u2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.UserID != "u2" || got.Points != 0 {
		t.Errorf("state = %+v, want fresh u2", got)
	}
}
