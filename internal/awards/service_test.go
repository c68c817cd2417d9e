package awards

import (
	"context"
	"testing"
	"time"

	"github.com/meera/nclexprep/internal/adaptive"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/store"
)

// mockEventRepo implements store.EventRepo for award tests.
type mockEventRepo struct {
	awardEvents []store.AwardEventData
	earned      map[string]bool
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAnswerEvents(_ context.Context, _ string, _ store.QueryOpts) ([]store.AnswerEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) CountAnswersSince(_ context.Context, _ string, _ time.Time) (int, error) {
	return 0, nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ string, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAwardEvent(_ context.Context, data store.AwardEventData) error {
	m.awardEvents = append(m.awardEvents, data)
	if data.AchievementID != "" {
		if m.earned == nil {
			m.earned = make(map[string]bool)
		}
		m.earned[data.AchievementID] = true
	}
	return nil
}
func (m *mockEventRepo) QueryAwardEvents(_ context.Context, _ string, _ store.QueryOpts) ([]store.AwardEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) EarnedAchievements(_ context.Context, _ string) (map[string]bool, error) {
	return m.earned, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func TestEvaluateGrantsNewAchievements(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	stats := Stats{Progress: progress.State{TotalAnswered: 1, TotalCorrect: 1, BestStreak: 1}}
	granted, err := svc.Evaluate(ctx, "u1", "s1", stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(granted) != 1 || granted[0].AchievementID != "first_correct" {
		t.Fatalf("granted = %+v, want just first_correct", granted)
	}
	if granted[0].Tier != TierBronze {
		t.Errorf("tier = %s, want bronze", granted[0].Tier)
	}
	if len(repo.awardEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.awardEvents))
	}
	if repo.awardEvents[0].AwardType != TypeAchievement {
		t.Errorf("award type = %q, want %q", repo.awardEvents[0].AwardType, TypeAchievement)
	}
}

func TestEvaluateDoesNotRegrant(t *testing.T) {
	repo := &mockEventRepo{earned: map[string]bool{"first_correct": true}}
	svc := NewService(repo)

	stats := Stats{Progress: progress.State{TotalAnswered: 3, TotalCorrect: 2, BestStreak: 2}}
	granted, err := svc.Evaluate(context.Background(), "u1", "s1", stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(granted) != 0 {
		t.Errorf("granted = %+v, want none", granted)
	}
}

func TestEvaluateMultipleUnlocks(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)

	stats := Stats{
		Progress: progress.State{TotalAnswered: 100, TotalCorrect: 85, BestStreak: 10, DailyStreak: 7},
		CategoryStats: []adaptive.CategoryStat{
			{Category: "Pharmacology", Correct: 10, Total: 10},
		},
	}
	granted, err := svc.Evaluate(context.Background(), "u1", "s1", stats)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	want := map[string]bool{
		"first_correct": true, "streak_5": true, "streak_10": true,
		"century_club": true, "dedicated_week": true,
		"category_master": true, "sharp_shooter": true,
	}
	got := make(map[string]bool)
	for _, a := range granted {
		got[a.AchievementID] = true
	}
	for id := range want {
		if !got[id] {
			t.Errorf("missing grant %s", id)
		}
	}
	if got["streak_25"] || got["review_devotee"] {
		t.Errorf("unexpected grants in %v", got)
	}
	if len(svc.SessionAwards) != len(granted) {
		t.Errorf("session awards = %d, want %d", len(svc.SessionAwards), len(granted))
	}
}

func TestRecordStreakMilestone(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)

	award, err := svc.RecordStreakMilestone(context.Background(), "u1", "s1", progress.Milestone{Streak: 10, Points: 25})
	if err != nil {
		t.Fatalf("record streak milestone: %v", err)
	}
	if award.Type != TypeStreak || award.Tier != TierSilver || award.Points != 25 {
		t.Errorf("award = %+v, want streak/silver/25", award)
	}
	if len(repo.awardEvents) != 1 || repo.awardEvents[0].AwardType != TypeStreak {
		t.Errorf("persisted = %+v", repo.awardEvents)
	}
}

func TestResetSession(t *testing.T) {
	svc := NewService(&mockEventRepo{})
	svc.SessionAwards = []Award{{Type: TypeStreak}}
	svc.ResetSession()
	if len(svc.SessionAwards) != 0 {
		t.Error("session awards not cleared")
	}
}

func TestStreakTier(t *testing.T) {
	cases := []struct {
		length int
		want   Tier
	}{
		{5, TierBronze}, {10, TierSilver}, {15, TierGold}, {20, TierGold}, {25, TierPlatinum},
	}
	for _, tc := range cases {
		if got := StreakTier(tc.length); got != tc.want {
			t.Errorf("StreakTier(%d) = %s, want %s", tc.length, got, tc.want)
		}
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %s", a.ID)
		}
		seen[a.ID] = true
		if a.Qualifies == nil {
			t.Errorf("achievement %s has no condition", a.ID)
		}
	}
}
