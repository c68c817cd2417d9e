package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/meera/nclexprep/internal/store"
)

type countingEventRepo struct {
	store.EventRepo
	count int
	since time.Time
}

func (c *countingEventRepo) CountAnswersSince(_ context.Context, _ string, since time.Time) (int, error) {
	c.since = since
	return c.count, nil
}

func TestValidLicense(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"NP-0123456789abcdef", true},
		{"NP-ABCDEF0123456789", true},
		{"", false},
		{"NP-0123", false},
		{"NP-0123456789abcdeg", false},
		{"XX-0123456789abcdef", false},
		{"NP-0123456789abcdef0", false},
	}
	for _, tc := range cases {
		if got := ValidLicense(tc.key); got != tc.want {
			t.Errorf("ValidLicense(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestCurrentPlan(t *testing.T) {
	t.Setenv(LicenseEnvVar, "NP-0123456789abcdef")
	if CurrentPlan() != PlanPremium {
		t.Error("valid license should give premium")
	}

	t.Setenv(LicenseEnvVar, "bogus")
	if CurrentPlan() != PlanFree {
		t.Error("invalid license should give free")
	}
}

func TestGatePremiumUnlimited(t *testing.T) {
	g := NewGate(&countingEventRepo{count: 1000}, PlanPremium)
	status, err := g.Check(context.Background(), "u1", time.Now())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Remaining != -1 || !status.Allowed() {
		t.Errorf("status = %+v, want unlimited", status)
	}
}

func TestGateFreeQuota(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)

	repo := &countingEventRepo{count: 5}
	g := NewGate(repo, PlanFree)

	status, err := g.Check(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Used != 5 || status.Remaining != FreeDailyQuota-5 {
		t.Errorf("status = %+v", status)
	}
	if !status.Allowed() {
		t.Error("under quota should be allowed")
	}

	wantMidnight := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	if !repo.since.Equal(wantMidnight) {
		t.Errorf("counted since %v, want local midnight %v", repo.since, wantMidnight)
	}
}

func TestGateFreeExhausted(t *testing.T) {
	g := NewGate(&countingEventRepo{count: FreeDailyQuota}, PlanFree)
	status, err := g.Check(context.Background(), "u1", time.Now())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Remaining != 0 || status.Allowed() {
		t.Errorf("status = %+v, want exhausted", status)
	}

	// Over quota clamps at zero rather than going negative.
	g = NewGate(&countingEventRepo{count: FreeDailyQuota + 3}, PlanFree)
	status, _ = g.Check(context.Background(), "u1", time.Now())
	if status.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", status.Remaining)
	}
}
