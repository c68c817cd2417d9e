// Package entitlement gates practice volume behind the subscription plan.
// Payment itself happens elsewhere; this package only reflects the resulting
// entitlement via an offline license key check and a daily answer quota.
package entitlement

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/meera/nclexprep/internal/store"
)

// Plan is the user's subscription level.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// FreeDailyQuota is how many questions a free user may answer per calendar day.
const FreeDailyQuota = 20

// LicenseEnvVar holds the premium license key.
const LicenseEnvVar = "NCLEXPREP_LICENSE"

// licensePattern is the offline key format: NP- followed by 16 hex chars.
var licensePattern = regexp.MustCompile(`^NP-[0-9a-fA-F]{16}$`)

// ValidLicense reports whether the key has the premium license format.
func ValidLicense(key string) bool {
	return licensePattern.MatchString(key)
}

// CurrentPlan resolves the plan from the environment.
func CurrentPlan() Plan {
	if ValidLicense(os.Getenv(LicenseEnvVar)) {
		return PlanPremium
	}
	return PlanFree
}

// Status describes what the user can do right now.
type Status struct {
	Plan      Plan
	Used      int // answers today; only tracked for free plan
	Remaining int // -1 means unlimited
}

// Allowed reports whether the user may answer another question.
func (s Status) Allowed() bool {
	return s.Remaining != 0
}

// Gate checks the daily quota against the answer event log.
type Gate struct {
	eventRepo store.EventRepo
	plan      Plan
}

// NewGate creates a gate for the given plan.
func NewGate(eventRepo store.EventRepo, plan Plan) *Gate {
	return &Gate{eventRepo: eventRepo, plan: plan}
}

// Check returns the user's current entitlement status. Premium users are
// always unlimited; free users are capped at FreeDailyQuota answers counted
// from local midnight.
func (g *Gate) Check(ctx context.Context, userID string, now time.Time) (Status, error) {
	if g.plan == PlanPremium {
		return Status{Plan: PlanPremium, Remaining: -1}, nil
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	used, err := g.eventRepo.CountAnswersSince(ctx, userID, midnight)
	if err != nil {
		return Status{}, fmt.Errorf("count today's answers: %w", err)
	}

	remaining := FreeDailyQuota - used
	if remaining < 0 {
		remaining = 0
	}
	return Status{Plan: PlanFree, Used: used, Remaining: remaining}, nil
}
