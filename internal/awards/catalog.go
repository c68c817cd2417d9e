package awards

import (
	"github.com/meera/nclexprep/internal/adaptive"
	"github.com/meera/nclexprep/internal/progress"
)

// Stats is everything the catalog conditions are judged against.
type Stats struct {
	Progress      progress.State
	ReviewCount   int // completed review re-attempts
	CategoryStats []adaptive.CategoryStat
}

// Achievement is a one-time unlock with a qualification condition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Points      int
	Qualifies   func(Stats) bool
}

// Catalog returns all achievements in display order.
func Catalog() []Achievement {
	return []Achievement{
		{
			ID:          "first_correct",
			Name:        "First Steps",
			Description: "Answer your first question correctly",
			Tier:        TierBronze,
			Points:      10,
			Qualifies:   func(s Stats) bool { return s.Progress.TotalCorrect >= 1 },
		},
		{
			ID:          "streak_5",
			Name:        "Warming Up",
			Description: "Answer 5 questions correctly in a row",
			Tier:        TierBronze,
			Points:      25,
			Qualifies:   func(s Stats) bool { return s.Progress.BestStreak >= 5 },
		},
		{
			ID:          "streak_10",
			Name:        "On Fire",
			Description: "Answer 10 questions correctly in a row",
			Tier:        TierSilver,
			Points:      50,
			Qualifies:   func(s Stats) bool { return s.Progress.BestStreak >= 10 },
		},
		{
			ID:          "streak_25",
			Name:        "Unstoppable",
			Description: "Answer 25 questions correctly in a row",
			Tier:        TierPlatinum,
			Points:      150,
			Qualifies:   func(s Stats) bool { return s.Progress.BestStreak >= 25 },
		},
		{
			ID:          "century_club",
			Name:        "Century Club",
			Description: "Answer 100 questions",
			Tier:        TierGold,
			Points:      100,
			Qualifies:   func(s Stats) bool { return s.Progress.TotalAnswered >= 100 },
		},
		{
			ID:          "dedicated_week",
			Name:        "Dedicated Week",
			Description: "Study 7 days in a row",
			Tier:        TierGold,
			Points:      75,
			Qualifies:   func(s Stats) bool { return s.Progress.DailyStreak >= 7 },
		},
		{
			ID:          "category_master",
			Name:        "Category Master",
			Description: "Reach 90% accuracy in a category with 10+ attempts",
			Tier:        TierGold,
			Points:      100,
			Qualifies: func(s Stats) bool {
				for _, cs := range s.CategoryStats {
					if cs.Total >= 10 && cs.Accuracy() >= 0.9 {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          "sharp_shooter",
			Name:        "Sharp Shooter",
			Description: "Hold 80% lifetime accuracy over 50+ questions",
			Tier:        TierPlatinum,
			Points:      150,
			Qualifies: func(s Stats) bool {
				return s.Progress.TotalAnswered >= 50 && s.Progress.Accuracy() >= 0.8
			},
		},
		{
			ID:          "review_devotee",
			Name:        "Review Devotee",
			Description: "Complete 25 review re-attempts",
			Tier:        TierSilver,
			Points:      50,
			Qualifies:   func(s Stats) bool { return s.ReviewCount >= 25 },
		},
	}
}
