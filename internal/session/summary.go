package session

import (
	"sort"
	"time"

	"github.com/meera/nclexprep/internal/awards"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Mode            Mode
	FocusCategory   string
	Duration        time.Duration
	TotalQuestions  int
	TotalCorrect    int
	Accuracy        float64
	CategoryResults []CategoryResult
	PointsEarned    int
	Awards          []awards.Award
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State, now time.Time) *Summary {
	results := make([]CategoryResult, 0, len(state.PerCategory))
	for _, cr := range state.PerCategory {
		results = append(results, *cr)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Category < results[j].Category })

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &Summary{
		Mode:            state.Plan.Mode,
		FocusCategory:   state.Plan.FocusCategory,
		Duration:        now.Sub(state.StartTime),
		TotalQuestions:  state.TotalQuestions,
		TotalCorrect:    state.TotalCorrect,
		Accuracy:        accuracy,
		CategoryResults: results,
	}
}
