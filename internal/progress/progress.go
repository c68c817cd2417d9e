// Package progress holds the user's gamification counters as an explicit
// value passed through pure update functions. Nothing here touches storage;
// the app boundary loads the state from a snapshot and saves it back after
// each update.
package progress

import "time"

// Points awarded per outcome.
const (
	PointsPerCorrect   = 10
	PointsPerMilestone = 25
)

// State is the user's progress counters. The zero value is a fresh user.
type State struct {
	UserID        string `json:"user_id"`
	Points        int    `json:"points"`
	AnswerStreak  int    `json:"answer_streak"`
	BestStreak    int    `json:"best_streak"`
	DailyStreak   int    `json:"daily_streak"`
	LastStudyDay  string `json:"last_study_day"` // YYYY-MM-DD, empty for never
	TotalAnswered int    `json:"total_answered"`
	TotalCorrect  int    `json:"total_correct"`
}

// Milestone marks a streak threshold crossed by a single update.
type Milestone struct {
	Streak int
	Points int
}

// Accuracy returns the user's lifetime accuracy in [0, 1].
func (s State) Accuracy() float64 {
	if s.TotalAnswered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalAnswered)
}

// DayKey formats a time as the calendar-day key used for daily streaks.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Apply folds one answer outcome into the state and returns the new state
// plus any streak milestone reached. The input state is not mutated.
func Apply(s State, correct bool, now time.Time) (State, []Milestone) {
	s.TotalAnswered++
	s = touchDay(s, now)

	if !correct {
		s.AnswerStreak = 0
		return s, nil
	}

	s.TotalCorrect++
	s.AnswerStreak++
	s.Points += PointsPerCorrect
	if s.AnswerStreak > s.BestStreak {
		s.BestStreak = s.AnswerStreak
	}

	var milestones []Milestone
	if isStreakMilestone(s.AnswerStreak) {
		s.Points += PointsPerMilestone
		milestones = append(milestones, Milestone{Streak: s.AnswerStreak, Points: PointsPerMilestone})
	}
	return s, milestones
}

// touchDay advances the daily study streak: same day keeps it, the next
// calendar day extends it, any gap resets it to 1.
func touchDay(s State, now time.Time) State {
	today := DayKey(now)
	switch s.LastStudyDay {
	case today:
		return s
	case DayKey(now.AddDate(0, 0, -1)):
		s.DailyStreak++
	default:
		s.DailyStreak = 1
	}
	s.LastStudyDay = today
	return s
}

// streak milestones: 5, 10, 15, 20, then every 5
func isStreakMilestone(streak int) bool {
	return streak >= 5 && streak%5 == 0
}

// NextStreakMilestone returns the next streak length that awards bonus
// points, strictly above the current streak.
func NextStreakMilestone(current int) int {
	if current < 5 {
		return 5
	}
	return ((current / 5) + 1) * 5
}
