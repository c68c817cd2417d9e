package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/review"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // serving questions
	PhaseFeedback              // showing answer feedback
	PhaseSummary               // showing the summary screen
)

// CategoryResult tracks per-category performance within one session.
type CategoryResult struct {
	Category  string
	Attempted int
	Correct   int
}

// State tracks the runtime state of an active session.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// UserID identifies whose session this is.
	UserID string

	// Plan is the question list built at start.
	Plan *Plan

	// Index is the position of the current question in the plan.
	Index int

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// PerCategory tracks per-category stats for the summary screen.
	PerCategory map[string]*CategoryResult

	// Progress is the user's gamification counters, updated live and saved
	// back at the boundary.
	Progress progress.State

	// StartPoints is the points balance when the session began, for the
	// points-earned figure on the summary screen.
	StartPoints int

	// StartTime is when the session began.
	StartTime time.Time

	// QuestionStartTime tracks when the current question was displayed.
	QuestionStartTime time.Time

	// Phase is the current session phase.
	Phase Phase

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// LastConfidence records the confidence given with the last answer.
	LastConfidence review.Confidence
}

// NewState creates a session state over the given plan.
func NewState(plan *Plan, userID string, prog progress.State, now time.Time) *State {
	return &State{
		SessionID:         uuid.NewString(),
		UserID:            userID,
		Plan:              plan,
		PerCategory:       make(map[string]*CategoryResult),
		Progress:          prog,
		StartPoints:       prog.Points,
		StartTime:         now,
		QuestionStartTime: now,
		Phase:             PhaseActive,
	}
}

// CurrentQuestion returns the question at the cursor, or nil when the plan
// is exhausted.
func (s *State) CurrentQuestion() *bank.Question {
	if s.Index >= len(s.Plan.Questions) {
		return nil
	}
	return &s.Plan.Questions[s.Index]
}

// Advance moves to the next question and restarts the question timer.
func (s *State) Advance(now time.Time) {
	s.Index++
	s.QuestionStartTime = now
	s.Phase = PhaseActive
}

// Done reports whether every planned question has been served.
func (s *State) Done() bool {
	return s.Index >= len(s.Plan.Questions)
}
