package session

import "github.com/meera/nclexprep/internal/bank"

// Mode selects how questions are chosen for a session.
type Mode string

const (
	// ModePractice serves the adaptively ranked pool.
	ModePractice Mode = "practice"

	// ModeFocused restricts practice to the user's weakest category.
	ModeFocused Mode = "focused"

	// ModeReview serves due spaced-repetition items.
	ModeReview Mode = "review"
)

// DefaultSessionLength is the standard number of questions per session.
const DefaultSessionLength = 10

// DefaultUserID identifies the single local profile.
const DefaultUserID = "local"

// Plan is the ordered question list for one session.
type Plan struct {
	Mode      Mode
	Questions []bank.Question

	// FocusCategory is set in focused mode: the weakest category the plan
	// targets. Empty when no category qualified and the plan fell back to
	// general ranking.
	FocusCategory string

	// NoWeakCategory is set in focused mode when no category had enough
	// data and low enough accuracy to focus on. The plan falls back to
	// general ranking and the UI tells the user so.
	NoWeakCategory bool
}
