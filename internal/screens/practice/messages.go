package practice

import (
	"github.com/meera/nclexprep/internal/entitlement"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/tutor"
)

// planReadyMsg carries the result of building the session plan.
type planReadyMsg struct {
	State  *session.State
	Status entitlement.Status
	Err    error
}

// answerRecordedMsg carries the result of processing one answer.
type answerRecordedMsg struct {
	Result *session.AnswerResult
	Err    error
}

// tutorReadyMsg carries an on-demand tutor explanation.
type tutorReadyMsg struct {
	Explanation *tutor.Explanation
	Err         error
}

// finishedMsg carries the completed session summary.
type finishedMsg struct {
	Summary *session.Summary
	Err     error
}
