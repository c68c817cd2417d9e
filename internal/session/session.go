package session

import (
	"context"
	"fmt"
	"time"

	"github.com/meera/nclexprep/internal/adaptive"
	"github.com/meera/nclexprep/internal/awards"
	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/review"
	"github.com/meera/nclexprep/internal/store"
)

// Engine drives a session: it records answers, feeds the review queue,
// updates progress, and grants awards.
type Engine struct {
	events    store.EventRepo
	snapshots store.SnapshotRepo
	scheduler *review.Scheduler
	awards    *awards.Service
}

// NewEngine creates a session engine over the given collaborators.
func NewEngine(events store.EventRepo, snapshots store.SnapshotRepo, scheduler *review.Scheduler, awardsSvc *awards.Service) *Engine {
	return &Engine{events: events, snapshots: snapshots, scheduler: scheduler, awards: awardsSvc}
}

// AnswerResult is everything the feedback screen needs after one answer.
type AnswerResult struct {
	Correct      bool
	CorrectLabel string
	Rationale    string

	// Admitted is true when the answer put the question on the review queue.
	Admitted bool

	// Milestones are streak thresholds crossed by this answer.
	Milestones []progress.Milestone

	// NewAwards are achievements unlocked by this answer.
	NewAwards []awards.Award
}

// Start records the session start event.
func (e *Engine) Start(ctx context.Context, state *State) error {
	e.awards.ResetSession()
	err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		UserID:    state.UserID,
		SessionID: state.SessionID,
		Action:    "start",
		Mode:      string(state.Plan.Mode),
	})
	if err != nil {
		return fmt.Errorf("record session start: %w", err)
	}
	return nil
}

// HandleAnswer processes one answer end to end: grades it, appends the
// answer event, feeds the review queue, folds the outcome into progress,
// persists the snapshot, and evaluates awards. The state is updated in
// place; the caller advances to the next question after showing feedback.
func (e *Engine) HandleAnswer(ctx context.Context, state *State, selectedLabel string, conf review.Confidence, now time.Time) (*AnswerResult, error) {
	q := state.CurrentQuestion()
	if q == nil {
		return nil, fmt.Errorf("no active question")
	}

	correct := q.IsCorrect(selectedLabel)
	timeMs := int(now.Sub(state.QuestionStartTime).Milliseconds())

	err := e.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		UserID:        state.UserID,
		QuestionID:    q.ID,
		SessionID:     state.SessionID,
		SelectedLabel: selectedLabel,
		Correct:       correct,
		Confidence:    string(conf),
		Category:      q.Category,
		TimeMs:        timeMs,
	})
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	admitted, err := e.updateReviewQueue(ctx, state, q, correct, conf, now)
	if err != nil {
		return nil, err
	}

	state.LastAnswerCorrect = correct
	state.LastConfidence = conf
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}
	cr := state.PerCategory[q.Category]
	if cr == nil {
		cr = &CategoryResult{Category: q.Category}
		state.PerCategory[q.Category] = cr
	}
	cr.Attempted++
	if correct {
		cr.Correct++
	}

	newProg, milestones := progress.Apply(state.Progress, correct, now)
	state.Progress = newProg
	if err := progress.Save(ctx, e.snapshots, newProg); err != nil {
		return nil, err
	}

	result := &AnswerResult{
		Correct:      correct,
		CorrectLabel: q.CorrectLabel,
		Rationale:    q.Rationale,
		Admitted:     admitted,
		Milestones:   milestones,
	}

	for _, m := range milestones {
		if _, err := e.awards.RecordStreakMilestone(ctx, state.UserID, state.SessionID, m); err != nil {
			return nil, err
		}
	}

	granted, err := e.evaluateAchievements(ctx, state)
	if err != nil {
		return nil, err
	}
	result.NewAwards = granted

	state.Phase = PhaseFeedback
	return result, nil
}

// updateReviewQueue routes the outcome to the scheduler: review sessions
// re-schedule the existing entry, everything else admits on a miss or a
// hesitant hit.
func (e *Engine) updateReviewQueue(ctx context.Context, state *State, q *bank.Question, correct bool, conf review.Confidence, now time.Time) (bool, error) {
	if state.Plan.Mode == ModeReview {
		if _, err := e.scheduler.RecordReview(ctx, state.UserID, q.ID, correct, conf, now); err != nil {
			return false, err
		}
		return false, nil
	}
	admitted, err := e.scheduler.AdmitFromAnswer(ctx, state.UserID, q.ID, correct, conf, now)
	if err != nil {
		return false, err
	}
	return admitted, nil
}

func (e *Engine) evaluateAchievements(ctx context.Context, state *State) ([]awards.Award, error) {
	history, err := e.events.QueryAnswerEvents(ctx, state.UserID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load history for awards: %w", err)
	}

	var reviewCount int
	for _, s := range e.sessionModes(ctx, state.UserID) {
		if s.Mode == string(ModeReview) {
			reviewCount += s.QuestionsServed
		}
	}
	if state.Plan.Mode == ModeReview {
		reviewCount += state.TotalQuestions
	}

	stats := awards.Stats{
		Progress:      state.Progress,
		ReviewCount:   reviewCount,
		CategoryStats: adaptive.Summarize(history, nil),
	}
	return e.awards.Evaluate(ctx, state.UserID, state.SessionID, stats)
}

func (e *Engine) sessionModes(ctx context.Context, userID string) []store.SessionSummaryRecord {
	summaries, err := e.events.QuerySessionSummaries(ctx, userID, store.QueryOpts{})
	if err != nil {
		return nil
	}
	return summaries
}

// Finish records the session end event and builds the summary.
func (e *Engine) Finish(ctx context.Context, state *State, now time.Time) (*Summary, error) {
	state.Phase = PhaseSummary

	err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		UserID:          state.UserID,
		SessionID:       state.SessionID,
		Action:          "end",
		Mode:            string(state.Plan.Mode),
		QuestionsServed: state.TotalQuestions,
		CorrectAnswers:  state.TotalCorrect,
		DurationSecs:    int(now.Sub(state.StartTime).Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("record session end: %w", err)
	}

	summary := BuildSummary(state, now)
	summary.PointsEarned = state.Progress.Points - state.StartPoints
	summary.Awards = e.awards.SessionAwards
	return summary, nil
}
