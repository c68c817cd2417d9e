package session

import (
	"context"
	"fmt"
	"time"

	"github.com/meera/nclexprep/internal/adaptive"
	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/entitlement"
	"github.com/meera/nclexprep/internal/review"
	"github.com/meera/nclexprep/internal/store"
)

// Planner builds session plans from the question pool, answer history, and
// the review queue.
type Planner struct {
	questions store.QuestionRepo
	events    store.EventRepo
	scheduler *review.Scheduler
	gate      *entitlement.Gate
}

// NewPlanner creates a planner over the given repositories. The gate may be
// nil, in which case no quota cap is applied.
func NewPlanner(questions store.QuestionRepo, events store.EventRepo, scheduler *review.Scheduler, gate *entitlement.Gate) *Planner {
	return &Planner{questions: questions, events: events, scheduler: scheduler, gate: gate}
}

// BuildPlan assembles the question list for a session. Practice mode ranks
// the full active pool adaptively; focused mode narrows it to the weakest
// category when one qualifies; review mode serves due queue items oldest
// first. The free-plan quota caps the plan length; a zero-length plan with a
// zero-Remaining status means the paywall applies.
func (p *Planner) BuildPlan(ctx context.Context, userID string, mode Mode, now time.Time) (*Plan, entitlement.Status, error) {
	status := entitlement.Status{Plan: entitlement.PlanPremium, Remaining: -1}
	if p.gate != nil {
		var err error
		status, err = p.gate.Check(ctx, userID, now)
		if err != nil {
			return nil, status, fmt.Errorf("check entitlement: %w", err)
		}
	}

	var (
		plan *Plan
		err  error
	)
	switch mode {
	case ModeReview:
		plan, err = p.buildReviewPlan(ctx, userID, now)
	case ModeFocused:
		plan, err = p.buildFocusedPlan(ctx, userID)
	default:
		plan, err = p.buildPracticePlan(ctx, userID)
	}
	if err != nil {
		return nil, status, err
	}

	limit := DefaultSessionLength
	if status.Remaining >= 0 && status.Remaining < limit {
		limit = status.Remaining
	}
	if len(plan.Questions) > limit {
		plan.Questions = plan.Questions[:limit]
	}
	return plan, status, nil
}

func (p *Planner) buildPracticePlan(ctx context.Context, userID string) (*Plan, error) {
	pool, history, err := p.loadPoolAndHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Mode:      ModePractice,
		Questions: adaptive.RankQuestions(pool, history),
	}, nil
}

func (p *Planner) buildFocusedPlan(ctx context.Context, userID string) (*Plan, error) {
	pool, history, err := p.loadPoolAndHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	ranked := adaptive.RankQuestions(pool, history)

	category, ok := adaptive.WeakestCategory(pool, history)
	if !ok {
		// No category is weak enough with enough data. Fall back to the
		// general ranking so the session still runs, and flag the outcome
		// so the UI can say so.
		return &Plan{Mode: ModeFocused, Questions: ranked, NoWeakCategory: true}, nil
	}

	var focused []bank.Question
	for _, q := range ranked {
		if q.Category == category {
			focused = append(focused, q)
		}
	}
	return &Plan{Mode: ModeFocused, Questions: focused, FocusCategory: category}, nil
}

func (p *Planner) buildReviewPlan(ctx context.Context, userID string, now time.Time) (*Plan, error) {
	items, err := p.scheduler.DueItems(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	var questions []bank.Question
	for _, item := range items {
		if item.Question == nil {
			continue
		}
		questions = append(questions, bank.FromRecord(*item.Question))
	}
	return &Plan{Mode: ModeReview, Questions: questions}, nil
}

func (p *Planner) loadPoolAndHistory(ctx context.Context, userID string) ([]bank.Question, []store.AnswerEventRecord, error) {
	records, err := p.questions.List(ctx, true)
	if err != nil {
		return nil, nil, fmt.Errorf("list questions: %w", err)
	}
	history, err := p.events.QueryAnswerEvents(ctx, userID, store.QueryOpts{})
	if err != nil {
		return nil, nil, fmt.Errorf("load answer history: %w", err)
	}
	return bank.FromRecords(records), history, nil
}
