package review

import (
	"context"
	"fmt"
	"time"

	"github.com/meera/nclexprep/internal/store"
)

// Scheduler manages the spaced-repetition review queue for a user.
// All schedule arithmetic happens in-process on rows fetched from the
// repository; the repository calls are the only asynchronous boundary.
type Scheduler struct {
	repo store.ReviewRepo
}

// NewScheduler creates a scheduler over the given review repository.
func NewScheduler(repo store.ReviewRepo) *Scheduler {
	return &Scheduler{repo: repo}
}

// Admit flags a question for spaced-repetition tracking. If the (user,
// question) pair is already queued this is a no-op: only RecordReview
// transitions an existing entry's schedule. Returns true when a new entry
// was created.
func (s *Scheduler) Admit(ctx context.Context, userID, questionID string, reason Reason, now time.Time) (bool, error) {
	sched := InitialSchedule(now)
	created, err := s.repo.Admit(ctx, store.ReviewEntryRecord{
		UserID:       userID,
		QuestionID:   questionID,
		Reason:       string(reason),
		DueAt:        sched.DueAt,
		IntervalDays: sched.IntervalDays,
		EaseFactor:   sched.EaseFactor,
		ReviewCount:  sched.ReviewCount,
	})
	if err != nil {
		return false, fmt.Errorf("admit %s for %s: %w", questionID, userID, err)
	}
	return created, nil
}

// AdmitFromAnswer admits a question based on an answer outcome, applying the
// admission rule: incorrect answers admit with reason "incorrect",
// low-confidence answers with "low_confidence", everything else not at all.
func (s *Scheduler) AdmitFromAnswer(ctx context.Context, userID, questionID string, correct bool, conf Confidence, now time.Time) (bool, error) {
	reason, ok := AdmissionReason(correct, conf)
	if !ok {
		return false, nil
	}
	return s.Admit(ctx, userID, questionID, reason, now)
}

// DueItems returns the user's queue entries due at or before asOf, oldest-due
// first, joined with their questions. An empty result is a valid "nothing
// due" outcome, not an error.
func (s *Scheduler) DueItems(ctx context.Context, userID string, asOf time.Time) ([]store.DueItem, error) {
	items, err := s.repo.ListDue(ctx, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list due items for %s: %w", userID, err)
	}
	return items, nil
}

// CountDue returns how many entries are due at or before asOf.
func (s *Scheduler) CountDue(ctx context.Context, userID string, asOf time.Time) (int, error) {
	n, err := s.repo.CountDue(ctx, userID, asOf)
	if err != nil {
		return 0, fmt.Errorf("count due items for %s: %w", userID, err)
	}
	return n, nil
}

// RecordReview applies a re-attempt outcome to the queue entry for the pair
// and persists the new schedule. Re-attempts of questions never admitted to
// the queue are a silent no-op (nil, nil) — not an error. On success the
// updated entry is returned.
func (s *Scheduler) RecordReview(ctx context.Context, userID, questionID string, correct bool, conf Confidence, now time.Time) (*store.ReviewEntryRecord, error) {
	entry, err := s.repo.Get(ctx, userID, questionID)
	if err != nil {
		return nil, fmt.Errorf("load review entry: %w", err)
	}
	if entry == nil {
		return nil, nil
	}

	next := NextSchedule(Schedule{
		IntervalDays: entry.IntervalDays,
		EaseFactor:   entry.EaseFactor,
		ReviewCount:  entry.ReviewCount,
		DueAt:        entry.DueAt,
	}, correct, conf, now)

	err = s.repo.Update(ctx, userID, questionID, store.ReviewUpdate{
		DueAt:        next.DueAt,
		IntervalDays: next.IntervalDays,
		EaseFactor:   next.EaseFactor,
		ReviewCount:  next.ReviewCount,
	})
	if err != nil {
		return nil, fmt.Errorf("persist review update: %w", err)
	}

	entry.DueAt = next.DueAt
	entry.IntervalDays = next.IntervalDays
	entry.EaseFactor = next.EaseFactor
	entry.ReviewCount = next.ReviewCount
	return entry, nil
}
