package store

import (
	"context"
	"fmt"
	"time"

	"github.com/meera/nclexprep/ent"
	"github.com/meera/nclexprep/ent/question"
	"github.com/meera/nclexprep/ent/reviewentry"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Admit(ctx context.Context, entry ReviewEntryRecord) (bool, error) {
	_, err := r.client.ReviewEntry.Create().
		SetUserID(entry.UserID).
		SetQuestionID(entry.QuestionID).
		SetReason(entry.Reason).
		SetDueAt(entry.DueAt).
		SetIntervalDays(entry.IntervalDays).
		SetEaseFactor(entry.EaseFactor).
		SetReviewCount(entry.ReviewCount).
		Save(ctx)
	if err != nil {
		// The unique (user_id, question_id) index rejects re-admission;
		// that is the expected no-op path, not a failure.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("admit review entry: %w", err)
	}
	return true, nil
}

func (r *reviewRepo) Get(ctx context.Context, userID, questionID string) (*ReviewEntryRecord, error) {
	e, err := r.client.ReviewEntry.Query().
		Where(
			reviewentry.UserID(userID),
			reviewentry.QuestionID(questionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review entry: %w", err)
	}
	rec := reviewEntryToRecord(e)
	return &rec, nil
}

func (r *reviewRepo) ListDue(ctx context.Context, userID string, before time.Time) ([]DueItem, error) {
	entries, err := r.client.ReviewEntry.Query().
		Where(
			reviewentry.UserID(userID),
			reviewentry.DueAtLTE(before),
		).
		Order(ent.Asc(reviewentry.FieldDueAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	qids := make([]string, len(entries))
	for i, e := range entries {
		qids[i] = e.QuestionID
	}
	questions, err := r.client.Question.Query().
		Where(question.QidIn(qids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load due questions: %w", err)
	}
	byQID := make(map[string]*ent.Question, len(questions))
	for _, q := range questions {
		byQID[q.Qid] = q
	}

	items := make([]DueItem, 0, len(entries))
	for _, e := range entries {
		item := DueItem{Entry: reviewEntryToRecord(e)}
		if q, ok := byQID[e.QuestionID]; ok {
			rec := questionToRecord(q)
			item.Question = &rec
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *reviewRepo) CountDue(ctx context.Context, userID string, before time.Time) (int, error) {
	n, err := r.client.ReviewEntry.Query().
		Where(
			reviewentry.UserID(userID),
			reviewentry.DueAtLTE(before),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count due entries: %w", err)
	}
	return n, nil
}

func (r *reviewRepo) Update(ctx context.Context, userID, questionID string, upd ReviewUpdate) error {
	n, err := r.client.ReviewEntry.Update().
		Where(
			reviewentry.UserID(userID),
			reviewentry.QuestionID(questionID),
		).
		SetDueAt(upd.DueAt).
		SetIntervalDays(upd.IntervalDays).
		SetEaseFactor(upd.EaseFactor).
		SetReviewCount(upd.ReviewCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update review entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update review entry: no row for (%s, %s)", userID, questionID)
	}
	return nil
}

func reviewEntryToRecord(e *ent.ReviewEntry) ReviewEntryRecord {
	return ReviewEntryRecord{
		UserID:       e.UserID,
		QuestionID:   e.QuestionID,
		Reason:       e.Reason,
		DueAt:        e.DueAt,
		IntervalDays: e.IntervalDays,
		EaseFactor:   e.EaseFactor,
		ReviewCount:  e.ReviewCount,
		CreatedAt:    e.CreatedAt,
	}
}
