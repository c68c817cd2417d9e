package store

import (
	"context"
	"fmt"
	"time"

	"github.com/meera/nclexprep/ent"
	"github.com/meera/nclexprep/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetSessionID(data.SessionID).
		SetSelectedLabel(data.SelectedLabel).
		SetCorrect(data.Correct).
		SetConfidence(data.Confidence).
		SetCategory(data.Category).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, userID string, opts QueryOpts) ([]AnswerEventRecord, error) {
	query := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		Order(ent.Asc(answerevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(answerevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(answerevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(answerevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	records := make([]AnswerEventRecord, len(events))
	for i, e := range events {
		records[i] = AnswerEventRecord{
			UserID:        e.UserID,
			QuestionID:    e.QuestionID,
			SessionID:     e.SessionID,
			SelectedLabel: e.SelectedLabel,
			Correct:       e.Correct,
			Confidence:    e.Confidence,
			Category:      e.Category,
			TimeMs:        e.TimeMs,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) CountAnswersSince(ctx context.Context, userID string, since time.Time) (int, error) {
	n, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.UserID(userID),
			answerevent.TimestampGTE(since),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	return n, nil
}
