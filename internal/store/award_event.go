package store

import (
	"context"
	"fmt"

	"github.com/meera/nclexprep/ent"
	"github.com/meera/nclexprep/ent/awardevent"
)

func (r *eventRepo) AppendAwardEvent(ctx context.Context, data AwardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AwardEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetAwardType(data.AwardType).
		SetTier(data.Tier).
		SetPoints(data.Points).
		SetReason(data.Reason)

	if data.AchievementID != "" {
		builder = builder.SetAchievementID(data.AchievementID)
	}
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save award event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAwardEvents(ctx context.Context, userID string, opts QueryOpts) ([]AwardEventRecord, error) {
	query := r.client.AwardEvent.Query().
		Where(awardevent.UserID(userID)).
		Order(ent.Desc(awardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(awardevent.SequenceGT(opts.After))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query award events: %w", err)
	}

	records := make([]AwardEventRecord, len(events))
	for i, e := range events {
		records[i] = AwardEventRecord{
			UserID:        e.UserID,
			AwardType:     e.AwardType,
			AchievementID: e.AchievementID,
			Tier:          e.Tier,
			Points:        e.Points,
			SessionID:     e.SessionID,
			Reason:        e.Reason,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) EarnedAchievements(ctx context.Context, userID string) (map[string]bool, error) {
	events, err := r.client.AwardEvent.Query().
		Where(
			awardevent.UserID(userID),
			awardevent.AwardType("achievement"),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query earned achievements: %w", err)
	}

	earned := make(map[string]bool, len(events))
	for _, e := range events {
		earned[e.AchievementID] = true
	}
	return earned, nil
}
