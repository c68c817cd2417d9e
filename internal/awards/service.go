package awards

import (
	"context"
	"fmt"

	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/store"
)

// AwardType distinguishes the two kinds of award rows.
const (
	TypeAchievement = "achievement"
	TypeStreak      = "streak"
)

// Award is a single granted award, as shown to the user.
type Award struct {
	Type          string
	AchievementID string
	Name          string
	Tier          Tier
	Points        int
	Reason        string
}

// Service evaluates the achievement catalog and records awards.
type Service struct {
	eventRepo store.EventRepo

	// SessionAwards accumulates awards granted during the current session.
	SessionAwards []Award
}

// NewService creates an award service over the event log.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// Evaluate checks the whole catalog against the user's current stats and
// grants any achievements not yet earned. Returns the newly granted awards.
func (s *Service) Evaluate(ctx context.Context, userID, sessionID string, stats Stats) ([]Award, error) {
	earned, err := s.eventRepo.EarnedAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load earned achievements: %w", err)
	}

	var granted []Award
	for _, a := range Catalog() {
		if earned[a.ID] || !a.Qualifies(stats) {
			continue
		}
		award := Award{
			Type:          TypeAchievement,
			AchievementID: a.ID,
			Name:          a.Name,
			Tier:          a.Tier,
			Points:        a.Points,
			Reason:        a.Description,
		}
		if err := s.persist(ctx, userID, sessionID, award); err != nil {
			return granted, err
		}
		s.SessionAwards = append(s.SessionAwards, award)
		granted = append(granted, award)
	}
	return granted, nil
}

// RecordStreakMilestone records a streak milestone bonus as an award row.
func (s *Service) RecordStreakMilestone(ctx context.Context, userID, sessionID string, m progress.Milestone) (*Award, error) {
	award := Award{
		Type:   TypeStreak,
		Tier:   StreakTier(m.Streak),
		Points: m.Points,
		Reason: fmt.Sprintf("%d correct in a row!", m.Streak),
	}
	if err := s.persist(ctx, userID, sessionID, award); err != nil {
		return nil, err
	}
	s.SessionAwards = append(s.SessionAwards, award)
	return &award, nil
}

// ResetSession clears the session award accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionAwards = nil
}

// History returns the user's past awards, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]store.AwardEventRecord, error) {
	recs, err := s.eventRepo.QueryAwardEvents(ctx, userID, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("query awards: %w", err)
	}
	return recs, nil
}

func (s *Service) persist(ctx context.Context, userID, sessionID string, a Award) error {
	err := s.eventRepo.AppendAwardEvent(ctx, store.AwardEventData{
		UserID:        userID,
		AwardType:     a.Type,
		AchievementID: a.AchievementID,
		Tier:          string(a.Tier),
		Points:        a.Points,
		SessionID:     sessionID,
		Reason:        a.Reason,
	})
	if err != nil {
		return fmt.Errorf("persist award: %w", err)
	}
	return nil
}
