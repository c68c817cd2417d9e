package progress

import (
	"context"
	"fmt"

	"github.com/meera/nclexprep/internal/store"
)

// snapshotVersion is the current snapshot payload version.
const snapshotVersion = 1

// Load restores the latest persisted state for the user. A missing or
// foreign-user snapshot yields a fresh zero state, not an error.
func Load(ctx context.Context, repo store.SnapshotRepo, userID string) (State, error) {
	snap, err := repo.Latest(ctx)
	if err != nil {
		return State{}, fmt.Errorf("load progress snapshot: %w", err)
	}
	if snap == nil || snap.Data.Progress == nil || snap.Data.Progress.UserID != userID {
		return State{UserID: userID}, nil
	}
	p := snap.Data.Progress
	return State{
		UserID:        p.UserID,
		Points:        p.Points,
		AnswerStreak:  p.AnswerStreak,
		BestStreak:    p.BestStreak,
		DailyStreak:   p.DailyStreak,
		LastStudyDay:  p.LastStudyDay,
		TotalAnswered: p.TotalAnswered,
		TotalCorrect:  p.TotalCorrect,
	}, nil
}

// Save persists the state as a new snapshot and prunes old ones.
func Save(ctx context.Context, repo store.SnapshotRepo, s State) error {
	snap := &store.Snapshot{
		Data: store.SnapshotData{
			Version: snapshotVersion,
			Progress: &store.ProgressSnapshotData{
				UserID:        s.UserID,
				Points:        s.Points,
				AnswerStreak:  s.AnswerStreak,
				BestStreak:    s.BestStreak,
				DailyStreak:   s.DailyStreak,
				LastStudyDay:  s.LastStudyDay,
				TotalAnswered: s.TotalAnswered,
				TotalCorrect:  s.TotalCorrect,
			},
		},
	}
	if err := repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save progress snapshot: %w", err)
	}
	if err := repo.Prune(ctx, 10); err != nil {
		return fmt.Errorf("prune progress snapshots: %w", err)
	}
	return nil
}
