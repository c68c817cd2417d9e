package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meera/nclexprep/internal/adaptive"
	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		userID := session.DefaultUserID

		prog, err := progress.Load(ctx, st.SnapshotRepo(), userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		history, err := st.EventRepo().QueryAnswerEvents(ctx, userID, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		recs, err := st.QuestionRepo().List(ctx, true)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		pool := bank.FromRecords(recs)

		dueCount, err := st.ReviewRepo().CountDue(ctx, userID, time.Now())
		if err != nil {
			return fmt.Errorf("count due items: %w", err)
		}

		fmt.Printf("Answered:       %d\n", prog.TotalAnswered)
		fmt.Printf("Correct:        %d (%.0f%%)\n", prog.TotalCorrect, prog.Accuracy()*100)
		fmt.Printf("Points:         %d\n", prog.Points)
		fmt.Printf("Answer streak:  %d (best %d)\n", prog.AnswerStreak, prog.BestStreak)
		fmt.Printf("Study streak:   %d day(s)\n", prog.DailyStreak)
		fmt.Printf("Reviews due:    %d\n", dueCount)

		stats := adaptive.Summarize(history, pool)
		if len(stats) > 0 {
			fmt.Println("\nAccuracy by category:")
			for _, cs := range stats {
				if cs.Total == 0 {
					continue
				}
				fmt.Printf("  %-36s %3d/%-3d  %.0f%%\n",
					cs.Category, cs.Correct, cs.Total, cs.Accuracy()*100)
			}
		}

		if weakest, ok := adaptive.WeakestCategory(pool, history); ok {
			fmt.Printf("\nWeakest category: %s\n", weakest)
		}
		return nil
	},
}
